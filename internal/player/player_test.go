package player

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/keyframe"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/surface"
)

// countingRenderer records the sign of every frame it draws.
type countingRenderer struct {
	mu    sync.Mutex
	signs []string
}

func (r *countingRenderer) RenderFrame(_ surface.Surface, k keyframe.Keyframe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signs = append(r.signs, k.Sign)
}

func (r *countingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.signs)
}

// instantClock fires immediately and adds up the time it was asked to wait.
type instantClock struct {
	mu    sync.Mutex
	total time.Duration
	calls int
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.total += d
	c.calls++
	c.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

// manualClock fires only when the test sends on tick.
type manualClock struct {
	tick chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{tick: make(chan time.Time)}
}

func (c *manualClock) After(time.Duration) <-chan time.Time { return c.tick }

// gatedClock reports each After call on waiting, then blocks until the test
// closes release and hands back a channel that has already fired.
type gatedClock struct {
	waiting chan struct{}
	release chan struct{}
}

func newGatedClock() *gatedClock {
	return &gatedClock{waiting: make(chan struct{}, 1), release: make(chan struct{})}
}

func (c *gatedClock) After(time.Duration) <-chan time.Time {
	c.waiting <- struct{}{}
	<-c.release
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func sequence(signs ...string) keyframe.Sequence {
	seq := make(keyframe.Sequence, len(signs))
	for i, s := range signs {
		seq[i] = keyframe.Keyframe{
			RightHand: &keyframe.Hand{Keypoints: landmark.RelaxedHand(0.5, 0.5)},
			Sign:      s,
		}
	}
	return seq
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// frameSignal returns a hook that reports each rendered frame on the channel.
func frameSignal() (FrameHook, <-chan Frame) {
	ch := make(chan Frame, 64)
	return func(f Frame) { ch <- f }, ch
}

func waitFrame(t *testing.T, ch <-chan Frame) Frame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "idle"},
		{Playing, "playing"},
		{Stopped, "stopped"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New(surface.NewTrace(500, 500), &countingRenderer{})

	if p.State() != Idle {
		t.Errorf("State() = %v, want idle", p.State())
	}
	if p.Period() != time.Second/DefaultFPS {
		t.Errorf("Period() = %v, want %v", p.Period(), time.Second/DefaultFPS)
	}
	select {
	case <-p.Done():
	default:
		t.Error("Done() should be closed before any playback")
	}

	p = New(surface.NewTrace(500, 500), &countingRenderer{}, WithFPS(0))
	if p.Period() != time.Second/DefaultFPS {
		t.Errorf("WithFPS(0) Period() = %v, want default", p.Period())
	}
}

func TestPlay_TwoFrames(t *testing.T) {
	r := &countingRenderer{}
	clock := &instantClock{}
	p := New(surface.NewTrace(500, 500), r, WithClock(clock), WithLogger(discardLogger()))

	p.Play(sequence("A", "B"))
	p.Wait()

	if got := p.Index(); got != 2 {
		t.Errorf("Index() = %d, want 2", got)
	}
	if got := r.count(); got != 2 {
		t.Errorf("rendered %d frames, want 2", got)
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want stopped", p.State())
	}

	// Two waits of 1000/30 ms each.
	want := 2 * (time.Second / 30)
	if clock.total != want {
		t.Errorf("scheduled %v, want %v", clock.total, want)
	}
	if ms := clock.total.Seconds() * 1000; ms < 66.6 || ms > 66.7 {
		t.Errorf("scheduled %.3fms, want about 66.7ms", ms)
	}
}

func TestPlay_FrameHook(t *testing.T) {
	hook, frames := frameSignal()
	s := surface.NewTrace(500, 500)
	p := New(s, &countingRenderer{}, WithClock(&instantClock{}), WithFrameHook(hook), WithLogger(discardLogger()))

	run := p.Play(sequence("HELLO", "HELLO", "YES"))
	p.Wait()

	for i, sign := range []string{"HELLO", "HELLO", "YES"} {
		f := waitFrame(t, frames)
		if f.Index != i || f.Total != 3 {
			t.Errorf("frame %d: Index/Total = %d/%d, want %d/3", i, f.Index, f.Total, i)
		}
		if f.Keyframe.Sign != sign {
			t.Errorf("frame %d: sign = %q, want %q", i, f.Keyframe.Sign, sign)
		}
		if f.Run != run {
			t.Errorf("frame %d: run = %q, want %q", i, f.Run, run)
		}
		if f.Surface != surface.Surface(s) {
			t.Errorf("frame %d: hook got a different surface", i)
		}
	}
}

func TestPlay_EmptySequence(t *testing.T) {
	r := &countingRenderer{}
	p := New(surface.NewTrace(500, 500), r, WithClock(&instantClock{}), WithLogger(discardLogger()))

	p.Play(nil)
	p.Wait()

	if r.count() != 0 {
		t.Errorf("rendered %d frames, want 0", r.count())
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want stopped", p.State())
	}
}

func TestStop_MidSequence(t *testing.T) {
	r := &countingRenderer{}
	clock := newManualClock()
	hook, frames := frameSignal()
	p := New(surface.NewTrace(500, 500), r, WithClock(clock), WithFrameHook(hook), WithLogger(discardLogger()))

	p.Play(sequence("A", "B", "C", "D", "E"))
	waitFrame(t, frames)

	clock.tick <- time.Time{}
	waitFrame(t, frames)

	p.Stop()
	p.Wait()

	if got := r.count(); got != 2 {
		t.Errorf("rendered %d frames, want 2", got)
	}
	if got := p.Index(); got != 2 {
		t.Errorf("Index() = %d, want 2", got)
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want stopped", p.State())
	}
}

func TestStop_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := New(surface.NewTrace(500, 500), &countingRenderer{}, WithClock(newManualClock()), WithLogger(logger))

	p.Stop()
	if p.State() != Idle {
		t.Errorf("Stop() on idle player: State() = %v, want idle", p.State())
	}

	p.Play(sequence("A", "B", "C"))
	p.Stop()
	p.Stop()
	p.Wait()

	if p.State() != Stopped {
		t.Errorf("State() = %v, want stopped", p.State())
	}
	if n := strings.Count(buf.String(), "playback stopped"); n != 1 {
		t.Errorf("logged %d stops, want 1", n)
	}
}

func TestPlay_ReplacesInFlight(t *testing.T) {
	r := &countingRenderer{}
	clock := newManualClock()
	hook, frames := frameSignal()
	p := New(surface.NewTrace(500, 500), r, WithClock(clock), WithFrameHook(hook), WithLogger(discardLogger()))

	first := p.Play(sequence("OLD", "OLD", "OLD", "OLD"))
	waitFrame(t, frames)
	oldDone := p.Done()

	second := p.Play(sequence("NEW", "NEW"))
	<-oldDone

	if first == second {
		t.Fatal("replacement playback reused the run ID")
	}

	f := waitFrame(t, frames)
	if f.Run != second || f.Index != 0 || f.Keyframe.Sign != "NEW" {
		t.Errorf("first frame after replace = %+v, want index 0 of NEW", f)
	}
	clock.tick <- time.Time{}
	f = waitFrame(t, frames)
	if f.Index != 1 || f.Keyframe.Sign != "NEW" {
		t.Errorf("second frame after replace = index %d sign %q", f.Index, f.Keyframe.Sign)
	}
	clock.tick <- time.Time{}
	p.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	want := []string{"OLD", "NEW", "NEW"}
	if strings.Join(r.signs, ",") != strings.Join(want, ",") {
		t.Errorf("rendered %v, want %v", r.signs, want)
	}
}

func TestWithTween(t *testing.T) {
	r := &countingRenderer{}
	hook, frames := frameSignal()
	p := New(surface.NewTrace(500, 500), r, WithClock(&instantClock{}), WithTween(3),
		WithLogger(discardLogger()), WithFrameHook(hook))

	p.Play(sequence("A", "B"))
	p.Wait()

	// 2 keyframes plus 3 in-betweens.
	if got := r.count(); got != 5 {
		t.Errorf("rendered %d frames, want 5", got)
	}
	if f := waitFrame(t, frames); f.Total != 5 {
		t.Errorf("Frame.Total = %d, want 5", f.Total)
	}
}

func TestRun_Completes(t *testing.T) {
	r := &countingRenderer{}
	p := New(surface.NewTrace(500, 500), r, WithFPS(200), WithLogger(discardLogger()))

	if err := p.Run(context.Background(), sequence("A", "B", "C")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if r.count() != 3 {
		t.Errorf("rendered %d frames, want 3", r.count())
	}
}

func TestRun_ContextCancel(t *testing.T) {
	r := &countingRenderer{}
	hook, frames := frameSignal()
	p := New(surface.NewTrace(500, 500), r, WithClock(newManualClock()), WithFrameHook(hook), WithLogger(discardLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx, sequence("A", "B", "C")) }()

	waitFrame(t, frames)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
	if r.count() != 1 {
		t.Errorf("rendered %d frames, want 1", r.count())
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want stopped", p.State())
	}
}

func TestStop_TickAlreadyFired(t *testing.T) {
	r := &countingRenderer{}
	clock := newGatedClock()
	p := New(surface.NewTrace(500, 500), r, WithClock(clock), WithLogger(discardLogger()))

	p.Play(sequence("A", "B", "C"))
	select {
	case <-clock.waiting:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the first frame")
	}

	// The loop is between frames and its next tick is ready the moment
	// the gate opens.
	p.Stop()
	close(clock.release)
	p.Wait()

	if got := r.count(); got != 1 {
		t.Errorf("rendered %d frames, want 1", got)
	}
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
}

func TestStop_ReleasesSequence(t *testing.T) {
	hook, frames := frameSignal()
	p := New(surface.NewTrace(500, 500), &countingRenderer{}, WithClock(newManualClock()),
		WithLogger(discardLogger()), WithFrameHook(hook))

	p.Play(sequence("A", "B", "C"))
	waitFrame(t, frames)
	if p.Len() != 3 {
		t.Errorf("Len() while playing = %d, want 3", p.Len())
	}

	p.Stop()
	p.Wait()
	if p.Len() != 0 {
		t.Errorf("Len() after Stop() = %d, want 0", p.Len())
	}
	if p.Index() != 1 {
		t.Errorf("Index() after Stop() = %d, want 1", p.Index())
	}
}

func TestFinish_ReleasesSequence(t *testing.T) {
	p := New(surface.NewTrace(500, 500), &countingRenderer{}, WithClock(&instantClock{}), WithLogger(discardLogger()))

	p.Play(sequence("A", "B"))
	p.Wait()
	if p.Len() != 0 {
		t.Errorf("Len() after finishing = %d, want 0", p.Len())
	}
	if p.Index() != 2 {
		t.Errorf("Index() after finishing = %d, want 2", p.Index())
	}
}
