// Package player drives frame-by-frame playback of a keyframe sequence.
package player

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/keyframe"
	"github.com/ayusman/mudra/internal/surface"
)

// DefaultFPS is the playback rate when none is configured.
const DefaultFPS = 30

// State is the playback state.
type State int

const (
	// Idle is a Player that has never been given a sequence.
	Idle State = iota
	// Playing means a loop is drawing frames.
	Playing
	// Stopped means the last playback has ended for any reason.
	Stopped
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	}
	return "idle"
}

// Renderer draws one keyframe onto a surface.
type Renderer interface {
	RenderFrame(s surface.Surface, k keyframe.Keyframe)
}

// Clock schedules the pause between frames.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Immediate is a Clock that never waits, for rendering frames offline.
type Immediate struct{}

func (Immediate) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// Frame describes a frame that has just been rendered.
type Frame struct {
	Run      string
	Index    int
	Total    int
	Keyframe keyframe.Keyframe
	Surface  surface.Surface
}

// FrameHook is called after each frame is drawn, while the player still
// holds its lock. It must not call back into the Player.
type FrameHook func(f Frame)

// Option configures a Player.
type Option func(*Player)

// WithFPS sets the frame rate. Non-positive values are ignored.
func WithFPS(fps int) Option {
	return func(p *Player) {
		if fps > 0 {
			p.fps = fps
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(p *Player) { p.clock = c }
}

// WithTween inserts n interpolated frames between consecutive keyframes.
func WithTween(n int) Option {
	return func(p *Player) {
		if n >= 0 {
			p.tween = n
		}
	}
}

// WithLogger sets the logger for playback events.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithFrameHook registers fn to observe every rendered frame.
func WithFrameHook(fn FrameHook) Option {
	return func(p *Player) { p.hooks = append(p.hooks, fn) }
}

// Player owns a surface, a renderer and the playback state.
// Play and Stop may be called from any goroutine.
type Player struct {
	surface  surface.Surface
	renderer Renderer
	fps      int
	tween    int
	clock    Clock
	logger   *slog.Logger
	hooks    []FrameHook

	mu     sync.Mutex
	seq    keyframe.Sequence
	index  int
	state  State
	gen    uint64
	run    string
	stopCh chan struct{}
	done   chan struct{}
}

// New creates an idle Player drawing onto s with r.
func New(s surface.Surface, r Renderer, opts ...Option) *Player {
	p := &Player{
		surface:  s,
		renderer: r,
		fps:      DefaultFPS,
		clock:    realClock{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.done = make(chan struct{})
	close(p.done)
	return p
}

// Period is the pause between frames.
func (p *Player) Period() time.Duration {
	return time.Second / time.Duration(p.fps)
}

// Play replaces any in-flight sequence with seq and starts playing it
// from the first frame. It returns the playback's run ID.
func (p *Player) Play(seq keyframe.Sequence) string {
	run, _ := p.start(seq)
	return run
}

func (p *Player) start(seq keyframe.Sequence) (string, chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked("replaced")

	p.gen++
	p.seq = keyframe.Tween(seq, p.tween)
	p.index = 0
	p.state = Playing
	p.run = uuid.NewString()
	p.stopCh = make(chan struct{})
	p.done = make(chan struct{})

	p.logger.Info("playback started", "run", p.run, "frames", len(p.seq), "fps", p.fps)
	go p.loop(p.gen, p.run, p.stopCh, p.done)
	return p.run, p.done
}

// Stop halts playback. Once it returns no further frame of the current
// playback is drawn. Stopping an idle or stopped player does nothing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked("stopped")
}

func (p *Player) stopLocked(reason string) {
	if p.state != Playing {
		return
	}
	p.state = Stopped
	p.seq = nil
	close(p.stopCh)
	p.stopCh = nil
	p.logger.Info("playback "+reason, "run", p.run, "index", p.index)
}

// Run plays seq and blocks until it finishes, is replaced, or ctx ends.
// If ctx ends first, playback is stopped and ctx's error returned.
func (p *Player) Run(ctx context.Context, seq keyframe.Sequence) error {
	_, done := p.start(seq)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		p.Stop()
		<-done
		return ctx.Err()
	}
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Index returns the index of the next frame to draw.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Len returns the number of frames in the sequence being played, tweening
// included. A stopped player holds no sequence and reports 0; Index keeps
// the position it stopped at.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seq)
}

// Done returns a channel closed when the current playback's loop exits.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Wait blocks until the current playback's loop exits.
func (p *Player) Wait() {
	<-p.Done()
}

func (p *Player) loop(gen uint64, run string, stop <-chan struct{}, done chan struct{}) {
	defer close(done)

	period := p.Period()
	for p.step(gen, run) {
		select {
		case <-stop:
			return
		case <-p.clock.After(period):
		}
	}
}

// step draws the next frame. It reports false once this playback has
// been stopped, replaced or has run out of frames.
func (p *Player) step(gen uint64, run string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gen != gen || p.state != Playing {
		return false
	}
	if p.index >= len(p.seq) {
		p.state = Stopped
		p.logger.Info("playback finished", "run", run, "frames", len(p.seq))
		p.seq = nil
		return false
	}

	k := p.seq[p.index]
	p.renderer.RenderFrame(p.surface, k)
	p.logger.Debug("frame rendered", "run", run, "index", p.index, "sign", k.Sign)

	f := Frame{Run: run, Index: p.index, Total: len(p.seq), Keyframe: k, Surface: p.surface}
	for _, hook := range p.hooks {
		hook(f)
	}
	p.index++
	return true
}
