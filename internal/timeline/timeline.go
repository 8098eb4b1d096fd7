// Package timeline expands a list of sign clips into a frame-by-frame
// keyframe sequence: each sign is animated by its motion pattern and
// consecutive signs are joined by short transition frames.
package timeline

import (
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/easing"
	"github.com/ayusman/mudra/internal/interp"
	"github.com/ayusman/mudra/internal/keyframe"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/motion"
)

// Kind is the category of a sign, which sets its base duration.
type Kind string

const (
	Letter   Kind = "letter"
	Number   Kind = "number"
	Word     Kind = "word"
	Phrase   Kind = "phrase"
	Animated Kind = "animated"
)

// Duration limits, in milliseconds.
const (
	MinSignMillis       = 800
	MaxSignMillis       = 2500
	DefaultSignMillis   = 1500
	TransitionMillis    = 300
	minSignFrames       = 5
	minTransitionFrames = 3
)

func baseMillis(k Kind) int {
	switch k {
	case Letter:
		return 800
	case Number:
		return 1000
	case Phrase:
		return 2000
	case Animated:
		return 1800
	}
	return DefaultSignMillis
}

// Clip describes one sign to animate.
type Clip struct {
	Sign       string            `json:"sign" yaml:"sign"`
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	Motion     string            `json:"motion,omitempty" yaml:"motion,omitempty"`
	Expression string            `json:"expression,omitempty" yaml:"expression,omitempty"`
	Start      landmark.HandPose `json:"start,omitempty" yaml:"start,omitempty"`
	End        landmark.HandPose `json:"end,omitempty" yaml:"end,omitempty"`
	Left       landmark.HandPose `json:"left,omitempty" yaml:"left,omitempty"`
	TwoHanded  bool              `json:"two_handed,omitempty" yaml:"two_handed,omitempty"`
}

// startPose is the clip's first right-hand shape.
func (c Clip) startPose() landmark.HandPose {
	if c.Start == nil {
		return landmark.RelaxedHand(0.5, 0.5)
	}
	return c.Start
}

// endPose is the clip's last right-hand shape.
func (c Clip) endPose() landmark.HandPose {
	if c.End != nil {
		return c.End
	}
	return c.startPose()
}

func (c Clip) validate() error {
	for _, p := range []struct {
		side landmark.Side
		pose landmark.HandPose
	}{{landmark.Right, c.Start}, {landmark.Right, c.End}, {landmark.Left, c.Left}} {
		if p.pose != nil && !p.pose.Valid() {
			return &landmark.InvalidPoseError{Side: p.side, Count: len(p.pose)}
		}
	}
	_, err := motion.Lookup(c.Motion)
	return err
}

// Entry records where one sign landed in the built sequence.
type Entry struct {
	Sign       string
	Start      time.Duration
	Duration   time.Duration
	FrameStart int
	FrameCount int
}

// Timeline is the output of Build.
type Timeline struct {
	Frames   keyframe.Sequence
	Schedule []Entry
	Total    time.Duration
}

// Builder turns clips into timelines at a fixed frame rate.
type Builder struct {
	fps        int
	transition time.Duration
}

// Option configures a Builder.
type Option func(*Builder)

// WithFPS sets the frame rate. Non-positive values are ignored.
func WithFPS(fps int) Option {
	return func(b *Builder) {
		if fps > 0 {
			b.fps = fps
		}
	}
}

// WithTransition sets the gap between signs. Zero disables transitions.
func WithTransition(d time.Duration) Option {
	return func(b *Builder) {
		if d >= 0 {
			b.transition = d
		}
	}
}

// NewBuilder returns a Builder at 30 fps with 300 ms transitions.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{fps: 30, transition: TransitionMillis * time.Millisecond}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Duration returns how long clip c is shown: the base duration for its
// kind adjusted for its motion, clamped to [MinSignMillis, MaxSignMillis].
func Duration(c Clip) time.Duration {
	ms := baseMillis(c.Kind) + motion.Adjustment(c.Motion)
	ms = max(MinSignMillis, min(MaxSignMillis, ms))
	return time.Duration(ms) * time.Millisecond
}

func (b *Builder) frames(d time.Duration, floor int) int {
	return max(int(d.Milliseconds()*int64(b.fps)/1000), floor)
}

// Build animates every clip in order.
func (b *Builder) Build(clips []Clip) (*Timeline, error) {
	if len(clips) == 0 {
		return nil, keyframe.ErrEmptySequence
	}
	for i, c := range clips {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("clip %d (%s): %w", i, c.Sign, err)
		}
	}

	tl := &Timeline{}
	for i, c := range clips {
		d := Duration(c)
		frames, err := b.sign(c, d)
		if err != nil {
			return nil, fmt.Errorf("clip %d (%s): %w", i, c.Sign, err)
		}
		tl.Schedule = append(tl.Schedule, Entry{
			Sign:       c.Sign,
			Start:      tl.Total,
			Duration:   d,
			FrameStart: len(tl.Frames),
			FrameCount: len(frames),
		})
		tl.Frames = append(tl.Frames, frames...)
		tl.Total += d

		if i < len(clips)-1 && b.transition > 0 {
			tl.Frames = append(tl.Frames, b.bridge(c, clips[i+1])...)
			tl.Total += b.transition
		}
	}
	return tl, nil
}

func (b *Builder) sign(c Clip, d time.Duration) (keyframe.Sequence, error) {
	n := b.frames(d, minSignFrames)
	face, _ := keyframe.Expression(c.Expression)
	in := motion.Input{Start: c.Start, End: c.End, Left: c.Left, TwoHanded: c.TwoHanded}

	out := make(keyframe.Sequence, n)
	for f := range out {
		progress := easing.EaseInOutCubic(float64(f) / float64(max(n-1, 1)))
		res, err := motion.Apply(c.Motion, in, progress)
		if err != nil {
			return nil, err
		}
		expr := *face
		out[f] = keyframe.Keyframe{
			RightHand:        hand(res.Right),
			LeftHand:         hand(res.Left),
			FacialExpression: &expr,
			Sign:             c.Sign,
		}
	}
	return out, nil
}

// bridge moves the right hand from the end of one sign to the start of
// the next, labelled with the upcoming sign.
func (b *Builder) bridge(from, to Clip) keyframe.Sequence {
	n := b.frames(b.transition, minTransitionFrames)
	a, z := from.endPose(), to.startPose()

	out := make(keyframe.Sequence, n)
	for f := range out {
		t := float64(f) / float64(max(n-1, 1))
		face, _ := keyframe.Expression(keyframe.Neutral)
		out[f] = keyframe.Keyframe{
			RightHand:        hand(interp.Interpolate(a, z, t)),
			FacialExpression: face,
			Sign:             to.Sign,
		}
	}
	return out
}

func hand(p landmark.HandPose) *keyframe.Hand {
	if p == nil {
		return nil
	}
	return &keyframe.Hand{Keypoints: p}
}
