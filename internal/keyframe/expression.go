package keyframe

import (
	"sort"

	"github.com/ayusman/mudra/internal/easing"
	"github.com/ayusman/mudra/internal/interp"
)

// Neutral is the expression used when a sign names none or an unknown one.
const Neutral = "neutral"

var expressions = map[string]FacialExpression{
	Neutral:    {},
	"smile":    {Eyebrows: 0.1, MouthCurve: 0.5},
	"sad":      {Eyebrows: -0.2, MouthCurve: -0.4},
	"question": {Eyebrows: 0.3},
	"calm":     {MouthCurve: 0.05},
	"frown":    {Eyebrows: -0.3, MouthCurve: -0.3},
	"intense":  {Eyebrows: 0.2},
}

// Expression returns the named expression preset and whether it exists.
// Unknown names yield the neutral face.
func Expression(name string) (*FacialExpression, bool) {
	e, ok := expressions[name]
	if !ok {
		e = expressions[Neutral]
	}
	return &e, ok
}

// Expressions lists the preset names in sorted order.
func Expressions() []string {
	names := make([]string, 0, len(expressions))
	for name := range expressions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tween returns seq with steps interpolated keyframes inserted between
// each consecutive pair. In-between frames carry the earlier keyframe's
// sign label; a hand present on only one side of a pair is held as is.
func Tween(seq Sequence, steps int) Sequence {
	if steps <= 0 || len(seq) < 2 {
		return seq
	}
	out := make(Sequence, 0, len(seq)+(len(seq)-1)*steps)
	for i := 0; i < len(seq)-1; i++ {
		a, b := seq[i], seq[i+1]
		out = append(out, a)
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps+1)
			out = append(out, Keyframe{
				RightHand:        tweenHand(a.RightHand, b.RightHand, t),
				LeftHand:         tweenHand(a.LeftHand, b.LeftHand, t),
				FacialExpression: tweenFace(a.FacialExpression, b.FacialExpression, t),
				Sign:             a.Sign,
			})
		}
	}
	return append(out, seq[len(seq)-1])
}

func tweenHand(a, b *Hand, t float64) *Hand {
	pose := interp.Interpolate(a.Pose(), b.Pose(), t)
	if pose == nil {
		return nil
	}
	return &Hand{Keypoints: pose}
}

func tweenFace(a, b *FacialExpression, t float64) *FacialExpression {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		c := *b
		return &c
	case b == nil:
		c := *a
		return &c
	}
	e := easing.EaseInOutCubic(t)
	return &FacialExpression{
		Eyebrows:   a.Eyebrows + (b.Eyebrows-a.Eyebrows)*e,
		MouthCurve: a.MouthCurve + (b.MouthCurve-a.MouthCurve)*e,
	}
}
