// Package motion animates a sign's hand shape over the course of the sign.
//
// A Pattern maps a base pose and a progress value in [0, 1] to the right
// and left hand poses for that instant. Offsets are in normalized image
// coordinates, the same space as the landmarks themselves.
package motion

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ayusman/mudra/internal/easing"
	"github.com/ayusman/mudra/internal/interp"
	"github.com/ayusman/mudra/internal/landmark"
)

// ErrUnknownPattern is returned when a motion name is not registered.
var ErrUnknownPattern = errors.New("unknown motion pattern")

// Static is the pattern used when a sign names none.
const Static = "static"

// Input is what a pattern animates.
type Input struct {
	// Start is the sign's hand shape. A nil Start is replaced by a relaxed hand.
	Start landmark.HandPose
	// End is an optional second shape; patterns that travel blend toward it.
	End landmark.HandPose
	// Left is the second hand for static two-handed signs.
	Left landmark.HandPose
	// TwoHanded makes symmetric patterns drive both hands.
	TwoHanded bool
}

// Result holds the poses for one instant. Left is nil for one-handed output.
type Result struct {
	Right landmark.HandPose
	Left  landmark.HandPose
}

// Pattern computes the hand poses at progress p.
type Pattern func(in Input, p float64) Result

var patterns = map[string]Pattern{
	Static:            static,
	"wave":            wave,
	"circular":        circular,
	"outward":         outward,
	"downward":        downward,
	"rising":          rising,
	"opening":         opening,
	"closing":         closing,
	"wiggling":        wiggling,
	"tapping":         tapping,
	"brushing":        brushing,
	"rocking":         rocking,
	"alternating":     alternating,
	"swimming":        swimming,
	"flapping":        flapping,
	"squeezing":       squeezing,
	"patting":         patting,
	"pointing":        pointing,
	"pointing_out":    pointing,
	"pointing_side":   pointing,
	"pointing_down":   pointing,
	"opening_closing": openClose,
	"across":          across,
	"sliding":         sliding,
	"passing":         passing,
	"expanding":       expanding,
	"touching":        touching,
	"twisting":        twisting,
	"questioning":     questioning,
	"cradling":        cradling,
	"resting":         resting,
	"box_shape":       box,
}

// Lookup returns the named pattern. The empty name selects Static.
func Lookup(name string) (Pattern, error) {
	if name == "" {
		name = Static
	}
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Apply runs the named pattern at progress p, clamped to [0, 1].
func Apply(name string, in Input, p float64) (Result, error) {
	fn, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return fn(in, easing.Clamp(p)), nil
}

// Names returns every registered pattern name in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Adjustment is how much a pattern lengthens (or shortens) a sign, in milliseconds.
func Adjustment(name string) int {
	switch name {
	case "circular", "wave", "alternating":
		return 300
	case "", Static:
		return -200
	}
	return 0
}

func base(in Input) landmark.HandPose {
	if in.Start == nil {
		return landmark.RelaxedHand(0.5, 0.5)
	}
	return in.Start
}

// each returns a new pose with f applied to every landmark of p.
func each(p landmark.HandPose, f func(i int, lm landmark.Landmark) landmark.Landmark) landmark.HandPose {
	out := make(landmark.HandPose, len(p))
	for i, lm := range p {
		out[i] = f(i, lm)
	}
	return out
}

func shift(p landmark.HandPose, dx, dy, dz float64) landmark.HandPose {
	return p.Translate(dx, dy, dz)
}

func right(p landmark.HandPose) Result { return Result{Right: p} }

// both returns p for the right hand and, for two-handed signs, the same pose for the left.
func both(in Input, p landmark.HandPose) Result {
	if in.TwoHanded {
		return Result{Right: p, Left: p.Clone()}
	}
	return Result{Right: p}
}

func static(in Input, _ float64) Result {
	r := Result{Right: base(in).Clone()}
	if in.TwoHanded {
		r.Left = in.Left.Clone()
	}
	return r
}

func wave(in Input, p float64) Result {
	return right(shift(base(in), math.Sin(p*math.Pi*4)*0.05, 0, 0))
}

func circular(in Input, p float64) Result {
	angle := p * 2 * math.Pi
	const radius = 0.03
	return right(shift(base(in), math.Cos(angle)*radius, math.Sin(angle)*radius, 0))
}

// travel blends Start to End when both are given, otherwise falls back.
func travel(in Input, p float64, fallback func(landmark.HandPose) landmark.HandPose) Result {
	if in.Start != nil && in.End != nil {
		return right(interp.InterpolateWith(in.Start, in.End, p, easing.Linear))
	}
	return right(fallback(base(in)))
}

func outward(in Input, p float64) Result {
	return travel(in, p, func(h landmark.HandPose) landmark.HandPose {
		return shift(h, 0, p*0.1, -p*0.05)
	})
}

func downward(in Input, p float64) Result {
	return right(shift(base(in), 0, p*0.15, 0))
}

func rising(in Input, p float64) Result {
	return travel(in, p, func(h landmark.HandPose) landmark.HandPose {
		return shift(h, 0, -p*0.15, 0)
	})
}

func opening(in Input, p float64) Result {
	r := p * 0.1
	return right(shift(base(in), r, 0, -r*0.5))
}

func closing(in Input, p float64) Result {
	c := p * 0.05
	return right(each(base(in), func(_ int, lm landmark.Landmark) landmark.Landmark {
		return landmark.Landmark{X: lm.X + (0.5-lm.X)*c, Y: lm.Y, Z: lm.Z + c}
	}))
}

func wiggling(in Input, p float64) Result {
	return right(each(base(in), func(i int, lm landmark.Landmark) landmark.Landmark {
		lm.X += math.Sin(p*math.Pi*6+float64(i)*0.5) * 0.02
		return lm
	}))
}

func tapping(in Input, p float64) Result {
	tap := math.Abs(math.Sin(p*math.Pi*4)) * 0.03
	return both(in, shift(base(in), 0, tap, -tap))
}

func brushing(in Input, p float64) Result {
	return right(shift(base(in), math.Sin(p*math.Pi*2)*0.08, 0, 0))
}

func rocking(in Input, p float64) Result {
	rock := math.Sin(p*math.Pi*4) * 0.04
	return both(in, shift(base(in), 0, rock, rock*0.5))
}

// mirrored returns the right pose shifted by (dx, dy) and a mirrored left
// pose shifted by (ldx, ldy) after reflection.
func mirrored(h landmark.HandPose, dx, dy, ldx, ldy float64) Result {
	return Result{
		Right: shift(h, dx, dy, 0),
		Left:  shift(h.Mirror(), ldx, ldy, 0),
	}
}

func alternating(in Input, p float64) Result {
	alt := math.Sin(p*math.Pi*4) * 0.05
	return mirrored(base(in), 0, alt, 0, -alt)
}

func swimming(in Input, p float64) Result {
	return right(shift(base(in), p*0.1, math.Sin(p*math.Pi*6)*0.05, 0))
}

func flapping(in Input, p float64) Result {
	flap := math.Abs(math.Sin(p*math.Pi*6)) * 0.04
	return right(each(base(in), func(i int, lm landmark.Landmark) landmark.Landmark {
		if i >= landmark.IndexMCP {
			lm.Y -= flap
		}
		return lm
	}))
}

func squeezing(in Input, p float64) Result {
	return right(shift(base(in), 0, 0, math.Sin(p*math.Pi*4)*0.02))
}

func patting(in Input, p float64) Result {
	pat := math.Abs(math.Sin(p*math.Pi*4)) * 0.05
	return both(in, shift(base(in), 0, pat, 0))
}

func pointing(in Input, p float64) Result {
	return right(shift(base(in), 0, 0, -p*0.05))
}

func openClose(in Input, p float64) Result {
	d := math.Abs(math.Sin(p*math.Pi*4)) * 0.03
	return right(each(base(in), func(i int, lm landmark.Landmark) landmark.Landmark {
		switch i {
		case landmark.ThumbTip:
			lm.Y += d
		case landmark.IndexTip:
			lm.Y -= d
		}
		return lm
	}))
}

func across(in Input, p float64) Result {
	return right(shift(base(in), p*0.15, 0, 0))
}

func sliding(in Input, p float64) Result {
	return both(in, shift(base(in), 0, math.Sin(p*math.Pi*2)*0.08, 0))
}

func passing(in Input, p float64) Result {
	d := p * 0.15
	return mirrored(base(in), d, 0, -d, 0)
}

func expanding(in Input, p float64) Result {
	d := p * 0.12
	return mirrored(base(in), d, 0, -d, 0)
}

func touching(in Input, p float64) Result {
	return right(shift(base(in), 0, 0, math.Sin(p*math.Pi)*0.05))
}

func twisting(in Input, p float64) Result {
	h := base(in)
	twist := math.Sin(p*math.Pi*2) * 0.04
	sin, cos := math.Sincos(twist)
	c := h.Centroid()
	return right(each(h, func(_ int, lm landmark.Landmark) landmark.Landmark {
		dx, dy := lm.X-c.X, lm.Y-c.Y
		return landmark.Landmark{X: c.X + dx*cos - dy*sin, Y: c.Y + dx*sin + dy*cos, Z: lm.Z}
	}))
}

func questioning(in Input, p float64) Result {
	q := math.Sin(p*math.Pi*2) * 0.05
	return right(shift(base(in), q, -q*0.5, 0))
}

func cradling(in Input, p float64) Result {
	c := math.Sin(p*math.Pi*2) * 0.04
	return mirrored(base(in), 0, c, 0, -c)
}

func resting(in Input, _ float64) Result {
	return both(in, base(in).Clone())
}

// box traces the four sides of a square, restarting from the base pose on each side.
func box(in Input, p float64) Result {
	offsets := [4][2]float64{{0, 0.1}, {0.1, 0}, {0, -0.1}, {-0.1, 0}}
	seg := int(p*4) % 4
	_, frac := math.Modf(p * 4)
	ox, oy := offsets[seg][0]*frac, offsets[seg][1]*frac
	return mirrored(base(in), ox, oy, -ox, oy)
}
