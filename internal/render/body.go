package render

import (
	"math"

	"github.com/ayusman/mudra/internal/surface"
)

// Body geometry, relative to Config.TorsoCenter.
const (
	torsoTopHalf    = 80
	torsoBottomHalf = 100
	torsoTop        = -100
	torsoBottom     = 100

	neckHalf = 15
	neckTop  = -165

	headY  = -215
	headRX = 50
	headRY = 60

	hairY  = -222
	hairRX = 54
	hairRY = 56

	earOffset = 50
	earRX     = 8
	earRY     = 14

	shoulderRX = 25
	shoulderRY = 18

	hairSegments = 24
)

// DrawBody paints the background and the static avatar shapes:
// background, torso, neck, head, hair, ears, then shoulders.
func (r *Renderer) DrawBody(s surface.Surface) {
	p := r.cfg.Palette
	c := r.cfg.TorsoCenter
	w, h := float64(s.Width()), float64(s.Height())

	s.BeginPath()
	s.Rect(0, 0, w, h)
	s.SetFillGradient(surface.LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: h,
		Stops: []surface.Stop{{Offset: 0, Color: p.BackgroundTop}, {Offset: 1, Color: p.BackgroundBase}},
	})
	s.Fill()

	fillStroke(s, p.Shirt, p.Outline, 2, func() {
		polygon(s,
			[2]float64{c.X - torsoTopHalf, c.Y + torsoTop},
			[2]float64{c.X + torsoTopHalf, c.Y + torsoTop},
			[2]float64{c.X + torsoBottomHalf, c.Y + torsoBottom},
			[2]float64{c.X - torsoBottomHalf, c.Y + torsoBottom},
		)
	})

	s.BeginPath()
	s.Rect(c.X-neckHalf, c.Y+neckTop, 2*neckHalf, torsoTop-neckTop)
	s.SetFillColor(p.Skin)
	s.Fill()

	fillStroke(s, p.Skin, p.Outline, 2, func() {
		s.Ellipse(c.X, c.Y+headY, headRX, headRY)
	})

	// Upper half of an ellipse over the crown.
	s.BeginPath()
	for i := 0; i <= hairSegments; i++ {
		a := math.Pi + math.Pi*float64(i)/hairSegments
		x := c.X + hairRX*math.Cos(a)
		y := c.Y + hairY + hairRY*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePath()
	s.SetFillColor(p.Hair)
	s.Fill()

	for _, dx := range []float64{-earOffset, earOffset} {
		fillStroke(s, p.Skin, p.Outline, 1.5, func() {
			s.Ellipse(c.X+dx, c.Y+headY, earRX, earRY)
		})
	}

	for _, x := range []float64{r.cfg.ShoulderLeftX, r.cfg.ShoulderRightX} {
		fillStroke(s, p.Sleeve, p.Outline, 1.5, func() {
			s.Ellipse(x, r.cfg.ShoulderY, shoulderRX, shoulderRY)
		})
	}
}
