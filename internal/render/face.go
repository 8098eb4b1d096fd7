package render

import (
	"math"

	"github.com/ayusman/mudra/internal/keyframe"
	"github.com/ayusman/mudra/internal/surface"
)

// Face geometry, relative to Config.TorsoCenter.
const (
	eyeY      = -225
	eyeOffset = 20
	eyeRX     = 9
	eyeRY     = 6
	pupilR    = 3.5

	browY     = -240
	browInner = 12
	browOuter = 28
	// BrowLift is how far the brows move per unit of FacialExpression.Eyebrows.
	BrowLift = 5

	noseTop    = -205
	noseBottom = -188

	mouthY        = -180
	mouthHalf     = 12
	smileRadius   = 15
	smileCenterDY = -10
	frownRadius   = 12
	frownCenterDY = 12
)

// DrawFace paints eyes, pupils, eyebrows, nose and mouth for f.
func (r *Renderer) DrawFace(s surface.Surface, f keyframe.FacialExpression) {
	p := r.cfg.Palette
	c := r.cfg.TorsoCenter

	for _, dx := range []float64{-eyeOffset, eyeOffset} {
		fillStroke(s, p.EyeWhite, p.Outline, 1, func() {
			s.Ellipse(c.X+dx, c.Y+eyeY, eyeRX, eyeRY)
		})
	}
	for _, dx := range []float64{-eyeOffset, eyeOffset} {
		s.BeginPath()
		s.Arc(c.X+dx, c.Y+eyeY, pupilR, 0, 2*math.Pi)
		s.SetFillColor(p.Pupil)
		s.Fill()
	}

	by := c.Y + browY - f.Eyebrows*BrowLift
	s.SetStrokeColor(p.Hair)
	s.SetLineWidth(3)
	s.SetLineCap(surface.CapRound)
	for _, sign := range []float64{-1, 1} {
		line(s, c.X+sign*browOuter, by, c.X+sign*browInner, by-2)
		s.Stroke()
	}

	s.BeginPath()
	s.MoveTo(c.X, c.Y+noseTop)
	s.LineTo(c.X-5, c.Y+noseBottom)
	s.LineTo(c.X+3, c.Y+noseBottom)
	s.SetStrokeColor(p.Outline)
	s.SetLineWidth(1.5)
	s.Stroke()

	r.drawMouth(s, f.Mouth())
}

func (r *Renderer) drawMouth(s surface.Surface, shape keyframe.MouthShape) {
	c := r.cfg.TorsoCenter
	y := c.Y + mouthY

	s.BeginPath()
	switch shape {
	case keyframe.MouthSmile:
		s.Arc(c.X, y+smileCenterDY, smileRadius, 0.1*math.Pi, 0.9*math.Pi)
	case keyframe.MouthFrown:
		s.Arc(c.X, y+frownCenterDY, frownRadius, 1.1*math.Pi, 1.9*math.Pi)
	default:
		s.MoveTo(c.X-mouthHalf, y)
		s.LineTo(c.X+mouthHalf, y)
	}
	s.SetStrokeColor(r.cfg.Palette.Outline)
	s.SetLineWidth(2)
	s.SetLineCap(surface.CapRound)
	s.Stroke()
}
