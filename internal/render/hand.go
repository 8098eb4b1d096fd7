package render

import (
	"math"

	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/surface"
	"github.com/ayusman/mudra/internal/transform"
)

// Arm and hand geometry.
const (
	// ElbowReach is the distance from shoulder to elbow along the shoulder-wrist line.
	ElbowReach = 50
	// ElbowDrop pulls the elbow down so the arm bends naturally.
	ElbowDrop = 15

	upperArmWidth = 22
	forearmWidth  = 16
	forearmEdge   = 2

	taperPerSegment = 0.2
	distalRatio     = 0.4

	jointRadius     = 4
	fingertipRadius = 5

	nailRX = 4
	nailRY = 2.5

	shadowOffset = 3
)

// finger is one landmark chain, base to tip, and its base width in pixels.
type finger struct {
	chain [4]int
	width float64
}

var fingers = [5]finger{
	{[4]int{landmark.ThumbCMC, landmark.ThumbMCP, landmark.ThumbIP, landmark.ThumbTip}, 12},
	{[4]int{landmark.IndexMCP, landmark.IndexPIP, landmark.IndexDIP, landmark.IndexTip}, 10},
	{[4]int{landmark.MiddleMCP, landmark.MiddlePIP, landmark.MiddleDIP, landmark.MiddleTip}, 10},
	{[4]int{landmark.RingMCP, landmark.RingPIP, landmark.RingDIP, landmark.RingTip}, 9},
	{[4]int{landmark.PinkyMCP, landmark.PinkyPIP, landmark.PinkyDIP, landmark.PinkyTip}, 8},
}

var palmOutline = [5]int{landmark.Wrist, landmark.IndexMCP, landmark.MiddleMCP, landmark.RingMCP, landmark.PinkyMCP}

// DrawHand paints the arm and hand for pose on the given side:
// arm, palm, fingers, joints, then nails.
//
// An absent pose draws nothing. A pose without exactly 21 landmarks draws
// nothing and returns a *landmark.InvalidPoseError.
func (r *Renderer) DrawHand(s surface.Surface, pose landmark.HandPose, side landmark.Side) error {
	if pose == nil {
		return nil
	}
	h, err := transform.ToCanvas(pose, side)
	if err != nil {
		return err
	}

	r.drawArm(s, h)
	r.drawPalm(s, h)
	for _, f := range fingers {
		r.drawFinger(s, h, f)
	}
	r.drawJoints(s, h)
	r.drawNails(s, h)
	return nil
}

// Shoulder returns the shoulder an arm on the given side hangs from.
func (r *Renderer) Shoulder(side landmark.Side) transform.Point {
	if side == landmark.Left {
		return transform.Point{X: r.cfg.ShoulderLeftX, Y: r.cfg.ShoulderY}
	}
	return transform.Point{X: r.cfg.ShoulderRightX, Y: r.cfg.ShoulderY}
}

// Elbow places the elbow ElbowReach along the shoulder-wrist direction,
// dropped by ElbowDrop.
func Elbow(shoulder, wrist transform.Point) transform.Point {
	angle := math.Atan2(wrist.Y-shoulder.Y, wrist.X-shoulder.X)
	return transform.Point{
		X: shoulder.X + math.Cos(angle)*ElbowReach,
		Y: shoulder.Y + math.Sin(angle)*ElbowReach + ElbowDrop,
	}
}

func (r *Renderer) drawArm(s surface.Surface, h *transform.Hand) {
	p := r.cfg.Palette
	shoulder := r.Shoulder(h.Side)
	wrist := h.Wrist()
	elbow := Elbow(shoulder, wrist)

	s.SetLineCap(surface.CapRound)

	line(s, shoulder.X, shoulder.Y, elbow.X, elbow.Y)
	s.SetStrokeColor(p.Sleeve)
	s.SetLineWidth(upperArmWidth)
	s.Stroke()

	line(s, elbow.X, elbow.Y, wrist.X, wrist.Y)
	s.SetStrokeColor(p.Outline)
	s.SetLineWidth(forearmWidth + forearmEdge)
	s.Stroke()

	line(s, elbow.X, elbow.Y, wrist.X, wrist.Y)
	s.SetStrokeColor(p.Skin)
	s.SetLineWidth(forearmWidth)
	s.Stroke()

	s.SetLineCap(surface.CapButt)
}

func (r *Renderer) drawPalm(s surface.Surface, h *transform.Hand) {
	p := r.cfg.Palette
	pts := make([][2]float64, len(palmOutline))
	for i, idx := range palmOutline {
		pts[i] = [2]float64{h.Points[idx].X, h.Points[idx].Y}
	}

	shadow := make([][2]float64, len(pts))
	for i, pt := range pts {
		shadow[i] = [2]float64{pt[0] + shadowOffset, pt[1] + shadowOffset}
	}
	polygon(s, shadow...)
	s.SetFillColor(p.Shadow)
	s.Fill()

	fillStroke(s, p.Skin, p.Outline, 2, func() { polygon(s, pts...) })
}

// drawFinger paints each segment of f as a quadrilateral that narrows
// from its proximal to its distal joint.
func (r *Renderer) drawFinger(s surface.Surface, h *transform.Hand, f finger) {
	p := r.cfg.Palette
	for i := 0; i < len(f.chain)-1; i++ {
		a, b := h.Points[f.chain[i]], h.Points[f.chain[i+1]]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length, dx/length

		w0 := f.width * (1 - float64(i)*taperPerSegment) / 2
		w1 := w0 * distalRatio

		fillStroke(s, p.Skin, p.Outline, 1, func() {
			polygon(s,
				[2]float64{a.X + nx*w0, a.Y + ny*w0},
				[2]float64{b.X + nx*w1, b.Y + ny*w1},
				[2]float64{b.X - nx*w1, b.Y - ny*w1},
				[2]float64{a.X - nx*w0, a.Y - ny*w0},
			)
		})
	}
}

func (r *Renderer) drawJoints(s surface.Surface, h *transform.Hand) {
	p := r.cfg.Palette
	for i := 1; i < landmark.NumLandmarks; i++ {
		radius := float64(jointRadius)
		if landmark.IsFingertip(i) {
			radius = fingertipRadius
		}
		pt := h.Points[i]
		fillStroke(s, p.Joint, p.Outline, 1, func() {
			s.Arc(pt.X, pt.Y, radius, 0, 2*math.Pi)
		})
	}
}

// drawNails paints a small ellipse at each fingertip, its long axis along
// the last finger segment.
func (r *Renderer) drawNails(s surface.Surface, h *transform.Hand) {
	p := r.cfg.Palette
	for _, tip := range landmark.Fingertips {
		t, prev := h.Points[tip], h.Points[tip-1]
		angle := math.Atan2(t.Y-prev.Y, t.X-prev.X)

		s.Save()
		s.Translate(t.X, t.Y)
		s.Rotate(angle)
		fillStroke(s, p.Nail, p.Outline, 0.5, func() {
			s.Ellipse(0, 0, nailRX, nailRY)
		})
		s.Restore()
	}
}
