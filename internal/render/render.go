// Package render draws the signing avatar onto a surface.Surface.
//
// A frame is painted back to front: body, face, arms and hands, then the
// sign label. All geometry is fixed relative to Config anchors.
package render

import (
	"log/slog"

	"github.com/ayusman/mudra/internal/keyframe"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/surface"
)

// Renderer paints keyframes with a fixed configuration.
// It holds no per-frame state and is safe for concurrent use.
type Renderer struct {
	cfg    Config
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used to report skipped hands.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Renderer using cfg.
func New(cfg Config, opts ...Option) *Renderer {
	r := &Renderer{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// RenderFrame draws one complete frame for k.
// Malformed hands are skipped and logged; the rest of the frame is still drawn.
func (r *Renderer) RenderFrame(s surface.Surface, k keyframe.Keyframe) {
	r.DrawBody(s)
	if k.FacialExpression != nil {
		r.DrawFace(s, *k.FacialExpression)
	}
	r.drawHandLogged(s, k.LeftHand.Pose(), landmark.Left, k.Sign)
	r.drawHandLogged(s, k.RightHand.Pose(), landmark.Right, k.Sign)
	r.DrawLabel(s, k.Sign)
}

func (r *Renderer) drawHandLogged(s surface.Surface, pose landmark.HandPose, side landmark.Side, sign string) {
	if err := r.DrawHand(s, pose, side); err != nil {
		r.logger.Warn("render: skipping hand", "side", side, "sign", sign, "error", err)
	}
}

// polygon builds a closed path through pts.
func polygon(s surface.Surface, pts ...[2]float64) {
	s.BeginPath()
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p[0], p[1])
			continue
		}
		s.LineTo(p[0], p[1])
	}
	s.ClosePath()
}

// fillStroke fills the path built by build, then rebuilds and outlines it.
func fillStroke(s surface.Surface, fill, outline surface.Color, width float64, build func()) {
	s.BeginPath()
	build()
	s.SetFillColor(fill)
	s.Fill()

	s.BeginPath()
	build()
	s.SetStrokeColor(outline)
	s.SetLineWidth(width)
	s.Stroke()
}

func line(s surface.Surface, x0, y0, x1, y1 float64) {
	s.BeginPath()
	s.MoveTo(x0, y0)
	s.LineTo(x1, y1)
}
