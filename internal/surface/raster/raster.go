// Package raster implements surface.Surface on a gg software canvas.
package raster

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/ayusman/mudra/internal/fonts"
	"github.com/ayusman/mudra/internal/surface"
)

// style is the part of the drawing state that Save and Restore carry.
// gg's own Push/Pop only cover the transform.
type style struct {
	fill      gg.Brush
	fillColor surface.Color
	stroke    gg.Brush
	lineWidth float64
	lineCap   surface.LineCap
}

// Surface draws onto an in-memory gg.Context.
type Surface struct {
	dc       *gg.Context
	face     text.Face
	fontSize float64
	logger   *slog.Logger

	cur   style
	saved []style

	err error
}

// Option configures a Surface.
type Option func(*config)

type config struct {
	fontSize float64
	logger   *slog.Logger
}

// WithFontSize sets the label font size in points.
func WithFontSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.fontSize = size
		}
	}
}

// WithLogger sets the logger used to report rasterization failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

var _ surface.Surface = (*Surface)(nil)

// New creates a width x height raster surface.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	cfg := config{fontSize: fonts.DefaultSize, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	face, err := fonts.Face(cfg.fontSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetFont(face)

	black := gg.Solid(gg.Black)
	return &Surface{
		dc:       dc,
		face:     face,
		fontSize: cfg.fontSize,
		logger:   cfg.logger,
		cur: style{
			fill:      black,
			fillColor: surface.RGB(0, 0, 0),
			stroke:    black,
			lineWidth: 1,
		},
	}, nil
}

// Close releases the underlying gg context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

// FontSize returns the label font size in points.
func (s *Surface) FontSize() float64 {
	return s.fontSize
}

// Err returns the first fill or stroke failure reported by gg since the
// last Clear, if any.
func (s *Surface) Err() error {
	return s.err
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Clear resets every pixel to transparent and forgets the last frame's
// error.
func (s *Surface) Clear() {
	s.dc.Clear()
	s.err = nil
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

func (s *Surface) Save() {
	s.saved = append(s.saved, s.cur)
	s.dc.Push()
}

func (s *Surface) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.dc.Pop()
	s.dc.SetLineWidth(s.cur.lineWidth)
	s.dc.SetLineCap(toLineCap(s.cur.lineCap))
}

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.dc.Rotate(angle) }

func (s *Surface) BeginPath()                       { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64)              { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)              { s.dc.LineTo(x, y) }
func (s *Surface) QuadraticTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }
func (s *Surface) ClosePath()                       { s.dc.ClosePath() }
func (s *Surface) Rect(x, y, w, h float64)          { s.dc.DrawRectangle(x, y, w, h) }
func (s *Surface) Ellipse(x, y, rx, ry float64)     { s.dc.DrawEllipse(x, y, rx, ry) }
func (s *Surface) Arc(x, y, r, start, end float64)  { s.dc.DrawArc(x, y, r, start, end) }

func (s *Surface) RoundedRect(x, y, w, h, r float64) {
	s.dc.DrawRoundedRectangle(x, y, w, h, r)
}

func (s *Surface) SetFillColor(c surface.Color) {
	s.cur.fill = gg.Solid(toRGBA(c))
	s.cur.fillColor = c
}

func (s *Surface) SetFillGradient(g surface.LinearGradient) {
	brush := gg.NewLinearGradientBrush(g.X0, g.Y0, g.X1, g.Y1)
	for _, stop := range g.Stops {
		brush.AddColorStop(stop.Offset, toRGBA(stop.Color))
	}
	s.cur.fill = brush
	if len(g.Stops) > 0 {
		s.cur.fillColor = g.Stops[0].Color
	}
}

func (s *Surface) SetStrokeColor(c surface.Color) {
	s.cur.stroke = gg.Solid(toRGBA(c))
}

func (s *Surface) SetLineWidth(w float64) {
	s.cur.lineWidth = w
	s.dc.SetLineWidth(w)
}

func (s *Surface) SetLineCap(c surface.LineCap) {
	s.cur.lineCap = c
	s.dc.SetLineCap(toLineCap(c))
}

// Fill and stroke share one brush in gg, so each sets its own just before painting.
func (s *Surface) Fill() {
	s.dc.SetFillBrush(s.cur.fill)
	s.check("fill", s.dc.Fill())
}

func (s *Surface) Stroke() {
	s.dc.SetStrokeBrush(s.cur.stroke)
	s.check("stroke", s.dc.Stroke())
}

func (s *Surface) FillText(str string, x, y float64) {
	s.dc.SetColor(toRGBA(s.cur.fillColor).Color())
	s.dc.DrawStringAnchored(str, x, y, 0.5, 0)
}

func (s *Surface) check(op string, err error) {
	if err == nil {
		return
	}
	if s.err == nil {
		s.err = fmt.Errorf("raster %s: %w", op, err)
	}
	s.logger.Warn("raster: draw failed", "op", op, "error", err)
}

func toRGBA(c surface.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toLineCap(c surface.LineCap) gg.LineCap {
	if c == surface.CapRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}
