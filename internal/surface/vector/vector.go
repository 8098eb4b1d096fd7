// Package vector implements surface.Surface as a resolution-independent
// gg recording that can be replayed onto any recording backend.
package vector

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	_ "github.com/gogpu/gg/recording/backends/raster"

	"github.com/ayusman/mudra/internal/fonts"
	"github.com/ayusman/mudra/internal/surface"
)

// Surface records drawing commands instead of painting pixels.
type Surface struct {
	rec      *recording.Recorder
	face     text.Face
	fontSize float64
}

// Option configures a Surface.
type Option func(*Surface)

// WithFontSize sets the size of the recorded font. Sizes <= 0 are ignored.
func WithFontSize(size float64) Option {
	return func(s *Surface) {
		if size > 0 {
			s.fontSize = size
		}
	}
}

var _ surface.Surface = (*Surface)(nil)

// New creates a recording surface of the given size.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	s := &Surface{fontSize: fonts.DefaultSize}
	for _, opt := range opts {
		opt(s)
	}
	face, err := fonts.Face(s.fontSize)
	if err != nil {
		return nil, err
	}
	s.face = face
	s.start(width, height)
	return s, nil
}

func (s *Surface) start(width, height int) {
	s.rec = recording.NewRecorder(width, height)
	s.rec.SetFont(s.face)
	s.rec.SetFontSize(s.fontSize)
	s.rec.SetFontFamily("Go")
}

// FontSize returns the size of the recorded font.
func (s *Surface) FontSize() float64 {
	return s.fontSize
}

// Reset discards the recording in progress and starts an empty one of the
// same size.
func (s *Surface) Reset() {
	s.start(s.rec.Width(), s.rec.Height())
}

// Finish ends the recording. Call Reset before drawing on the Surface again.
func (s *Surface) Finish() *recording.Recording {
	return s.rec.FinishRecording()
}

// Playback replays rec onto the named registered backend, e.g. "raster".
func Playback(rec *recording.Recording, backend string) (recording.Backend, error) {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return nil, err
	}
	if err := rec.Playback(b); err != nil {
		return nil, fmt.Errorf("playback on %s: %w", backend, err)
	}
	return b, nil
}

// WritePNG rasterizes rec and writes it as PNG.
// Text commands are kept in the recording but the raster backend does not paint them.
func WritePNG(rec *recording.Recording, w io.Writer) error {
	b, err := Playback(rec, "raster")
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("raster backend cannot write output")
	}
	_, err = wb.WriteTo(w)
	return err
}

func (s *Surface) Width() int  { return s.rec.Width() }
func (s *Surface) Height() int { return s.rec.Height() }

func (s *Surface) Save()                  { s.rec.Save() }
func (s *Surface) Restore()               { s.rec.Restore() }
func (s *Surface) Translate(x, y float64) { s.rec.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.rec.Rotate(angle) }

func (s *Surface) BeginPath()                        { s.rec.ClearPath() }
func (s *Surface) MoveTo(x, y float64)               { s.rec.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)               { s.rec.LineTo(x, y) }
func (s *Surface) QuadraticTo(cx, cy, x, y float64)  { s.rec.QuadraticTo(cx, cy, x, y) }
func (s *Surface) ClosePath()                        { s.rec.ClosePath() }
func (s *Surface) Rect(x, y, w, h float64)           { s.rec.DrawRectangle(x, y, w, h) }
func (s *Surface) RoundedRect(x, y, w, h, r float64) { s.rec.DrawRoundedRectangle(x, y, w, h, r) }
func (s *Surface) Ellipse(x, y, rx, ry float64)      { s.rec.DrawEllipse(x, y, rx, ry) }
func (s *Surface) Arc(x, y, r, start, end float64)   { s.rec.DrawArc(x, y, r, start, end) }

func (s *Surface) SetFillColor(c surface.Color) {
	s.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
}

func (s *Surface) SetStrokeColor(c surface.Color) {
	s.rec.SetStrokeRGBA(c.R, c.G, c.B, c.A)
}

func (s *Surface) SetFillGradient(g surface.LinearGradient) {
	brush := gg.NewLinearGradientBrush(g.X0, g.Y0, g.X1, g.Y1)
	for _, stop := range g.Stops {
		brush.AddColorStop(stop.Offset, gg.RGBA{R: stop.Color.R, G: stop.Color.G, B: stop.Color.B, A: stop.Color.A})
	}
	s.rec.SetFillBrush(brush)
}

func (s *Surface) SetLineWidth(w float64) { s.rec.SetLineWidth(w) }

func (s *Surface) SetLineCap(c surface.LineCap) {
	if c == surface.CapRound {
		s.rec.SetLineCapGG(gg.LineCapRound)
		return
	}
	s.rec.SetLineCapGG(gg.LineCapButt)
}

func (s *Surface) Fill()   { s.rec.Fill() }
func (s *Surface) Stroke() { s.rec.Stroke() }

func (s *Surface) FillText(str string, x, y float64) {
	s.rec.DrawStringAnchored(str, x, y, 0.5, 0)
}
