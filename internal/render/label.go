package render

import (
	"unicode/utf8"

	"github.com/ayusman/mudra/internal/surface"
)

const (
	labelHeight  = 36
	labelBottom  = 14
	labelPadding = 30
	labelMinW    = 80
	labelRadius  = 10
	// glyphAdvance approximates a glyph's width as a fraction of the font size.
	glyphAdvance = 0.6
)

// DrawLabel paints text centred beneath the avatar on a rounded plate.
// An empty label draws nothing.
func (r *Renderer) DrawLabel(s surface.Surface, text string) {
	if text == "" {
		return
	}
	p := r.cfg.Palette
	size := r.cfg.LabelFontSize

	w := max(float64(utf8.RuneCountInString(text))*size*glyphAdvance+labelPadding, labelMinW)
	cx := float64(s.Width()) / 2
	top := float64(s.Height()) - labelBottom - labelHeight

	s.BeginPath()
	s.RoundedRect(cx-w/2, top, w, labelHeight, labelRadius)
	s.SetFillColor(p.LabelBackground)
	s.Fill()

	s.SetFillColor(p.LabelText)
	s.FillText(text, cx, top+labelHeight/2+size*0.35)
}
