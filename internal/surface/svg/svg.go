// Package svg implements surface.Surface by emitting an SVG document.
//
// Paths are flattened to world coordinates as they are built, so the
// output carries no transform attributes.
package svg

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/surface"
)

// kappa is the cubic Bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

type matrix struct {
	a, b, c, d, e, f float64
}

var identity = matrix{a: 1, d: 1}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// mul returns m * n, so n is applied first.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

type state struct {
	m         matrix
	fill      string
	stroke    string
	lineWidth float64
	lineCap   surface.LineCap
}

// Surface accumulates SVG elements in memory.
type Surface struct {
	width, height int
	fontSize      float64

	cur   state
	saved []state

	path  strings.Builder
	body  strings.Builder
	defs  strings.Builder
	grads int
}

var _ surface.Surface = (*Surface)(nil)

// DefaultFontSize is the label size used when no WithFontSize option is given.
const DefaultFontSize = 18

// Option configures a Surface.
type Option func(*Surface)

// WithFontSize sets the font-size written on text elements. Sizes <= 0
// are ignored.
func WithFontSize(size float64) Option {
	return func(s *Surface) {
		if size > 0 {
			s.fontSize = size
		}
	}
}

// New creates an empty SVG surface.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		width:    width,
		height:   height,
		fontSize: DefaultFontSize,
		cur:      initial,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var initial = state{
	m:         identity,
	fill:      "#000000",
	stroke:    "#000000",
	lineWidth: 1,
}

// FontSize returns the font-size written on text elements.
func (s *Surface) FontSize() float64 {
	return s.fontSize
}

// Reset clears the document and drawing state so the next frame starts blank.
func (s *Surface) Reset() {
	s.cur = initial
	s.saved = s.saved[:0]
	s.path.Reset()
	s.body.Reset()
	s.defs.Reset()
	s.grads = 0
}

// WriteTo writes the complete SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var doc strings.Builder
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.WriteString(s.defs.String())
		doc.WriteString("</defs>\n")
	}
	doc.WriteString(s.body.String())
	doc.WriteString("</svg>\n")
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

// String returns the document as written by WriteTo.
func (s *Surface) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) Save() {
	s.saved = append(s.saved, s.cur)
}

func (s *Surface) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Surface) Translate(x, y float64) {
	s.cur.m = s.cur.m.mul(matrix{a: 1, d: 1, e: x, f: y})
}

func (s *Surface) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	s.cur.m = s.cur.m.mul(matrix{a: cos, b: sin, c: -sin, d: cos})
}

func (s *Surface) BeginPath() { s.path.Reset() }

func (s *Surface) MoveTo(x, y float64) { s.cmd("M", x, y) }
func (s *Surface) LineTo(x, y float64) { s.cmd("L", x, y) }

func (s *Surface) QuadraticTo(cx, cy, x, y float64) { s.cmd("Q", cx, cy, x, y) }

func (s *Surface) ClosePath() { s.path.WriteString("Z ") }

func (s *Surface) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
}

func (s *Surface) RoundedRect(x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	s.MoveTo(x+r, y)
	s.LineTo(x+w-r, y)
	s.arc(x+w-r, y+r, r, -math.Pi/2, 0, false)
	s.LineTo(x+w, y+h-r)
	s.arc(x+w-r, y+h-r, r, 0, math.Pi/2, false)
	s.LineTo(x+r, y+h)
	s.arc(x+r, y+h-r, r, math.Pi/2, math.Pi, false)
	s.LineTo(x, y+r)
	s.arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, false)
	s.ClosePath()
}

func (s *Surface) Ellipse(x, y, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	s.MoveTo(x+rx, y)
	s.cmd("C", x+rx, y+oy, x+ox, y+ry, x, y+ry)
	s.cmd("C", x-ox, y+ry, x-rx, y+oy, x-rx, y)
	s.cmd("C", x-rx, y-oy, x-ox, y-ry, x, y-ry)
	s.cmd("C", x+ox, y-ry, x+rx, y-oy, x+rx, y)
	s.ClosePath()
}

func (s *Surface) Arc(x, y, r, start, end float64) {
	s.arc(x, y, r, start, end, s.path.Len() == 0)
}

// arc appends quarter-circle-or-smaller cubic segments, optionally
// starting a new subpath at the first point.
func (s *Surface) arc(cx, cy, r, a1, a2 float64, move bool) {
	for a2 < a1 {
		a2 += 2 * math.Pi
	}
	n := int(math.Ceil((a2 - a1) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := (a2 - a1) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		b1 := a1 + float64(i)*step
		b2 := b1 + step
		sin1, cos1 := math.Sincos(b1)
		sin2, cos2 := math.Sincos(b2)
		x1, y1 := cx+r*cos1, cy+r*sin1
		x2, y2 := cx+r*cos2, cy+r*sin2
		if i == 0 {
			if move {
				s.MoveTo(x1, y1)
			} else {
				s.LineTo(x1, y1)
			}
		}
		s.cmd("C", x1-k*r*sin1, y1+k*r*cos1, x2+k*r*sin2, y2-k*r*cos2, x2, y2)
	}
}

func (s *Surface) SetFillColor(c surface.Color)   { s.cur.fill = c.String() }
func (s *Surface) SetStrokeColor(c surface.Color) { s.cur.stroke = c.String() }
func (s *Surface) SetLineWidth(w float64)         { s.cur.lineWidth = w }
func (s *Surface) SetLineCap(c surface.LineCap)   { s.cur.lineCap = c }

func (s *Surface) SetFillGradient(g surface.LinearGradient) {
	s.grads++
	id := "g" + strconv.Itoa(s.grads)
	x0, y0 := s.cur.m.apply(g.X0, g.Y0)
	x1, y1 := s.cur.m.apply(g.X1, g.Y1)
	fmt.Fprintf(&s.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
		id, num(x0), num(y0), num(x1), num(y1))
	for _, stop := range g.Stops {
		fmt.Fprintf(&s.defs, `<stop offset="%s" stop-color="%s"/>`+"\n", num(stop.Offset), stop.Color.String())
	}
	s.defs.WriteString("</linearGradient>\n")
	s.cur.fill = "url(#" + id + ")"
}

func (s *Surface) Fill() {
	if d := s.takePath(); d != "" {
		fmt.Fprintf(&s.body, `<path d="%s" fill="%s"/>`+"\n", d, s.cur.fill)
	}
}

func (s *Surface) Stroke() {
	d := s.takePath()
	if d == "" {
		return
	}
	lineCap := "butt"
	if s.cur.lineCap == surface.CapRound {
		lineCap = "round"
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="%s"/>`+"\n",
		d, s.cur.stroke, num(s.cur.lineWidth), lineCap)
}

func (s *Surface) FillText(str string, x, y float64) {
	px, py := s.cur.m.apply(x, y)
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" text-anchor="middle" font-family="sans-serif" font-size="%s" fill="%s">%s</text>`+"\n",
		num(px), num(py), num(s.fontSize), s.cur.fill, html.EscapeString(str))
}

func (s *Surface) takePath() string {
	d := strings.TrimSpace(s.path.String())
	s.path.Reset()
	return d
}

// cmd appends a path command with its points mapped through the current transform.
func (s *Surface) cmd(op string, pts ...float64) {
	s.path.WriteString(op)
	for i := 0; i+1 < len(pts); i += 2 {
		x, y := s.cur.m.apply(pts[i], pts[i+1])
		s.path.WriteByte(' ')
		s.path.WriteString(num(x))
		s.path.WriteByte(' ')
		s.path.WriteString(num(y))
	}
	s.path.WriteByte(' ')
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
