// Package surface defines the drawing capability the avatar renderer draws against.
//
// The renderer only ever talks to Surface, so the same geometry can be
// rasterized (package raster), recorded as vector commands (package vector),
// written as SVG (package svg) or captured for inspection in tests (Trace).
package surface

import (
	"fmt"
	"strconv"
	"strings"
)

// Surface is a fixed-size 2D drawing target.
//
// Path construction follows the canvas model: BeginPath starts an empty
// path, the path builders append to it, and Fill or Stroke paint it with
// the current fill or stroke style and clear it. Save and Restore bracket
// transform and style changes.
type Surface interface {
	Width() int
	Height() int

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	ClosePath()
	Rect(x, y, w, h float64)
	RoundedRect(x, y, w, h, r float64)
	Ellipse(x, y, rx, ry float64)
	// Arc appends a circular arc from angle start to end (radians, clockwise in screen space).
	Arc(x, y, r, start, end float64)

	SetFillColor(c Color)
	SetFillGradient(g LinearGradient)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)

	Fill()
	Stroke()

	// FillText draws s centred horizontally on x with its baseline at y.
	FillText(s string, x, y float64)
}

// LineCap is the shape used at the open ends of stroked paths.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustHex is Hex for compile-time palette constants; it panics on bad input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats c as "#rrggbb" or "#rrggbbaa" when not opaque.
func (c Color) String() string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// Stop is one colour stop of a gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient blends colour stops along the line (X0, Y0) -> (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}
