package svg

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/surface"
)

func TestSurface_FillRect(t *testing.T) {
	s := New(100, 50)
	s.SetFillColor(surface.MustHex("#ff0000"))
	s.BeginPath()
	s.Rect(1, 2, 10, 20)
	s.Fill()

	out := s.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`) {
		t.Errorf("unexpected header: %s", out)
	}
	want := `<path d="M 1 2 L 11 2 L 11 22 L 1 22 Z" fill="#ff0000"/>`
	if !strings.Contains(out, want) {
		t.Errorf("missing %s in\n%s", want, out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestSurface_TranslateRotate(t *testing.T) {
	s := New(100, 100)
	s.Save()
	s.Translate(10, 20)
	s.Rotate(math.Pi / 2)
	s.BeginPath()
	s.MoveTo(5, 0)
	s.LineTo(0, 0)
	s.Stroke()
	s.Restore()

	s.BeginPath()
	s.MoveTo(5, 0)
	s.LineTo(0, 0)
	s.Stroke()

	out := s.String()
	if !strings.Contains(out, `d="M 10 25 L 10 20"`) {
		t.Errorf("rotated path not mapped:\n%s", out)
	}
	if !strings.Contains(out, `d="M 5 0 L 0 0"`) {
		t.Errorf("restore did not reset transform:\n%s", out)
	}
}

func TestSurface_StrokeStyle(t *testing.T) {
	s := New(10, 10)
	s.SetStrokeColor(surface.MustHex("#2c3e50"))
	s.SetLineWidth(2)
	s.SetLineCap(surface.CapRound)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(1, 1)
	s.Stroke()

	out := s.String()
	if !strings.Contains(out, `stroke="#2c3e50" stroke-width="2" stroke-linecap="round"`) {
		t.Errorf("unexpected stroke attributes:\n%s", out)
	}
}

func TestSurface_EmptyPath(t *testing.T) {
	s := New(10, 10)
	s.BeginPath()
	s.Fill()
	s.Stroke()
	if strings.Contains(s.String(), "<path") {
		t.Error("empty path should not emit an element")
	}
}

func TestSurface_Gradient(t *testing.T) {
	s := New(10, 10)
	s.SetFillGradient(surface.LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: 10,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.MustHex("#3498db")},
			{Offset: 1, Color: surface.MustHex("#2980b9")},
		},
	})
	s.BeginPath()
	s.Rect(0, 0, 10, 10)
	s.Fill()

	out := s.String()
	for _, want := range []string{
		`<linearGradient id="g1" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="0" y2="10">`,
		`<stop offset="1" stop-color="#2980b9"/>`,
		`fill="url(#g1)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
}

func TestSurface_Text(t *testing.T) {
	s := New(500, 500)
	s.SetFillColor(surface.MustHex("#ffffff"))
	s.FillText("A<B", 250, 480)

	out := s.String()
	if !strings.Contains(out, `x="250" y="480" text-anchor="middle"`) {
		t.Errorf("text not centred:\n%s", out)
	}
	if !strings.Contains(out, ">A&lt;B</text>") {
		t.Errorf("text not escaped:\n%s", out)
	}
}

func TestSurface_TextFontSize(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"default", nil, `font-size="18"`},
		{"configured", []Option{WithFontSize(32)}, `font-size="32"`},
		{"non-positive ignored", []Option{WithFontSize(0)}, `font-size="18"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(500, 500, tt.opts...)
			s.FillText("HELLO", 250, 480)
			if out := s.String(); !strings.Contains(out, tt.want) {
				t.Errorf("want %s in:\n%s", tt.want, out)
			}
		})
	}
}

func TestSurface_Arc(t *testing.T) {
	s := New(100, 100)
	s.BeginPath()
	s.Arc(50, 50, 10, 0, math.Pi)
	s.Stroke()

	out := s.String()
	if !strings.Contains(out, `d="M 60 50 C`) {
		t.Errorf("arc should start at angle 0:\n%s", out)
	}
	if strings.Count(out, " C ") != 2 {
		t.Errorf("half circle should use two segments:\n%s", out)
	}
	if !strings.Contains(out, ` 40 50"`) {
		t.Errorf("arc should end at angle pi:\n%s", out)
	}
}

func TestWriteTo(t *testing.T) {
	s := New(1, 1)
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("n = %d, want %d", n, buf.Len())
	}
}

func TestReset(t *testing.T) {
	s := New(100, 100)
	s.Translate(10, 10)
	s.SetFillGradient(surface.LinearGradient{X1: 1, Stops: []surface.Stop{{Offset: 0, Color: surface.RGB(0, 0, 0)}}})
	s.BeginPath()
	s.Rect(0, 0, 5, 5)
	s.Fill()

	s.Reset()
	if strings.Contains(s.String(), "<path") || strings.Contains(s.String(), "<defs>") {
		t.Errorf("Reset() left content behind:\n%s", s.String())
	}

	s.BeginPath()
	s.MoveTo(1, 1)
	s.LineTo(2, 2)
	s.Stroke()
	if !strings.Contains(s.String(), `d="M 1 1 L 2 2"`) {
		t.Errorf("Reset() should restore the identity transform:\n%s", s.String())
	}
}
