package raster

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/surface"
)

func newSurface(t *testing.T) *Surface {
	t.Helper()
	s, err := New(64, 64)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func rgbaAt(s *Surface, x, y int) (r, g, b, a uint32) {
	return s.Image().At(x, y).RGBA()
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestFillRect(t *testing.T) {
	s := newSurface(t)

	s.BeginPath()
	s.Rect(8, 8, 48, 48)
	s.SetFillColor(surface.RGB(1, 0, 0))
	s.Fill()

	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	r, g, b, a := rgbaAt(s, 32, 32)
	if r < 0xf000 || g > 0x0fff || b > 0x0fff || a < 0xf000 {
		t.Errorf("centre pixel = (%x, %x, %x, %x), want opaque red", r, g, b, a)
	}
	if _, _, _, a := rgbaAt(s, 2, 2); a != 0 {
		t.Errorf("corner pixel alpha = %x, want transparent", a)
	}
}

func TestSaveRestore_RestoresFill(t *testing.T) {
	s := newSurface(t)

	s.SetFillColor(surface.RGB(0, 0, 1))
	s.Save()
	s.SetFillColor(surface.RGB(0, 1, 0))
	s.Translate(1000, 1000)
	s.Restore()

	s.BeginPath()
	s.Rect(0, 0, 64, 64)
	s.Fill()

	r, g, b, _ := rgbaAt(s, 32, 32)
	if b < 0xf000 || g > 0x0fff || r > 0x0fff {
		t.Errorf("pixel = (%x, %x, %x), want blue after restore", r, g, b)
	}
}

func TestRestore_Unbalanced(t *testing.T) {
	s := newSurface(t)
	s.Restore()
	s.Restore()
	if len(s.saved) != 0 {
		t.Error("expected empty style stack")
	}
}

func TestStroke_UsesStrokeColour(t *testing.T) {
	s := newSurface(t)

	s.SetFillColor(surface.RGB(1, 0, 0))
	s.SetStrokeColor(surface.RGB(0, 1, 0))
	s.SetLineWidth(8)
	s.SetLineCap(surface.CapRound)
	s.BeginPath()
	s.MoveTo(4, 32)
	s.LineTo(60, 32)
	s.Stroke()

	r, g, _, _ := rgbaAt(s, 32, 32)
	if g < 0xf000 || r > 0x0fff {
		t.Errorf("pixel = (%x, %x), want green stroke", r, g)
	}
}

func TestEncodePNG(t *testing.T) {
	s := newSurface(t)
	s.SetFillGradient(surface.LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: 64,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.MustHex("#3498db")},
			{Offset: 1, Color: surface.MustHex("#2980b9")},
		},
	})
	s.BeginPath()
	s.Rect(0, 0, 64, 64)
	s.Fill()
	s.FillText("A", 32, 40)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestNew_FontSize(t *testing.T) {
	small := newSurface(t)
	large, err := New(64, 64, WithFontSize(32))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer large.Close()

	if small.FontSize() != 18 {
		t.Errorf("default FontSize() = %v, want 18", small.FontSize())
	}
	if large.FontSize() != 32 {
		t.Errorf("FontSize() = %v, want 32", large.FontSize())
	}
	if a, b := small.face.Advance("HELLO"), large.face.Advance("HELLO"); b <= a {
		t.Errorf("advance at 32pt = %v, want more than %v at 18pt", b, a)
	}
}

func TestClear_ResetsErr(t *testing.T) {
	s := newSurface(t)
	s.check("fill", errors.New("path overflow"))
	if s.Err() == nil {
		t.Fatal("Err() = nil after a failed fill")
	}

	s.Clear()
	if err := s.Err(); err != nil {
		t.Errorf("Err() after Clear() = %v, want nil", err)
	}
}
