package easing

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{0.25, 0.0625},
		{0.75, 0.9375},
	}

	for _, tt := range tests {
		if got := EaseInOutCubic(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	t.Run("endpoints are exact", func(t *testing.T) {
		if EaseInOutCubic(0) != 0 || EaseInOutCubic(1) != 1 || EaseInOutCubic(0.5) != 0.5 {
			t.Error("endpoints must be exact")
		}
	})

	t.Run("monotonic", func(t *testing.T) {
		prev := EaseInOutCubic(0)
		for i := 1; i <= 100; i++ {
			v := EaseInOutCubic(float64(i) / 100)
			if v < prev {
				t.Fatalf("not monotonic at %d: %v < %v", i, v, prev)
			}
			prev = v
		}
	})
}

func TestEaseOutBack(t *testing.T) {
	if got := EaseOutBack(0); math.Abs(got) > epsilon {
		t.Errorf("EaseOutBack(0) = %v, want 0", got)
	}
	if got := EaseOutBack(1); got != 1 {
		t.Errorf("EaseOutBack(1) = %v, want 1", got)
	}

	overshoot := false
	for i := 1; i < 100; i++ {
		if EaseOutBack(float64(i)/100) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("expected EaseOutBack to overshoot 1 before settling")
	}
}

func TestEaseInOutQuad(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.125}} {
		if got := EaseInOutQuad(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("EaseInOutQuad(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEaseOutElastic(t *testing.T) {
	if EaseOutElastic(0) != 0 || EaseOutElastic(1) != 1 {
		t.Error("elastic endpoints must be exact")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{2.5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for _, name := range Names() {
			f, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) error = %v", name, err)
			}
			if got := f(1); math.Abs(got-1) > epsilon {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, err := ByName("bounce"); err == nil {
			t.Error("expected error for unknown easing")
		}
	})
}
