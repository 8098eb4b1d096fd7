// Package easing maps normalized progress in [0, 1] to eased progress.
//
// All functions are pure. Behaviour outside [0, 1] is unspecified; callers
// that may produce out-of-range progress should pass it through Clamp first.
package easing

import (
	"fmt"
	"math"
	"sort"
)

// Func is an easing curve.
type Func func(t float64) float64

// Overshoot constants for EaseOutBack.
const (
	backC1 = 1.70158
	backC3 = backC1 + 1
)

// Clamp limits t to [0, 1].
func Clamp(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseInOutCubic is a symmetric cubic ease with f(0)=0, f(0.5)=0.5 and f(1)=1.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInOutQuad is the quadratic counterpart of EaseInOutCubic.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseOutBack overshoots the target slightly before settling on it.
func EaseOutBack(t float64) float64 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

// EaseOutElastic settles on the target with a decaying oscillation.
func EaseOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t-0.075)*(2*math.Pi)/0.3) + 1
}

var byName = map[string]Func{
	"linear":            Linear,
	"ease-in-out-cubic": EaseInOutCubic,
	"ease-in-out-quad":  EaseInOutQuad,
	"ease-out-back":     EaseOutBack,
	"ease-out-elastic":  EaseOutElastic,
}

// ByName returns the easing function registered under name.
func ByName(name string) (Func, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return f, nil
}

// Names returns the registered easing names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
