// Package interp produces intermediate hand poses between two keyframe poses.
package interp

import (
	"github.com/ayusman/mudra/internal/easing"
	"github.com/ayusman/mudra/internal/landmark"
)

// Interpolate returns the pose a fraction t of the way from a to b.
//
// t is clamped to [0, 1] and eased with easing.EaseInOutCubic before each
// axis is interpolated linearly. If only one pose is present it is returned
// as is; if neither is, Interpolate returns nil. Poses of different lengths
// are interpolated over their common prefix. Neither input is modified.
func Interpolate(a, b landmark.HandPose, t float64) landmark.HandPose {
	return InterpolateWith(a, b, t, easing.EaseInOutCubic)
}

// InterpolateWith is Interpolate with a caller-chosen easing curve.
func InterpolateWith(a, b landmark.HandPose, t float64, ease easing.Func) landmark.HandPose {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}

	eased := ease(easing.Clamp(t))

	n := min(len(a), len(b))
	out := make(landmark.HandPose, n)
	for i := 0; i < n; i++ {
		out[i] = landmark.Landmark{
			X: lerp(a[i].X, b[i].X, eased),
			Y: lerp(a[i].Y, b[i].Y, eased),
			Z: lerp(a[i].Z, b[i].Z, eased),
		}
	}
	return out
}

// lerp is exact at both endpoints.
func lerp(from, to, t float64) float64 {
	switch t {
	case 0:
		return from
	case 1:
		return to
	}
	return from + (to-from)*t
}
