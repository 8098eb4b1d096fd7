// Package transform maps normalized hand landmarks into canvas pixel space.
package transform

import (
	"github.com/ayusman/mudra/internal/landmark"
)

// Magnification applied per axis to centroid-relative landmark offsets.
const Magnification = 2.0 * 120

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Anchor returns the canvas position a hand's centroid is placed at.
// The two anchors keep the hands in separate screen regions either side of the body.
func Anchor(side landmark.Side) Point {
	if side == landmark.Left {
		return Point{X: 150, Y: 320}
	}
	return Point{X: 350, Y: 320}
}

// Hand is a hand pose projected onto the canvas.
type Hand struct {
	Side   landmark.Side
	Points [landmark.NumLandmarks]Point
}

// Wrist returns the projected wrist, the point the forearm attaches to.
func (h *Hand) Wrist() Point {
	return h.Points[landmark.Wrist]
}

// ToCanvas projects pose onto the canvas for the given side.
//
// Each landmark is taken relative to the pose centroid, scaled by
// Magnification, mirrored horizontally for the left hand, then offset by
// the side's Anchor. The pose must hold exactly NumLandmarks points;
// anything else yields an *landmark.InvalidPoseError.
func ToCanvas(pose landmark.HandPose, side landmark.Side) (*Hand, error) {
	if !pose.Valid() {
		return nil, &landmark.InvalidPoseError{Side: side, Count: len(pose)}
	}

	centroid := pose.Centroid()
	anchor := Anchor(side)

	h := &Hand{Side: side}
	for i, lm := range pose {
		dx := (lm.X - centroid.X) * Magnification
		dy := (lm.Y - centroid.Y) * Magnification
		if side == landmark.Left {
			dx = -dx
		}
		h.Points[i] = Point{X: anchor.X + dx, Y: anchor.Y + dy}
	}
	return h, nil
}
