// Package landmark provides the 21-point hand topology and pose types used by the avatar renderer.
package landmark

import (
	"fmt"
	"math"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Side identifies which of the avatar's hands a pose belongs to.
type Side string

const (
	// Right is the avatar's right hand, drawn on the viewer's right.
	Right Side = "right"
	// Left is the avatar's left hand; its landmarks are mirrored on screen.
	Left Side = "left"
)

// Fingertips lists the distal landmark of every finger, thumb first.
var Fingertips = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// IsFingertip reports whether i is one of the five fingertip indices.
func IsFingertip(i int) bool {
	for _, tip := range Fingertips {
		if tip == i {
			return true
		}
	}
	return false
}

// Landmark is a single point in normalized hand-local space.
// Z is optional in the wire format and defaults to 0.
type Landmark struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z,omitempty" yaml:"z,omitempty"`
}

// HandPose is the full description of one hand at an instant.
// A well-formed pose has exactly NumLandmarks entries; see Validate.
type HandPose []Landmark

// InvalidPoseError reports a hand pose with the wrong number of landmarks.
type InvalidPoseError struct {
	Side  Side // empty when unknown
	Count int
}

func (e *InvalidPoseError) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("invalid hand pose: %d landmarks, want %d", e.Count, NumLandmarks)
	}
	return fmt.Sprintf("invalid %s hand pose: %d landmarks, want %d", e.Side, e.Count, NumLandmarks)
}

// Validate returns an *InvalidPoseError unless p has exactly NumLandmarks points.
func (p HandPose) Validate() error {
	if len(p) != NumLandmarks {
		return &InvalidPoseError{Count: len(p)}
	}
	return nil
}

// Valid reports whether p has exactly NumLandmarks points.
func (p HandPose) Valid() bool {
	return len(p) == NumLandmarks
}

// Clone returns a copy of p that shares no memory with it.
func (p HandPose) Clone() HandPose {
	if p == nil {
		return nil
	}
	out := make(HandPose, len(p))
	copy(out, p)
	return out
}

// Centroid returns the mean of all points in p.
// An empty pose has its centroid at the origin.
func (p HandPose) Centroid() Landmark {
	var c Landmark
	if len(p) == 0 {
		return c
	}
	for _, lm := range p {
		c.X += lm.X
		c.Y += lm.Y
		c.Z += lm.Z
	}
	n := float64(len(p))
	return Landmark{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// Mirror returns p reflected horizontally in normalized space (x -> 1-x).
// It is used to derive the second hand of two-handed signs.
func (p HandPose) Mirror() HandPose {
	if p == nil {
		return nil
	}
	out := make(HandPose, len(p))
	for i, lm := range p {
		out[i] = Landmark{X: 1 - lm.X, Y: lm.Y, Z: lm.Z}
	}
	return out
}

// Translate returns p shifted by (dx, dy, dz).
func (p HandPose) Translate(dx, dy, dz float64) HandPose {
	if p == nil {
		return nil
	}
	out := make(HandPose, len(p))
	for i, lm := range p {
		out[i] = Landmark{X: lm.X + dx, Y: lm.Y + dy, Z: lm.Z + dz}
	}
	return out
}

// distance3D calculates the Euclidean distance between two points.
func distance3D(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Size returns the wrist to middle-finger MCP distance, the usual hand scale.
// It returns 0 for a pose that is not well-formed.
func (p HandPose) Size() float64 {
	if !p.Valid() {
		return 0
	}
	return distance3D(p[Wrist], p[MiddleMCP])
}
