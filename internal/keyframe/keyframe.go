// Package keyframe defines the authored avatar poses consumed by the player.
package keyframe

import (
	"errors"
	"fmt"

	"github.com/ayusman/mudra/internal/landmark"
)

// ErrEmptySequence is returned when decoded input holds no keyframes.
var ErrEmptySequence = errors.New("empty keyframe sequence")

// Hand wraps the landmarks of one hand.
type Hand struct {
	Keypoints landmark.HandPose `json:"keypoints" yaml:"keypoints"`
}

// Pose returns the hand's landmarks, or nil for an absent hand.
func (h *Hand) Pose() landmark.HandPose {
	if h == nil {
		return nil
	}
	return h.Keypoints
}

// FacialExpression drives the avatar's brows and mouth.
type FacialExpression struct {
	// Eyebrows raises (positive) or lowers (negative) the brows.
	Eyebrows float64 `json:"eyebrows,omitempty" yaml:"eyebrows,omitempty"`
	// MouthCurve above 0.1 smiles, below -0.1 frowns, otherwise the mouth is flat.
	MouthCurve float64 `json:"mouth_curve,omitempty" yaml:"mouth_curve,omitempty"`
}

// Mouth thresholds for MouthCurve.
const (
	SmileThreshold = 0.1
	FrownThreshold = -0.1
)

// MouthShape classifies how the mouth should be drawn.
type MouthShape int

const (
	MouthFlat MouthShape = iota
	MouthSmile
	MouthFrown
)

func (m MouthShape) String() string {
	switch m {
	case MouthSmile:
		return "smile"
	case MouthFrown:
		return "frown"
	}
	return "flat"
}

// Mouth returns the mouth shape for f. A nil expression has a flat mouth.
func (f *FacialExpression) Mouth() MouthShape {
	if f == nil {
		return MouthFlat
	}
	switch {
	case f.MouthCurve > SmileThreshold:
		return MouthSmile
	case f.MouthCurve < FrownThreshold:
		return MouthFrown
	}
	return MouthFlat
}

// Keyframe is one authored avatar pose. Absent fields are not drawn.
type Keyframe struct {
	RightHand        *Hand             `json:"right_hand,omitempty" yaml:"right_hand,omitempty"`
	LeftHand         *Hand             `json:"left_hand,omitempty" yaml:"left_hand,omitempty"`
	FacialExpression *FacialExpression `json:"facial_expression,omitempty" yaml:"facial_expression,omitempty"`
	Sign             string            `json:"sign,omitempty" yaml:"sign,omitempty"`
}

// Validate checks that every present hand has exactly 21 landmarks.
// The returned error is a *landmark.InvalidPoseError naming the side.
func (k *Keyframe) Validate() error {
	if k.RightHand != nil && !k.RightHand.Keypoints.Valid() {
		return &landmark.InvalidPoseError{Side: landmark.Right, Count: len(k.RightHand.Keypoints)}
	}
	if k.LeftHand != nil && !k.LeftHand.Keypoints.Valid() {
		return &landmark.InvalidPoseError{Side: landmark.Left, Count: len(k.LeftHand.Keypoints)}
	}
	return nil
}

// Sequence is an ordered list of keyframes; index order is playback order.
type Sequence []Keyframe

// Validate checks every keyframe, reporting the first failure with its index.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	for i := range s {
		if err := s[i].Validate(); err != nil {
			return fmt.Errorf("keyframe %d: %w", i, err)
		}
	}
	return nil
}

// Signs returns the distinct non-empty sign labels in order of first appearance.
func (s Sequence) Signs() []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range s {
		if k.Sign == "" || seen[k.Sign] {
			continue
		}
		seen[k.Sign] = true
		out = append(out, k.Sign)
	}
	return out
}
