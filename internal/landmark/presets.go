package landmark

// RelaxedHand returns a neutral open hand centred on (cx, cy), fingers up.
func RelaxedHand(cx, cy float64) HandPose {
	return HandPose{
		{X: cx, Y: cy},

		{X: cx - 0.08, Y: cy - 0.02},
		{X: cx - 0.12, Y: cy - 0.05},
		{X: cx - 0.14, Y: cy - 0.08},
		{X: cx - 0.16, Y: cy - 0.10},

		{X: cx - 0.04, Y: cy - 0.08},
		{X: cx - 0.04, Y: cy - 0.14},
		{X: cx - 0.04, Y: cy - 0.18},
		{X: cx - 0.04, Y: cy - 0.22},

		{X: cx, Y: cy - 0.08},
		{X: cx, Y: cy - 0.15},
		{X: cx, Y: cy - 0.20},
		{X: cx, Y: cy - 0.24},

		{X: cx + 0.04, Y: cy - 0.08},
		{X: cx + 0.04, Y: cy - 0.14},
		{X: cx + 0.04, Y: cy - 0.18},
		{X: cx + 0.04, Y: cy - 0.21},

		{X: cx + 0.08, Y: cy - 0.08},
		{X: cx + 0.08, Y: cy - 0.12},
		{X: cx + 0.08, Y: cy - 0.15},
		{X: cx + 0.08, Y: cy - 0.18},
	}
}

// Fist returns a closed fist centred on (cx, cy) with the thumb tucked in.
func Fist(cx, cy float64) HandPose {
	return HandPose{
		{X: cx, Y: cy},

		{X: cx - 0.06, Y: cy - 0.02, Z: 0.02},
		{X: cx - 0.08, Y: cy - 0.04, Z: 0.03},
		{X: cx - 0.06, Y: cy - 0.06, Z: 0.04},
		{X: cx - 0.04, Y: cy - 0.06, Z: 0.05},

		{X: cx - 0.04, Y: cy - 0.08},
		{X: cx - 0.04, Y: cy - 0.10, Z: 0.04},
		{X: cx - 0.02, Y: cy - 0.08, Z: 0.06},
		{X: cx - 0.02, Y: cy - 0.04, Z: 0.05},

		{X: cx, Y: cy - 0.08},
		{X: cx, Y: cy - 0.10, Z: 0.04},
		{X: cx + 0.02, Y: cy - 0.08, Z: 0.06},
		{X: cx + 0.02, Y: cy - 0.04, Z: 0.05},

		{X: cx + 0.04, Y: cy - 0.08},
		{X: cx + 0.04, Y: cy - 0.10, Z: 0.04},
		{X: cx + 0.05, Y: cy - 0.08, Z: 0.06},
		{X: cx + 0.05, Y: cy - 0.04, Z: 0.05},

		{X: cx + 0.08, Y: cy - 0.08},
		{X: cx + 0.08, Y: cy - 0.09, Z: 0.03},
		{X: cx + 0.08, Y: cy - 0.07, Z: 0.05},
		{X: cx + 0.08, Y: cy - 0.04, Z: 0.04},
	}
}

// ThumbsUp returns a pose with the thumb extended upward and the other fingers curled.
func ThumbsUp() HandPose {
	p := make(HandPose, NumLandmarks)

	p[Wrist] = Landmark{X: 0.5, Y: 0.8}

	p[ThumbCMC] = Landmark{X: 0.55, Y: 0.75}
	p[ThumbMCP] = Landmark{X: 0.58, Y: 0.65}
	p[ThumbIP] = Landmark{X: 0.58, Y: 0.50}
	p[ThumbTip] = Landmark{X: 0.58, Y: 0.35}

	p[IndexMCP] = Landmark{X: 0.55, Y: 0.70, Z: -0.02}
	p[IndexPIP] = Landmark{X: 0.55, Y: 0.68, Z: -0.05}
	p[IndexDIP] = Landmark{X: 0.52, Y: 0.70, Z: -0.04}
	p[IndexTip] = Landmark{X: 0.50, Y: 0.72, Z: -0.02}

	p[MiddleMCP] = Landmark{X: 0.50, Y: 0.68, Z: -0.02}
	p[MiddlePIP] = Landmark{X: 0.50, Y: 0.66, Z: -0.05}
	p[MiddleDIP] = Landmark{X: 0.47, Y: 0.68, Z: -0.04}
	p[MiddleTip] = Landmark{X: 0.45, Y: 0.70, Z: -0.02}

	p[RingMCP] = Landmark{X: 0.45, Y: 0.70, Z: -0.02}
	p[RingPIP] = Landmark{X: 0.45, Y: 0.68, Z: -0.05}
	p[RingDIP] = Landmark{X: 0.42, Y: 0.70, Z: -0.04}
	p[RingTip] = Landmark{X: 0.40, Y: 0.72, Z: -0.02}

	p[PinkyMCP] = Landmark{X: 0.40, Y: 0.72, Z: -0.02}
	p[PinkyPIP] = Landmark{X: 0.40, Y: 0.70, Z: -0.05}
	p[PinkyDIP] = Landmark{X: 0.37, Y: 0.72, Z: -0.04}
	p[PinkyTip] = Landmark{X: 0.35, Y: 0.74, Z: -0.02}

	return p
}

// OpenPalm returns a pose with all five fingers spread and extended.
func OpenPalm() HandPose {
	p := make(HandPose, NumLandmarks)

	p[Wrist] = Landmark{X: 0.5, Y: 0.8}

	p[ThumbCMC] = Landmark{X: 0.55, Y: 0.75, Z: 0.02}
	p[ThumbMCP] = Landmark{X: 0.62, Y: 0.70, Z: 0.03}
	p[ThumbIP] = Landmark{X: 0.68, Y: 0.65, Z: 0.03}
	p[ThumbTip] = Landmark{X: 0.73, Y: 0.60, Z: 0.03}

	p[IndexMCP] = Landmark{X: 0.55, Y: 0.68}
	p[IndexPIP] = Landmark{X: 0.57, Y: 0.55}
	p[IndexDIP] = Landmark{X: 0.58, Y: 0.45}
	p[IndexTip] = Landmark{X: 0.58, Y: 0.35}

	p[MiddleMCP] = Landmark{X: 0.50, Y: 0.66}
	p[MiddlePIP] = Landmark{X: 0.50, Y: 0.52}
	p[MiddleDIP] = Landmark{X: 0.50, Y: 0.40}
	p[MiddleTip] = Landmark{X: 0.50, Y: 0.28}

	p[RingMCP] = Landmark{X: 0.45, Y: 0.68}
	p[RingPIP] = Landmark{X: 0.43, Y: 0.55}
	p[RingDIP] = Landmark{X: 0.42, Y: 0.45}
	p[RingTip] = Landmark{X: 0.42, Y: 0.35}

	p[PinkyMCP] = Landmark{X: 0.40, Y: 0.70}
	p[PinkyPIP] = Landmark{X: 0.37, Y: 0.60}
	p[PinkyDIP] = Landmark{X: 0.35, Y: 0.50}
	p[PinkyTip] = Landmark{X: 0.34, Y: 0.42}

	return p
}

// Point returns a relaxed hand with only the index finger extended.
func Point(cx, cy float64) HandPose {
	p := Fist(cx, cy)
	p[IndexPIP] = Landmark{X: cx - 0.04, Y: cy - 0.14}
	p[IndexDIP] = Landmark{X: cx - 0.04, Y: cy - 0.18}
	p[IndexTip] = Landmark{X: cx - 0.04, Y: cy - 0.22}
	return p
}
