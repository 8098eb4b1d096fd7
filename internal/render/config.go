package render

import (
	"github.com/ayusman/mudra/internal/surface"
	"github.com/ayusman/mudra/internal/transform"
)

// Palette holds every colour the renderer paints with.
type Palette struct {
	Skin            surface.Color
	Outline         surface.Color
	Joint           surface.Color
	Nail            surface.Color
	Shadow          surface.Color
	Sleeve          surface.Color
	Shirt           surface.Color
	Hair            surface.Color
	EyeWhite        surface.Color
	Pupil           surface.Color
	BackgroundTop   surface.Color
	BackgroundBase  surface.Color
	LabelBackground surface.Color
	LabelText       surface.Color
}

// Config is the fixed look of the avatar. A Renderer copies it on creation.
type Config struct {
	Palette Palette

	// TorsoCenter anchors the torso, head and face.
	TorsoCenter transform.Point
	// Shoulder x positions; the right shoulder sits on the viewer's right.
	ShoulderLeftX  float64
	ShoulderRightX float64
	ShoulderY      float64

	// LabelFontSize is used to size the sign label background.
	LabelFontSize float64
}

// DefaultConfig returns the stock avatar for a 500x500 canvas.
func DefaultConfig() Config {
	return Config{
		Palette: Palette{
			Skin:            surface.MustHex("#FFDAB9"),
			Outline:         surface.MustHex("#2c3e50"),
			Joint:           surface.MustHex("#e8c4a0"),
			Nail:            surface.MustHex("#ffe4e1"),
			Shadow:          surface.MustHex("#00000026"),
			Sleeve:          surface.MustHex("#3498db"),
			Shirt:           surface.MustHex("#2980b9"),
			Hair:            surface.MustHex("#4a3728"),
			EyeWhite:        surface.MustHex("#ffffff"),
			Pupil:           surface.MustHex("#2c3e50"),
			BackgroundTop:   surface.MustHex("#ecf0f1"),
			BackgroundBase:  surface.MustHex("#d6eaf8"),
			LabelBackground: surface.MustHex("#2c3e50d9"),
			LabelText:       surface.MustHex("#ffffff"),
		},
		TorsoCenter:    transform.Point{X: 250, Y: 400},
		ShoulderLeftX:  170,
		ShoulderRightX: 330,
		ShoulderY:      300,
		LabelFontSize:  18,
	}
}
