package timeline

import "github.com/ayusman/mudra/internal/landmark"

// Demo returns a short greeting used when no sequence file is given.
func Demo() []Clip {
	return []Clip{
		{Sign: "HELLO", Kind: Word, Motion: "wave", Expression: "smile", Start: landmark.RelaxedHand(0.55, 0.45)},
		{Sign: "THANK YOU", Kind: Phrase, Motion: "outward", Expression: "smile",
			Start: landmark.RelaxedHand(0.5, 0.35), End: landmark.RelaxedHand(0.55, 0.55)},
		{Sign: "YES", Kind: Word, Motion: "tapping", Expression: "calm", Start: landmark.Fist(0.5, 0.5)},
		{Sign: "BIG", Kind: Word, Motion: "expanding", Expression: "intense", Start: landmark.OpenPalm()},
		{Sign: "GOOD", Kind: Word, Motion: "static", Expression: "smile", Start: landmark.ThumbsUp()},
	}
}
