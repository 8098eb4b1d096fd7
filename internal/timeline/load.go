package timeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/mudra/internal/keyframe"
)

// DecodeClips reads a YAML (or JSON) list of clips.
func DecodeClips(r io.Reader) ([]Clip, error) {
	var clips []Clip
	if err := yaml.NewDecoder(r).Decode(&clips); err != nil {
		if err == io.EOF {
			return nil, keyframe.ErrEmptySequence
		}
		return nil, fmt.Errorf("decode clips: %w", err)
	}
	if len(clips) == 0 {
		return nil, keyframe.ErrEmptySequence
	}
	for i, c := range clips {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("clip %d (%s): %w", i, c.Sign, err)
		}
	}
	return clips, nil
}

// LoadClips reads a clip file from disk.
func LoadClips(path string) ([]Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load clips: %w", err)
	}
	clips, err := DecodeClips(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load clips %s: %w", path, err)
	}
	return clips, nil
}
