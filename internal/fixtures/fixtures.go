// Package fixtures embeds sample keyframe sequences and clip files for tests.
package fixtures

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/keyframe"
)

//go:embed testdata/*
var sequencesFS embed.FS

// ReadSequence returns the raw bytes of a fixture file.
func ReadSequence(name string) ([]byte, error) {
	data, err := sequencesFS.ReadFile("testdata/" + name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}
	return data, nil
}

// LoadSequence decodes a keyframe fixture, choosing the format by extension.
func LoadSequence(name string) (keyframe.Sequence, error) {
	data, err := ReadSequence(name)
	if err != nil {
		return nil, err
	}
	f, err := keyframe.FormatOf(name)
	if err != nil {
		return nil, err
	}
	seq, err := keyframe.DecodeBytes(data, f)
	if err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return seq, nil
}

// CopyTo writes a fixture into dir and returns its path.
func CopyTo(dir, name string) (string, error) {
	data, err := ReadSequence(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("copy fixture %s: %w", name, err)
	}
	return path, nil
}
