package keyframe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an input format other than JSON or YAML.
var ErrUnknownFormat = errors.New("unknown sequence format")

// ErrTrailingData is returned when a JSON sequence is followed by more input.
var ErrTrailingData = errors.New("unexpected data after sequence")

// Format names an input encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// DecodeJSON reads a JSON array of keyframes and validates it.
func DecodeJSON(r io.Reader) (Sequence, error) {
	var seq Sequence
	dec := json.NewDecoder(r)
	if err := dec.Decode(&seq); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySequence
		}
		return nil, fmt.Errorf("decode json sequence: %w", err)
	}
	// The array must be the whole document.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json sequence: %w", ErrTrailingData)
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}

// DecodeYAML reads a YAML list of keyframes and validates it.
func DecodeYAML(r io.Reader) (Sequence, error) {
	var seq Sequence
	if err := yaml.NewDecoder(r).Decode(&seq); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySequence
		}
		return nil, fmt.Errorf("decode yaml sequence: %w", err)
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}

// Decode reads a sequence in the given format.
func Decode(r io.Reader, f Format) (Sequence, error) {
	switch f {
	case JSON:
		return DecodeJSON(r)
	case YAML:
		return DecodeYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, f Format) (Sequence, error) {
	return Decode(bytes.NewReader(data), f)
}

// Load reads and validates the sequence file at path, choosing the
// format from its extension.
func Load(path string) (Sequence, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence: %w", err)
	}
	defer file.Close()

	seq, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return seq, nil
}

// Encode writes seq in the given format.
func Encode(w io.Writer, seq Sequence, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(seq)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(seq); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
