// Package export turns played frames into files: PNG images from the gg
// raster or recording backends, or standalone SVG documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/ayusman/mudra/internal/surface"
	"github.com/ayusman/mudra/internal/surface/raster"
	"github.com/ayusman/mudra/internal/surface/svg"
	"github.com/ayusman/mudra/internal/surface/vector"
)

// ErrUnknownBackend is returned for a backend name other than those listed by Backends.
var ErrUnknownBackend = errors.New("unknown backend")

// Backend names a drawing backend.
type Backend string

const (
	Raster Backend = "raster"
	SVG    Backend = "svg"
	Vector Backend = "vector"
)

// ParseBackend accepts a backend name in any case.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case Raster, SVG, Vector:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Backends lists the supported backend names.
func Backends() []string {
	names := []string{string(Raster), string(SVG), string(Vector)}
	sort.Strings(names)
	return names
}

// Target is a surface whose current frame can be written out.
type Target interface {
	surface.Surface
	// Ext is the file extension for written frames, without the dot.
	Ext() string
	// WriteFrame writes the current frame to w and clears the target
	// for the next one.
	WriteFrame(w io.Writer) error
	Close() error
}

// NewTarget creates a width x height target for backend b.
func NewTarget(b Backend, width, height int, fontSize float64, logger *slog.Logger) (Target, error) {
	switch b {
	case Raster:
		s, err := raster.New(width, height, raster.WithFontSize(fontSize), raster.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return rasterTarget{s}, nil
	case SVG:
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
		}
		return svgTarget{svg.New(width, height, svg.WithFontSize(fontSize))}, nil
	case Vector:
		s, err := vector.New(width, height, vector.WithFontSize(fontSize))
		if err != nil {
			return nil, err
		}
		return vectorTarget{s}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b)
}

type rasterTarget struct{ *raster.Surface }

func (rasterTarget) Ext() string { return "png" }

func (t rasterTarget) WriteFrame(w io.Writer) error {
	defer t.Clear()
	if err := t.Err(); err != nil {
		return fmt.Errorf("raster frame: %w", err)
	}
	if err := t.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

type svgTarget struct{ *svg.Surface }

func (svgTarget) Ext() string  { return "svg" }
func (svgTarget) Close() error { return nil }

func (t svgTarget) WriteFrame(w io.Writer) error {
	defer t.Reset()
	if _, err := t.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

type vectorTarget struct{ *vector.Surface }

func (vectorTarget) Ext() string  { return "png" }
func (vectorTarget) Close() error { return nil }

func (t vectorTarget) WriteFrame(w io.Writer) error {
	rec := t.Finish()
	t.Reset()
	if err := vector.WritePNG(rec, w); err != nil {
		return fmt.Errorf("playback recording: %w", err)
	}
	return nil
}
