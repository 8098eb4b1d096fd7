// Package fonts provides the embedded label typeface shared by the gg-backed surfaces.
package fonts

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the label font size in points.
const DefaultSize = 18

var regular = sync.OnceValues(func() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load go regular font: %w", err)
	}
	return src, nil
})

// Face returns a Go Regular face at the given size in points.
// A non-positive size selects DefaultSize.
func Face(size float64) (text.Face, error) {
	src, err := regular()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return src.Face(size), nil
}
