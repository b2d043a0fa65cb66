// Package fonts provides the font used for tab labels and editor text.
//
// The Go Regular font is compiled into the binary by golang.org/x/image, so
// labels render the same on every system without a font lookup.
package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the family name of the label font.
const FontFamily = "Go"

// Parsed once on first access.
var (
	source     *text.FontSource
	sourceErr  error
	sourceOnce sync.Once
)

// TTF returns the raw font data.
func TTF() []byte {
	return goregular.TTF
}

// Source returns the parsed label font.
func Source() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
	})
	return source, sourceErr
}

// Face returns the label font at the given size in pixels.
func Face(size float64) (text.Face, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
