// Package sink encodes rendered nets to image files.
package sink

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/matzehuels/papernet/pkg/errors"
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// Formats lists the supported formats.
var Formats = []string{string(PNG), string(BMP)}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	if err := errors.ValidateFormat(s, Formats...); err != nil {
		return "", err
	}
	return Format(s), nil
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == BMP {
		return "image/bmp"
	}
	return "image/png"
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported image format %q", f)
	}
}

// WriteFile encodes img to dir/stem.ext and returns the path written.
func WriteFile(dir, stem string, img image.Image, f Format) (string, error) {
	path := filepath.Join(dir, stem+f.Ext())
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}

	bw := bufio.NewWriter(out)
	if err := Encode(bw, img, f); err != nil {
		out.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return "", err
	}
	return path, out.Close()
}
