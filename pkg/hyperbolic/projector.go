package hyperbolic

import (
	"math"

	"github.com/gogpu/gg"
)

// DefaultDiskScale leaves a thin margin between the disk and the image edge.
const DefaultDiskScale = 0.99

// Projector maps hyperboloid points to pixels of a Size×Size source image.
type Projector struct {
	Size  int     // Edge length of the square source image in pixels
	Scale float64 // Fraction of the half-size covered by the unit disk
}

// NewProjector returns a projector for a square image of the given size.
func NewProjector(size int) Projector {
	return Projector{Size: size, Scale: DefaultDiskScale}
}

// Project returns the continuous pixel position of p.
func (pr Projector) Project(p Point) gg.Point {
	dx, dy := p.Disk()
	half := float64(pr.Size) / 2
	r := half * pr.Scale
	return gg.Pt(half+r*dx, half+r*dy)
}

// Pixel returns the integer pixel containing p.
func (pr Projector) Pixel(p Point) (x, y int) {
	q := pr.Project(p)
	return int(math.Floor(q.X)), int(math.Floor(q.Y))
}

// Unproject returns the hyperboloid point shown at pixel position q.
func (pr Projector) Unproject(q gg.Point) (Point, bool) {
	half := float64(pr.Size) / 2
	r := half * pr.Scale
	return FromDisk((q.X-half)/r, (q.Y-half)/r)
}

// Sampler reads source colours from a pixmap through a projector.
type Sampler struct {
	Image     *gg.Pixmap
	Projector Projector
}

// NewSampler returns a sampler projecting onto the full size of img.
// Non-square images are projected onto their shorter side.
func NewSampler(img *gg.Pixmap) *Sampler {
	size := min(img.Width(), img.Height())
	return &Sampler{Image: img, Projector: NewProjector(size)}
}

// At returns the colour of the source pixel containing p.
// Points outside the image sample as transparent.
func (s *Sampler) At(p Point) gg.RGBA {
	x, y := s.Projector.Pixel(p)
	return s.Image.GetPixel(x, y)
}
