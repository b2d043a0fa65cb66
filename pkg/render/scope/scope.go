// Package scope renders the complex as it appears in source space.
//
// The image is the Poincaré disk view of every cell, each filled with its own
// pastel colour, with edges shaded by glue state. It is the default source
// image for the texture transfer, which makes each unfolded cell show its
// own colour and its surroundings, and it doubles as an overview of which
// edges are glued.
package scope

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Colours of edges by glue state, and of the background.
var (
	ColorGlued   = gg.Hex("#303030")
	ColorUnglued = gg.Hex("#808080")
	ColorBorder  = gg.Hex("#C0C0C0")
	ColorDisk    = gg.Hex("#101018")
	ColorOutside = gg.Black
)

const defaultDetail = 4

// goldenAngle spreads consecutive cell hues around the colour wheel.
var goldenAngle = 180 * (3 - math.Sqrt(5))

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	detail    int
	lineWidth float64
	edges     bool
}

// WithDetail sets how many times each edge is halved along its geodesic
// (default 4, giving 16 segments per edge).
func WithDetail(n int) Option {
	return func(r *renderer) { r.detail = n }
}

// WithLineWidth sets the edge width in pixels (default size/1024, at least 1).
func WithLineWidth(w float64) Option {
	return func(r *renderer) { r.lineWidth = w }
}

// WithoutEdges fills cells only.
func WithoutEdges() Option {
	return func(r *renderer) { r.edges = false }
}

// CellColor returns the fill colour of cell i.
func CellColor(i int) gg.RGBA {
	return gg.HSL(float64(i)*goldenAngle, 0.55, 0.75)
}

// Render draws every cell of s onto a size×size image.
func Render(s *topology.Store, size int, opts ...Option) *gg.Pixmap {
	r := renderer{detail: defaultDetail, lineWidth: max(1, float64(size)/1024), edges: true}
	for _, opt := range opts {
		opt(&r)
	}

	pm := gg.NewPixmap(size, size)
	pm.Clear(ColorOutside)
	dc := gg.NewContext(size, size, gg.WithPixmap(pm))
	defer dc.Close()

	pr := hyperbolic.NewProjector(size)
	half := float64(size) / 2
	dc.SetColor(ColorDisk.Color())
	dc.DrawCircle(half, half, half*pr.Scale)
	_ = dc.Fill()

	for i, c := range s.Cells() {
		dc.SetColor(CellColor(i).Color())
		for e := 0; e < c.Degree(); e++ {
			pts := r.edge(pr, c.Anchor(e), c.Anchor(e+1))
			if e == 0 {
				dc.MoveTo(pts[0].X, pts[0].Y)
			}
			for _, p := range pts[1:] {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.ClosePath()
		_ = dc.Fill()
	}

	if r.edges {
		dc.SetLineWidth(r.lineWidth)
		for i, c := range s.Cells() {
			for e, j := range c.Neighbors {
				// Shared edges are drawn once, from the lower index.
				if j != topology.None && j < i {
					continue
				}
				dc.SetColor(EdgeColor(s, i, e).Color())
				pts := r.edge(pr, c.Anchor(e), c.Anchor(e+1))
				dc.MoveTo(pts[0].X, pts[0].Y)
				for _, p := range pts[1:] {
					dc.LineTo(p.X, p.Y)
				}
				_ = dc.Stroke()
			}
		}
	}
	return pm
}

// EdgeColor returns the colour edge e of cell i is drawn with.
func EdgeColor(s *topology.Store, i, e int) gg.RGBA {
	switch {
	case s.Cell(i).Neighbors[e] == topology.None:
		return ColorBorder
	case s.Glued(i, e):
		return ColorGlued
	default:
		return ColorUnglued
	}
}

// edge returns the projected geodesic from a to b as 2^detail+1 points.
func (r *renderer) edge(pr hyperbolic.Projector, a, b hyperbolic.Point) []gg.Point {
	pts := []hyperbolic.Point{a, b}
	for k := 0; k < r.detail; k++ {
		next := make([]hyperbolic.Point, 0, 2*len(pts)-1)
		for i := 0; i+1 < len(pts); i++ {
			next = append(next, pts[i], hyperbolic.Mid(pts[i], pts[i+1]))
		}
		pts = append(next, pts[len(pts)-1])
	}

	out := make([]gg.Point, len(pts))
	for i, p := range pts {
		out[i] = pr.Project(p)
	}
	return out
}
