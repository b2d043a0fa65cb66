// Package transfer copies an image from a curved source space onto a flat
// destination surface one triangle at a time.
//
// Only the three corners of a triangle correspond exactly between the two
// spaces. [Copier.Triangle] splits the destination triangle until it covers at
// most a 2×2 pixel block, splitting the source triangle alongside it with a
// midpoint operator of the source space, and paints each leaf with the
// colour sampled at its first source corner. The planar and source midpoint
// functions are injected, so the recursion can be exercised with plain
// Euclidean inputs.
package transfer

import (
	"math"

	"github.com/gogpu/gg"
)

// DefaultMaxDepth bounds the recursion. A triangle spanning the largest
// surface gg can allocate needs far fewer levels.
const DefaultMaxDepth = 40

// maxCoord drops triangles whose corners cannot be represented as pixels.
const maxCoord = 1 << 30

// Surface is the destination of a copy. *gg.Pixmap satisfies it.
type Surface interface {
	SetPixel(x, y int, c gg.RGBA)
}

// Stats counts the work done by a Copier.
type Stats struct {
	Calls    int // Triangles visited, including internal nodes
	Leaves   int // Pixels written
	Dropped  int // Triangles discarded for non-finite corners or depth
	MaxDepth int // Deepest level reached, the root being level 1
}

// Copier transfers triangles from a source space S to Dst.
type Copier[S any] struct {
	Dst       Surface
	Sample    func(S) gg.RGBA
	SourceMid func(a, b S) S
	PlanarMid func(a, b gg.Point) gg.Point // LinearMid when nil
	MaxDepth  int                          // DefaultMaxDepth when zero

	Stats Stats
}

// LinearMid is the planar midpoint.
func LinearMid(a, b gg.Point) gg.Point {
	return gg.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// WellSpread floors three coordinates and reports their minimum, and whether
// all three lie within one pixel of it.
func WellSpread(a, b, c float64) (int, bool) {
	ia, ib, ic := int(math.Floor(a)), int(math.Floor(b)), int(math.Floor(c))
	m := min(ia, ib, ic)
	return m, ia-m <= 1 && ib-m <= 1 && ic-m <= 1
}

// Triangle copies the source triangle (s1, s2, s3) onto the destination
// triangle (p1, p2, p3).
func (c *Copier[S]) Triangle(p1, p2, p3 gg.Point, s1, s2, s3 S) {
	planarMid := c.PlanarMid
	if planarMid == nil {
		planarMid = LinearMid
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	c.copy(1, maxDepth, planarMid, p1, p2, p3, s1, s2, s3)
}

func (c *Copier[S]) copy(depth, maxDepth int, mid func(a, b gg.Point) gg.Point, g1, g2, g3 gg.Point, h1, h2, h3 S) {
	c.Stats.Calls++
	c.Stats.MaxDepth = max(c.Stats.MaxDepth, depth)

	if !usable(g1) || !usable(g2) || !usable(g3) {
		c.Stats.Dropped++
		return
	}

	mx, okx := WellSpread(g1.X, g2.X, g3.X)
	my, oky := WellSpread(g1.Y, g2.Y, g3.Y)
	if okx && oky {
		c.Dst.SetPixel(mx, my, c.Sample(h1))
		c.Stats.Leaves++
		return
	}
	if depth >= maxDepth {
		c.Stats.Dropped++
		return
	}

	g4, g5, g6 := mid(g2, g3), mid(g3, g1), mid(g1, g2)
	h4, h5, h6 := c.SourceMid(h2, h3), c.SourceMid(h3, h1), c.SourceMid(h1, h2)

	depth++
	c.copy(depth, maxDepth, mid, g1, g5, g6, h1, h5, h6)
	c.copy(depth, maxDepth, mid, g5, g3, g4, h5, h3, h4)
	c.copy(depth, maxDepth, mid, g6, g4, g2, h6, h4, h2)
	c.copy(depth, maxDepth, mid, g4, g6, g5, h4, h6, h5)
}

func usable(p gg.Point) bool {
	return math.Abs(p.X) < maxCoord && math.Abs(p.Y) < maxCoord
}
