package topology

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/hyperbolic"
)

// None marks a missing neighbour, parent or label.
const None = -1

// Limits of the packed layout file: eight anchor slots per cell, seven for
// the boundary and one for the interior reference point.
const (
	MinDegree = 3
	MaxDegree = 7
	MaxCells  = 1000
)

// Cell is one polygonal face of the complex.
type Cell struct {
	Neighbors    []int              // Cell across edge e, or None
	Anchors      []hyperbolic.Point // Source-space boundary vertices
	CenterAnchor hyperbolic.Point   // Source-space interior reference point

	Center   gg.Point // Flat position of the cell centre
	Rotation float64  // Flat orientation in radians
	Parent   int      // Glue parent, or None for a root
	Labels   []int    // Tab label per edge, or None
}

// NewCell returns a root cell with the given neighbours and anchors.
// The slices are copied.
func NewCell(neighbors []int, anchors []hyperbolic.Point, center hyperbolic.Point) *Cell {
	labels := make([]int, len(neighbors))
	for e := range labels {
		labels[e] = None
	}
	return &Cell{
		Neighbors:    slices.Clone(neighbors),
		Anchors:      slices.Clone(anchors),
		CenterAnchor: center,
		Parent:       None,
		Labels:       labels,
	}
}

// Degree returns the number of boundary edges.
func (c *Cell) Degree() int { return len(c.Neighbors) }

// IsRoot reports whether the cell has no glue parent.
func (c *Cell) IsRoot() bool { return c.Parent == None }

// EdgeTo returns the first edge of c whose neighbour is j, or None.
func (c *Cell) EdgeTo(j int) int {
	for e, n := range c.Neighbors {
		if n == j {
			return e
		}
	}
	return None
}

// Anchor returns boundary anchor k, wrapping around the degree.
func (c *Cell) Anchor(k int) hyperbolic.Point {
	n := c.Degree()
	return c.Anchors[((k%n)+n)%n]
}

func (c *Cell) clone() *Cell {
	d := *c
	d.Neighbors = slices.Clone(c.Neighbors)
	d.Anchors = slices.Clone(c.Anchors)
	d.Labels = slices.Clone(c.Labels)
	return &d
}
