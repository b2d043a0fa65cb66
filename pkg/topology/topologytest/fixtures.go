// Package topologytest provides small cell complexes for tests.
//
// The complexes are combinatorially exact (symmetric neighbour tables) and
// carry plausible source-space anchors: regular polygons laid out near the
// origin of the hyperboloid. They are not tessellations of anything.
package topologytest

import (
	"math"

	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Polygon returns n anchors on a circle of radius r around (cx, cy).
func Polygon(cx, cy, r float64, n int) []hyperbolic.Point {
	pts := make([]hyperbolic.Point, n)
	for k := range pts {
		a := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = hyperbolic.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// Squares returns a strip of n degree-4 cells in which edge 0 of cell k
// meets edge 2 of cell k+1. Squares(2) is the two-square complex.
func Squares(n int) topology.Table {
	t := make(topology.Table, n)
	for k := range t {
		nei := []int{topology.None, topology.None, topology.None, topology.None}
		if k+1 < n {
			nei[0] = k + 1
		}
		if k > 0 {
			nei[2] = k - 1
		}
		cx := 0.3 * float64(k)
		t[k] = topology.TableCell{
			Neighbors:    nei,
			Anchors:      Polygon(cx, 0, 0.1, 4),
			CenterAnchor: hyperbolic.Point{X: cx},
		}
	}
	return t
}

// Flower returns a degree-d centre cell whose edge e meets edge 0 of a
// square petal e+1. Consecutive petals also share an edge (petal edge 1
// meets the next petal's edge 3), so the complex has cycles in its
// adjacency graph.
func Flower(d int) topology.Table {
	t := make(topology.Table, d+1)
	centre := make([]int, d)
	for e := range centre {
		centre[e] = e + 1
	}
	t[0] = topology.TableCell{
		Neighbors:    centre,
		Anchors:      Polygon(0, 0, 0.2, d),
		CenterAnchor: hyperbolic.Origin,
	}
	for e := 0; e < d; e++ {
		next := (e+1)%d + 1
		prev := (e+d-1)%d + 1
		a := 2 * math.Pi * (float64(e) + 0.5) / float64(d)
		cx, cy := 0.4*math.Cos(a), 0.4*math.Sin(a)
		t[e+1] = topology.TableCell{
			Neighbors:    []int{0, next, topology.None, prev},
			Anchors:      Polygon(cx, cy, 0.15, 4),
			CenterAnchor: hyperbolic.Point{X: cx, Y: cy},
		}
	}
	return t
}

// MustBuild builds t and panics on error.
func MustBuild(t topology.Table) *topology.Store {
	s, err := topology.Build(t)
	if err != nil {
		panic(err)
	}
	return s
}
