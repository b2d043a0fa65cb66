package layout

import (
	"math"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/topology"
)

// MinEdgeLength is the smallest edge length the engine accepts.
const MinEdgeLength = 1.0

// Engine places the cells of a store in the plane.
type Engine struct {
	Store      *topology.Store
	EdgeLength float64
}

// New returns an engine for store with the given side length.
func New(store *topology.Store, edgeLength float64) *Engine {
	e := &Engine{Store: store}
	e.SetEdgeLength(edgeLength)
	return e
}

// SetEdgeLength sets the side length, clamped to [MinEdgeLength].
func (g *Engine) SetEdgeLength(l float64) {
	if !(l >= MinEdgeLength) {
		l = MinEdgeLength
	}
	g.EdgeLength = l
}

// Radii returns the circumradius and centre-to-edge distance of a regular
// polygon with n sides of length l.
func Radii(n int, l float64) (ray, edgeDist float64) {
	a := math.Pi / float64(n)
	ray = l / (2 * math.Sin(a))
	return ray, ray * math.Cos(a)
}

func dir(theta float64) gg.Point {
	return gg.Pt(math.Cos(theta), math.Sin(theta))
}

// edgeAngle is the direction from the centre towards the middle of edge e.
func edgeAngle(c *topology.Cell, e int) float64 {
	return c.Rotation + 2*math.Pi*(float64(e)+0.5)/float64(c.Degree())
}

// Root returns the root of the assembly containing cell i. A chain longer
// than the store (a broken forest) yields [topology.None].
func (g *Engine) Root(i int) int {
	for steps := 0; steps <= g.Store.Len(); steps++ {
		p := g.Store.Cell(i).Parent
		if p == topology.None {
			return i
		}
		i = p
	}
	return topology.None
}

// ApplyGlue places cell i against its glue parent. Roots are left alone.
func (g *Engine) ApplyGlue(i int) error {
	ci := g.Store.Cell(i)
	j := ci.Parent
	if j == topology.None {
		return nil
	}
	cj := g.Store.Cell(j)
	ie, je := ci.EdgeTo(j), cj.EdgeTo(i)
	if ie == topology.None || je == topology.None {
		return errors.New(errors.ErrCodeContractViolation, "cell %d is glued to non-neighbour %d", i, j)
	}

	theta := edgeAngle(cj, je)
	ci.Rotation = theta - 2*math.Pi*(float64(ie)+0.5)/float64(ci.Degree()) + math.Pi

	_, di := Radii(ci.Degree(), g.EdgeLength)
	_, dj := Radii(cj.Degree(), g.EdgeLength)
	ci.Center = cj.Center.Add(dir(theta).Mul(di + dj))
	return nil
}

// Propagate recomputes the placement of every non-root cell, visiting the
// forest breadth-first from its roots in index order.
func (g *Engine) Propagate() error {
	children := g.Store.Children()

	q := linkedlistqueue.New()
	for _, r := range g.Store.Roots() {
		q.Enqueue(r)
	}

	visited := 0
	for !q.Empty() {
		v, _ := q.Dequeue()
		visited++
		for _, c := range children[v.(int)] {
			if err := g.ApplyGlue(c); err != nil {
				return err
			}
			q.Enqueue(c)
		}
	}

	if visited != g.Store.Len() {
		return errors.New(errors.ErrCodeContractViolation, "%d cells are not reachable from a root", g.Store.Len()-visited)
	}
	return nil
}

// Vertex returns flat vertex k of cell i.
func (g *Engine) Vertex(i, k int) gg.Point {
	c := g.Store.Cell(i)
	n := c.Degree()
	ray, _ := Radii(n, g.EdgeLength)
	return c.Center.Add(dir(c.Rotation + 2*math.Pi*float64(k)/float64(n)).Mul(ray))
}

// Vertices returns the flat vertices of cell i in edge order.
func (g *Engine) Vertices(i int) []gg.Point {
	n := g.Store.Cell(i).Degree()
	pts := make([]gg.Point, n)
	for k := range pts {
		pts[k] = g.Vertex(i, k)
	}
	return pts
}

// EdgeMid returns the flat midpoint of edge e of cell i.
func (g *Engine) EdgeMid(i, e int) gg.Point {
	c := g.Store.Cell(i)
	_, d := Radii(c.Degree(), g.EdgeLength)
	return c.Center.Add(dir(edgeAngle(c, e)).Mul(d))
}
