package layout

import "github.com/matzehuels/papernet/pkg/topology"

// Toggle is the outcome of [Engine.ToggleGlue].
type Toggle int

const (
	NoNeighbor     Toggle = iota // Border edge, nothing to glue
	Glued                        // Neighbour attached to this cell
	Unglued                      // Existing glue removed
	RejectedCycle                // Both cells already in one assembly
	RejectedParent               // Neighbour already glued elsewhere
)

var toggleNames = [...]string{
	NoNeighbor:     "no neighbour",
	Glued:          "glued",
	Unglued:        "unglued",
	RejectedCycle:  "rejected: same assembly",
	RejectedParent: "rejected: neighbour has a parent",
}

func (t Toggle) String() string {
	if t < 0 || int(t) >= len(toggleNames) {
		return "unknown"
	}
	return toggleNames[t]
}

// Changed reports whether the forest was modified.
func (t Toggle) Changed() bool { return t == Glued || t == Unglued }

// ToggleGlue flips the glue state of edge e of cell i.
//
// With j the neighbour across e: if either cell is the parent of the other
// the pair is unglued; if both are in the same assembly, or j already has a
// parent, nothing happens; otherwise j becomes a child of i.
func (g *Engine) ToggleGlue(i, e int) Toggle {
	ci := g.Store.Cell(i)
	j := ci.Neighbors[e]
	if j == topology.None {
		return NoNeighbor
	}
	cj := g.Store.Cell(j)

	switch {
	case ci.Parent == j:
		ci.Parent = topology.None
		return Unglued
	case cj.Parent == i:
		cj.Parent = topology.None
		return Unglued
	case g.Root(i) == g.Root(j):
		return RejectedCycle
	case cj.Parent == topology.None:
		cj.Parent = i
		return Glued
	default:
		return RejectedParent
	}
}
