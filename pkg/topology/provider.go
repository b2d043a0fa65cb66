package topology

import (
	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/hyperbolic"
)

// Provider supplies the cells of a complex in source space.
//
// Neighbour ids are indexed by local edge and use [None] on the border.
// Anchors has one point per edge; the curvature-aware midpoint of two
// anchors is [hyperbolic.Mid].
type Provider interface {
	CellCount() int
	Degree(i int) int
	Neighbors(i int) []int
	Anchors(i int) []hyperbolic.Point
	CenterAnchor(i int) hyperbolic.Point
}

// Build captures every cell of p into a new store without transforming any
// coordinate. The cell count is checked before anything is read, and the
// result is validated as a whole before it is returned.
func Build(p Provider) (*Store, error) {
	n := p.CellCount()
	if n > MaxCells {
		return nil, errors.New(errors.ErrCodeCapacityExceeded, "provider has %d cells, limit is %d", n, MaxCells)
	}

	s := NewStore(n)
	for i := 0; i < n; i++ {
		deg := p.Degree(i)
		nei := p.Neighbors(i)
		if len(nei) != deg {
			return nil, errors.New(errors.ErrCodeContractViolation, "cell %d: %d neighbours for degree %d", i, len(nei), deg)
		}
		if _, err := s.Append(NewCell(nei, p.Anchors(i), p.CenterAnchor(i))); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// TableCell is one row of a [Table].
type TableCell struct {
	Neighbors    []int              `json:"neighbors"`
	Anchors      []hyperbolic.Point `json:"anchors"`
	CenterAnchor hyperbolic.Point   `json:"center"`
}

// Table is a [Provider] backed by literal cell data.
type Table []TableCell

func (t Table) CellCount() int { return len(t) }
func (t Table) Degree(i int) int { return len(t[i].Neighbors) }
func (t Table) Neighbors(i int) []int { return t[i].Neighbors }
func (t Table) Anchors(i int) []hyperbolic.Point { return t[i].Anchors }
func (t Table) CenterAnchor(i int) hyperbolic.Point { return t[i].CenterAnchor }

// TableOf returns the source-space data of s as a [Table].
func TableOf(s *Store) Table {
	t := make(Table, s.Len())
	for i, c := range s.Cells() {
		t[i] = TableCell{Neighbors: c.Neighbors, Anchors: c.Anchors, CenterAnchor: c.CenterAnchor}
	}
	return t
}
