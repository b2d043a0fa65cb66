package topology

import (
	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/errors"
)

// Store is the ordered collection of cells of one complex.
//
// The zero value is an empty store ready for use.
// Store is not safe for concurrent use without external synchronization.
type Store struct {
	cells []*Cell
}

// NewStore returns an empty store with room for n cells.
func NewStore(n int) *Store {
	return &Store{cells: make([]*Cell, 0, max(0, min(n, MaxCells)))}
}

// Len returns the number of cells.
func (s *Store) Len() int { return len(s.cells) }

// Cell returns cell i. It panics if i is out of range.
func (s *Store) Cell(i int) *Cell { return s.cells[i] }

// Cells returns the cells in index order. The slice is shared with the store.
func (s *Store) Cells() []*Cell { return s.cells }

// Append adds c as the next cell and returns its index.
// It enforces the capacity and degree limits; the neighbour relation can only
// be checked once every cell is present (see [Store.Validate]).
func (s *Store) Append(c *Cell) (int, error) {
	if len(s.cells) >= MaxCells {
		return None, errors.New(errors.ErrCodeCapacityExceeded, "store holds at most %d cells", MaxCells)
	}
	if err := checkDegree(len(s.cells), c); err != nil {
		return None, err
	}
	if c.Labels == nil {
		c.Labels = make([]int, c.Degree())
		for e := range c.Labels {
			c.Labels[e] = None
		}
	}
	s.cells = append(s.cells, c)
	return len(s.cells) - 1, nil
}

func checkDegree(i int, c *Cell) error {
	n := c.Degree()
	if n < MinDegree || n > MaxDegree {
		return errors.New(errors.ErrCodeInvalidDegree, "cell %d has degree %d (want %d..%d)", i, n, MinDegree, MaxDegree)
	}
	if len(c.Anchors) != n {
		return errors.New(errors.ErrCodeContractViolation, "cell %d has %d anchors for degree %d", i, len(c.Anchors), n)
	}
	return nil
}

// EdgeTo returns the edge on cell i that points to cell j.
func (s *Store) EdgeTo(i, j int) (int, bool) {
	e := s.cells[i].EdgeTo(j)
	return e, e != None
}

// BackEdge returns the neighbour across edge e of cell i and the edge on
// that neighbour pointing back to i.
func (s *Store) BackEdge(i, e int) (j, back int, ok bool) {
	j = s.cells[i].Neighbors[e]
	if j == None {
		return None, None, false
	}
	back = s.cells[j].EdgeTo(i)
	return j, back, back != None
}

// Glued reports whether edge e of cell i is glued in either direction.
func (s *Store) Glued(i, e int) bool {
	j := s.cells[i].Neighbors[e]
	if j == None {
		return false
	}
	return s.cells[i].Parent == j || s.cells[j].Parent == i
}

// Roots returns the indices of all cells without a glue parent.
func (s *Store) Roots() []int {
	var roots []int
	for i, c := range s.cells {
		if c.IsRoot() {
			roots = append(roots, i)
		}
	}
	return roots
}

// Children returns, for every cell, the cells glued to it in index order.
func (s *Store) Children() [][]int {
	children := make([][]int, len(s.cells))
	for i, c := range s.cells {
		if p := c.Parent; p >= 0 && p < len(s.cells) {
			children[p] = append(children[p], i)
		}
	}
	return children
}

// SeedForest resets the flat placement to the initial forest of a freshly
// built complex: every cell is glued to its lowest-index neighbour below its
// own index, all centres sit at center and all rotations are zero.
func (s *Store) SeedForest(center gg.Point) {
	for i, c := range s.cells {
		c.Center = center
		c.Rotation = 0
		c.Parent = None
		for _, j := range c.Neighbors {
			if j != None && j < i && (c.Parent == None || j < c.Parent) {
				c.Parent = j
			}
		}
		for e := range c.Labels {
			c.Labels[e] = None
		}
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	d := &Store{cells: make([]*Cell, len(s.cells))}
	for i, c := range s.cells {
		d.cells[i] = c.clone()
	}
	return d
}
