package topology

import "github.com/matzehuels/papernet/pkg/errors"

// Validate checks the structural rules of the complex and its forest:
//   - capacity and per-cell degree limits
//   - neighbour ids in range, never the cell itself
//   - symmetric neighbour relation
//   - parents in range and adjacent to their children
//   - no cell is its own ancestor
//
// Violations of the neighbour rules come from the geometry provider and are
// reported as [errors.ErrCodeContractViolation].
func (s *Store) Validate() error {
	n := len(s.cells)
	if n > MaxCells {
		return errors.New(errors.ErrCodeCapacityExceeded, "%d cells exceed the limit of %d", n, MaxCells)
	}

	for i, c := range s.cells {
		if err := checkDegree(i, c); err != nil {
			return err
		}
		for e, j := range c.Neighbors {
			switch {
			case j == None:
				continue
			case j < 0 || j >= n:
				return errors.New(errors.ErrCodeContractViolation, "cell %d edge %d: neighbour %d out of range", i, e, j)
			case j == i:
				return errors.New(errors.ErrCodeContractViolation, "cell %d edge %d: cell is its own neighbour", i, e)
			case s.cells[j].EdgeTo(i) == None:
				return errors.New(errors.ErrCodeContractViolation, "cell %d edge %d: neighbour %d does not point back", i, e, j)
			}
		}
		if p := c.Parent; p != None {
			if p < 0 || p >= n {
				return errors.New(errors.ErrCodeContractViolation, "cell %d: parent %d out of range", i, p)
			}
			if c.EdgeTo(p) == None {
				return errors.New(errors.ErrCodeContractViolation, "cell %d: parent %d is not a neighbour", i, p)
			}
		}
	}

	return s.checkForest()
}

// checkForest walks every parent chain once, colouring cells as they are
// visited. A chain that runs into a cell still on the current walk is a cycle.
func (s *Store) checkForest() error {
	const (
		white = iota
		gray
		black
	)
	color := make([]uint8, len(s.cells))
	var walk []int
	for start := range s.cells {
		walk = walk[:0]
		i := start
		for i != None && color[i] == white {
			color[i] = gray
			walk = append(walk, i)
			i = s.cells[i].Parent
		}
		if i != None && color[i] == gray {
			return errors.New(errors.ErrCodeContractViolation, "glue forest has a cycle through cell %d", i)
		}
		for _, w := range walk {
			color[w] = black
		}
	}
	return nil
}
