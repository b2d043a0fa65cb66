package netfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Save writes n to path.
//
// The file is written next to its destination and renamed into place, so a
// failed save leaves both the previous file and n untouched.
func Save(path string, n *Net) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "create %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, n); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "rename %s", path)
	}
	return nil
}

// Write encodes n to w.
func Write(w io.Writer, n *Net) error {
	bw := bufio.NewWriter(w)
	p := n.Params

	cells := p.Cells
	var store *topology.Store
	if p.Created {
		if n.Store == nil {
			return errors.New(errors.ErrCodeInvalidInput, "created net has no cells")
		}
		store = n.Store
		cells = store.Len()
	}

	created := 0
	if p.Created {
		created = 1
	}
	fmt.Fprintf(bw, "%d %d %d %d %d %d %d %f %d\n\n",
		cells, p.CanvasW, p.CanvasH, p.PagesX, p.PagesY, p.Scale, p.SourceSize, p.EdgeLength, created)

	if store != nil {
		writeBody(bw, store)
	}
	return bw.Flush()
}

func writeBody(w *bufio.Writer, s *topology.Store) {
	for _, c := range s.Cells() {
		fmt.Fprintf(w, "%d ", c.Degree())
	}
	fmt.Fprint(w, "\n")

	for _, c := range s.Cells() {
		var slots [anchorSlots]hyperbolic.Point
		copy(slots[:], c.Anchors)
		slots[topology.MaxDegree] = c.CenterAnchor
		for _, a := range slots {
			fmt.Fprintf(w, "%9.6f %9.6f ", a.X, a.Y)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "\n\n")

	// Ordered by cell, then neighbour, then edge.
	for i, c := range s.Cells() {
		for j := 0; j < s.Len(); j++ {
			for e, nb := range c.Neighbors {
				if nb == j {
					fmt.Fprintf(w, "%d %d %d  ", i, j, e)
				}
			}
		}
	}
	fmt.Fprint(w, "-1 -1 -1\n\n")

	for _, c := range s.Cells() {
		fmt.Fprintf(w, "%12.7f %12.7f %10.7f %d\n", c.Center.X, c.Center.Y, c.Rotation, c.Parent)
	}
}
