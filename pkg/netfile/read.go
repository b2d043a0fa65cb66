package netfile

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Load reads the layout file at path.
//
// A missing file or a malformed header, including one whose canvas, page
// grid, scale, source size or edge length is not positive, yields
// [ErrNothingToLoad]. A header with Created unset yields a net with an
// empty store.
func Load(path string) (*Net, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrNothingToLoad
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a layout from r.
func Read(r io.Reader) (*Net, error) {
	sc := newScanner(r)

	p, ok := sc.header()
	if !ok {
		return nil, ErrNothingToLoad
	}
	if !p.Created {
		return &Net{Params: p, Store: topology.NewStore(0)}, nil
	}

	store, err := sc.body(p.Cells)
	if err != nil {
		return nil, err
	}
	if err := store.Validate(); err != nil {
		return nil, err
	}
	return &Net{Params: p, Store: store}, nil
}

type scanner struct {
	s   *bufio.Scanner
	err error
}

func newScanner(r io.Reader) *scanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &scanner{s: s}
}

func (sc *scanner) next(what string) string {
	if sc.err != nil {
		return ""
	}
	if !sc.s.Scan() {
		if err := sc.s.Err(); err != nil {
			sc.err = errors.Wrap(errors.ErrCodeInvalidFormat, err, "read %s", what)
		} else {
			sc.err = errors.New(errors.ErrCodeInvalidFormat, "unexpected end of file reading %s", what)
		}
		return ""
	}
	return sc.s.Text()
}

func (sc *scanner) int(what string) int {
	tok := sc.next(what)
	if sc.err != nil {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		sc.err = errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", what)
	}
	return v
}

func (sc *scanner) float(what string) float64 {
	tok := sc.next(what)
	if sc.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		sc.err = errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", what)
	}
	return v
}

func (sc *scanner) header() (Params, bool) {
	var p Params
	p.Cells = sc.int("cell count")
	p.CanvasW = sc.int("canvas width")
	p.CanvasH = sc.int("canvas height")
	p.PagesX = sc.int("page columns")
	p.PagesY = sc.int("page rows")
	p.Scale = sc.int("scale")
	p.SourceSize = sc.int("source size")
	p.EdgeLength = sc.float("edge length")
	p.Created = sc.int("created flag") != 0
	return p, sc.err == nil && p.Validate() == nil
}

func (sc *scanner) body(n int) (*topology.Store, error) {
	if n < 0 || n > topology.MaxCells {
		return nil, errors.New(errors.ErrCodeCapacityExceeded, "%d cells exceed the limit of %d", n, topology.MaxCells)
	}

	degrees := make([]int, n)
	for i := range degrees {
		degrees[i] = sc.int("degree")
		if sc.err == nil && (degrees[i] < topology.MinDegree || degrees[i] > topology.MaxDegree) {
			return nil, errors.New(errors.ErrCodeInvalidDegree, "cell %d has degree %d", i, degrees[i])
		}
	}

	cells := make([]*topology.Cell, n)
	for i, deg := range degrees {
		var slots [anchorSlots]hyperbolic.Point
		for k := range slots {
			slots[k].X = sc.float("anchor")
			slots[k].Y = sc.float("anchor")
		}
		nei := make([]int, deg)
		for e := range nei {
			nei[e] = topology.None
		}
		cells[i] = topology.NewCell(nei, slots[:deg], slots[topology.MaxDegree])
	}
	if sc.err != nil {
		return nil, sc.err
	}

	for {
		a, b, e := sc.int("adjacency"), sc.int("adjacency"), sc.int("adjacency")
		if sc.err != nil {
			return nil, sc.err
		}
		if a < 0 {
			break
		}
		if a >= n || b < 0 || b >= n || e < 0 || e >= degrees[a] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "adjacency %d %d %d out of range", a, b, e)
		}
		cells[a].Neighbors[e] = b
	}

	for _, c := range cells {
		c.Center.X = sc.float("centre")
		c.Center.Y = sc.float("centre")
		c.Rotation = sc.float("rotation")
		c.Parent = sc.int("parent")
		if c.Parent < 0 {
			c.Parent = topology.None
		}
	}
	if sc.err != nil {
		return nil, sc.err
	}

	store := topology.NewStore(n)
	for _, c := range cells {
		if _, err := store.Append(c); err != nil {
			return nil, err
		}
	}
	return store, nil
}
