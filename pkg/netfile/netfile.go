package netfile

import (
	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/topology"
)

// DefaultPath is the layout file used when none is given.
const DefaultPath = "papermodeldata.txt"

// anchorSlots is the number of coordinate pairs stored per cell.
const anchorSlots = topology.MaxDegree + 1

// ErrNothingToLoad reports that no usable layout exists at the given path.
var ErrNothingToLoad = errors.New(errors.ErrCodeNothingToLoad, "nothing to load")

// Params is the global state stored in the file header.
type Params struct {
	Cells      int     // Cell count from the header
	CanvasW    int     // Net canvas width in editor units
	CanvasH    int     // Net canvas height in editor units
	PagesX     int     // Page columns the export is tiled into
	PagesY     int     // Page rows the export is tiled into
	Scale      int     // Export pixels per editor unit
	SourceSize int     // Edge of the square source-space image in pixels
	EdgeLength float64 // Flat side length of every cell
	Created    bool    // Whether the body (cells and layout) follows
}

// DefaultParams returns the parameters of a new net.
func DefaultParams() Params {
	return Params{
		CanvasW:    800,
		CanvasH:    600,
		PagesX:     2,
		PagesY:     2,
		Scale:      4,
		SourceSize: 4096,
		EdgeLength: 40,
	}
}

// Net is a layout file in memory.
type Net struct {
	Params
	Store *topology.Store
}

// New returns a created net over store with the given parameters.
func New(p Params, store *topology.Store) *Net {
	p.Cells = store.Len()
	p.Created = true
	return &Net{Params: p, Store: store}
}

// Validate checks the header fields that size the canvas, the page grid
// and the source image. The cell count is checked by the loader.
func (p Params) Validate() error {
	switch {
	case p.CanvasW <= 0 || p.CanvasH <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "canvas %dx%d must be positive", p.CanvasW, p.CanvasH)
	case p.PagesX <= 0 || p.PagesY <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "page grid %dx%d must be positive", p.PagesX, p.PagesY)
	case p.Scale <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "scale %d must be positive", p.Scale)
	case p.SourceSize <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "source size %d must be positive", p.SourceSize)
	case !(p.EdgeLength > 0):
		return errors.New(errors.ErrCodeInvalidInput, "edge length %v must be positive", p.EdgeLength)
	}
	return nil
}

// Validate checks the header parameters and the store.
func (n *Net) Validate() error {
	p := n.Params
	if p.Cells < 0 || p.Cells > topology.MaxCells {
		return errors.New(errors.ErrCodeCapacityExceeded, "%d cells exceed the limit of %d", p.Cells, topology.MaxCells)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.Created {
		return nil
	}
	if n.Store == nil || n.Store.Len() != p.Cells {
		return errors.New(errors.ErrCodeContractViolation, "header announces %d cells", p.Cells)
	}
	return n.Store.Validate()
}
