package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/layout"
	"github.com/matzehuels/papernet/pkg/topology"
)

// WriteComplex encodes the topology and anchors of s as JSON.
func WriteComplex(w io.Writer, s *topology.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(topology.TableOf(s)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode complex")
	}
	return nil
}

// ExportComplex writes the complex of s to a JSON file at path.
func ExportComplex(s *topology.Store, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteComplex(w, s) })
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func pt(p gg.Point) point { return point{X: p.X, Y: p.Y} }

type layoutCell struct {
	Index     int     `json:"index"`
	Parent    int     `json:"parent"`
	Center    point   `json:"center"`
	Rotation  float64 `json:"rotation"`
	Neighbors []int   `json:"neighbors"`
	Vertices  []point `json:"vertices"`
	Labels    []int   `json:"labels"`
}

type layoutDoc struct {
	EdgeLength float64      `json:"edge_length"`
	Cells      []layoutCell `json:"cells"`
}

// WriteLayout encodes the current flat placement of g as JSON.
// It does not propagate; callers lay the net out first.
func WriteLayout(w io.Writer, g *layout.Engine) error {
	doc := layoutDoc{EdgeLength: g.EdgeLength, Cells: make([]layoutCell, g.Store.Len())}
	for i, c := range g.Store.Cells() {
		lc := layoutCell{
			Index:     i,
			Parent:    c.Parent,
			Center:    pt(c.Center),
			Rotation:  c.Rotation,
			Neighbors: c.Neighbors,
			Labels:    c.Labels,
		}
		for _, v := range g.Vertices(i) {
			lc.Vertices = append(lc.Vertices, pt(v))
		}
		doc.Cells[i] = lc
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// ExportLayout writes the layout of g to a JSON file at path.
func ExportLayout(g *layout.Engine, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteLayout(w, g) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "close %s", path)
	}
	return nil
}
