package io_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/errors"
	papio "github.com/matzehuels/papernet/pkg/io"
	"github.com/matzehuels/papernet/pkg/layout"
	"github.com/matzehuels/papernet/pkg/topology"
	"github.com/matzehuels/papernet/pkg/topology/topologytest"
)

func TestComplexRoundTrip(t *testing.T) {
	s := topologytest.MustBuild(topologytest.Flower(5))

	var buf bytes.Buffer
	if err := papio.WriteComplex(&buf, s); err != nil {
		t.Fatalf("WriteComplex() error: %v", err)
	}
	got, err := papio.ReadComplex(&buf)
	if err != nil {
		t.Fatalf("ReadComplex() error: %v", err)
	}

	if got.Len() != s.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), s.Len())
	}
	for i, c := range s.Cells() {
		g := got.Cell(i)
		for e := range c.Neighbors {
			if g.Neighbors[e] != c.Neighbors[e] {
				t.Errorf("cell %d neighbour %d = %d, want %d", i, e, g.Neighbors[e], c.Neighbors[e])
			}
			if g.Anchors[e] != c.Anchors[e] {
				t.Errorf("cell %d anchor %d = %v, want %v", i, e, g.Anchors[e], c.Anchors[e])
			}
		}
		if g.CenterAnchor != c.CenterAnchor {
			t.Errorf("cell %d centre = %v, want %v", i, g.CenterAnchor, c.CenterAnchor)
		}
	}
}

func TestReadComplexRejects(t *testing.T) {
	tri := `{"x":0,"y":0},{"x":1,"y":0},{"x":0,"y":1}`
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `[{"neighbors": [`, errors.ErrCodeInvalidFormat},
		{"anchor count", `[{"neighbors": [-1,-1,-1], "anchors": [{"x":0,"y":0}]}]`, errors.ErrCodeInvalidInput},
		{"degree", `[{"neighbors": [-1,-1], "anchors": [{"x":0,"y":0},{"x":1,"y":0}]}]`, errors.ErrCodeInvalidDegree},
		{"asymmetric", `[{"neighbors": [1,-1,-1], "anchors": [` + tri + `]},
			{"neighbors": [-1,-1,-1], "anchors": [` + tri + `]}]`, errors.ErrCodeContractViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := papio.ReadComplex(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadComplex() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestImportComplexMissing(t *testing.T) {
	_, err := papio.ImportComplex(filepath.Join(t.TempDir(), "none.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportComplex() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportComplex(t *testing.T) {
	s := topologytest.MustBuild(topologytest.Squares(3))
	path := filepath.Join(t.TempDir(), "complex.json")
	if err := papio.ExportComplex(s, path); err != nil {
		t.Fatalf("ExportComplex() error: %v", err)
	}
	got, err := papio.ImportComplex(path)
	if err != nil {
		t.Fatalf("ImportComplex() error: %v", err)
	}
	if got.Len() != 3 {
		t.Errorf("Len() = %d, want 3", got.Len())
	}
}

func TestWriteLayout(t *testing.T) {
	s := topologytest.MustBuild(topologytest.Squares(2))
	s.SeedForest(gg.Pt(400, 300))
	g := layout.New(s, 40)
	if err := g.Propagate(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := papio.WriteLayout(&buf, g); err != nil {
		t.Fatalf("WriteLayout() error: %v", err)
	}

	var doc struct {
		EdgeLength float64 `json:"edge_length"`
		Cells      []struct {
			Index    int `json:"index"`
			Parent   int `json:"parent"`
			Vertices []struct {
				X, Y float64
			} `json:"vertices"`
		} `json:"cells"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("layout is not JSON: %v", err)
	}
	if doc.EdgeLength != 40 || len(doc.Cells) != 2 {
		t.Fatalf("layout = %+v, want 2 cells at edge 40", doc)
	}
	if doc.Cells[0].Parent != topology.None || doc.Cells[1].Parent != 0 {
		t.Errorf("parents = %d, %d, want None, 0", doc.Cells[0].Parent, doc.Cells[1].Parent)
	}
	v := g.Vertex(1, 3)
	got := doc.Cells[1].Vertices[3]
	if got.X != v.X || got.Y != v.Y {
		t.Errorf("cell 1 vertex 3 = (%v, %v), want %v", got.X, got.Y, v)
	}
}
