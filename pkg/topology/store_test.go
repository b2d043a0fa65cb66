package topology_test

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/topology"
	"github.com/matzehuels/papernet/pkg/topology/topologytest"
)

func TestBuild(t *testing.T) {
	s, err := topology.Build(topologytest.Squares(3))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i, c := range s.Cells() {
		if c.Degree() != 4 {
			t.Errorf("cell %d Degree() = %d, want 4", i, c.Degree())
		}
		if !c.IsRoot() {
			t.Errorf("cell %d Parent = %d, want None", i, c.Parent)
		}
		if len(c.Labels) != 4 {
			t.Errorf("cell %d has %d labels, want 4", i, len(c.Labels))
		}
	}

	if e, ok := s.EdgeTo(1, 0); !ok || e != 2 {
		t.Errorf("EdgeTo(1, 0) = %d, %v, want 2, true", e, ok)
	}
	if j, back, ok := s.BackEdge(0, 0); !ok || j != 1 || back != 2 {
		t.Errorf("BackEdge(0, 0) = %d, %d, %v, want 1, 2, true", j, back, ok)
	}
	if _, _, ok := s.BackEdge(0, 1); ok {
		t.Error("BackEdge(0, 1) ok = true on a border edge")
	}
}

func TestBuildCopiesInput(t *testing.T) {
	table := topologytest.Squares(2)
	s := topologytest.MustBuild(table)

	table[0].Neighbors[0] = 7
	table[0].Anchors[0] = hyperbolic.Point{X: 9}

	if got := s.Cell(0).Neighbors[0]; got != 1 {
		t.Errorf("Neighbors[0] = %d after mutating provider, want 1", got)
	}
	if got := s.Cell(0).Anchors[0].X; got == 9 {
		t.Error("anchor shares memory with provider")
	}
}

func TestBuildRejects(t *testing.T) {
	asym := topologytest.Squares(2)
	asym[1].Neighbors[2] = topology.None

	selfRef := topologytest.Squares(2)
	selfRef[0].Neighbors[1] = 0

	outOfRange := topologytest.Squares(2)
	outOfRange[0].Neighbors[1] = 5

	lowDegree := topology.Table{{
		Neighbors: []int{topology.None, topology.None},
		Anchors:   topologytest.Polygon(0, 0, 0.1, 2),
	}}

	highDegree := topology.Table{{
		Neighbors: make([]int, 8),
		Anchors:   topologytest.Polygon(0, 0, 0.1, 8),
	}}
	for e := range highDegree[0].Neighbors {
		highDegree[0].Neighbors[e] = topology.None
	}

	missingAnchor := topologytest.Squares(1)
	missingAnchor[0].Anchors = missingAnchor[0].Anchors[:3]

	tests := []struct {
		name  string
		table topology.Table
		code  errors.Code
	}{
		{"asymmetric", asym, errors.ErrCodeContractViolation},
		{"self neighbour", selfRef, errors.ErrCodeContractViolation},
		{"out of range", outOfRange, errors.ErrCodeContractViolation},
		{"degree 2", lowDegree, errors.ErrCodeInvalidDegree},
		{"degree 8", highDegree, errors.ErrCodeInvalidDegree},
		{"missing anchor", missingAnchor, errors.ErrCodeContractViolation},
		{"too many cells", make(topology.Table, topology.MaxCells+1), errors.ErrCodeCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := topology.Build(tt.table)
			if err == nil {
				t.Fatal("Build() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestAppendCapacity(t *testing.T) {
	s := topology.NewStore(0)
	cell := func() *topology.Cell {
		return topology.NewCell([]int{-1, -1, -1}, topologytest.Polygon(0, 0, 0.1, 3), hyperbolic.Origin)
	}
	for i := 0; i < topology.MaxCells; i++ {
		if _, err := s.Append(cell()); err != nil {
			t.Fatalf("Append() #%d error = %v", i, err)
		}
	}
	if _, err := s.Append(cell()); !errors.Is(err, errors.ErrCodeCapacityExceeded) {
		t.Errorf("Append() past capacity error = %v, want %v", err, errors.ErrCodeCapacityExceeded)
	}
}

func TestValidateForest(t *testing.T) {
	tests := []struct {
		name    string
		parents []int
		wantErr bool
	}{
		{"all roots", []int{-1, -1, -1, -1}, false},
		{"chain", []int{-1, 0, 1, 2}, false},
		{"two trees", []int{-1, 0, -1, 2}, false},
		{"reversed chain", []int{1, 2, 3, -1}, false},
		{"two cycle", []int{1, 0, -1, -1}, true},
		{"long cycle", []int{1, 2, 3, 2}, true},
		{"not a neighbour", []int{-1, -1, 0, -1}, true},
		{"out of range", []int{-1, 9, -1, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := topologytest.MustBuild(topologytest.Squares(4))
			for i, p := range tt.parents {
				s.Cell(i).Parent = p
			}
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSeedForest(t *testing.T) {
	s := topologytest.MustBuild(topologytest.Flower(5))
	s.Cell(3).Rotation = 1

	centre := gg.Pt(320, 240)
	s.SeedForest(centre)

	want := []int{-1, 0, 0, 0, 0, 0}
	for i, c := range s.Cells() {
		if c.Parent != want[i] {
			t.Errorf("cell %d Parent = %d, want %d", i, c.Parent, want[i])
		}
		if c.Center != centre || c.Rotation != 0 {
			t.Errorf("cell %d placement = %v, %v, want %v, 0", i, c.Center, c.Rotation, centre)
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() after SeedForest error = %v", err)
	}
	if roots := s.Roots(); len(roots) != 1 || roots[0] != 0 {
		t.Errorf("Roots() = %v, want [0]", roots)
	}
}

func TestChildren(t *testing.T) {
	s := topologytest.MustBuild(topologytest.Squares(4))
	s.SeedForest(gg.Pt(0, 0))

	children := s.Children()
	for i, want := range []int{1, 2, 3} {
		if len(children[i]) != 1 || children[i][0] != want {
			t.Errorf("Children()[%d] = %v, want [%d]", i, children[i], want)
		}
	}
	if len(children[3]) != 0 {
		t.Errorf("Children()[3] = %v, want empty", children[3])
	}
}

func TestClone(t *testing.T) {
	s := topologytest.MustBuild(topologytest.Squares(2))
	d := s.Clone()
	d.Cell(1).Parent = 0
	d.Cell(0).Labels[0] = 4

	if s.Cell(1).Parent != topology.None {
		t.Error("Clone() shares parent with original")
	}
	if s.Cell(0).Labels[0] != topology.None {
		t.Error("Clone() shares labels with original")
	}
}
