package transfer

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/hyperbolic"
)

// recorder is a surface that keeps every write.
type recorder struct {
	px     map[[2]int]gg.RGBA
	writes int
}

func newRecorder() *recorder { return &recorder{px: make(map[[2]int]gg.RGBA)} }

func (r *recorder) SetPixel(x, y int, c gg.RGBA) {
	r.px[[2]int{x, y}] = c
	r.writes++
}

// identity copies a planar source onto itself, encoding the source position
// in the sampled colour.
func identity(dst Surface) *Copier[gg.Point] {
	return &Copier[gg.Point]{
		Dst:       dst,
		Sample:    func(p gg.Point) gg.RGBA { return gg.RGBA{R: p.X, G: p.Y, A: 1} },
		SourceMid: LinearMid,
	}
}

func TestWellSpread(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		m       int
		ok      bool
	}{
		{"same pixel", 3.2, 3.7, 3.9, 3, true},
		{"adjacent", 3.9, 4.1, 4.8, 3, true},
		{"two apart", 3.9, 5.0, 4.0, 3, false},
		{"negative", -0.5, 0.2, -0.1, -1, true},
		{"negative wide", -1.5, 0.2, -0.1, -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := WellSpread(tt.a, tt.b, tt.c)
			if m != tt.m || ok != tt.ok {
				t.Errorf("WellSpread(%v, %v, %v) = %d, %v, want %d, %v", tt.a, tt.b, tt.c, m, ok, tt.m, tt.ok)
			}
		})
	}
}

func TestRightTriangleCoverage(t *testing.T) {
	r := newRecorder()
	c := identity(r)
	a, b, d := gg.Pt(0, 0), gg.Pt(64, 0), gg.Pt(0, 64)
	c.Triangle(a, b, d, a, b, d)

	// 64 px legs halve to unit legs after six levels, so every leaf is at
	// level 7 and the tree is complete.
	if c.Stats.Calls != 5461 {
		t.Errorf("Calls = %d, want 5461", c.Stats.Calls)
	}
	if c.Stats.Leaves != 4096 {
		t.Errorf("Leaves = %d, want 4096", c.Stats.Leaves)
	}
	if c.Stats.MaxDepth != 7 {
		t.Errorf("MaxDepth = %d, want 7", c.Stats.MaxDepth)
	}
	if c.Stats.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", c.Stats.Dropped)
	}

	for x := 0; x < 64; x++ {
		for y := 0; x+y < 63; y++ {
			col, ok := r.px[[2]int{x, y}]
			if !ok {
				t.Fatalf("interior pixel (%d, %d) not written", x, y)
			}
			if math.Abs(col.R-float64(x)) > 1 || math.Abs(col.G-float64(y)) > 1 {
				t.Errorf("pixel (%d, %d) sampled source (%v, %v)", x, y, col.R, col.G)
			}
		}
	}
	for p := range r.px {
		if p[0] < 0 || p[1] < 0 || p[0]+p[1] > 64 {
			t.Errorf("pixel %v written outside the triangle", p)
		}
	}
}

func TestDepthIsLogarithmic(t *testing.T) {
	for _, span := range []float64{3, 17, 250, 1000, 4096} {
		c := identity(newRecorder())
		p1, p2, p3 := gg.Pt(0.5, 0.5), gg.Pt(span, 0.3*span), gg.Pt(0.2*span, span)
		c.Triangle(p1, p2, p3, p1, p2, p3)

		bound := int(math.Ceil(math.Log2(span))) + 2
		if c.Stats.MaxDepth > bound {
			t.Errorf("span %v: MaxDepth = %d, want <= %d", span, c.Stats.MaxDepth, bound)
		}
		if c.Stats.Dropped != 0 {
			t.Errorf("span %v: Dropped = %d, want 0", span, c.Stats.Dropped)
		}
	}
}

func TestDegenerateTriangles(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		r := newRecorder()
		c := identity(r)
		p := gg.Pt(5.5, 7.25)
		c.Triangle(p, p, p, p, p, p)
		if c.Stats.Calls != 1 || r.writes != 1 {
			t.Errorf("Calls = %d, writes = %d, want 1, 1", c.Stats.Calls, r.writes)
		}
		if _, ok := r.px[[2]int{5, 7}]; !ok {
			t.Error("pixel (5, 7) not written")
		}
	})

	t.Run("segment", func(t *testing.T) {
		r := newRecorder()
		c := identity(r)
		a, b := gg.Pt(0, 0), gg.Pt(32, 0)
		c.Triangle(a, b, b, a, b, b)
		for x := 0; x < 32; x++ {
			if _, ok := r.px[[2]int{x, 0}]; !ok {
				t.Errorf("pixel (%d, 0) on segment not written", x)
			}
		}
	})

	t.Run("non-finite", func(t *testing.T) {
		r := newRecorder()
		c := identity(r)
		bad := gg.Pt(math.NaN(), 0)
		c.Triangle(bad, gg.Pt(10, 0), gg.Pt(0, 10), bad, gg.Pt(10, 0), gg.Pt(0, 10))
		if r.writes != 0 || c.Stats.Dropped != 1 {
			t.Errorf("writes = %d, Dropped = %d, want 0, 1", r.writes, c.Stats.Dropped)
		}
	})

	t.Run("depth limit", func(t *testing.T) {
		r := newRecorder()
		c := identity(r)
		c.MaxDepth = 2
		a, b, d := gg.Pt(0, 0), gg.Pt(64, 0), gg.Pt(0, 64)
		c.Triangle(a, b, d, a, b, d)
		if c.Stats.Dropped != 4 || r.writes != 0 {
			t.Errorf("Dropped = %d, writes = %d, want 4, 0", c.Stats.Dropped, r.writes)
		}
	})
}

func TestCurvedSource(t *testing.T) {
	img := gg.NewPixmap(128, 128)
	img.Clear(gg.White)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			img.SetPixel(x, y, gg.Black)
		}
	}
	src := hyperbolic.NewSampler(img)

	dst := gg.NewPixmap(40, 40)
	c := &Copier[hyperbolic.Point]{
		Dst:       dst,
		Sample:    src.At,
		SourceMid: hyperbolic.Mid,
	}

	// A wedge of the disk above and below the horizontal axis.
	top := hyperbolic.Point{X: 0.5, Y: -0.6}
	bottom := hyperbolic.Point{X: 0.5, Y: 0.6}
	c.Triangle(gg.Pt(0, 20), gg.Pt(39, 0), gg.Pt(39, 39), hyperbolic.Origin, top, bottom)

	if c.Stats.Leaves == 0 || c.Stats.Dropped != 0 {
		t.Fatalf("Stats = %+v", c.Stats)
	}
	if got := dst.GetPixel(30, 5); got != gg.Black {
		t.Errorf("upper half pixel = %v, want black", got)
	}
	if got := dst.GetPixel(30, 34); got != gg.White {
		t.Errorf("lower half pixel = %v, want white", got)
	}
}
