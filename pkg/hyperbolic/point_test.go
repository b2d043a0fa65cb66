package hyperbolic

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestZ(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"origin", Origin, 1},
		{"unit x", Point{X: 1}, math.Sqrt2},
		{"both", Point{X: 2, Y: 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Z(); !near(got, tt.want) {
				t.Errorf("Z() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMidIsEquidistant(t *testing.T) {
	pairs := [][2]Point{
		{Origin, {X: 1.5, Y: 0}},
		{{X: -0.3, Y: 2}, {X: 1, Y: -1}},
		{{X: 4, Y: 4}, {X: -4, Y: 3}},
	}

	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		m := Mid(a, b)
		da, db := Distance(a, m), Distance(m, b)
		if math.Abs(da-db) > 1e-7 {
			t.Errorf("Mid(%v, %v): distances %v and %v differ", a, b, da, db)
		}
		if total := Distance(a, b); math.Abs(da+db-total) > 1e-7 {
			t.Errorf("Mid(%v, %v) not on geodesic: %v + %v != %v", a, b, da, db, total)
		}
	}
}

func TestMidOfSamePoint(t *testing.T) {
	p := Point{X: 0.7, Y: -1.2}
	m := Mid(p, p)
	if !near(m.X, p.X) || !near(m.Y, p.Y) {
		t.Errorf("Mid(p, p) = %v, want %v", m, p)
	}
}

func TestDiskRoundTrip(t *testing.T) {
	for _, p := range []Point{Origin, {X: 1, Y: 2}, {X: -3, Y: 0.5}} {
		x, y := p.Disk()
		if x*x+y*y >= 1 {
			t.Fatalf("Disk(%v) = (%v, %v) outside unit disk", p, x, y)
		}
		q, ok := FromDisk(x, y)
		if !ok {
			t.Fatalf("FromDisk(%v, %v) not ok", x, y)
		}
		if math.Abs(q.X-p.X) > 1e-9 || math.Abs(q.Y-p.Y) > 1e-9 {
			t.Errorf("FromDisk(Disk(%v)) = %v", p, q)
		}
	}

	if _, ok := FromDisk(1, 0); ok {
		t.Error("FromDisk(1, 0) ok = true, want false")
	}
}

func TestProjector(t *testing.T) {
	pr := NewProjector(200)

	x, y := pr.Pixel(Origin)
	if x != 100 || y != 100 {
		t.Errorf("Pixel(origin) = (%d, %d), want (100, 100)", x, y)
	}

	far := Point{X: 1e6}
	q := pr.Project(far)
	if q.X >= 200 || q.X < 100 {
		t.Errorf("Project(far).X = %v, want within image", q.X)
	}

	p := Point{X: 0.4, Y: -0.9}
	back, ok := pr.Unproject(pr.Project(p))
	if !ok || math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("Unproject(Project(%v)) = %v, %v", p, back, ok)
	}
}

func TestSampler(t *testing.T) {
	img := gg.NewPixmap(64, 64)
	img.Clear(gg.White)
	img.SetPixel(32, 32, gg.Black)

	s := NewSampler(img)
	if got := s.At(Origin); got != gg.Black {
		t.Errorf("At(origin) = %v, want black", got)
	}
	if got := s.At(Point{X: 2, Y: 2}); got != gg.White {
		t.Errorf("At(off-centre) = %v, want white", got)
	}
}
