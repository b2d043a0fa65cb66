package hyperbolic

import "math"

// Point is a point on the hyperboloid, stored by its x and y coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the point (0, 0, 1).
var Origin = Point{}

// Z returns the implicit third coordinate √(1+x²+y²).
func (p Point) Z() float64 {
	return math.Sqrt(1 + p.X*p.X + p.Y*p.Y)
}

// IsFinite reports whether both stored coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Mid returns the geodesic midpoint of a and b.
func Mid(a, b Point) Point {
	x := a.X + b.X
	y := a.Y + b.Y
	z := a.Z() + b.Z()
	n := math.Sqrt(z*z - x*x - y*y)
	if n == 0 {
		return a
	}
	return Point{X: x / n, Y: y / n}
}

// Distance returns the hyperbolic distance between a and b.
func Distance(a, b Point) float64 {
	c := a.Z()*b.Z() - a.X*b.X - a.Y*b.Y
	if c < 1 {
		// Rounding can push the Minkowski product of nearby points below 1.
		return 0
	}
	return math.Acosh(c)
}

// Disk returns the Poincaré disk coordinates of p.
func (p Point) Disk() (x, y float64) {
	d := 1 + p.Z()
	return p.X / d, p.Y / d
}

// FromDisk returns the hyperboloid point whose Poincaré disk image is (x, y).
// Points on or outside the unit circle have no preimage and report ok=false.
func FromDisk(x, y float64) (p Point, ok bool) {
	r2 := x*x + y*y
	if r2 >= 1 {
		return Point{}, false
	}
	d := 1 - r2
	return Point{X: 2 * x / d, Y: 2 * y / d}, true
}
