package px

import "github.com/chewxy/math32"

// Point represents a 2D point or vector in path space.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.LengthSquared())
}

// Arg returns the angle of the vector in radians, in (-π, π].
func (p Point) Arg() float32 {
	return math32.Atan2(p.Y, p.X)
}

// Vector returns the vector from a to b.
func Vector(a, b Point) Point {
	return b.Sub(a)
}

// Cross returns the z component of the cross product of a and b.
func Cross(a, b Point) float32 {
	return a.X*b.Y - a.Y*b.X
}

// Edge is a directed segment of a path. Its direction is the order in which
// it was added.
type Edge struct {
	Start, End Point
}
