package vector

import "math"

// Point is anything with Cartesian coordinates. Vector2D satisfies it,
// which is all a drawing surface needs from a vector.
type Point interface {
	X() float64
	Y() float64
}

var _ Point = Vector2D{}

// FromPoint builds the position vector of p.
func FromPoint(p Point) Vector2D {
	return FromCartesian(p.X(), p.Y())
}

// Distance computes the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X()-a.X(), b.Y()-a.Y())
}
