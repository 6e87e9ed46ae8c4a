package vector

import (
	"math"
	"strconv"

	"github.com/zeusync/mathobjects/pkg/angle"
)

// Vector2D is a planar vector stored in polar form.
//
// The (magnitude, angle) pair is the only state. X and Y are recomputed
// from it on every call, so they can never drift. The angle is in radians
// and is never wrapped into [0, 2π); every consumer goes through cos/sin.
// A negative magnitude is kept as-is and means the opposite sense along
// the same line.
//
// Operators return new values. NormalizeInPlace, SetMagnitude and
// SetAngle are the only mutators.
type Vector2D struct {
	magnitude float64
	angle     float64
}

// Zero returns the zero vector. It equals the zero value of Vector2D.
func Zero() Vector2D {
	return Vector2D{}
}

// New builds a vector from a magnitude and an angle in radians.
func New(magnitude, radians float64) Vector2D {
	return Vector2D{magnitude: magnitude, angle: radians}
}

// FromCartesian builds a vector from its x and y components.
// The angle uses the four-quadrant arctangent, so FromCartesian(0, 1)
// points along +y and FromCartesian(-1, 0) along -x.
func FromCartesian(x, y float64) Vector2D {
	return Vector2D{
		magnitude: math.Hypot(x, y),
		angle:     math.Atan2(y, x),
	}
}

// FromPolar builds a vector from a magnitude and an angle in any unit.
// The angle is converted to radians once; no reference to a is kept.
func FromPolar(magnitude float64, a angle.Angle) Vector2D {
	return New(magnitude, angle.InRadians(a).Value())
}

// Magnitude returns the stored length. It may be negative.
func (v Vector2D) Magnitude() float64 {
	return v.magnitude
}

// Angle returns the stored angle in radians, unwrapped.
func (v Vector2D) Angle() float64 {
	return v.angle
}

// Direction returns the stored angle as a typed radian value.
func (v Vector2D) Direction() angle.Radians {
	return angle.Radians(v.angle)
}

func (v *Vector2D) SetMagnitude(magnitude float64) {
	v.magnitude = magnitude
}

func (v *Vector2D) SetAngle(radians float64) {
	v.angle = radians
}

// X returns magnitude·cos(angle).
func (v Vector2D) X() float64 {
	return v.magnitude * math.Cos(v.angle)
}

// Y returns magnitude·sin(angle).
func (v Vector2D) Y() float64 {
	return v.magnitude * math.Sin(v.angle)
}

// Cartesian returns both components with a single Sincos call.
func (v Vector2D) Cartesian() (x, y float64) {
	sin, cos := math.Sincos(v.angle)
	return v.magnitude * cos, v.magnitude * sin
}

// Component returns X for index 0 and Y for index 1.
// Any other index yields an *IndexError wrapping ErrOutOfRange.
func (v Vector2D) Component(index int) (float64, error) {
	switch index {
	case 0:
		return v.X(), nil
	case 1:
		return v.Y(), nil
	default:
		return 0, &IndexError{Index: index}
	}
}

// NormalizeInPlace sets the magnitude to exactly 1 and keeps the angle.
func (v *Vector2D) NormalizeInPlace() {
	v.magnitude = 1
}

// Normalized returns v / |v|. A zero-length vector gives a degenerate
// result (NaN magnitude) instead of an error; see IsDegenerate.
func (v Vector2D) Normalized() Vector2D {
	return v.Div(v.magnitude)
}

// IsDegenerate reports whether either polar field is NaN or infinite.
func (v Vector2D) IsDegenerate() bool {
	return !isFinite(v.magnitude) || !isFinite(v.angle)
}

// Equal compares the Cartesian components of v and o within tol.
// Two vectors with different stored angles that point the same way are
// equal.
func (v Vector2D) Equal(o Vector2D, tol float64) bool {
	vx, vy := v.Cartesian()
	ox, oy := o.Cartesian()
	return math.Abs(vx-ox) <= tol && math.Abs(vy-oy) <= tol
}

// Endpoints returns the start and end of v drawn as an arrow from origin.
// A drawing surface only needs X and Y of both results.
func (v Vector2D) Endpoints(origin Vector2D) (start, end Vector2D) {
	return origin, origin.Add(v)
}

func (v Vector2D) String() string {
	return "(r=" + strconv.FormatFloat(v.magnitude, 'g', -1, 64) +
		", θ=" + strconv.FormatFloat(v.angle, 'g', -1, 64) + ")"
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
