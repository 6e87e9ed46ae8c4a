package vector

import "math"

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return addition(v, o)
}

// Neg returns the opposite vector: same magnitude, angle + π.
func (v Vector2D) Neg() Vector2D {
	return Vector2D{magnitude: v.magnitude, angle: v.angle + math.Pi}
}

// Sub returns v + (-o).
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return addition(v, o.Neg())
}

// Dot returns the scalar product |v|·|o|·cos(θv − θo).
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.magnitude * o.magnitude * math.Cos(v.angle-o.angle)
}

// Scale returns k·v.
func (v Vector2D) Scale(k float64) Vector2D {
	return scalarMultiply(k, v)
}

// Div returns v·(1/k). Dividing by zero is not guarded and yields an
// infinite or NaN magnitude.
func (v Vector2D) Div(k float64) Vector2D {
	return scalarMultiply(1.0/k, v)
}

// Add returns a + b.
func Add(a, b Vector2D) Vector2D { return a.Add(b) }

// Negate returns -v.
func Negate(v Vector2D) Vector2D { return v.Neg() }

// Subtract returns a - b.
func Subtract(a, b Vector2D) Vector2D { return a.Sub(b) }

// Dot returns the scalar product of a and b.
func Dot(a, b Vector2D) float64 { return a.Dot(b) }

// Scale returns k·v.
func Scale(k float64, v Vector2D) Vector2D { return v.Scale(k) }

// Divide returns v / k.
func Divide(v Vector2D, k float64) Vector2D { return v.Div(k) }

// addition sums in Cartesian space and converts back with the
// four-quadrant arctangent.
func addition(a, b Vector2D) Vector2D {
	ax, ay := a.Cartesian()
	bx, by := b.Cartesian()
	x, y := ax+bx, ay+by
	return Vector2D{
		magnitude: math.Hypot(x, y),
		angle:     math.Atan2(y, x),
	}
}

// scalarMultiply scales by |k| keeping the angle, then negates when k < 0.
// The sign of a negative stored magnitude survives the scaling.
func scalarMultiply(k float64, v Vector2D) Vector2D {
	result := Vector2D{magnitude: math.Abs(k) * v.magnitude, angle: v.angle}
	if k < 0 {
		return result.Neg()
	}
	return result
}
