package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned by Parse for unit names it does not recognise.
var ErrUnknownUnit = errors.New("unknown angle unit")

// Unit names the unit an Angle variant stores its value in.
type Unit uint8

const (
	UnitRadians Unit = iota
	UnitDegrees
)

func (u Unit) String() string {
	switch u {
	case UnitDegrees:
		return "deg"
	case UnitRadians:
		return "rad"
	default:
		return "unknown"
	}
}

// Angle is implemented by Degrees and Radians only.
// The stored number is unit-less; the variant gives it meaning.
type Angle interface {
	Value() float64
	Unit() Unit
	String() string

	radians() float64
}

var (
	_ Angle = Degrees(0)
	_ Angle = Radians(0)
)

// Degrees is an angle measured in degrees.
// Converting to and from float64 is free and never changes the unit.
type Degrees float64

// NewDegrees wraps v as a degree angle.
func NewDegrees(v float64) Degrees { return Degrees(v) }

func (d Degrees) Value() float64 {
	return float64(d)
}

func (d *Degrees) SetValue(v float64) {
	*d = Degrees(v)
}

func (d Degrees) Unit() Unit {
	return UnitDegrees
}

func (d Degrees) String() string {
	return format(float64(d))
}

func (d Degrees) radians() float64 {
	return float64(d.ToRadians())
}

// ToRadians converts d to radians: d·(π/180).
func (d Degrees) ToRadians() Radians {
	return Radians((math.Pi / 180) * float64(d))
}

// Radians is an angle measured in radians.
// Converting to and from float64 is free and never changes the unit.
type Radians float64

// NewRadians wraps v as a radian angle.
func NewRadians(v float64) Radians { return Radians(v) }

func (r Radians) Value() float64 {
	return float64(r)
}

func (r *Radians) SetValue(v float64) {
	*r = Radians(v)
}

func (r Radians) Unit() Unit {
	return UnitRadians
}

func (r Radians) String() string {
	return format(float64(r))
}

func (r Radians) radians() float64 {
	return float64(r)
}

// ToDegrees converts r to degrees: r·(180/π).
func (r Radians) ToDegrees() Degrees {
	return Degrees((180 / math.Pi) * float64(r))
}

// InRadians returns the radian value of any Angle variant.
func InRadians(a Angle) Radians {
	return Radians(a.radians())
}

// Parse builds the variant named by unit holding v.
// An empty unit means radians.
func Parse(unit string, v float64) (Angle, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "rad", "radian", "radians":
		return Radians(v), nil
	case "deg", "degree", "degrees":
		return Degrees(v), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
