package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestConversionConstants(t *testing.T) {
	assert.InDelta(t, math.Pi, Degrees(180).ToRadians().Value(), eps)
	assert.InDelta(t, 90.0, Radians(math.Pi/2).ToDegrees().Value(), eps)
	assert.InDelta(t, 2*math.Pi, NewDegrees(360).ToRadians().Value(), eps)
	assert.Equal(t, 0.0, Degrees(0).ToRadians().Value())
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 45, 90, 180, -270, 359.999, 12345.678, 1e-7}
	for _, v := range values {
		assert.InDelta(t, v, Degrees(v).ToRadians().ToDegrees().Value(), 1e-9*math.Max(1, math.Abs(v)))
		assert.InDelta(t, v, Radians(v).ToDegrees().ToRadians().Value(), 1e-9*math.Max(1, math.Abs(v)))
	}
}

func TestValueAccessors(t *testing.T) {
	var d Degrees
	assert.Equal(t, 0.0, d.Value())

	d.SetValue(30)
	assert.Equal(t, 30.0, d.Value())
	assert.Equal(t, 30.0, float64(d))

	r := NewRadians(1.5)
	r.SetValue(math.Inf(-1))
	assert.True(t, math.IsInf(r.Value(), -1))

	r.SetValue(math.NaN())
	assert.True(t, math.IsNaN(r.ToDegrees().Value()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", Degrees(0).String())
	assert.Equal(t, "90", Degrees(90).String())
	assert.Equal(t, "1.5", Radians(1.5).String())
	assert.Equal(t, "-0.25", Radians(-0.25).String())
}

func TestUnit(t *testing.T) {
	assert.Equal(t, UnitDegrees, Degrees(1).Unit())
	assert.Equal(t, UnitRadians, Radians(1).Unit())
	assert.Equal(t, "deg", UnitDegrees.String())
	assert.Equal(t, "rad", UnitRadians.String())
	assert.Equal(t, "unknown", Unit(9).String())
}

func TestInRadians(t *testing.T) {
	assert.InDelta(t, math.Pi/4, InRadians(Degrees(45)).Value(), eps)
	assert.Equal(t, Radians(0.3), InRadians(Radians(0.3)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		unit string
		want Angle
	}{
		{"", Radians(2)},
		{"rad", Radians(2)},
		{"Radians", Radians(2)},
		{"deg", Degrees(2)},
		{" DEGREES ", Degrees(2)},
	}
	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := Parse(tt.unit, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("grad", 2)
	require.ErrorIs(t, err, ErrUnknownUnit)
}

func Benchmark_DegreesToRadians(b *testing.B) {
	b.ReportAllocs()
	d := Degrees(0)
	for i := 0; i < b.N; i++ {
		_ = d.ToRadians()
		d++
	}
}
