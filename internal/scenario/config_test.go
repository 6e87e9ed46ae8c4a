package scenario

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/mathobjects/pkg/angle"
)

func TestDefinitionBuild(t *testing.T) {
	v, err := Definition{X: f(3), Y: f(4)}.Build()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v.Magnitude(), eps)

	v, err = Definition{Magnitude: f(2), Angle: f(180), Unit: "deg"}.Build()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v.Angle(), eps)

	v, err = Definition{Magnitude: f(2), Angle: f(1)}.Build()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Angle())
}

func TestDefinitionBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{"empty", Definition{}},
		{"mixed", Definition{X: f(1), Y: f(1), Magnitude: f(1)}},
		{"x only", Definition{X: f(1)}},
		{"angle only", Definition{Angle: f(1)}},
		{"unit on cartesian", Definition{X: f(1), Y: f(1), Unit: "deg"}},
		{"bad unit", Definition{Magnitude: f(1), Angle: f(1), Unit: "turns"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			require.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}

	_, err := Definition{Magnitude: f(1), Angle: f(1), Unit: "turns"}.Build()
	require.ErrorIs(t, err, angle.ErrUnknownUnit)
}

func TestLoadYAML(t *testing.T) {
	src := `
name: inline
vectors:
  a: {magnitude: 1, angle: 0.25}
steps:
  - op: neg
    args: [a]
    into: b
`
	s, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "inline", s.Name)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, "b", s.Steps[0].Into)
	assert.NoError(t, s.Validate())
}

func TestLoadYAMLRejectsUnknownFields(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("name: x\nvectorz: {}\n"))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does_not_exist.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, (&Scenario{}).Validate(), ErrEmptyScenario)

	s := &Scenario{
		Vectors: map[string]Definition{"bad": {X: f(1)}},
		Steps:   []Step{{Op: "neg", Args: []string{"bad"}}},
	}
	err := s.Validate()
	require.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), `vector "bad"`)
}
