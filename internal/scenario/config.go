package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/mathobjects/pkg/angle"
	"github.com/zeusync/mathobjects/pkg/vector"
)

// Scenario is a named set of vectors and the steps evaluated over them.
type Scenario struct {
	Name    string                `json:"name" yaml:"name"`
	Vectors map[string]Definition `json:"vectors" yaml:"vectors"`
	Steps   []Step                `json:"steps" yaml:"steps"`
}

// Definition describes one vector either by x/y or by magnitude/angle.
type Definition struct {
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Magnitude *float64 `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	Angle     *float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Unit      string   `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Step is one operation. Args name vectors in the environment.
type Step struct {
	Op    string   `json:"op" yaml:"op"`
	Args  []string `json:"args" yaml:"args"`
	K     *float64 `json:"k,omitempty" yaml:"k,omitempty"`
	Index *int     `json:"index,omitempty" yaml:"index,omitempty"`
	Into  string   `json:"into,omitempty" yaml:"into,omitempty"`
}

// LoadJSON loads a scenario from a JSON reader.
func LoadJSON(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadYAML loads a scenario from a YAML reader.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile picks the decoder from the file extension. Files without a
// .json extension are read as YAML. An unnamed scenario takes the file's
// base name.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var s *Scenario
	if strings.EqualFold(filepath.Ext(path), ".json") {
		s, err = LoadJSON(f)
	} else {
		s, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Validate checks every definition and that there is at least one step.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	for _, name := range s.vectorNames() {
		if _, err := s.Vectors[name].Build(); err != nil {
			return fmt.Errorf("vector %q: %w", name, err)
		}
	}
	return nil
}

// Build turns the definition into a vector.
func (d Definition) Build() (vector.Vector2D, error) {
	cartesian := d.X != nil || d.Y != nil
	polar := d.Magnitude != nil || d.Angle != nil

	switch {
	case cartesian && polar:
		return vector.Vector2D{}, fmt.Errorf("%w: both cartesian and polar fields set", ErrInvalidDefinition)
	case cartesian:
		if d.X == nil || d.Y == nil {
			return vector.Vector2D{}, fmt.Errorf("%w: x and y must both be set", ErrInvalidDefinition)
		}
		if d.Unit != "" {
			return vector.Vector2D{}, fmt.Errorf("%w: unit given for cartesian vector", ErrInvalidDefinition)
		}
		return vector.FromCartesian(*d.X, *d.Y), nil
	case polar:
		if d.Magnitude == nil || d.Angle == nil {
			return vector.Vector2D{}, fmt.Errorf("%w: magnitude and angle must both be set", ErrInvalidDefinition)
		}
		a, err := angle.Parse(d.Unit, *d.Angle)
		if err != nil {
			return vector.Vector2D{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		return vector.FromPolar(*d.Magnitude, a), nil
	default:
		return vector.Vector2D{}, fmt.Errorf("%w: no fields set", ErrInvalidDefinition)
	}
}

func (s *Scenario) vectorNames() []string {
	names := make([]string, 0, len(s.Vectors))
	for name := range s.Vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
