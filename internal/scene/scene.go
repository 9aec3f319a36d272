// Package scene loads YAML descriptions of brush strokes and replays them
// onto a sim.
package scene

import (
	"fmt"
	"os"

	"chrono-ghost/internal/core"

	"gopkg.in/yaml.v3"
)

// Stroke is one brush application. When ToX/ToY are set the brush is dragged
// from (X, Y) to (ToX, ToY).
type Stroke struct {
	Material string `yaml:"material"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	ToX      *int   `yaml:"to_x"`
	ToY      *int   `yaml:"to_y"`
	Radius   int    `yaml:"radius"`
}

// Scene is a named list of strokes plus optional warmup ticks.
type Scene struct {
	Name    string   `yaml:"name"`
	Clear   bool     `yaml:"clear"`
	Warmup  int      `yaml:"warmup"`
	Strokes []Stroke `yaml:"strokes"`
}

// Resolver maps material names to the sim's material ids.
type Resolver func(name string) (uint8, bool)

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if s.Warmup < 0 {
		return nil, fmt.Errorf("warmup must not be negative, got %d", s.Warmup)
	}
	for i, st := range s.Strokes {
		if st.Radius < 0 {
			return nil, fmt.Errorf("stroke %d: radius must not be negative", i)
		}
		if (st.ToX == nil) != (st.ToY == nil) {
			return nil, fmt.Errorf("stroke %d: to_x and to_y must be given together", i)
		}
	}
	return &s, nil
}

// Apply paints the scene onto target. Every material is resolved before
// anything is painted so a bad scene leaves the target untouched.
func (s *Scene) Apply(target core.Painter, resolve Resolver) error {
	ids := make([]uint8, len(s.Strokes))
	for i, st := range s.Strokes {
		id, ok := resolve(st.Material)
		if !ok {
			return fmt.Errorf("stroke %d: unknown material %q", i, st.Material)
		}
		ids[i] = id
	}

	if s.Clear {
		if c, ok := target.(core.Clearer); ok {
			c.Clear()
		}
	}
	for i, st := range s.Strokes {
		if st.ToX == nil {
			target.Paint(st.X, st.Y, st.Radius, ids[i])
			continue
		}
		core.PaintLine(target, st.X, st.Y, *st.ToX, *st.ToY, st.Radius, ids[i])
	}
	if sim, ok := target.(core.Sim); ok {
		for k := 0; k < s.Warmup; k++ {
			sim.Step()
		}
	}
	return nil
}
