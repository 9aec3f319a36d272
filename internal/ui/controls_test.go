package ui

import (
	"testing"

	"chrono-ghost/internal/core"
	"chrono-ghost/internal/sims/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Controls", Title(nil))
	assert.Equal(t, "Sand Controls", Title(sand.New(4, 4)))
}

func TestNextIntClamps(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 3, HasMin: true, HasMax: true}

	v, ok := NextInt(ctrl, 3, 1)
	assert.False(t, ok)
	assert.Equal(t, 3, v)

	v, ok = NextInt(ctrl, 0, -1)
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	v, ok = NextInt(ctrl, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestNextIntWraps(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 3, HasMin: true, HasMax: true, Wrap: true}

	v, ok := NextInt(ctrl, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	v, _ = NextInt(ctrl, 0, -1)
	assert.Equal(t, 3, v)
}

func TestNextFloat(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 1, HasMin: true, HasMax: true}

	v, ok := NextFloat(ctrl, 0.9, 1)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9)

	_, ok = NextFloat(ctrl, 1, 1)
	assert.False(t, ok)

	v, _ = NextFloat(ctrl, 0.5, -1)
	assert.InDelta(t, 0.25, v, 1e-9)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.3", FormatFloat(core.ParameterControl{Step: 0.1}, 0.26))
	assert.Equal(t, "0.25", FormatFloat(core.ParameterControl{Step: 0.05}, 0.25))
	assert.Equal(t, "0.125", FormatFloat(core.ParameterControl{Step: 0.005}, 0.125))
}

func TestReadControlUsesDisplay(t *testing.T) {
	w := sand.New(8, 8)
	w.SetBrush(sand.Brush{Radius: 2, Material: sand.Water})
	snap := w.Parameters()

	var material core.ParameterControl
	for _, c := range w.ParameterControls() {
		if c.Key == "brush_material" {
			material = c
		}
	}
	require.Equal(t, "brush_material", material.Key)

	v := ReadControl(snap, material)
	assert.True(t, v.Valid)
	assert.Equal(t, int(sand.Water), v.Int)
	assert.Equal(t, sand.Water.Label(), v.Text)

	missing := ReadControl(snap, core.ParameterControl{Key: "nope", Type: core.ParamTypeInt})
	assert.False(t, missing.Valid)
	assert.Equal(t, "--", missing.Text)
}
