package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chrono-ghost/internal/core"
	"chrono-ghost/internal/sims/sand"
)

type stamp struct {
	x, y, r int
	id      uint8
}

type recorder struct {
	stamps  []stamp
	cleared bool
}

func (r *recorder) Paint(cx, cy, radius int, material uint8) {
	r.stamps = append(r.stamps, stamp{cx, cy, radius, material})
}

func (r *recorder) Clear() { r.cleared = true }

const dam = `
name: dam
clear: true
strokes:
  - material: stone
    x: 0
    y: 5
    to_x: 4
    to_y: 5
    radius: 0
  - material: water
    x: 2
    y: 1
    radius: 1
`

func TestParseAndApply(t *testing.T) {
	s, err := Parse([]byte(dam))
	require.NoError(t, err)
	assert.Equal(t, "dam", s.Name)
	require.Len(t, s.Strokes, 2)

	var rec recorder
	require.NoError(t, s.Apply(&rec, sand.ResolveMaterial))
	assert.True(t, rec.cleared)

	stone, water := uint8(sand.Stone), uint8(sand.Water)
	want := []stamp{
		{0, 5, 0, stone}, {1, 5, 0, stone}, {2, 5, 0, stone}, {3, 5, 0, stone}, {4, 5, 0, stone},
		{2, 1, 1, water},
	}
	assert.Equal(t, want, rec.stamps)
}

func TestApplyUnknownMaterialPaintsNothing(t *testing.T) {
	s, err := Parse([]byte("strokes:\n  - {material: sand, x: 1, y: 1}\n  - {material: plasma, x: 2, y: 2}\n"))
	require.NoError(t, err)
	var rec recorder
	err = s.Apply(&rec, sand.ResolveMaterial)
	require.ErrorContains(t, err, "plasma")
	assert.Empty(t, rec.stamps)
}

func TestParseRejects(t *testing.T) {
	for name, body := range map[string]string{
		"half line": "strokes:\n  - {material: sand, x: 1, y: 1, to_x: 3}\n",
		"radius":    "strokes:\n  - {material: sand, radius: -1}\n",
		"warmup":    "warmup: -2\n",
		"yaml":      "strokes: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestApplyToSandWorld(t *testing.T) {
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 20, 12
	cfg.Layout = sand.LayoutEmpty
	cfg.Params.PaintSkipChance = 0
	world := sand.NewWithConfig(cfg)
	world.Reset(0)

	s, err := Parse([]byte("warmup: 3\nstrokes:\n  - {material: stone, x: 0, y: 11, to_x: 19, to_y: 11}\n  - {material: sand, x: 10, y: 0}\n"))
	require.NoError(t, err)
	require.NoError(t, s.Apply(world, sand.ResolveMaterial))

	g := world.Grid()
	assert.Equal(t, 20, g.Count(sand.Stone))
	assert.Equal(t, sand.Sand, g.Get(10, 3), "warmup ticks let the grain fall")
	assert.Equal(t, uint64(3), g.FrameCount())
	var _ core.Sim = world
	var _ core.LinePainter = world
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dam), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Strokes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestBundledScenesApply(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		s, err := Load(path)
		require.NoError(t, err, path)
		w := sand.New(200, 150)
		w.Reset(1)
		require.NoError(t, s.Apply(w, sand.ResolveMaterial), path)
		assert.Less(t, w.Grid().Count(sand.Empty), w.Grid().Len(), path)
	}
}
