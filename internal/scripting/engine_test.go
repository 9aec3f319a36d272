package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chrono-ghost/internal/sims/sand"
)

func newWorld(t *testing.T) *sand.World {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	cfg.Layout = sand.LayoutEmpty
	cfg.Params.PaintSkipChance = 0
	w := sand.NewWithConfig(cfg)
	w.Reset(0)
	return w
}

func newEngine(t *testing.T, w *sand.World) *Engine {
	t.Helper()
	e := NewEngine(w, Materials{Resolve: sand.ResolveMaterial, Name: sand.MaterialName}, zap.NewNop())
	t.Cleanup(e.Close)
	return e
}

func TestScriptPaintsAndQueries(t *testing.T) {
	w := newWorld(t)
	e := newEngine(t, w)

	require.NoError(t, e.DoString(`
		line(0, height() - 1, width() - 1, height() - 1, 0, "stone")
		paint(5, 0, 0, "sand")
		step(4)
		result_below = get(5, 4)
		result_count = count("stone")
		result_outside = get(-1, -1)
		result_frame = frame()
	`))

	assert.Equal(t, 16, w.Grid().Count(sand.Stone))
	assert.Equal(t, "sand", e.vm.GetGlobal("result_below").String())
	assert.Equal(t, "16", e.vm.GetGlobal("result_count").String())
	assert.Equal(t, "stone", e.vm.GetGlobal("result_outside").String())
	assert.Equal(t, "4", e.vm.GetGlobal("result_frame").String())
}

func TestScriptClear(t *testing.T) {
	w := newWorld(t)
	e := newEngine(t, w)
	require.NoError(t, e.DoString(`paint(8, 6, 3, "water") clear()`))
	assert.Equal(t, w.Grid().Len(), w.Grid().Count(sand.Empty))
}

func TestScriptErrors(t *testing.T) {
	w := newWorld(t)
	e := newEngine(t, w)
	assert.ErrorContains(t, e.DoString(`paint(1, 1, 1, "plasma")`), "unknown material")
	assert.Error(t, e.DoString(`step(-1)`))
	assert.Error(t, e.DoString(`paint("a")`))
	assert.Equal(t, w.Grid().Len(), w.Grid().Count(sand.Empty))
}

func TestTickHook(t *testing.T) {
	w := newWorld(t)
	e := newEngine(t, w)
	assert.False(t, e.HasTickHook())
	require.NoError(t, e.OnTick(1))

	require.NoError(t, e.DoString(`
		ticks = 0
		function on_tick(frame)
			ticks = ticks + 1
			if frame % 2 == 0 then paint(3, 0, 0, "sand") end
		end
	`))
	require.True(t, e.HasTickHook())
	for f := uint64(1); f <= 4; f++ {
		require.NoError(t, e.OnTick(f))
	}
	assert.Equal(t, "4", e.vm.GetGlobal("ticks").String())
	assert.Equal(t, 1, w.Grid().Count(sand.Sand))

	require.NoError(t, e.DoString(`function on_tick() error("boom") end`))
	assert.ErrorContains(t, e.OnTick(5), "boom")
}

func TestDoFile(t *testing.T) {
	w := newWorld(t)
	e := newEngine(t, w)
	path := filepath.Join(t.TempDir(), "fill.lua")
	require.NoError(t, os.WriteFile(path, []byte(`for x = 0, width() - 1 do paint(x, 0, 0, "stone") end`), 0o644))
	require.NoError(t, e.DoFile(path))
	assert.Equal(t, 16, w.Grid().Count(sand.Stone))
	assert.Error(t, e.DoFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestBundledScriptsRun(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "scripts", "*.lua"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		w := sand.New(64, 48)
		w.Reset(1)
		e := newEngine(t, w)
		require.NoError(t, e.DoFile(path), path)
		for f := uint64(1); f <= 5; f++ {
			w.Step()
			require.NoError(t, e.OnTick(w.Frame()), path)
		}
	}
}
