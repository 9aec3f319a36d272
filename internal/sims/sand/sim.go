package sand

import (
	"fmt"
	"image/color"
	"time"

	"chrono-ghost/internal/core"
)

const frameSeconds = 1.0 / 60

// Brush is the paint tool state a host drives from user input.
type Brush struct {
	Radius   int
	Material Material
}

// World is the sand session: one grid plus the brush and optional fixed
// step clock the host interacts with.
type World struct {
	cfg     Config
	grid    *Grid
	clock   *core.FixedStep
	brush   Brush
	display []uint8
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
// The grid starts empty; call Reset to lay out the configured scene.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalize()
	w := &World{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height, cfg.Params, core.NewRNG(cfg.Seed)),
		brush:   Brush{Radius: 3, Material: Sand},
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	if cfg.FixedTPS > 0 {
		w.clock = core.NewFixedStep(cfg.FixedTPS)
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.w, H: w.grid.h} }

// Grid exposes the underlying particle grid.
func (w *World) Grid() *Grid { return w.grid }

// Frame returns the number of ticks since the last reset.
func (w *World) Frame() uint64 { return w.grid.frameCount }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Cells returns the material id of every cell.
func (w *World) Cells() []uint8 {
	for i, m := range w.grid.cells {
		w.display[i] = uint8(m)
	}
	return w.display
}

// CellAt returns the material id at (x, y), stone outside the grid.
func (w *World) CellAt(x, y int) uint8 { return uint8(w.grid.Get(x, y)) }

// Palette exposes the per-material base colors.
func (w *World) Palette() []color.RGBA { return Palette() }

// Reset wipes the grid, reseeds it and lays out the configured scene. A zero
// seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.grid.Clear()
	w.grid.Reseed(effective)
	if w.clock != nil {
		w.clock.Reset()
	}
	if w.cfg.Layout == LayoutBasin {
		w.layBasin()
	}
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.grid.Update(frameSeconds) }

// Advance runs the ticks due after dt of host time. Without a fixed tick
// rate every call is exactly one tick.
func (w *World) Advance(dt time.Duration) int {
	if w.clock == nil {
		w.grid.Update(dt.Seconds())
		return 1
	}
	n := w.clock.Advance(dt)
	step := w.clock.Step().Seconds()
	for k := 0; k < n; k++ {
		w.grid.Update(step)
	}
	return n
}

// Paint stamps a circle of material at (cx, cy).
func (w *World) Paint(cx, cy, radius int, material uint8) {
	w.grid.Paint(cx, cy, radius, Material(material))
}

// PaintLine drags a circle of material from (x0, y0) to (x1, y1).
func (w *World) PaintLine(x0, y0, x1, y1, radius int, material uint8) {
	w.grid.PaintLine(x0, y0, x1, y1, radius, Material(material))
}

// Drag paints a stroke from (x0, y0) to (x1, y1) with the brush.
func (w *World) Drag(x0, y0, x1, y1 int) {
	w.grid.PaintLine(x0, y0, x1, y1, w.brush.Radius, w.brush.Material)
}

// Clear empties the grid without laying out the scene again.
func (w *World) Clear() { w.grid.Clear() }

// Brush returns the current brush.
func (w *World) Brush() Brush { return w.brush }

// SetBrush replaces the brush. Negative radii are clamped to zero and
// unknown materials are ignored.
func (w *World) SetBrush(b Brush) {
	if b.Radius < 0 {
		b.Radius = 0
	}
	if !b.Material.Valid() {
		b.Material = w.brush.Material
	}
	w.brush = b
}

// CycleMaterial moves the brush material by delta, wrapping around.
func (w *World) CycleMaterial(delta int) {
	next := (int(w.brush.Material) + delta) % NumMaterials
	if next < 0 {
		next += NumMaterials
	}
	w.brush.Material = Material(next)
}

// TakeBlasts drains the detonations recorded since the last call.
func (w *World) TakeBlasts() []Blast { return w.grid.TakeBlasts() }

// FillRGBA renders the grid into buf.
func (w *World) FillRGBA(buf []byte) { w.grid.FillRGBA(buf) }

// ColorAt returns the display color of (x, y).
func (w *World) ColorAt(x, y int) color.RGBA { return w.grid.ColorAt(x, y) }

// Temperatures exposes the temperature layer for overlays.
func (w *World) Temperatures() []float32 { return w.grid.temp }

// Status summarizes the world for HUDs.
func (w *World) Status() []string {
	return []string{
		fmt.Sprintf("Frame %d", w.grid.frameCount),
		fmt.Sprintf("Active %d", w.grid.activeParticles),
		fmt.Sprintf("Brush %s r=%d", w.brush.Material.Label(), w.brush.Radius),
	}
}

// layBasin builds a stone basin with a sand and a water spout above it.
func (w *World) layBasin() {
	g := w.grid
	floor := g.h - 1
	for x := 0; x < g.w; x++ {
		g.Set(x, floor, Stone)
	}
	left, right := g.w/8, g.w-1-g.w/8
	top := g.h * 2 / 3
	for y := top; y < floor; y++ {
		g.Set(left, y, Stone)
		g.Set(right, y, Stone)
	}
	g.Set(g.w/3, g.h/8, SpoutSand)
	g.Set(g.w*2/3, g.h/8, SpoutWater)
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		w := NewWithConfig(FromMap(cfg))
		return w
	})
}
