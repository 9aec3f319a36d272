package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Painter is implemented by sims that accept brush strokes from the host.
// Material values are sim-specific identifiers.
type Painter interface {
	Paint(cx, cy, radius int, material uint8)
}

// Clearer wipes a sim back to its empty state without reseeding it.
type Clearer interface {
	Clear()
}

// PixelSource fills an RGBA buffer (4 bytes per cell, row-major) directly.
// Sims that need per-cell shading beyond a fixed palette implement it.
type PixelSource interface {
	FillRGBA(buf []byte)
}

// ColorSource reports the display color of a single cell.
type ColorSource interface {
	ColorAt(x, y int) color.RGBA
}

// StatusProvider exposes short human readable status lines for HUDs.
type StatusProvider interface {
	Status() []string
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}
