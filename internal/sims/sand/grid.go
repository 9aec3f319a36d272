package sand

import "chrono-ghost/internal/core"

// Rule advances a single particle located at (x, y) / index i. It returns
// the index the particle occupies afterwards, or -1 when it was consumed.
// Rules only touch other cells through the Grid's public operations.
type Rule func(g *Grid, x, y, i int) int

// RuleSet maps every material to its rule. Nil entries are never dispatched.
type RuleSet [NumMaterials]Rule

// Blast records a detonation so hosts can react to it (sound, shake).
type Blast struct {
	X, Y   int
	Radius int
	Frame  uint64
}

// Grid is the dense particle field. It owns the material, meta and
// temperature layers and is advanced in place by Update.
//
// The update is a single in-place pass: a rule may observe neighbours that
// have already moved this tick and others that have not. Scan order is
// chosen so this coupling does not bias the result over time; the grid is
// deliberately not double-buffered.
type Grid struct {
	w, h int

	layout *core.Layer[Material]
	cells  []Material
	meta   []uint8
	temp   []float32

	// stamp holds the frame at which a particle last arrived in a cell
	// during Update, so it is not dispatched twice in one tick.
	stamp    []uint64
	stepping bool

	frameCount      uint64
	activeParticles int

	params Params
	rules  RuleSet
	rng    *core.RNG
	blasts []Blast
}

// NewGrid allocates a w×h grid with every cell empty and at ambient
// temperature. A nil rng is replaced by one seeded with 1.
func NewGrid(w, h int, params Params, rng *core.RNG) *Grid {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	layout := core.NewLayer[Material](w, h)
	temps := core.NewLayer[float32](layout.W, layout.H)
	temps.Fill(AmbientTemp)
	g := &Grid{
		w:      layout.W,
		h:      layout.H,
		layout: layout,
		cells:  layout.Cells(),
		meta:   core.NewLayer[uint8](layout.W, layout.H).Cells(),
		temp:   temps.Cells(),
		stamp:  make([]uint64, layout.W*layout.H),
		params: params,
		rules:  DefaultRules(),
		rng:    rng,
	}
	if g.params.SpoutPeriod <= 0 {
		g.params.SpoutPeriod = 1
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns width*height.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear index of (x, y). The caller must bounds-check.
func (g *Grid) Index(x, y int) int { return g.layout.Index(x, y) }

// Coords returns the coordinates of index i.
func (g *Grid) Coords(i int) (int, int) { return g.layout.Coords(i) }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool { return g.layout.InBounds(x, y) }

// Get returns the material at (x, y). Anything outside the grid reads as
// Stone so rules treat the border as a solid wall.
func (g *Grid) Get(x, y int) Material {
	if !g.layout.InBounds(x, y) {
		return Stone
	}
	return g.cells[y*g.w+x]
}

// At returns the material at index i, Stone when i is out of range.
func (g *Grid) At(i int) Material {
	if i < 0 || i >= len(g.cells) {
		return Stone
	}
	return g.cells[i]
}

// IsEmpty reports whether (x, y) is inside the grid and holds nothing.
func (g *Grid) IsEmpty(x, y int) bool { return g.Get(x, y) == Empty }

// Set writes m at (x, y). Writes outside the grid are dropped. Writing Empty
// also clears the meta byte.
func (g *Grid) Set(x, y int, m Material) {
	if !g.layout.InBounds(x, y) {
		return
	}
	mustKnow(m)
	i := y*g.w + x
	g.cells[i] = m
	if m == Empty {
		g.meta[i] = 0
	}
	g.touch(i)
}

// SetCell replaces material and meta at index i in one write.
func (g *Grid) SetCell(i int, m Material, meta uint8) {
	if i < 0 || i >= len(g.cells) {
		return
	}
	mustKnow(m)
	if m == Empty {
		meta = 0
	}
	g.cells[i] = m
	g.meta[i] = meta
	g.touch(i)
}

// MetaAt returns the meta byte at index i.
func (g *Grid) MetaAt(i int) uint8 {
	if i < 0 || i >= len(g.meta) {
		return 0
	}
	return g.meta[i]
}

// SetMeta writes the meta byte of a non-empty cell.
func (g *Grid) SetMeta(i int, v uint8) {
	if i < 0 || i >= len(g.meta) || g.cells[i] == Empty {
		return
	}
	g.meta[i] = v
}

// TempAt returns the temperature at index i, ambient when out of range.
func (g *Grid) TempAt(i int) float32 {
	if i < 0 || i >= len(g.temp) {
		return AmbientTemp
	}
	return g.temp[i]
}

// SetTemp writes the temperature at index i.
func (g *Grid) SetTemp(i int, t float32) {
	if i < 0 || i >= len(g.temp) {
		return
	}
	g.temp[i] = t
}

// Swap exchanges material and meta between two cells. Temperature belongs
// to the location and is not exchanged.
func (g *Grid) Swap(i1, i2 int) {
	if i1 < 0 || i2 < 0 || i1 >= len(g.cells) || i2 >= len(g.cells) || i1 == i2 {
		return
	}
	g.cells[i1], g.cells[i2] = g.cells[i2], g.cells[i1]
	g.meta[i1], g.meta[i2] = g.meta[i2], g.meta[i1]
	g.touch(i1)
	g.touch(i2)
}

// Move copies material and meta from i1 to i2 and leaves i1 empty.
func (g *Grid) Move(i1, i2 int) {
	if i1 < 0 || i2 < 0 || i1 >= len(g.cells) || i2 >= len(g.cells) || i1 == i2 {
		return
	}
	g.cells[i2] = g.cells[i1]
	g.meta[i2] = g.meta[i1]
	g.cells[i1] = Empty
	g.meta[i1] = 0
	g.touch(i2)
}

// Paint stamps a filled circle of m centred on (cx, cy). About one in ten
// candidate cells is skipped for a ragged edge, and every written cell gets
// a random meta byte.
func (g *Grid) Paint(cx, cy, radius int, m Material) {
	mustKnow(m)
	if radius < 0 {
		return
	}
	// distances in float64 so huge radii and far centres cannot overflow
	r2 := float64(radius) * float64(radius)
	y0, y1 := clipSpan(cy, radius, g.h)
	x0, x1 := clipSpan(cx, radius, g.w)
	for y := y0; y <= y1; y++ {
		dy := float64(y) - float64(cy)
		for x := x0; x <= x1; x++ {
			dx := float64(x) - float64(cx)
			if dx*dx+dy*dy > r2 {
				continue
			}
			if g.rng.Chance(g.params.PaintSkipChance) {
				continue
			}
			meta := g.rng.Byte()
			if m == Empty {
				meta = 0
			}
			i := y*g.w + x
			g.cells[i] = m
			g.meta[i] = meta
		}
	}
}

// PaintLine paints circles along the segment from (x0, y0) to (x1, y1) so
// fast drags leave no gaps.
func (g *Grid) PaintLine(x0, y0, x1, y1, radius int, m Material) {
	core.LineStops(x0, y0, x1, y1, radius, func(x, y int) {
		g.Paint(x, y, radius, m)
	})
}

// Clear empties every cell, restores ambient temperature and restarts the
// frame counter.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
		g.meta[i] = 0
		g.temp[i] = AmbientTemp
		g.stamp[i] = 0
	}
	g.frameCount = 0
	g.activeParticles = 0
	g.blasts = g.blasts[:0]
}

// Reseed restarts the random sequence used by painting and rules.
func (g *Grid) Reseed(seed int64) { g.rng.Reseed(seed) }

// RNG exposes the random source shared by the rules.
func (g *Grid) RNG() *core.RNG { return g.rng }

// Params returns the active rule tuning.
func (g *Grid) Params() Params { return g.params }

// SetParams replaces the rule tuning.
func (g *Grid) SetParams(p Params) {
	if p.SpoutPeriod <= 0 {
		p.SpoutPeriod = 1
	}
	g.params = p
}

// SetRule overrides the rule dispatched for m. A nil rule disables it.
func (g *Grid) SetRule(m Material, r Rule) {
	mustKnow(m)
	g.rules[m] = r
}

// FrameCount returns the number of ticks since construction or Clear.
func (g *Grid) FrameCount() uint64 { return g.frameCount }

// ActiveParticles returns how many cells were dispatched by the last tick.
func (g *Grid) ActiveParticles() int { return g.activeParticles }

// Cells exposes the material layer. Callers must treat it as read-only.
func (g *Grid) Cells() []Material { return g.cells }

// MetaBytes exposes the meta layer. Callers must treat it as read-only.
func (g *Grid) MetaBytes() []uint8 { return g.meta }

// Temps exposes the temperature layer. Callers must treat it as read-only.
func (g *Grid) Temps() []float32 { return g.temp }

// Census counts the cells holding each material.
func (g *Grid) Census() [NumMaterials]int {
	var counts [NumMaterials]int
	for _, m := range g.cells {
		counts[m]++
	}
	return counts
}

// Count returns how many cells hold m.
func (g *Grid) Count(m Material) int {
	n := 0
	for _, c := range g.cells {
		if c == m {
			n++
		}
	}
	return n
}

// TakeBlasts returns the detonations since the previous call and forgets them.
func (g *Grid) TakeBlasts() []Blast {
	if len(g.blasts) == 0 {
		return nil
	}
	out := append([]Blast(nil), g.blasts...)
	g.blasts = g.blasts[:0]
	return out
}

func (g *Grid) touch(i int) {
	if g.stepping {
		g.stamp[i] = g.frameCount
	}
}

// clipSpan returns the part of [c-r, c+r] inside [0, n-1] without
// overflowing. An empty span has lo > hi.
func clipSpan(c, r, n int) (lo, hi int) {
	if (c < 0 && r < -c) || (c >= n && r < c-(n-1)) {
		return 1, 0
	}
	lo, hi = 0, n-1
	if c >= 0 && c-r > 0 {
		lo = c - r
	}
	if c < n && c+r >= c && c+r < n-1 {
		hi = c + r
	}
	return lo, hi
}
