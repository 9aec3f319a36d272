package sand

// gas rises, bubbling through denser liquids, tries the upper diagonals and
// otherwise drifts sideways.
func gas(g *Grid, x, y, i int) int {
	m := g.cells[i]
	if g.canRise(m, x, y-1) {
		return g.shift(i, x, y-1)
	}
	d := g.rng.Sign()
	if g.canRise(m, x+d, y-1) {
		return g.shift(i, x+d, y-1)
	}
	if g.canRise(m, x-d, y-1) {
		return g.shift(i, x-d, y-1)
	}
	if !g.rng.Bool() {
		return i
	}
	return spread(g, x, y, i, d, materials[m].Dispersion, -1)
}

// smoke thins out over time; meta is its remaining lifetime.
func smoke(g *Grid, x, y, i int) int {
	if g.rng.Chance(g.params.SmokeDecayChance) {
		life := g.meta[i]
		if life == 0 {
			g.SetCell(i, Empty, 0)
			return -1
		}
		g.meta[i] = life - 1
	}
	return gas(g, x, y, i)
}

// steam condenses back into water once it has cooled, faster when pressed
// against a ceiling.
func steam(g *Grid, x, y, i int) int {
	p := g.params.SteamCondenseChance
	if g.Get(x, y-1) == Stone {
		p *= 4
	}
	if g.temp[i] < boilingPoint && g.rng.Chance(p) {
		g.SetCell(i, Water, g.rng.Byte())
		return i
	}
	return gas(g, x, y, i)
}
