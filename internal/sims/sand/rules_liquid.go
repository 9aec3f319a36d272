package sand

// liquid falls like a granular particle and otherwise spreads sideways up
// to the material's dispersion.
func liquid(g *Grid, x, y, i int) int {
	if j := granular(g, x, y, i); j != i {
		return j
	}
	reach := materials[g.cells[i]].Dispersion
	d := g.rng.Sign()
	if j := spread(g, x, y, i, d, reach, 1); j != i {
		return j
	}
	return spread(g, x, y, i, -d, reach, 1)
}

// acid eats a random orthogonal neighbour that is corrodible, sometimes
// being used up in the process, then flows like any liquid.
func acid(g *Grid, x, y, i int) int {
	o := offsets4[g.rng.IntN(len(offsets4))]
	nx, ny := x+o[0], y+o[1]
	if g.InBounds(nx, ny) {
		j := ny*g.w + nx
		if materials[g.cells[j]].Corrodible && g.rng.Chance(g.params.AcidStrength) {
			g.SetCell(j, Empty, 0)
			if g.rng.Chance(g.params.AcidSpendChance) {
				g.SetCell(i, Empty, 0)
				return -1
			}
		}
	}
	return liquid(g, x, y, i)
}
