package sand

const sproutGrowth = 48

// plant drinks an adjacent water cell and grows into an adjacent empty one.
// meta is the remaining growth budget; each new cell inherits one less.
func plant(g *Grid, x, y, i int) int {
	budget := g.meta[i]
	if budget == 0 || !g.rng.Chance(g.params.PlantGrowChance) {
		return i
	}
	w := g.findNeighbour(x, y, Water)
	if w < 0 {
		return i
	}
	e := g.findNeighbour(x, y, Empty)
	if e < 0 {
		return i
	}
	g.SetCell(w, Empty, 0)
	g.SetCell(e, Plant, budget-1)
	return i
}

// seed falls like sand and sprouts once it rests on soil next to water.
func seed(g *Grid, x, y, i int) int {
	if j := granular(g, x, y, i); j != i {
		return j
	}
	if below := g.Get(x, y+1); below != Sand && below != Plant {
		return i
	}
	if !g.hasNeighbour(x, y, Water) || !g.rng.Chance(g.params.SeedSproutChance) {
		return i
	}
	g.SetCell(i, Plant, sproutGrowth)
	return i
}
