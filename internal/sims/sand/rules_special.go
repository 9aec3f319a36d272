package sand

// virus converts a random neighbour into virus.
func virus(g *Grid, x, y, i int) int {
	if !g.rng.Chance(g.params.VirusSpreadChance) {
		return i
	}
	o := offsets8[g.rng.IntN(len(offsets8))]
	nx, ny := x+o[0], y+o[1]
	if !g.InBounds(nx, ny) {
		return i
	}
	j := ny*g.w + nx
	switch g.cells[j] {
	case Empty, Stone, Virus, Void:
		return i
	}
	g.SetCell(j, Virus, g.meta[i])
	return i
}

// void deletes whatever touches it.
func void(g *Grid, x, y, i int) int {
	for _, o := range offsets8 {
		nx, ny := x+o[0], y+o[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		j := ny*g.w + nx
		switch g.cells[j] {
		case Empty, Stone, Void:
			continue
		}
		g.SetCell(j, Empty, 0)
	}
	return i
}

// spout returns a rule that emits m every SpoutPeriod ticks, preferring the
// cell below. meta is the spout's tick counter.
func spout(m Material) Rule {
	return func(g *Grid, x, y, i int) int {
		tick := g.meta[i] + 1
		g.meta[i] = tick
		if int(tick)%g.params.SpoutPeriod != 0 {
			return i
		}
		var j int
		if g.IsEmpty(x, y+1) {
			j = (y+1)*g.w + x
		} else {
			j = g.findNeighbour(x, y, Empty)
		}
		if j >= 0 {
			g.SetCell(j, m, g.rng.Byte())
		}
		return i
	}
}

// disco only cycles its meta byte, which renderers map to a hue.
func disco(g *Grid, x, y, i int) int {
	g.meta[i] += 3
	return i
}

// life applies a randomized Game of Life: a cell with fewer than two or more
// than three live neighbours dies; a survivor sometimes seeds a random empty
// neighbour that has exactly three live neighbours. Births are attempted per
// cell rather than computed synchronously for the whole board.
func life(g *Grid, x, y, i int) int {
	n := g.neighbours(x, y, Life)
	if n < 2 || n > 3 {
		g.SetCell(i, Empty, 0)
		return -1
	}
	if !g.rng.Chance(g.params.LifeBirthChance) {
		return i
	}
	e := g.findNeighbour(x, y, Empty)
	if e < 0 {
		return i
	}
	ex, ey := g.Coords(e)
	if g.neighbours(ex, ey, Life) == 3 {
		g.SetCell(e, Life, g.rng.Byte())
	}
	return i
}
