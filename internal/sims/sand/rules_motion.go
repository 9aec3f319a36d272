package sand

// canSink reports whether a particle of m may move down into (x, y): the
// cell is empty or holds a lighter liquid or gas to trade places with.
func (g *Grid) canSink(m Material, x, y int) bool {
	t := g.Get(x, y)
	if t == Empty {
		return true
	}
	return t.Fluid() && materials[t].Density < materials[m].Density
}

// canRise reports whether a gas of m may move up into (x, y): the cell is
// empty or holds a denser liquid for the gas to bubble through.
func (g *Grid) canRise(m Material, x, y int) bool {
	t := g.Get(x, y)
	if t == Empty {
		return true
	}
	return materials[t].Category == CategoryLiquid && materials[t].Density > materials[m].Density
}

// shift moves the particle at i into (x, y), swapping when the target is
// occupied, and returns the new index.
func (g *Grid) shift(i, x, y int) int {
	j := y*g.w + x
	if g.cells[j] == Empty {
		g.Move(i, j)
	} else {
		g.Swap(i, j)
	}
	return j
}

// spread slides the particle at i sideways through empty cells, at most
// reach cells, stopping early above a gap in the direction of travel (vy).
func spread(g *Grid, x, y, i, dir, reach, vy int) int {
	last := x
	for k := 1; k <= reach; k++ {
		nx := x + dir*k
		if !g.IsEmpty(nx, y) {
			break
		}
		last = nx
		if g.IsEmpty(nx, y+vy) {
			break
		}
	}
	if last == x {
		return i
	}
	j := y*g.w + last
	g.Move(i, j)
	return j
}

// findNeighbour picks a uniformly random 8-neighbour holding m, or -1.
func (g *Grid) findNeighbour(x, y int, m Material) int {
	found := -1
	seen := 0
	for _, o := range offsets8 {
		nx, ny := x+o[0], y+o[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		j := ny*g.w + nx
		if g.cells[j] != m {
			continue
		}
		seen++
		if seen == 1 || g.rng.IntN(seen) == 0 {
			found = j
		}
	}
	return found
}

// hasNeighbour reports whether any 8-neighbour holds m.
func (g *Grid) hasNeighbour(x, y int, m Material) bool {
	for _, o := range offsets8 {
		if g.Get(x+o[0], y+o[1]) == m {
			return true
		}
	}
	return false
}

// neighbours counts the 8-neighbours holding m.
func (g *Grid) neighbours(x, y int, m Material) int {
	n := 0
	for _, o := range offsets8 {
		if g.Get(x+o[0], y+o[1]) == m {
			n++
		}
	}
	return n
}
