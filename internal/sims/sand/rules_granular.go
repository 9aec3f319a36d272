package sand

// granular drops the particle straight down, else down one of the
// diagonals in random order, else leaves it resting.
func granular(g *Grid, x, y, i int) int {
	m := g.cells[i]
	if g.canSink(m, x, y+1) {
		return g.shift(i, x, y+1)
	}
	d := g.rng.Sign()
	if g.canSink(m, x+d, y+1) {
		return g.shift(i, x+d, y+1)
	}
	if g.canSink(m, x-d, y+1) {
		return g.shift(i, x-d, y+1)
	}
	return i
}
