package sand

// fire burns down its lifetime (meta), heats and ignites its neighbours and
// flickers upward. Water quenches it into steam and smoke.
func fire(g *Grid, x, y, i int) int {
	life := g.meta[i]
	if life == 0 {
		if g.rng.Chance(g.params.FireSmokeChance) {
			g.SetCell(i, Smoke, uint8(20+g.rng.IntN(40)))
			return i
		}
		g.SetCell(i, Empty, 0)
		return -1
	}
	burn := uint8(1 + g.rng.IntN(3))
	g.meta[i] = life - min(burn, life)
	g.temp[i] = max(g.temp[i], fireTemp)

	for _, o := range offsets8 {
		nx, ny := x+o[0], y+o[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		j := ny*g.w + nx
		n := g.cells[j]
		switch {
		case n == Water:
			g.SetCell(j, Steam, g.rng.Byte())
			g.SetCell(i, Smoke, uint8(10+g.rng.IntN(20)))
			return i
		case n == C4:
			ignite(g, j)
			return i
		case materials[n].Flammable && g.rng.Chance(materials[n].Flammability):
			ignite(g, j)
		default:
			g.temp[j] += (fireTemp - g.temp[j]) * 0.02
		}
	}

	if g.IsEmpty(x, y-1) && g.rng.Chance(0.3) {
		j := (y-1)*g.w + x
		g.Move(i, j)
		return j
	}
	return i
}

// c4 detonates when touched by fire or heated past its ignition point.
func c4(g *Grid, x, y, i int) int {
	if g.temp[i] < materials[C4].Ignition && !g.hasNeighbour(x, y, Fire) {
		return i
	}
	g.SetCell(i, Empty, 0)
	g.Explode(x, y, g.params.BlastRadius)
	return -1
}
