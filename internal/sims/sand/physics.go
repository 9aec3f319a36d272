package sand

const (
	boilingPoint = 100
	fireTemp     = 800
	blastHeat    = 1200

	radiativeLoss = 0.01
	airExchange   = 0.15
)

var (
	offsets4 = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	offsets8 = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// diffuseHeat relaxes a particle toward the mean temperature of its four
// neighbours, bleeds heat into adjacent air and applies phase changes.
func diffuseHeat(g *Grid, i int) {
	x, y := g.Coords(i)
	info := &materials[g.cells[i]]
	t := g.temp[i]

	var sum float32
	for _, o := range offsets4 {
		nx, ny := x+o[0], y+o[1]
		if !g.InBounds(nx, ny) {
			sum += AmbientTemp
			continue
		}
		j := ny*g.w + nx
		nt := g.temp[j]
		sum += nt
		if g.cells[j] == Empty {
			// air drifts toward the particle and back toward ambient
			nt += (t - nt) * airExchange
			nt += (AmbientTemp - nt) * airExchange
			g.temp[j] = nt
		}
	}
	t += (sum/4 - t) * info.ThermalRate
	t += (AmbientTemp - t) * radiativeLoss
	g.temp[i] = t

	changePhase(g, i)
}

// conduct equalizes temperature between adjacent conductive particles so
// heat crosses a body of water within a few ticks.
func conduct(g *Grid, i int) {
	if !materials[g.cells[i]].Conductive {
		return
	}
	x, y := g.Coords(i)
	for _, o := range offsets8 {
		nx, ny := x+o[0], y+o[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		j := ny*g.w + nx
		if !materials[g.cells[j]].Conductive {
			continue
		}
		mean := (g.temp[i] + g.temp[j]) / 2
		g.temp[i] = mean
		g.temp[j] = mean
	}
	changePhase(g, i)
}

func changePhase(g *Grid, i int) {
	m := g.cells[i]
	t := g.temp[i]
	switch {
	case m == Water && t >= boilingPoint:
		g.SetCell(i, Steam, g.rng.Byte())
	case materials[m].Flammable && t >= materials[m].Ignition:
		ignite(g, i)
	}
}

// ignite turns the flammable particle at i into fire, or detonates it.
func ignite(g *Grid, i int) {
	switch g.cells[i] {
	case C4:
		x, y := g.Coords(i)
		g.SetCell(i, Empty, 0)
		g.Explode(x, y, g.params.BlastRadius)
		return
	case Gunpowder:
		g.SetCell(i, Fire, uint8(16+g.rng.IntN(16)))
		g.temp[i] = max(g.temp[i], fireTemp*1.5)
		return
	}
	g.SetCell(i, Fire, uint8(24+g.rng.IntN(48)))
	g.temp[i] = max(g.temp[i], fireTemp*0.8)
}

// Explode clears a disc of the given radius around (cx, cy) and spikes the
// temperature of it and a two cell ring beyond. Stone and void survive, and
// C4 caught in the blast is only heated so it detonates on its own.
func (g *Grid) Explode(cx, cy, radius int) {
	if radius < 0 {
		return
	}
	g.blasts = append(g.blasts, Blast{X: cx, Y: cy, Radius: radius, Frame: g.frameCount})
	reach := radius + 2
	r2 := radius * radius
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) {
				continue
			}
			d2 := dx*dx + dy*dy
			if d2 > reach*reach {
				continue
			}
			i := y*g.w + x
			falloff := 1 - float32(d2)/float32(reach*reach+1)
			g.temp[i] += blastHeat * falloff
			if d2 > r2 {
				continue
			}
			switch g.cells[i] {
			case Stone, Void, C4:
				continue
			}
			if d2*2 > r2 && g.rng.Chance(0.3) {
				g.SetCell(i, Fire, uint8(8+g.rng.IntN(24)))
				continue
			}
			g.SetCell(i, Empty, 0)
		}
	}
}
