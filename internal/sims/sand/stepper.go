package sand

// Update advances the grid by one tick. The rules are frame-based: dt is
// accepted for the host's frame loop and does not change what a tick does.
//
// Rows are scanned from the bottom up so a particle that falls is not met
// again further down the same pass. The column direction flips every frame
// to cancel the left/right bias of diagonal tie-breaks. Each dispatched cell
// then runs one physics layer: heat diffusion on even alternation and
// conduction on odd alternation.
func (g *Grid) Update(dt float64) {
	_ = dt
	g.frameCount++
	g.activeParticles = 0
	oddFrame := g.frameCount%2 == 0
	tag := g.frameCount

	g.stepping = true
	for y := g.h - 1; y >= 0; y-- {
		row := y * g.w
		if oddFrame {
			for x := g.w - 1; x >= 0; x-- {
				g.visit(x, y, row+x, tag, oddFrame)
			}
			continue
		}
		for x := 0; x < g.w; x++ {
			g.visit(x, y, row+x, tag, oddFrame)
		}
	}
	g.stepping = false
}

func (g *Grid) visit(x, y, i int, tag uint64, oddFrame bool) {
	m := g.cells[i]
	if m == Empty || m == Stone || g.stamp[i] == tag {
		return
	}
	g.activeParticles++

	at := i
	if rule := g.rules[m]; rule != nil {
		at = rule(g, x, y, i)
	}
	if at < 0 || at >= len(g.cells) {
		return
	}
	if c := g.cells[at]; c == Empty || c == Stone {
		return
	}
	if oddFrame {
		conduct(g, at)
		return
	}
	diffuseHeat(g, at)
}

// DefaultRules returns the rule table for the declared materials.
func DefaultRules() RuleSet {
	return defaultRules
}

var defaultRules = buildRules()

func buildRules() RuleSet {
	var rs RuleSet
	for i := range materials {
		m := Material(i)
		switch materials[i].Category {
		case CategoryGranular:
			rs[m] = granular
		case CategoryLiquid:
			rs[m] = liquid
		case CategoryGas:
			rs[m] = gas
		}
	}
	rs[Acid] = acid
	rs[Steam] = steam
	rs[Smoke] = smoke
	rs[Fire] = fire
	rs[C4] = c4
	rs[Plant] = plant
	rs[Seed] = seed
	rs[Virus] = virus
	rs[Void] = void
	rs[SpoutWater] = spout(Water)
	rs[SpoutSand] = spout(Sand)
	rs[Disco] = disco
	rs[Life] = life
	return rs
}
