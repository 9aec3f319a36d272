// Package sweep runs many headless sand worlds in parallel and summarizes
// how each one ended up.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"time"

	"chrono-ghost/internal/sims/sand"

	"golang.org/x/sync/errgroup"
)

// Scenario is one world to run: a seed plus rule tuning.
type Scenario struct {
	Seed   int64
	Params sand.Params
	Label  string
}

// Result summarizes a finished scenario.
type Result struct {
	Scenario Scenario
	Ticks    int
	Elapsed  time.Duration
	Census   [sand.NumMaterials]int
	Blasts   int
}

// TicksPerSecond reports throughput; zero when nothing was timed.
func (r Result) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}

// Particles counts non-empty, non-stone cells.
func (r Result) Particles() int {
	n := 0
	for m, c := range r.Census {
		if sand.Material(m) == sand.Empty || sand.Material(m) == sand.Stone {
			continue
		}
		n += c
	}
	return n
}

// Grid expands seeds and parameter variants into scenarios. A nil vary
// yields one scenario per seed with the base params.
func Grid(base sand.Params, seeds []int64, vary map[string][]float64) []Scenario {
	variants := []struct {
		params sand.Params
		label  string
	}{{params: base}}

	keys := make([]string, 0, len(vary))
	for k := range vary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var next []struct {
			params sand.Params
			label  string
		}
		for _, v := range variants {
			for _, value := range vary[key] {
				p := v.params
				if !setParam(&p, key, value) {
					continue
				}
				label := fmt.Sprintf("%s=%g", key, value)
				if v.label != "" {
					label = v.label + " " + label
				}
				next = append(next, struct {
					params sand.Params
					label  string
				}{p, label})
			}
		}
		if len(next) > 0 {
			variants = next
		}
	}

	out := make([]Scenario, 0, len(seeds)*len(variants))
	for _, seed := range seeds {
		for _, v := range variants {
			out = append(out, Scenario{Seed: seed, Params: v.params, Label: v.label})
		}
	}
	return out
}

func setParam(p *sand.Params, key string, value float64) bool {
	switch key {
	case "life_birth_chance":
		p.LifeBirthChance = value
	case "virus_spread_chance":
		p.VirusSpreadChance = value
	case "plant_grow_chance":
		p.PlantGrowChance = value
	case "acid_strength":
		p.AcidStrength = value
	case "steam_condense_chance":
		p.SteamCondenseChance = value
	case "smoke_decay_chance":
		p.SmokeDecayChance = value
	case "spout_period":
		p.SpoutPeriod = int(value)
	case "blast_radius":
		p.BlastRadius = int(value)
	default:
		return false
	}
	return true
}

// Run simulates every scenario for steps ticks on base using at most
// workers goroutines. Results keep the order of scenarios. The first
// cancellation stops the remaining work.
func Run(ctx context.Context, base sand.Config, scenarios []Scenario, steps, workers int) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runOne(ctx, base, sc, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, base sand.Config, sc Scenario, steps int) (Result, error) {
	cfg := base
	cfg.Seed = sc.Seed
	cfg.Params = sc.Params
	cfg.FixedTPS = 0
	world := sand.NewWithConfig(cfg)
	world.Reset(sc.Seed)

	res := Result{Scenario: sc}
	start := time.Now()
	for k := 0; k < steps; k++ {
		if k%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		world.Step()
		res.Blasts += len(world.TakeBlasts())
	}
	res.Elapsed = time.Since(start)
	res.Ticks = steps
	res.Census = world.Grid().Census()
	return res, nil
}

// Rank sorts results by descending particle count, then by seed.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		pi, pj := results[i].Particles(), results[j].Particles()
		if pi != pj {
			return pi > pj
		}
		return results[i].Scenario.Seed < results[j].Scenario.Seed
	})
}
