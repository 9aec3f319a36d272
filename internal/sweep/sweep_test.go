package sweep

import (
	"context"
	"testing"
	"time"

	"chrono-ghost/internal/sims/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() sand.Config {
	cfg := sand.DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	return cfg
}

func TestGridExpandsSeedsAndValues(t *testing.T) {
	base := sand.DefaultParams()
	scenarios := Grid(base, []int64{1, 2}, map[string][]float64{
		"spout_period":  {2, 8},
		"acid_strength": {0.5},
		"bogus":         {1},
	})
	require.Len(t, scenarios, 4)
	assert.Equal(t, "acid_strength=0.5 spout_period=2", scenarios[0].Label)
	assert.Equal(t, 8, scenarios[1].Params.SpoutPeriod)
	assert.InDelta(t, 0.5, scenarios[1].Params.AcidStrength, 1e-9)
	assert.Equal(t, int64(2), scenarios[3].Seed)
}

func TestGridWithoutVariation(t *testing.T) {
	scenarios := Grid(sand.DefaultParams(), []int64{7}, nil)
	require.Len(t, scenarios, 1)
	assert.Equal(t, sand.DefaultParams(), scenarios[0].Params)
	assert.Empty(t, scenarios[0].Label)
}

func TestRunMatchesSerialWorld(t *testing.T) {
	cfg := smallConfig()
	scenarios := Grid(cfg.Params, []int64{3, 4, 5}, nil)
	results, err := Run(context.Background(), cfg, scenarios, 40, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, scenarios[i].Seed, res.Scenario.Seed)
		assert.Equal(t, 40, res.Ticks)

		c := cfg
		c.Seed = res.Scenario.Seed
		w := sand.NewWithConfig(c)
		w.Reset(c.Seed)
		for k := 0; k < 40; k++ {
			w.Step()
		}
		assert.Equal(t, w.Grid().Census(), res.Census, "seed %d", res.Scenario.Seed)
		assert.Positive(t, res.Particles(), "the spouts should have emitted")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallConfig(), Grid(sand.DefaultParams(), []int64{1}, nil), 10, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank(t *testing.T) {
	var a, b Result
	a.Scenario.Seed = 1
	a.Census[sand.Sand] = 3
	b.Scenario.Seed = 2
	b.Census[sand.Sand] = 5
	b.Census[sand.Stone] = 100
	results := []Result{a, b}
	Rank(results)
	assert.Equal(t, int64(2), results[0].Scenario.Seed)
}

func TestTicksPerSecond(t *testing.T) {
	assert.Zero(t, Result{Ticks: 10}.TicksPerSecond())
	assert.InDelta(t, 20.0, Result{Ticks: 10, Elapsed: 500 * time.Millisecond}.TicksPerSecond(), 1e-9)
}
