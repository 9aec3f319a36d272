package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "48",
		"seed":              "-7",
		"layout":            "empty",
		"fixed_tps":         "30",
		"life_birth_chance": "0.5",
		"spout_period":      "9",
	})
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, LayoutEmpty, cfg.Layout)
	assert.Equal(t, 30, cfg.FixedTPS)
	assert.Equal(t, 0.5, cfg.Params.LifeBirthChance)
	assert.Equal(t, 9, cfg.Params.SpoutPeriod)
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":                   "0",
		"h":                   "abc",
		"layout":              "maze",
		"virus_spread_chance": "1.5",
		"spout_period":        "0",
	})
	assert.Equal(t, def, cfg)
	assert.Equal(t, def, FromMap(nil))
}

func TestApplyMapKeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.Width = 77
	base.Params.AcidStrength = 0.9
	cfg := ApplyMap(base, map[string]string{"h": "33"})
	assert.Equal(t, 77, cfg.Width)
	assert.Equal(t, 33, cfg.Height)
	assert.Equal(t, 0.9, cfg.Params.AcidStrength)
}
