package sand

import "strconv"

// AmbientTemp is the resting temperature of every cell.
const AmbientTemp = 20.0

// Params holds tunable probabilities and sizes for the material rules.
type Params struct {
	PaintSkipChance     float64 `toml:"paint_skip_chance"`
	LifeBirthChance     float64 `toml:"life_birth_chance"`
	VirusSpreadChance   float64 `toml:"virus_spread_chance"`
	PlantGrowChance     float64 `toml:"plant_grow_chance"`
	SeedSproutChance    float64 `toml:"seed_sprout_chance"`
	AcidStrength        float64 `toml:"acid_strength"`
	AcidSpendChance     float64 `toml:"acid_spend_chance"`
	SteamCondenseChance float64 `toml:"steam_condense_chance"`
	SmokeDecayChance    float64 `toml:"smoke_decay_chance"`
	FireSmokeChance     float64 `toml:"fire_smoke_chance"`
	SpoutPeriod         int     `toml:"spout_period"`
	BlastRadius         int     `toml:"blast_radius"`
}

// Config controls the sand simulation dimensions and rules.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Seed   int64  `toml:"seed"`
	Layout string `toml:"layout"`

	// FixedTPS, when positive, makes Advance run ticks at this rate instead
	// of one tick per host frame.
	FixedTPS int `toml:"fixed_tps"`

	Params Params `toml:"params"`
}

// Layouts understood by Reset.
const (
	LayoutEmpty = "empty"
	LayoutBasin = "basin"
)

// DefaultParams returns the standard rule tuning.
func DefaultParams() Params {
	return Params{
		PaintSkipChance:     0.1,
		LifeBirthChance:     0.25,
		VirusSpreadChance:   0.05,
		PlantGrowChance:     0.05,
		SeedSproutChance:    0.02,
		AcidStrength:        0.2,
		AcidSpendChance:     0.35,
		SteamCondenseChance: 0.01,
		SmokeDecayChance:    0.5,
		FireSmokeChance:     0.4,
		SpoutPeriod:         4,
		BlastRadius:         6,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1337,
		Layout: LayoutBasin,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c from flag-style key/value pairs. Unknown
// keys and unparsable or out-of-range values are ignored.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	setInt(cfg, "w", &c.Width, 1)
	setInt(cfg, "h", &c.Height, 1)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["layout"]; ok && (v == LayoutEmpty || v == LayoutBasin) {
		c.Layout = v
	}
	setInt(cfg, "fixed_tps", &c.FixedTPS, 0)

	p := &c.Params
	setChance(cfg, "paint_skip_chance", &p.PaintSkipChance)
	setChance(cfg, "life_birth_chance", &p.LifeBirthChance)
	setChance(cfg, "virus_spread_chance", &p.VirusSpreadChance)
	setChance(cfg, "plant_grow_chance", &p.PlantGrowChance)
	setChance(cfg, "seed_sprout_chance", &p.SeedSproutChance)
	setChance(cfg, "acid_strength", &p.AcidStrength)
	setChance(cfg, "acid_spend_chance", &p.AcidSpendChance)
	setChance(cfg, "steam_condense_chance", &p.SteamCondenseChance)
	setChance(cfg, "smoke_decay_chance", &p.SmokeDecayChance)
	setChance(cfg, "fire_smoke_chance", &p.FireSmokeChance)
	setInt(cfg, "spout_period", &p.SpoutPeriod, 1)
	setInt(cfg, "blast_radius", &p.BlastRadius, 0)
	return c
}

func setInt(cfg map[string]string, key string, dst *int, min int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

func setChance(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
		*dst = parsed
	}
}

// normalize replaces out-of-range values with defaults.
func (c Config) normalize() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Params.SpoutPeriod <= 0 {
		c.Params.SpoutPeriod = 1
	}
	if c.Params.BlastRadius < 0 {
		c.Params.BlastRadius = 0
	}
	return c
}
