package sand

import (
	"strconv"

	"chrono-ghost/internal/core"
)

// Parameters reports the world's tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.grid.params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.w),
				intParam("h", "Height", w.grid.h),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush_radius", "Brush radius", w.brush.Radius),
				materialParam("brush_material", "Material", w.brush.Material),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("life_birth_chance", "Life birth chance", p.LifeBirthChance),
				floatParam("virus_spread_chance", "Virus spread chance", p.VirusSpreadChance),
				floatParam("plant_grow_chance", "Plant grow chance", p.PlantGrowChance),
				floatParam("acid_strength", "Acid strength", p.AcidStrength),
				floatParam("steam_condense_chance", "Steam condense chance", p.SteamCondenseChance),
				intParam("spout_period", "Spout period", p.SpoutPeriod),
				intParam("blast_radius", "Blast radius", p.BlastRadius),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_material", Label: "Material", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(NumMaterials - 1), HasMin: true, HasMax: true, Wrap: true},
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "life_birth_chance", Label: "Life birth", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "virus_spread_chance", Label: "Virus spread", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "plant_grow_chance", Label: "Plant growth", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "acid_strength", Label: "Acid strength", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "spout_period", Label: "Spout period", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "blast_radius", Label: "Blast radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 24, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and reports whether key is known.
func (w *World) SetIntParameter(key string, value int) bool {
	p := w.grid.params
	switch key {
	case "brush_radius":
		w.SetBrush(Brush{Radius: value, Material: w.brush.Material})
	case "brush_material":
		if value < 0 || value >= NumMaterials {
			return false
		}
		w.brush.Material = Material(value)
	case "spout_period":
		if value < 1 {
			value = 1
		}
		p.SpoutPeriod = value
		w.grid.SetParams(p)
	case "blast_radius":
		if value < 0 {
			value = 0
		}
		p.BlastRadius = value
		w.grid.SetParams(p)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a probability tunable, clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	value = clamp01(value)
	p := w.grid.params
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
	default:
		return false
	}
	w.grid.SetParams(p)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func materialParam(key, label string, m Material) core.Parameter {
	p := intParam(key, label, int(m))
	p.Display = m.Label()
	return p
}
