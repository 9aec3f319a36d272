package app

import "chrono-ghost/internal/sims/sand"

// materialKeys maps the number row to the most used materials.
var materialKeys = map[rune]sand.Material{
	'1': sand.Sand,
	'2': sand.Water,
	'3': sand.Stone,
	'4': sand.Fire,
	'5': sand.Oil,
	'6': sand.Plant,
	'7': sand.Seed,
	'8': sand.Acid,
	'9': sand.C4,
	'0': sand.Empty,
}

// MaterialForKey returns the material bound to a number key.
func MaterialForKey(r rune) (sand.Material, bool) {
	m, ok := materialKeys[r]
	return m, ok
}

// Help lists the shared key bindings.
func Help() []string {
	return []string{
		"1-9,0 material  tab cycle  [ ] radius",
		"space pause  n step  c clear  r reset  s reseed  q quit",
	}
}

// AdjustRadius grows or shrinks the brush, staying within [0, 32].
func AdjustRadius(w *sand.World, delta int) {
	b := w.Brush()
	b.Radius = min(max(b.Radius+delta, 0), 32)
	w.SetBrush(b)
}

// SelectMaterial switches the brush material, keeping its radius.
func SelectMaterial(w *sand.World, m sand.Material) {
	b := w.Brush()
	b.Material = m
	w.SetBrush(b)
}
