package sand

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material identifies what a cell currently contains.
type Material uint8

const (
	Empty Material = iota
	Stone
	Sand
	Water
	Fire
	Smoke
	Plant
	Seed
	Acid
	Oil
	Steam
	Gunpowder
	C4
	Virus
	Void
	SpoutWater
	SpoutSand
	Disco
	Life

	// NumMaterials is the number of declared materials.
	NumMaterials = int(Life) + 1
)

// Category groups materials that share a movement rule family.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryStatic
	CategoryGranular
	CategoryLiquid
	CategoryGas
	CategoryCombustion
	CategoryOrganic
	CategorySpecial
)

// Info is the behavioral metadata of a material.
type Info struct {
	Name     string
	Category Category

	// Density orders fluids: a falling particle may trade places with a
	// liquid or gas of lower density, a rising one with a denser fluid.
	Density int

	Flammable    bool
	Flammability float64 // chance per tick that an adjacent fire ignites it
	Ignition     float32 // temperature at which it catches fire on its own

	Corrodible bool // acid dissolves it
	Conductive bool // shares heat quickly with conductive neighbours

	ThermalRate float32 // fraction of the neighbour temperature gap absorbed per pass
	Dispersion  int     // lateral reach of liquids and gases

	Color  color.RGBA
	Jitter uint8 // brightness variation driven by the meta byte
}

var materials = [NumMaterials]Info{
	Empty: {Name: "empty", Category: CategoryNone, Color: rgb(14, 14, 18)},
	Stone: {Name: "stone", Category: CategoryStatic, Density: 100, ThermalRate: 0.05, Color: rgb(112, 112, 120), Jitter: 10},
	Sand: {Name: "sand", Category: CategoryGranular, Density: 50, Corrodible: true,
		ThermalRate: 0.1, Color: rgb(218, 188, 112), Jitter: 14},
	Water: {Name: "water", Category: CategoryLiquid, Density: 30, Conductive: true,
		ThermalRate: 0.25, Dispersion: 4, Color: rgb(40, 110, 220), Jitter: 6},
	Fire: {Name: "fire", Category: CategoryCombustion, Density: 1, ThermalRate: 0.05, Color: rgb(255, 110, 20)},
	Smoke: {Name: "smoke", Category: CategoryGas, Density: 2, ThermalRate: 0.2, Dispersion: 2,
		Color: rgb(72, 72, 76), Jitter: 8},
	Plant: {Name: "plant", Category: CategoryOrganic, Density: 60, Flammable: true, Flammability: 0.08,
		Ignition: 300, Corrodible: true, ThermalRate: 0.1, Color: rgb(50, 170, 60), Jitter: 16},
	Seed: {Name: "seed", Category: CategoryOrganic, Density: 40, Flammable: true, Flammability: 0.1,
		Ignition: 300, Corrodible: true, ThermalRate: 0.1, Color: rgb(150, 110, 60), Jitter: 10},
	Acid: {Name: "acid", Category: CategoryLiquid, Density: 32, Conductive: true,
		ThermalRate: 0.2, Dispersion: 3, Color: rgb(140, 240, 40), Jitter: 10},
	Oil: {Name: "oil", Category: CategoryLiquid, Density: 20, Flammable: true, Flammability: 0.4,
		Ignition: 250, Corrodible: true, ThermalRate: 0.15, Dispersion: 3, Color: rgb(92, 62, 32), Jitter: 6},
	Steam: {Name: "steam", Category: CategoryGas, Density: 1, Conductive: true, ThermalRate: 0.2,
		Dispersion: 3, Color: rgb(200, 210, 226), Jitter: 10},
	Gunpowder: {Name: "gunpowder", Category: CategoryGranular, Density: 45, Flammable: true,
		Flammability: 0.8, Ignition: 180, Corrodible: true, ThermalRate: 0.1, Color: rgb(62, 62, 68), Jitter: 12},
	C4: {Name: "c4", Category: CategoryCombustion, Density: 80, Flammable: true, Flammability: 1,
		Ignition: 400, Corrodible: true, ThermalRate: 0.1, Color: rgb(230, 224, 190), Jitter: 6},
	Virus: {Name: "virus", Category: CategorySpecial, Density: 60, Flammable: true, Flammability: 0.05,
		Ignition: 150, Corrodible: true, ThermalRate: 0.1, Color: rgb(170, 40, 190), Jitter: 30},
	Void:       {Name: "void", Category: CategorySpecial, Density: 100, Color: rgb(32, 0, 44)},
	SpoutWater: {Name: "spout_water", Category: CategorySpecial, Density: 100, Color: rgb(20, 60, 160)},
	SpoutSand:  {Name: "spout_sand", Category: CategorySpecial, Density: 100, Color: rgb(160, 128, 60)},
	Disco:      {Name: "disco", Category: CategorySpecial, Density: 100, Color: rgb(255, 0, 255)},
	Life: {Name: "life", Category: CategorySpecial, Density: 100, Corrodible: true,
		Color: rgb(230, 240, 120), Jitter: 12},
}

var titleCaser = cases.Title(language.English)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Valid reports whether m is a declared material.
func (m Material) Valid() bool { return int(m) < NumMaterials }

// Info returns the metadata of m. Unknown materials are a programming error.
func (m Material) Info() *Info {
	mustKnow(m)
	return &materials[m]
}

// String returns the registry name of m.
func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materials[m].Name
}

// Label returns a display name such as "Spout Water".
func (m Material) Label() string {
	return titleCaser.String(strings.ReplaceAll(m.String(), "_", " "))
}

// Fluid reports whether m is a liquid or a gas.
func (m Material) Fluid() bool {
	c := materials[m].Category
	return c == CategoryLiquid || c == CategoryGas
}

// MaterialByName resolves a registry name (case-insensitive, spaces or
// dashes accepted in place of underscores).
func MaterialByName(name string) (Material, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i := range materials {
		if materials[i].Name == key {
			return Material(i), true
		}
	}
	return Empty, false
}

// Materials lists every declared material in id order.
func Materials() []Material {
	out := make([]Material, NumMaterials)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

func mustKnow(m Material) {
	if int(m) >= NumMaterials {
		panic(fmt.Sprintf("sand: unknown material id %d", uint8(m)))
	}
}

// ResolveMaterial maps a registry name to the raw id hosts pass to Paint.
func ResolveMaterial(name string) (uint8, bool) {
	m, ok := MaterialByName(name)
	return uint8(m), ok
}

// MaterialName is the inverse of ResolveMaterial.
func MaterialName(id uint8) string { return Material(id).String() }
