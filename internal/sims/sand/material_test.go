package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialNames(t *testing.T) {
	for _, m := range Materials() {
		got, ok := MaterialByName(m.String())
		assert.True(t, ok, "lookup %s", m)
		assert.Equal(t, m, got)
	}
	m, ok := MaterialByName(" Spout-Sand ")
	assert.True(t, ok)
	assert.Equal(t, SpoutSand, m)
	_, ok = MaterialByName("plasma")
	assert.False(t, ok)

	assert.Equal(t, "Spout Water", SpoutWater.Label())
	assert.Equal(t, "C4", C4.Label())
	assert.Equal(t, "material(200)", Material(200).String())
}

func TestUnknownMaterialPanics(t *testing.T) {
	assert.Panics(t, func() { Material(NumMaterials).Info() })
	g := newTestGrid(2, 2)
	assert.Panics(t, func() { g.Set(0, 0, Material(99)) })
}

func TestDensityOrdering(t *testing.T) {
	assert.Less(t, Oil.Info().Density, Water.Info().Density)
	assert.Less(t, Water.Info().Density, Sand.Info().Density)
	assert.Less(t, Steam.Info().Density, Smoke.Info().Density)
	assert.True(t, Oil.Info().Flammable)
	assert.True(t, Water.Fluid())
	assert.False(t, Sand.Fluid())
}

func TestPaletteCoversMaterials(t *testing.T) {
	p := Palette()
	assert.Len(t, p, NumMaterials)
	for i, c := range p {
		assert.Equal(t, uint8(255), c.A, "material %d", i)
	}
}
