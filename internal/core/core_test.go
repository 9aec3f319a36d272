package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerIndexRoundTrip(t *testing.T) {
	l := NewLayer[uint8](7, 5)
	require.Len(t, l.Cells(), 35)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			i := l.Index(x, y)
			gx, gy := l.Coords(i)
			assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
	assert.False(t, l.InBounds(-1, 0))
	assert.False(t, l.InBounds(7, 0))
	assert.True(t, l.InBounds(6, 4))
}

func TestLayerClampsDimensions(t *testing.T) {
	l := NewLayer[float32](0, -3)
	assert.Equal(t, 1, l.W)
	assert.Equal(t, 1, l.H)
	l.Fill(20)
	assert.Equal(t, []float32{20}, l.Cells())
}

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)
	assert.Equal(t, 100*time.Millisecond, fs.Step())
	assert.Zero(t, fs.Advance(40*time.Millisecond))
	assert.Equal(t, 1, fs.Advance(70*time.Millisecond))
	assert.Equal(t, 0, fs.Advance(80*time.Millisecond))
	assert.Equal(t, 1, fs.Advance(10*time.Millisecond))
	assert.Zero(t, fs.Advance(-time.Second))

	assert.Equal(t, DefaultMaxCatchUp, fs.Advance(10*time.Second))
	assert.Zero(t, fs.Advance(50*time.Millisecond), "surplus time is discarded")

	fs.SetMaxCatchUp(0)
	assert.Equal(t, 20, fs.Advance(2*time.Second))

	fs.Advance(50 * time.Millisecond)
	fs.Reset()
	assert.Zero(t, fs.Advance(60*time.Millisecond))
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Step())
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for k := 0; k < 100; k++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	a.Reseed(7)
	b.Reseed(7)
	assert.Equal(t, a.Float64(), b.Float64())

	assert.False(t, a.Chance(0))
	assert.True(t, a.Chance(1))
	assert.Zero(t, a.IntN(0))
	s := a.Sign()
	assert.True(t, s == 1 || s == -1)
}

func TestSnapshotFind(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "m", Value: "3", Display: "Water"}}},
	}}
	p, ok := snap.Find("m")
	require.True(t, ok)
	assert.Equal(t, "Water", p.Shown())
	p, _ = snap.Find("x")
	assert.Equal(t, "1", p.Shown())
	_, ok = snap.Find("nope")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	_, ok := Lookup("nil-factory")
	assert.False(t, ok)
	_, ok = Lookup("")
	assert.False(t, ok)
}
