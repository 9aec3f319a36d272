package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chrono-ghost/internal/core"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalSinkHalfBlocks(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	sink := NewTerminalSink(screen)
	sim := &shadedSim{paletteSim{size: core.Size{W: 4, H: 3}}}

	sink.Draw(sim, sim.Size())

	r, _, style, _ := screen.GetContent(2, 0)
	assert.Equal(t, halfBlock, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(2, 0, 9), fg)
	assert.Equal(t, tcell.NewRGBColor(2, 1, 9), bg)

	_, _, style, _ = screen.GetContent(3, 1)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(3, 2, 9), fg)
	assert.Equal(t, tcell.ColorBlack, bg, "odd height leaves the last lower half blank")

	r, _, _, _ = screen.GetContent(4, 0)
	assert.NotEqual(t, halfBlock, r, "nothing drawn beyond the grid width")
}

func TestTerminalSinkStatus(t *testing.T) {
	screen := newTestScreen(t, 8, 3)
	sink := NewTerminalSink(screen)
	sink.DrawStatus(1, []string{"Frame 12", "x", "overflow"})

	var got []rune
	for x := 0; x < 8; x++ {
		r, _, _, _ := screen.GetContent(x, 1)
		got = append(got, r)
	}
	assert.Equal(t, "Frame 12", string(got))
	r, _, _, _ := screen.GetContent(1, 2)
	assert.Equal(t, ' ', r)
}

func TestGridCoords(t *testing.T) {
	x, y := GridCoords(5, 3)
	assert.Equal(t, 5, x)
	assert.Equal(t, 6, y)
	assert.Equal(t, 2, Rows(3))
	assert.Equal(t, 2, Rows(4))
}
