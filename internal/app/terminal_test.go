package app

import (
	"testing"

	"chrono-ghost/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return NewTerminal(newSession(t, testConfig()), screen, 30, nil), screen
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestTerminalKeys(t *testing.T) {
	term, _ := newTestTerminal(t)
	w := term.sess.World

	assert.False(t, term.HandleEvent(key(' ')))
	assert.True(t, term.sess.Paused())
	assert.False(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.False(t, term.sess.Paused())

	term.HandleEvent(key('2'))
	assert.Equal(t, sand.Water, w.Brush().Material)
	term.HandleEvent(key(']'))
	assert.Equal(t, 4, w.Brush().Radius)

	term.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.Equal(t, sand.Fire, w.Brush().Material)

	assert.True(t, term.HandleEvent(key('q')))
	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestTerminalMousePaints(t *testing.T) {
	term, _ := newTestTerminal(t)
	w := term.sess.World
	w.SetBrush(sand.Brush{Radius: 0, Material: sand.Stone})

	term.HandleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonPrimary, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(6, 2, tcell.ButtonPrimary, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(6, 2, tcell.ButtonNone, tcell.ModNone))

	for x := 3; x <= 6; x++ {
		assert.Equal(t, sand.Stone, w.Grid().Get(x, 4), "x=%d", x)
	}

	term.HandleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, sand.Empty, w.Grid().Get(3, 4))
}

func TestTerminalDrawShowsStatus(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.sess.World.Grid().Set(0, 0, sand.Stone)
	term.Draw()

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '▀', r)
	fg, _, _ := style.Decompose()
	c := term.sess.World.ColorAt(0, 0)
	assert.Equal(t, tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)), fg)

	// 16 grid rows fill 8 text rows; status starts below them.
	r, _, _, _ = screen.GetContent(0, 8)
	assert.Equal(t, 'F', r)
}
