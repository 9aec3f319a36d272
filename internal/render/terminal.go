package render

import (
	"image/color"

	"chrono-ghost/internal/core"

	"github.com/gdamore/tcell/v2"
)

// halfBlock draws the upper cell in the foreground and the lower one in the
// background, so each terminal row shows two grid rows.
const halfBlock = '▀'

// TerminalSink draws a grid onto a tcell screen.
type TerminalSink struct {
	screen tcell.Screen
	status tcell.Style
}

// NewTerminalSink wraps an initialized screen.
func NewTerminalSink(screen tcell.Screen) *TerminalSink {
	return &TerminalSink{
		screen: screen,
		status: tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}
}

// Rows reports how many terminal rows a grid of height h occupies.
func Rows(h int) int { return (h + 1) / 2 }

// GridCoords maps a terminal cell to the grid cell under it (the upper half).
func GridCoords(col, row int) (int, int) { return col, row * 2 }

// Draw renders src into the top-left corner of the screen, clipped to the
// screen size.
func (t *TerminalSink) Draw(src core.ColorSource, size core.Size) {
	sw, sh := t.screen.Size()
	rows := min(Rows(size.H), sh)
	cols := min(size.W, sw)
	for row := 0; row < rows; row++ {
		y := row * 2
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.Foreground(tcellColor(src.ColorAt(x, y)))
			if y+1 < size.H {
				style = style.Background(tcellColor(src.ColorAt(x, y+1)))
			} else {
				style = style.Background(tcell.ColorBlack)
			}
			t.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

// DrawStatus writes lines starting at terminal row top, clearing the rest
// of each row.
func (t *TerminalSink) DrawStatus(top int, lines []string) {
	sw, sh := t.screen.Size()
	for i, line := range lines {
		row := top + i
		if row >= sh {
			return
		}
		col := 0
		for _, r := range line {
			if col >= sw {
				break
			}
			t.screen.SetContent(col, row, r, nil, t.status)
			col++
		}
		for ; col < sw; col++ {
			t.screen.SetContent(col, row, ' ', nil, t.status)
		}
	}
}

// Show flushes pending changes to the terminal.
func (t *TerminalSink) Show() { t.screen.Show() }

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
