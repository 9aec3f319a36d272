//go:build ebiten

package render

import (
	"image/color"

	"chrono-ghost/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image the size of the grid and uploads the
// sim's pixels into it each frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the current frame of sim and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, palette []color.RGBA, scale int) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	Fill(gp.buf, sim, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
