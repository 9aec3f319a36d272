//go:build ebiten

package ui

import (
	"chrono-ghost/internal/core"
	"chrono-ghost/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type temperatureProvider interface {
	Temperatures() []float32
}

// Overlay tints the view by cell temperature when enabled.
type Overlay struct {
	sim     core.Sim
	scale   int
	heat    render.HeatScale
	visible bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a hidden heat overlay for sim.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, heat: render.DefaultHeatScale}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	provider, ok := o.sim.(temperatureProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}
	render.FillHeat(o.buf, provider.Temperatures(), o.heat)
	o.img.WritePixels(o.buf)

	scale := max(o.scale, 1)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
