package render

import (
	"image/color"

	"chrono-ghost/internal/core"
)

// Fill writes the current frame of sim into buf (4 bytes per cell). Sims that
// shade their own cells are asked directly; the rest go through the palette.
func Fill(buf []byte, sim core.Sim, palette []color.RGBA) {
	size := sim.Size()
	if len(buf) < 4*size.W*size.H {
		return
	}
	if src, ok := sim.(core.PixelSource); ok {
		src.FillRGBA(buf)
		return
	}
	fillPaletteRGBA(buf, sim.Cells(), palette)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// HeatScale maps temperatures onto overlay intensity: Cold and below is
// transparent, Hot and above is fully tinted.
type HeatScale struct {
	Cold float32
	Hot  float32
}

// DefaultHeatScale starts tinting just above ambient and saturates at fire
// temperature.
var DefaultHeatScale = HeatScale{Cold: 30, Hot: 900}

// FillHeat writes a translucent heat map of temps into buf. Intensity rises
// from blue through orange to white-hot.
func FillHeat(buf []byte, temps []float32, scale HeatScale) {
	if len(buf) < 4*len(temps) {
		return
	}
	span := scale.Hot - scale.Cold
	if span <= 0 {
		span = 1
	}
	const maxAlpha = 170.0
	for i, t := range temps {
		base := i * 4
		v := float64((t - scale.Cold) / span)
		if v <= 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		if v > 1 {
			v = 1
		}
		c := heatColor(v)
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = uint8(maxAlpha*v + 0.5)
	}
}

func heatColor(v float64) color.RGBA {
	stops := [...]color.RGBA{
		{R: 40, G: 60, B: 220, A: 255},
		{R: 255, G: 120, B: 30, A: 255},
		{R: 255, G: 250, B: 220, A: 255},
	}
	pos := v * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return lerpRGBA(stops[i], stops[i+1], pos-float64(i))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: 255,
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
