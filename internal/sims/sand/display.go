package sand

import (
	"image/color"
	"math"
)

// Palette returns the base color of every material, indexed by id.
func Palette() []color.RGBA {
	out := make([]color.RGBA, NumMaterials)
	for i := range materials {
		out[i] = materials[i].Color
	}
	return out
}

// Shade returns the display color of a cell from its material, meta byte
// and temperature.
func Shade(m Material, meta uint8, temp float32) color.RGBA {
	info := &materials[m]
	switch m {
	case Empty:
		if temp <= 60 {
			return info.Color
		}
		glow := clamp01(float64(temp-60) / 600)
		return blend(info.Color, color.RGBA{R: 120, G: 24, B: 8, A: 255}, glow)
	case Fire:
		flicker := float64(meta%64) / 63
		return color.RGBA{R: 255, G: uint8(70 + 140*flicker), B: uint8(10 + 40*flicker), A: 255}
	case Disco:
		return hue(float64(meta) / 256)
	}
	c := info.Color
	if info.Jitter > 0 {
		span := int(info.Jitter)*2 + 1
		delta := int(meta)%span - int(info.Jitter)
		c = color.RGBA{R: addClamp(c.R, delta), G: addClamp(c.G, delta), B: addClamp(c.B, delta), A: c.A}
	}
	if temp > 200 && m != Steam && m != Smoke {
		c = blend(c, color.RGBA{R: 255, G: 90, B: 20, A: 255}, clamp01(float64(temp-200)/800))
	}
	return c
}

// ColorAt returns the display color of (x, y); outside the grid it is the
// stone color.
func (g *Grid) ColorAt(x, y int) color.RGBA {
	if !g.InBounds(x, y) {
		return materials[Stone].Color
	}
	i := y*g.w + x
	return Shade(g.cells[i], g.meta[i], g.temp[i])
}

// FillRGBA writes one RGBA pixel per cell into buf, which must hold at least
// 4*Len() bytes.
func (g *Grid) FillRGBA(buf []byte) {
	if len(buf) < 4*len(g.cells) {
		return
	}
	for i, m := range g.cells {
		c := Shade(m, g.meta[i], g.temp[i])
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

func addClamp(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func blend(base, overlay color.RGBA, w float64) color.RGBA {
	if w <= 0 {
		return base
	}
	if w >= 1 {
		return overlay
	}
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: 255,
	}
}

// hue maps h in [0, 1) to a fully saturated color.
func hue(h float64) color.RGBA {
	h = h - math.Floor(h)
	s := h * 6
	f := s - math.Floor(s)
	up := uint8(255 * f)
	down := uint8(255 * (1 - f))
	switch int(s) {
	case 0:
		return color.RGBA{R: 255, G: up, A: 255}
	case 1:
		return color.RGBA{R: down, G: 255, A: 255}
	case 2:
		return color.RGBA{G: 255, B: up, A: 255}
	case 3:
		return color.RGBA{G: down, B: 255, A: 255}
	case 4:
		return color.RGBA{R: up, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, B: down, A: 255}
	}
}
