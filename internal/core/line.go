package core

// LinePainter paints a whole brush stroke in one call.
type LinePainter interface {
	PaintLine(x0, y0, x1, y1, radius int, material uint8)
}

// LineStops calls stop at points along the segment from (x0, y0) to
// (x1, y1), spaced by the brush radius, always ending on (x1, y1).
func LineStops(x0, y0, x1, y1, radius int, stop func(x, y int)) {
	steps := max(abs(x1-x0), abs(y1-y0))
	spacing := max(radius, 1)
	for s := 0; s < steps; s += spacing {
		stop(x0+(x1-x0)*s/steps, y0+(y1-y0)*s/steps)
	}
	stop(x1, y1)
}

// PaintLine drags a brush of material across p, delegating to p when it
// paints lines itself.
func PaintLine(p Painter, x0, y0, x1, y1, radius int, material uint8) {
	if lp, ok := p.(LinePainter); ok {
		lp.PaintLine(x0, y0, x1, y1, radius, material)
		return
	}
	LineStops(x0, y0, x1, y1, radius, func(x, y int) {
		p.Paint(x, y, radius, material)
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
