package core

// Layer stores a 2D grid of cell values in row-major order.
type Layer[T any] struct {
	W, H int
	data []T
}

// NewLayer allocates a layer with the given dimensions. Non-positive
// dimensions are clamped to one cell.
func NewLayer[T any](w, h int) *Layer[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Layer[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (l *Layer[T]) Cells() []T { return l.data }

// Index returns the linear slice index for coordinates (x, y).
func (l *Layer[T]) Index(x, y int) int { return y*l.W + x }

// Coords is the inverse of Index.
func (l *Layer[T]) Coords(i int) (int, int) { return i % l.W, i / l.W }

// InBounds reports whether (x, y) addresses a cell of the layer.
func (l *Layer[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.W && y < l.H
}

// Fill sets every cell to v.
func (l *Layer[T]) Fill(v T) {
	for i := range l.data {
		l.data[i] = v
	}
}
