//go:build !ebiten

package ui

import "chrono-ghost/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{ visible bool }

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Toggle flips the visibility flag.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports the visibility flag.
func (o *Overlay) Visible() bool { return o.visible }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
