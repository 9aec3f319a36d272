//go:build !ebiten

package audio

import "go.uber.org/zap"

// Player is silent in headless builds.
type Player struct{}

// NewPlayer returns a silent player.
func NewPlayer(*zap.Logger) *Player { return &Player{} }

// PlayBlasts is a no-op in headless builds.
func (p *Player) PlayBlasts([]int) {}

// Close is a no-op in headless builds.
func (p *Player) Close() {}
