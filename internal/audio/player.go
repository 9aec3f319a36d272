//go:build ebiten

package audio

import (
	"time"

	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Player plays blast bursts through the system speaker.
type Player struct {
	ready bool
	seed  uint32
	log   *zap.Logger
}

// NewPlayer initializes the speaker. On failure the player stays silent.
func NewPlayer(log *zap.Logger) *Player {
	p := &Player{log: log, seed: uint32(time.Now().UnixNano())}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio disabled", zap.Error(err))
		return p
	}
	p.ready = true
	return p
}

// PlayBlasts queues one mixed burst for the given blast radii.
func (p *Player) PlayBlasts(radii []int) {
	if p == nil || !p.ready || len(radii) == 0 {
		return
	}
	p.seed++
	speaker.Play(Mix(radii, p.seed))
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
	}
}
