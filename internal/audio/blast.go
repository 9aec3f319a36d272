// Package audio synthesizes the detonation sounds of the sand world.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every streamer in this package is generated at.
const SampleRate = beep.SampleRate(44100)

// blast generates a noise burst with a low rumble under an exponential
// decay envelope.
type blast struct {
	sr     beep.SampleRate
	pos    int
	length int
	decay  float64
	rumble float64
	seed   uint32
}

// NewBlast returns a finite streamer for a detonation of the given radius.
// Bigger blasts ring longer and rumble lower. The seed makes the noise
// reproducible.
func NewBlast(sr beep.SampleRate, radius int, seed uint32) beep.Streamer {
	if radius < 1 {
		radius = 1
	}
	dur := 150*time.Millisecond + time.Duration(radius)*40*time.Millisecond
	if dur > time.Second {
		dur = time.Second
	}
	if seed == 0 {
		seed = 1
	}
	return &blast{
		sr:     sr,
		length: sr.N(dur),
		decay:  4 / dur.Seconds(),
		rumble: 40 + 160/float64(radius),
		seed:   seed,
	}
}

func (b *blast) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.length {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.length {
			return i, true
		}
		t := float64(b.pos) / float64(b.sr)
		env := math.Exp(-t * b.decay)

		// xorshift keeps the noise reproducible per seed
		b.seed ^= b.seed << 13
		b.seed ^= b.seed >> 17
		b.seed ^= b.seed << 5
		noise := float64(b.seed)/float64(math.MaxUint32)*2 - 1

		v := env * (0.6*noise + 0.4*math.Sin(2*math.Pi*b.rumble*t))
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *blast) Err() error { return nil }

// Len reports the total number of samples in the burst.
func (b *blast) Len() int { return b.length }

// Gain scales s by a linear factor, silencing it at zero or below.
func Gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Mix combines the bursts for several blasts into one streamer, scaling
// each so simultaneous detonations do not clip.
func Mix(radii []int, seed uint32) beep.Streamer {
	if len(radii) == 0 {
		return nil
	}
	vol := 1 / math.Sqrt(float64(len(radii)))
	parts := make([]beep.Streamer, len(radii))
	for i, r := range radii {
		parts[i] = Gain(NewBlast(SampleRate, r, seed+uint32(i)*7919), vol)
	}
	return beep.Mix(parts...)
}
