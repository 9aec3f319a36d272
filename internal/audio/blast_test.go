package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for calls := 0; ; calls++ {
		require.Less(t, calls, 1000, "streamer never ended")
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestBlastIsFiniteAndBounded(t *testing.T) {
	samples := drain(t, NewBlast(SampleRate, 4, 99))
	assert.Len(t, samples, SampleRate.N(310_000_000))
	for i, s := range samples {
		require.LessOrEqual(t, s[0], 1.0, "sample %d", i)
		require.GreaterOrEqual(t, s[0], -1.0, "sample %d", i)
		require.Equal(t, s[0], s[1], "sample %d is not mono", i)
	}
}

func TestBlastDecays(t *testing.T) {
	samples := drain(t, NewBlast(SampleRate, 6, 3))
	peak := func(part [][2]float64) float64 {
		m := 0.0
		for _, s := range part {
			if v := s[0]; v > m {
				m = v
			} else if -v > m {
				m = -v
			}
		}
		return m
	}
	q := len(samples) / 4
	assert.Greater(t, peak(samples[:q]), peak(samples[3*q:]))
}

func TestBlastDeterministic(t *testing.T) {
	a := drain(t, NewBlast(SampleRate, 3, 42))
	b := drain(t, NewBlast(SampleRate, 3, 42))
	assert.Equal(t, a, b)
}

func TestBlastLengthGrowsWithRadius(t *testing.T) {
	small := NewBlast(SampleRate, 1, 1).(*blast)
	big := NewBlast(SampleRate, 10, 1).(*blast)
	assert.Less(t, small.Len(), big.Len())
	capped := NewBlast(SampleRate, 100, 1).(*blast)
	assert.Equal(t, SampleRate.N(1e9), capped.Len())
}

func TestMix(t *testing.T) {
	assert.Nil(t, Mix(nil, 1))
	samples := drain(t, Mix([]int{2, 8}, 5))
	assert.NotEmpty(t, samples)
}

func TestGainSilences(t *testing.T) {
	samples := drain(t, Gain(NewBlast(SampleRate, 2, 9), 0))
	for _, s := range samples {
		require.Zero(t, s[0])
	}
}
