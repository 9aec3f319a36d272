package core

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Advance call may return.
const DefaultMaxCatchUp = 4

// FixedStep converts elapsed frame time into a whole number of simulation
// ticks so a sim can run at a steady rate independent of the host frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: DefaultMaxCatchUp}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step reports the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// SetMaxCatchUp changes the per-call tick cap. Values below one disable the cap.
func (f *FixedStep) SetMaxCatchUp(n int) { f.maxCatchUp = n }

// Advance adds dt to the accumulator and returns how many ticks are due.
// When more than the catch-up cap is due the surplus time is discarded.
func (f *FixedStep) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	f.accumulator += dt
	ticks := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(ticks) * f.step
	if f.maxCatchUp > 0 && ticks > f.maxCatchUp {
		ticks = f.maxCatchUp
		f.accumulator = 0
	}
	return ticks
}

// Reset drops any accumulated partial tick.
func (f *FixedStep) Reset() { f.accumulator = 0 }
