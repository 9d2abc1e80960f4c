package core

import "time"

// FixedStep helps advance the simulation at a steady generations-per-second
// rate while the surrounding render loop runs at its own pace.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(perSecond int) *FixedStep {
	if perSecond <= 0 {
		perSecond = 15
	}
	fs := &FixedStep{}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 15
	}
	f.step = time.Second / time.Duration(perSecond)
}

// ShouldStep reports whether the simulation should advance by one
// generation.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
