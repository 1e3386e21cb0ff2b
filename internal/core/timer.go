package core

import (
	"log/slog"
	"time"
)

// FixedStep helps run simulation updates at a steady generations-per-second
// rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
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

// Timer measures a single scoped operation. It is advisory only.
type Timer struct {
	log   *slog.Logger
	label string
	start time.Time
}

// StartTimer marks the entry of the operation named label.
func StartTimer(log *slog.Logger, label string) *Timer {
	return &Timer{log: log, label: label, start: time.Now()}
}

// Stop marks the exit of the operation, logs the elapsed time at debug level
// and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.log != nil {
		t.log.Debug("timer", "label", t.label, "elapsed", elapsed)
	}
	return elapsed
}
