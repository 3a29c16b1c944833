package melone

import (
	"time"
)

// Timer is a one shot timer with a specific duration. The spawn cooldown
// is the only timer in the game.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	finished bool
}

// NewTimer creates a new timer
func NewTimer(duration time.Duration) Timer {
	return Timer{
		duration: duration,
	}
}

// Tick adds the given amount of time to the Timer.
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.finished {
		// nothing to do, timer is done
		return t
	}

	t.elapsed += delta

	if t.elapsed >= t.duration && t.duration > 0 {
		t.elapsed = t.duration
		t.finished = true
	}

	return t
}

// Duration returns the configured duration of the Timer.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the remaining time of the Timer.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns the fraction to that this timer has finished. A freshly started timer
// will have a Fraction value of 0.
func (t *Timer) Fraction() float64 {
	return float64(t.elapsed) / float64(t.duration)
}

// Finished returns true if the timer has finished.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset resets the timer back to its starting point.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
