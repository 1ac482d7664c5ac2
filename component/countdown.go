package component

// Countdown is a one-shot timer. Remaining time is clamped at zero and the
// zero-crossing fires exactly once through Tick's return value.
type Countdown struct {
	remaining float64
}

// Set arms the countdown with the given duration in seconds.
func (c *Countdown) Set(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	c.remaining = seconds
}

// Stop clears the countdown without firing.
func (c *Countdown) Stop() {
	c.remaining = 0
}

// Tick advances the countdown by dt seconds. It returns true only on the tick
// the remaining time crosses zero.
func (c *Countdown) Tick(dt float64) bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		return true
	}
	return false
}

// Active reports whether time remains on the countdown.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the seconds left on the countdown.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}
