package core

import "time"

// FrameClock measures the wall-clock time elapsed between simulation
// ticks so the integrator can be fed real frame deltas.
type FrameClock struct {
	last time.Time
}

// Delta returns the seconds elapsed since the previous call. The first
// call returns zero.
func (c *FrameClock) Delta() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	return d
}
