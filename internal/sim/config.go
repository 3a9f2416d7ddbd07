package sim

import "strconv"

// Config controls the lattice dimensions and physical tunables of a
// wave simulation.
//
// The explicit solver is only stable while WaveSpeed*DT stays under the
// Courant limit for the unit-spaced lattice. Nothing validates that:
// values outside the stable envelope are not rejected, they simply
// produce diverging output. Keeping the solver honest is the caller's
// contract.
type Config struct {
	Width  int
	Height int

	// WaveSpeed is the propagation speed in cells per second.
	WaveSpeed float64
	// Damping scales every freshly computed cell, in (0, 1].
	Damping float64
	// DT is the nominal substep length in seconds.
	DT float64
	// TimeScale multiplies incoming frame deltas.
	TimeScale float64

	// MaxFrameTime caps a single frame delta so a stalled caller does
	// not trigger runaway catch-up.
	MaxFrameTime float64
	// MaxSubsteps bounds the substep count per Advance call.
	MaxSubsteps int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        512,
		Height:       512,
		WaveSpeed:    20.0,
		Damping:      0.997,
		DT:           1.0 / 60.0,
		TimeScale:    1.5,
		MaxFrameTime: 0.05,
		MaxSubsteps:  8,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["wave_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.WaveSpeed = parsed
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Damping = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DT = parsed
		}
	}
	if v, ok := cfg["time_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TimeScale = parsed
		}
	}
	return c
}
