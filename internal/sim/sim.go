package sim

import (
	"math"

	"github.com/Freblyhet/Wave-Simulator/internal/core"
)

const (
	// sourceMargin is the border distance inside which a source's
	// injection stencil would leave the grid; such sources stay silent.
	sourceMargin = 5
	// sourceRadius bounds the Gaussian injection footprint.
	sourceRadius = 5
	// sourceSigma2 is the sigma^2 of the Gaussian falloff.
	sourceSigma2 = 12.0
	// brushRadius is the wall paint/erase disc radius.
	brushRadius = 2
	// captureRadius is the fuzzy source removal distance.
	captureRadius = 25.0
)

// Sim owns the complete state of one wave simulation: the displacement
// field, the wall mask, the source registry, the simulation clock, and
// the tunables. All mutation happens on the goroutine driving the tick
// loop; nothing here locks.
type Sim struct {
	cfg     Config
	field   *Field
	walls   *core.Mask
	sources []*Source
	clock   float64
}

// New allocates a simulation. All grid storage is sized once here and
// never reallocated afterwards.
func New(cfg Config) *Sim {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.MaxSubsteps < 1 {
		cfg.MaxSubsteps = 1
	}
	return &Sim{
		cfg:   cfg,
		field: newField(cfg.Width, cfg.Height),
		walls: core.NewMask(cfg.Width, cfg.Height),
	}
}

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Clock returns the accumulated simulation time in seconds.
func (s *Sim) Clock() float64 { return s.clock }

// Config returns the current tunables.
func (s *Sim) Config() Config { return s.cfg }

// SetWaveSpeed updates the propagation speed.
func (s *Sim) SetWaveSpeed(c float64) { s.cfg.WaveSpeed = c }

// SetDamping updates the per-substep damping factor.
func (s *Sim) SetDamping(d float64) { s.cfg.Damping = d }

// SetTimeScale updates the frame delta multiplier.
func (s *Sim) SetTimeScale(scale float64) { s.cfg.TimeScale = scale }

// Cells exposes the current displacement buffer in row-major order.
func (s *Sim) Cells() []float32 { return s.field.Cells() }

// Walls exposes the wall mask in row-major order.
func (s *Sim) Walls() []bool { return s.walls.Cells() }

// WallAt reports whether (x, y) is a wall. Out of bounds reads false.
func (s *Sim) WallAt(x, y int) bool { return s.walls.At(x, y) }

func (s *Sim) inBounds(x, y int) bool {
	return x >= 0 && x < s.cfg.Width && y >= 0 && y < s.cfg.Height
}

// planSubsteps converts a scaled frame time into a bounded substep
// count and the even per-substep length. The count never drops below
// one, so a zero delta still runs a degenerate dt=0 substep.
func (s *Sim) planSubsteps(frameTime float64) (int, float64) {
	steps := 1
	if s.cfg.DT > 0 {
		steps = int(math.Ceil(frameTime / s.cfg.DT))
	}
	steps = core.Clamp(steps, 1, s.cfg.MaxSubsteps)
	return steps, frameTime / float64(steps)
}

// Advance integrates the field forward by the given elapsed wall-clock
// seconds. The delta is clamped to MaxFrameTime, scaled by TimeScale,
// and split evenly across at most MaxSubsteps Verlet substeps so the
// per-substep dt stays near the nominal DT regardless of frame pacing.
func (s *Sim) Advance(elapsed float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > s.cfg.MaxFrameTime {
		elapsed = s.cfg.MaxFrameTime
	}
	frameTime := elapsed * s.cfg.TimeScale
	steps, dt := s.planSubsteps(frameTime)
	for i := 0; i < steps; i++ {
		s.substep(dt)
	}
}

// substep performs one fixed-size time advance: rotate the generations,
// apply the damped Verlet update with the 5-point Laplacian over every
// interior non-wall cell, force interior wall cells to zero, then
// inject the active sources at the post-increment clock. The outermost
// ring is never written and stays at its initial value.
func (s *Sim) substep(dt float64) {
	s.clock += dt
	s.field.advance()

	w, h := s.cfg.Width, s.cfg.Height
	cur, prev, prev2 := s.field.cur, s.field.prev, s.field.prev2
	walls := s.walls.Cells()

	c2dt2 := float32(s.cfg.WaveSpeed * s.cfg.WaveSpeed * dt * dt)
	damping := float32(s.cfg.Damping)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			if walls[idx] {
				cur[idx] = 0
				continue
			}
			lap := prev[idx-w] + prev[idx+w] + prev[idx-1] + prev[idx+1] - 4*prev[idx]
			cur[idx] = (2*prev[idx] - prev2[idx] + c2dt2*lap) * damping
		}
	}

	for _, src := range s.sources {
		s.inject(src)
	}
}
