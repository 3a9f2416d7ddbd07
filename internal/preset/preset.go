// Package preset ships the built-in demonstration scenes. A preset is
// nothing more than a scripted sequence of edit operations wrapped in a
// full reset; the solver core knows nothing about it.
package preset

import (
	"fmt"
	"math"

	"github.com/Freblyhet/Wave-Simulator/internal/sim"
)

// Built-in scene names.
const (
	DoubleSlit    = "double-slit"
	RippleTank    = "ripple-tank"
	Interference  = "interference"
	Reflection    = "reflection"
	CircularArena = "circular-arena"
)

// Names lists the built-in presets in menu order.
func Names() []string {
	return []string{DoubleSlit, RippleTank, Interference, Reflection, CircularArena}
}

// Apply resets the simulation and replays the named preset onto it.
func Apply(s *sim.Sim, name string) error {
	switch name {
	case DoubleSlit:
		s.Reset()
		applyDoubleSlit(s)
	case RippleTank:
		s.Reset()
		size := s.Size()
		s.AddSource(0.5*float64(size.W), 0.5*float64(size.H), 3.0, 2.0)
	case Interference:
		s.Reset()
		size := s.Size()
		s.AddSource(0.3*float64(size.W), 0.5*float64(size.H), 4.0, 1.8)
		s.AddSource(0.7*float64(size.W), 0.5*float64(size.H), 4.0, 1.8)
	case Reflection:
		s.Reset()
		applyReflection(s)
	case CircularArena:
		s.Reset()
		applyCircularArena(s)
	default:
		return fmt.Errorf("unknown preset %q", name)
	}
	return nil
}

// applyDoubleSlit places two sources behind a barrier pierced by two
// slits, the classic interference demonstration.
func applyDoubleSlit(s *sim.Sim) {
	size := s.Size()
	w, h := float64(size.W), float64(size.H)

	s.AddSource(0.25*w, 0.8*h, 5.0, 2.0)
	s.AddSource(0.75*w, 0.8*h, 5.0, 2.0)

	for y := int(0.45 * h); y < int(0.55*h); y++ {
		for x := int(0.1 * w); x < int(0.9*w); x++ {
			fx := float64(x)
			if fx < 0.35*w || (fx > 0.42*w && fx < 0.58*w) || fx > 0.65*w {
				s.PaintWall(x, y)
			}
		}
	}
}

// applyReflection puts a source on the left and a vertical wall slab on
// the right.
func applyReflection(s *sim.Sim) {
	size := s.Size()
	w, h := float64(size.W), float64(size.H)

	s.AddSource(0.2*w, 0.5*h, 3.0, 2.0)

	for y := int(0.2 * h); y < int(0.8*h); y++ {
		for x := int(0.75 * w); x < int(0.78*w); x++ {
			s.PaintWall(x, y)
		}
	}
}

// applyCircularArena encloses a centered source in a thick circular
// wall ring.
func applyCircularArena(s *sim.Sim) {
	size := s.Size()
	cx := 0.5 * float64(size.W)
	cy := 0.5 * float64(size.H)
	radius := 0.4 * math.Min(float64(size.W), float64(size.H))

	walls := s.Walls()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			if dist > radius && dist < radius+10 {
				walls[y*size.W+x] = true
			}
		}
	}

	s.AddSource(cx, cy, 3.0, 1.8)
}
