package sim

import (
	"fmt"
	"math"
)

// Source is a persistent oscillating excitation anchored at a
// continuous (not cell-snapped) grid position. Fields are mutated in
// place by the editing layer; the injector reads them every substep.
type Source struct {
	X, Y      float64
	Frequency float64
	Amplitude float64
	Active    bool
	Name      string
}

// sourceTap is one precomputed cell offset of the injection footprint
// with its Gaussian weight.
type sourceTap struct {
	dx, dy  int
	falloff float64
}

var sourceFootprint = buildSourceFootprint(sourceRadius)

func buildSourceFootprint(radius int) []sourceTap {
	taps := make([]sourceTap, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			if math.Sqrt(d2) >= float64(radius) {
				continue
			}
			taps = append(taps, sourceTap{dx: dx, dy: dy, falloff: math.Exp(-d2 / sourceSigma2)})
		}
	}
	return taps
}

// Sources exposes the registry. Entries are shared pointers: parameter
// edits through them are picked up on the next substep.
func (s *Sim) Sources() []*Source { return s.sources }

// AddSource appends an enabled source at the given position and returns
// it for further editing.
func (s *Sim) AddSource(x, y, freq, amp float64) *Source {
	src := &Source{
		X: x, Y: y,
		Frequency: freq,
		Amplitude: amp,
		Active:    true,
		Name:      fmt.Sprintf("Source %d", len(s.sources)+1),
	}
	s.sources = append(s.sources, src)
	return src
}

// RemoveSource deletes the source at index i. Out-of-range indices are
// ignored.
func (s *Sim) RemoveSource(i int) {
	if i < 0 || i >= len(s.sources) {
		return
	}
	s.sources = append(s.sources[:i], s.sources[i+1:]...)
}

// RemoveSourcesNear deletes every source within the capture radius of
// the given point and reports how many were removed.
func (s *Sim) RemoveSourcesNear(x, y float64) int {
	kept := s.sources[:0]
	removed := 0
	for _, src := range s.sources {
		if math.Hypot(src.X-x, src.Y-y) < captureRadius {
			removed++
			continue
		}
		kept = append(kept, src)
	}
	for i := len(kept); i < len(s.sources); i++ {
		s.sources[i] = nil
	}
	s.sources = kept
	return removed
}

// ClearSources empties the registry.
func (s *Sim) ClearSources() {
	s.sources = nil
}

// inject adds one source's contribution for the current substep into
// the freshly computed generation. Sources inside the border margin
// contribute nothing; wall cells under the footprint are skipped.
// Injection happens after the Laplacian/damping pass so the new energy
// is not attenuated in the same substep it was added.
func (s *Sim) inject(src *Source) {
	if !src.Active {
		return
	}
	w, h := s.cfg.Width, s.cfg.Height
	sx, sy := int(src.X), int(src.Y)
	if sx < sourceMargin || sx >= w-sourceMargin || sy < sourceMargin || sy >= h-sourceMargin {
		return
	}
	value := src.Amplitude * math.Sin(2*math.Pi*src.Frequency*s.clock)
	cur := s.field.cur
	walls := s.walls.Cells()
	for _, tap := range sourceFootprint {
		idx := (sy+tap.dy)*w + (sx + tap.dx)
		if walls[idx] {
			continue
		}
		cur[idx] += float32(value * tap.falloff)
	}
}
