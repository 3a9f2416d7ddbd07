package sim

import (
	"math"

	"github.com/Freblyhet/Wave-Simulator/internal/core"
)

var brushFootprint = buildBrushFootprint(brushRadius)

func buildBrushFootprint(radius int) []core.Point {
	footprint := make([]core.Point, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				footprint = append(footprint, core.Point{X: dx, Y: dy})
			}
		}
	}
	return footprint
}

// Impulse adds a one-shot radial bump directly into the current
// displacement buffer, bypassing the per-substep source path. Wall
// cells and the outermost ring are left untouched; an out-of-grid
// center is a no-op.
func (s *Sim) Impulse(x, y, radius, strength float64) {
	if radius <= 0 || !s.inBounds(int(x), int(y)) {
		return
	}
	w, h := s.cfg.Width, s.cfg.Height
	cx, cy := int(x), int(y)
	r := int(math.Ceil(radius))
	cur := s.field.cur
	walls := s.walls.Cells()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx <= 0 || nx >= w-1 || ny <= 0 || ny >= h-1 {
				continue
			}
			idx := ny*w + nx
			if walls[idx] {
				continue
			}
			dist := math.Hypot(float64(dx), float64(dy))
			if dist > radius {
				continue
			}
			t := 1 - dist/radius
			cur[idx] += float32(strength * t * t)
		}
	}
}

// PaintWall stamps the wall brush disc centered at (x, y).
func (s *Sim) PaintWall(x, y int) { s.stampBrush(x, y, true) }

// EraseWall clears the wall brush disc centered at (x, y).
func (s *Sim) EraseWall(x, y int) { s.stampBrush(x, y, false) }

func (s *Sim) stampBrush(x, y int, v bool) {
	if !s.inBounds(x, y) {
		return
	}
	for _, off := range brushFootprint {
		s.walls.Set(x+off.X, y+off.Y, v)
	}
}

// StrokeWall rasterizes the segment between the two points and stamps
// the brush on every cell of it, so drag gestures leave a continuous
// stroke instead of disconnected dabs.
func (s *Sim) StrokeWall(x0, y0, x1, y1 int, set bool) {
	core.TraceLine(x0, y0, x1, y1, func(x, y int) {
		s.stampBrush(x, y, set)
	})
}

// ClearWaves zeroes all three displacement generations and resets the
// clock. Walls and sources are untouched.
func (s *Sim) ClearWaves() {
	s.field.clear()
	s.clock = 0
}

// ClearWalls empties the wall mask.
func (s *Sim) ClearWalls() {
	s.walls.Clear()
}

// Reset clears waves, walls, and sources in one go.
func (s *Sim) Reset() {
	s.ClearWaves()
	s.ClearWalls()
	s.ClearSources()
}
