package sim

import (
	"slices"
	"testing"
)

func TestImpulseFalloffAndWalls(t *testing.T) {
	s := New(testConfig(32, 32))
	s.PaintWall(16, 20)
	wallIdx := s.walls.Index(16, 19)
	if !s.Walls()[wallIdx] {
		t.Fatal("brush setup failed")
	}

	s.Impulse(16, 16, 4, 2)

	center := s.Cells()[s.walls.Index(16, 16)]
	if center != 2 {
		t.Fatalf("impulse center = %v, want full strength 2", center)
	}
	ring := s.Cells()[s.walls.Index(18, 16)]
	if ring <= 0 || ring >= center {
		t.Fatalf("impulse should fall off with distance: center=%v, r=2 cell=%v", center, ring)
	}
	if s.Cells()[wallIdx] != 0 {
		t.Fatalf("impulse wrote %v into a wall cell", s.Cells()[wallIdx])
	}
}

func TestImpulseOutOfBoundsIsNoOp(t *testing.T) {
	s := New(testConfig(16, 16))
	before := append([]float32(nil), s.Cells()...)
	s.Impulse(-3, 40, 5, 2)
	s.Impulse(100, 8, 5, 2)
	if !slices.Equal(before, s.Cells()) {
		t.Fatal("out-of-grid impulse mutated the field")
	}
}

func TestBrushIsDisc(t *testing.T) {
	s := New(testConfig(16, 16))
	s.PaintWall(8, 8)

	if !s.WallAt(8, 8) || !s.WallAt(10, 8) || !s.WallAt(8, 6) {
		t.Fatal("brush missed cells inside its radius")
	}
	// Corners of the bounding square lie outside the disc.
	if s.WallAt(10, 10) || s.WallAt(6, 6) {
		t.Fatal("brush painted the square corners outside the disc")
	}

	s.EraseWall(8, 8)
	for i, wall := range s.Walls() {
		if wall {
			t.Fatalf("erase left wall at index %d", i)
		}
	}
}

func TestStrokeWallRasterizesLine(t *testing.T) {
	s := New(testConfig(64, 64))
	s.StrokeWall(10, 10, 10, 50, true)

	if !s.WallAt(10, 30) {
		t.Fatal("cell on the stroked line is not a wall")
	}
	if s.WallAt(50, 50) {
		t.Fatal("cell far from the line became a wall")
	}
	if s.WallAt(10, 55) {
		t.Fatal("cell beyond the endpoint plus brush radius became a wall")
	}
}

func TestClearWaves(t *testing.T) {
	s := New(testConfig(32, 32))
	s.PaintWall(10, 10)
	s.AddSource(16, 16, 3, 1.5)
	s.Impulse(20, 20, 5, 2)
	s.Advance(0.03)

	wallsBefore := append([]bool(nil), s.Walls()...)
	s.ClearWaves()

	if s.Clock() != 0 {
		t.Fatalf("clock = %v after ClearWaves, want 0", s.Clock())
	}
	for i := range s.field.cur {
		if s.field.cur[i] != 0 || s.field.prev[i] != 0 || s.field.prev2[i] != 0 {
			t.Fatalf("displacement buffers not fully zeroed at index %d", i)
		}
	}
	if !slices.Equal(wallsBefore, s.Walls()) {
		t.Fatal("ClearWaves touched the wall mask")
	}
	if len(s.Sources()) != 1 {
		t.Fatal("ClearWaves touched the source registry")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := New(testConfig(32, 32))
	s.PaintWall(10, 10)
	s.AddSource(16, 16, 3, 1.5)
	s.Advance(0.03)

	s.Reset()

	if s.Clock() != 0 || len(s.Sources()) != 0 {
		t.Fatal("Reset left clock or sources behind")
	}
	for i, wall := range s.Walls() {
		if wall {
			t.Fatalf("Reset left wall at index %d", i)
		}
	}
}

func TestEditOutOfBoundsIgnored(t *testing.T) {
	s := New(testConfig(16, 16))
	s.PaintWall(-1, 5)
	s.PaintWall(5, 16)
	for i, wall := range s.Walls() {
		if wall {
			t.Fatalf("out-of-grid paint set wall at index %d", i)
		}
	}
	// A stroke may start outside as long as cells in range are clamped.
	s.StrokeWall(-4, 8, 4, 8, true)
	if !s.WallAt(2, 8) {
		t.Fatal("in-bounds portion of a clipped stroke was not painted")
	}
}
