package sim

import "testing"

func TestAddSourceDefaults(t *testing.T) {
	s := New(testConfig(64, 64))
	src := s.AddSource(12.5, 40.25, 3.0, 1.5)

	if !src.Active {
		t.Fatal("new sources must start enabled")
	}
	if src.Name != "Source 1" {
		t.Fatalf("auto label = %q, want %q", src.Name, "Source 1")
	}
	if src.X != 12.5 || src.Y != 40.25 {
		t.Fatal("source position must keep continuous coordinates")
	}
	if s.AddSource(1, 1, 1, 1).Name != "Source 2" {
		t.Fatal("labels must number sequentially")
	}
}

func TestRemoveSourcesNearCaptureRadius(t *testing.T) {
	s := New(testConfig(512, 512))
	s.AddSource(100, 100, 3, 1)
	s.AddSource(110, 100, 3, 1)
	s.AddSource(300, 300, 3, 1)

	if n := s.RemoveSourcesNear(105, 100); n != 2 {
		t.Fatalf("removed %d sources, want 2", n)
	}
	if len(s.Sources()) != 1 || s.Sources()[0].X != 300 {
		t.Fatal("wrong survivor after fuzzy removal")
	}
	if n := s.RemoveSourcesNear(0, 0); n != 0 {
		t.Fatalf("removed %d sources far from any, want 0", n)
	}
}

func TestRemoveSourceByIndex(t *testing.T) {
	s := New(testConfig(64, 64))
	s.AddSource(10, 10, 1, 1)
	s.AddSource(20, 20, 2, 2)

	s.RemoveSource(5)
	s.RemoveSource(-1)
	if len(s.Sources()) != 2 {
		t.Fatal("out-of-range index removal must be a no-op")
	}
	s.RemoveSource(0)
	if len(s.Sources()) != 1 || s.Sources()[0].X != 20 {
		t.Fatal("index removal deleted the wrong source")
	}
}

func TestSourceInsideMarginStaysSilent(t *testing.T) {
	s := New(testConfig(64, 64))
	s.AddSource(2, 32, 5, 3)
	for i := 0; i < 10; i++ {
		s.Advance(0.02)
	}
	for i, v := range s.Cells() {
		if v != 0 {
			t.Fatalf("border source injected %v at index %d", v, i)
		}
	}
}

func TestDisabledSourceInjectsNothing(t *testing.T) {
	s := New(testConfig(64, 64))
	src := s.AddSource(32, 32, 5, 3)
	src.Active = false
	s.Advance(0.02)
	for i, v := range s.Cells() {
		if v != 0 {
			t.Fatalf("disabled source injected %v at index %d", v, i)
		}
	}
}

func TestInjectionSkipsWallCells(t *testing.T) {
	s := New(testConfig(64, 64))
	s.Walls()[s.walls.Index(33, 32)] = true
	s.AddSource(32, 32, 5, 3)
	s.Advance(0.02)

	if s.Cells()[s.walls.Index(33, 32)] != 0 {
		t.Fatal("injection wrote into a wall cell")
	}
	if s.Cells()[s.walls.Index(32, 32)] == 0 {
		t.Fatal("injection skipped a free cell")
	}
}

func TestOverlappingSourcesSuperpose(t *testing.T) {
	s := New(testConfig(64, 64))
	s.AddSource(32, 32, 5, 1.5)
	single := New(testConfig(64, 64))
	single.AddSource(32, 32, 5, 1.5)

	s.AddSource(32, 32, 5, 1.5)
	s.substep(0.01)
	single.substep(0.01)

	idx := s.walls.Index(32, 32)
	if got, want := s.Cells()[idx], 2*single.Cells()[idx]; got != want {
		t.Fatalf("two identical sources = %v, want linear superposition %v", got, want)
	}
}
