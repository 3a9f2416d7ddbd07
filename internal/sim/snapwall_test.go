package sim

import "testing"

func TestSnapWallTwoClicksPaintLine(t *testing.T) {
	s := New(testConfig(64, 64))
	var tool SnapWall

	tool.Click(s, 0, 0)
	if tool.State() != AwaitingSecondPoint {
		t.Fatal("first click did not arm the tool")
	}
	if p, ok := tool.First(); !ok || p.X != 0 || p.Y != 0 {
		t.Fatalf("pending anchor = %v (%v), want (0,0)", p, ok)
	}

	tool.Click(s, 0, 10)
	if tool.State() != AwaitingFirstPoint {
		t.Fatal("second click did not rearm the tool")
	}
	if !s.WallAt(0, 5) || !s.WallAt(1, 5) {
		t.Fatal("no wall painted along the snapped line")
	}
	if s.WallAt(10, 5) {
		t.Fatal("wall appeared far from the snapped line")
	}
}

func TestSnapWallCancelDiscardsAnchor(t *testing.T) {
	s := New(testConfig(64, 64))
	var tool SnapWall

	tool.Click(s, 5, 5)
	tool.Cancel()
	if tool.State() != AwaitingFirstPoint {
		t.Fatal("cancel did not reset the tool")
	}
	for i, wall := range s.Walls() {
		if wall {
			t.Fatalf("cancel left wall at index %d", i)
		}
	}

	// The next click starts a fresh wall, not one from the old anchor.
	tool.Click(s, 20, 20)
	tool.Click(s, 30, 20)
	if s.WallAt(12, 12) {
		t.Fatal("discarded anchor leaked into a later wall")
	}
	if !s.WallAt(25, 20) {
		t.Fatal("fresh two-click wall missing")
	}
}

func TestSnapWallIgnoresOutOfGridClicks(t *testing.T) {
	s := New(testConfig(64, 64))
	var tool SnapWall

	tool.Click(s, -1, 5)
	if tool.State() != AwaitingFirstPoint {
		t.Fatal("out-of-grid click armed the tool")
	}
}
