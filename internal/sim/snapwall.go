package sim

import "github.com/Freblyhet/Wave-Simulator/internal/core"

// SnapWallState identifies the phase of the two-click wall tool.
type SnapWallState int

const (
	// AwaitingFirstPoint means no anchor has been placed yet.
	AwaitingFirstPoint SnapWallState = iota
	// AwaitingSecondPoint means the anchor is set and the next click
	// completes the wall.
	AwaitingSecondPoint
)

// SnapWall is the two-click straight wall tool. It belongs to the
// editing layer and holds no state beyond the pending anchor point.
type SnapWall struct {
	state SnapWallState
	first core.Point
}

// State returns the current phase.
func (t *SnapWall) State() SnapWallState { return t.state }

// First returns the pending anchor point and whether one is set.
func (t *SnapWall) First() (core.Point, bool) {
	return t.first, t.state == AwaitingSecondPoint
}

// Click feeds one click through the state machine. The first in-bounds
// click records the anchor; the second paints a straight wall from the
// anchor to the click and rearms the tool. Out-of-grid clicks are
// ignored.
func (t *SnapWall) Click(s *Sim, x, y int) {
	if !s.inBounds(x, y) {
		return
	}
	switch t.state {
	case AwaitingFirstPoint:
		t.first = core.Point{X: x, Y: y}
		t.state = AwaitingSecondPoint
	case AwaitingSecondPoint:
		s.StrokeWall(t.first.X, t.first.Y, x, y, true)
		t.state = AwaitingFirstPoint
	}
}

// Cancel discards a pending anchor point. It does nothing while no
// anchor is set.
func (t *SnapWall) Cancel() {
	t.state = AwaitingFirstPoint
}
