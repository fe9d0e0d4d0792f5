package entity

import (
	"math"

	"github.com/samdwyer/slivercast/internal/world"
)

// Side selects a strafe direction.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Cue is notified when a move is rejected. The hardware build wires this to
// an audible buzz; tests and headless runs leave it nil.
type Cue interface {
	Bump()
}

// Mover translates discrete control inputs into pose updates, rejecting any
// move whose destination cell is occupied or outside the open map bounds.
// Rejected moves leave the pose untouched.
type Mover struct {
	pose *Pose
	grid *world.Grid

	// WalkSpeed is the step distance in map units; TurnSpeed the turn
	// increment in degrees. Both are per control input, not per second:
	// the frame loop applies one increment per held control per tick.
	WalkSpeed float64
	TurnSpeed float64

	cue Cue
}

// NewMover creates a movement controller for the given pose and grid.
func NewMover(pose *Pose, grid *world.Grid, walkSpeed, turnSpeed float64) *Mover {
	return &Mover{
		pose:      pose,
		grid:      grid,
		WalkSpeed: walkSpeed,
		TurnSpeed: turnSpeed,
	}
}

// SetCue installs the rejection cue. A nil cue disables it.
func (m *Mover) SetCue(cue Cue) {
	m.cue = cue
}

// Step projects distance d along the current bearing and commits the
// candidate position only if it lands in an empty cell strictly inside the
// map. Returns false (pose unchanged, cue fired) otherwise. Negative d walks
// backwards.
func (m *Mover) Step(d float64) bool {
	rad := m.pose.BearingRad()
	nx := m.pose.X + d*math.Cos(rad)
	ny := m.pose.Y + d*math.Sin(rad)

	if !m.grid.IsOpen(nx, ny) {
		if m.cue != nil {
			m.cue.Bump()
		}
		return false
	}

	m.pose.X = nx
	m.pose.Y = ny
	return true
}

// Turn adds deg to the bearing unconditionally. No normalization.
func (m *Mover) Turn(deg float64) {
	m.pose.Bearing += deg
}

// Strafe steps sideways by rotating the bearing a quarter turn around the
// step primitive. The original bearing is restored exactly whether or not the
// step commits, and no rendering can observe the intermediate bearing because
// the whole frame runs on one goroutine.
func (m *Mover) Strafe(d float64, side Side) bool {
	offset := -90.0
	if side == SideRight {
		offset = 90.0
	}

	orig := m.pose.Bearing
	m.Turn(offset)
	moved := m.Step(d)
	m.pose.Bearing = orig
	return moved
}

// Forward steps one walk increment along the bearing.
func (m *Mover) Forward() bool { return m.Step(m.WalkSpeed) }

// Backward steps one walk increment against the bearing.
func (m *Mover) Backward() bool { return m.Step(-m.WalkSpeed) }

// TurnLeft rotates one turn increment counterclockwise on screen.
func (m *Mover) TurnLeft() { m.Turn(-m.TurnSpeed) }

// TurnRight rotates one turn increment clockwise on screen.
func (m *Mover) TurnRight() { m.Turn(m.TurnSpeed) }

// StrafeLeft steps one walk increment to the left of the bearing.
func (m *Mover) StrafeLeft() bool { return m.Strafe(m.WalkSpeed, SideLeft) }

// StrafeRight steps one walk increment to the right of the bearing.
func (m *Mover) StrafeRight() bool { return m.Strafe(m.WalkSpeed, SideRight) }
