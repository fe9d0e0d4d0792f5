// Package input isolates control polling behind a port interface so the
// frame loop can be driven by a real keyboard or a scripted sequence.
package input

// Control is one discrete player control.
type Control int

const (
	Forward Control = iota
	Backward
	TurnLeft
	TurnRight
	StrafeLeft
	StrafeRight
	ToggleMap
	Quit

	numControls
)

// String returns a human-readable control name.
func (c Control) String() string {
	switch c {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case TurnLeft:
		return "turn_left"
	case TurnRight:
		return "turn_right"
	case StrafeLeft:
		return "strafe_left"
	case StrafeRight:
		return "strafe_right"
	case ToggleMap:
		return "toggle_map"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// MovementControls lists the pose-affecting controls in scan order. The frame
// loop applies them in exactly this order every tick, so simultaneous inputs
// resolve deterministically.
var MovementControls = []Control{
	Forward,
	Backward,
	TurnLeft,
	TurnRight,
	StrafeLeft,
	StrafeRight,
}

// Port is a non-blocking control source: Pressed returns the instantaneous
// state, never waits. Call Poll once per tick before reading.
type Port interface {
	// Poll refreshes the control states from the underlying source.
	Poll()

	// Pressed reports whether the control is active this tick.
	Pressed(c Control) bool
}
