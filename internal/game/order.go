// Package game provides the frame loop and its configuration.
package game

import "fmt"

// UpdateOrder fixes where movement lands inside a tick relative to the ray
// cast. Move-first shows a keypress in the same frame; cast-first costs one
// frame of input latency but renders the pose the previous frame saw.
type UpdateOrder int

const (
	// MoveThenCast applies movement before casting. Default.
	MoveThenCast UpdateOrder = iota
	// CastThenMove renders first, so movement shows up next frame.
	CastThenMove
)

// String returns a human-readable order name.
func (o UpdateOrder) String() string {
	switch o {
	case MoveThenCast:
		return "move-first"
	case CastThenMove:
		return "cast-first"
	default:
		return "unknown"
	}
}

// ParseUpdateOrder resolves an order name from configuration.
func ParseUpdateOrder(name string) (UpdateOrder, error) {
	switch name {
	case "move-first":
		return MoveThenCast, nil
	case "cast-first":
		return CastThenMove, nil
	default:
		return MoveThenCast, fmt.Errorf("unknown update order %q", name)
	}
}
