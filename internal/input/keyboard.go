package input

import "github.com/gdamore/tcell/v2"

// Keyboard adapts a tcell event stream to the Port contract. Terminals send
// discrete key events (with auto-repeat) rather than pin levels, so a control
// counts as pressed for the tick in which an event for it was drained. Poll
// never blocks: it consumes whatever is queued and returns.
type Keyboard struct {
	events  <-chan tcell.Event
	pressed [numControls]bool
	resized bool
}

// NewKeyboard creates a keyboard port reading from the given event stream.
func NewKeyboard(events <-chan tcell.Event) *Keyboard {
	return &Keyboard{events: events}
}

// Poll drains all pending events and rebuilds the per-tick control states.
func (k *Keyboard) Poll() {
	for i := range k.pressed {
		k.pressed[i] = false
	}

	for {
		select {
		case ev := <-k.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				k.handleKey(ev)
			case *tcell.EventResize:
				k.resized = true
			}
		default:
			return
		}
	}
}

// Pressed reports whether the control had an event this tick.
func (k *Keyboard) Pressed(c Control) bool {
	if c < 0 || c >= numControls {
		return false
	}
	return k.pressed[c]
}

// TakeResized reports and clears the pending-resize flag.
func (k *Keyboard) TakeResized() bool {
	r := k.resized
	k.resized = false
	return r
}

func (k *Keyboard) handleKey(ev *tcell.EventKey) {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.pressed[Quit] = true

	case tcell.KeyUp:
		k.pressed[Forward] = true
	case tcell.KeyDown:
		k.pressed[Backward] = true
	case tcell.KeyLeft:
		if shift {
			k.pressed[StrafeLeft] = true
		} else {
			k.pressed[TurnLeft] = true
		}
	case tcell.KeyRight:
		if shift {
			k.pressed[StrafeRight] = true
		} else {
			k.pressed[TurnRight] = true
		}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.pressed[Forward] = true
		case 's', 'S':
			k.pressed[Backward] = true
		case 'a':
			k.pressed[StrafeLeft] = true
		case 'd':
			k.pressed[StrafeRight] = true
		case 'm', 'M':
			k.pressed[ToggleMap] = true
		case 'q', 'Q':
			k.pressed[Quit] = true
		}
	}
}
