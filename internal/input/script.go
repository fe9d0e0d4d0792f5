package input

// Script is a Port that replays a fixed sequence of per-tick control sets.
// Tests and demo recordings drive the frame loop with it. After the sequence
// runs out every control reads released.
type Script struct {
	frames [][]Control
	tick   int
	active [numControls]bool
}

// NewScript creates a scripted port. Each element of frames is the set of
// controls held during one tick.
func NewScript(frames ...[]Control) *Script {
	return &Script{frames: frames, tick: -1}
}

// Poll advances to the next scripted tick.
func (s *Script) Poll() {
	s.tick++
	for i := range s.active {
		s.active[i] = false
	}
	if s.tick >= len(s.frames) {
		return
	}
	for _, c := range s.frames[s.tick] {
		if c >= 0 && c < numControls {
			s.active[c] = true
		}
	}
}

// Pressed reports whether the control is held in the current scripted tick.
func (s *Script) Pressed(c Control) bool {
	if c < 0 || c >= numControls {
		return false
	}
	return s.active[c]
}

// Exhausted reports whether the script has run out of frames.
func (s *Script) Exhausted() bool {
	return s.tick >= len(s.frames)
}
