package input

// Repeat timing, in frames.
const (
	RepeatDelay    = 14 // A key must be held longer than this before it repeats
	RepeatInterval = 4  // Then it repeats on every RepeatInterval-th frame
)

// Pad is the set of actions held down on one frame.
type Pad map[Action]bool

// Any reports whether any action is held.
func (p Pad) Any() bool {
	for _, down := range p {
		if down {
			return true
		}
	}
	return false
}

// Repeater turns per-frame held state into press edges. A held key produces
// one edge when first pressed and further edges while held past RepeatDelay.
type Repeater struct {
	prev    Pad
	heldFor int
}

// Update records the pad for this frame and returns the actions that count as
// newly pressed.
func (r *Repeater) Update(pad Pad) []Action {
	if pad.Any() {
		r.heldFor++
	} else {
		r.heldFor = 0
	}
	prev := r.prev
	if r.heldFor > RepeatDelay && r.heldFor%RepeatInterval == 0 {
		prev = nil
	}
	var pressed []Action
	for _, act := range orderedActions {
		if pad[act] && !prev[act] {
			pressed = append(pressed, act)
		}
	}
	r.prev = pad
	return pressed
}

// orderedActions fixes the order in which simultaneous presses are reported.
var orderedActions = []Action{
	ActionAdvance,
	ActionMoveWest,
	ActionMoveEast,
	ActionMoveNorth,
	ActionMoveSouth,
	ActionQuit,
}
