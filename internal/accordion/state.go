package accordion

// State is the logical position of a pane in its two-state machine. It is
// the target state the orchestrator works toward and is distinct from the
// Running animation guard.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Next returns the state reached when a pane in state s is activated. The
// machine is cyclic with a single transition label: closed and open simply
// toggle on every activation, and no other state is reachable.
func Next(s State) State {
	if s == StateOpen {
		return StateClosed
	}
	return StateOpen
}
