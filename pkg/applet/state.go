package applet

import "fmt"

// State represents the coarse execution state of an applet.
type State int

const (
	// StateUnloaded is the initial state of a freshly constructed applet.
	StateUnloaded State = iota

	// StateLoaded indicates resources were acquired but the applet has never run.
	StateLoaded

	// StateActive indicates the applet is visible and receiving input.
	StateActive

	// StatePaused indicates the applet is suspended but keeps its resources.
	StatePaused

	// StateDestroyed is terminal. No transition leaves it.
	StateDestroyed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsTerminal reports whether no further transitions are legal from s.
func (s State) IsTerminal() bool {
	return s == StateDestroyed
}

// Observer is called after every successful transition.
type Observer func(from, to State)
