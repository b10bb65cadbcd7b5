// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateRunning is the normal state: frames are drawn and input is read.
	StateRunning State = iota
	// StateExiting ends the loop. It is terminal.
	StateExiting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
