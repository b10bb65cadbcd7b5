package input

// ActionKind is what a key press asks the game to do.
type ActionKind int

const (
	// ActionNone - the key has no binding
	ActionNone ActionKind = iota
	// ActionMove - move the player by (DX, DY)
	ActionMove
	// ActionToggleFullscreen - flip the window's display mode
	ActionToggleFullscreen
	// ActionExit - leave the game loop
	ActionExit
)

// String returns a human-readable action name.
func (a ActionKind) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Action is a resolved key press.
type Action struct {
	Kind   ActionKind
	DX, DY int // Movement delta for ActionMove
}

// Resolve maps a key event to an action.
func Resolve(ev KeyEvent) Action {
	switch ev.Code {
	case KeyUp:
		return Action{Kind: ActionMove, DX: 0, DY: -1}
	case KeyDown:
		return Action{Kind: ActionMove, DX: 0, DY: 1}
	case KeyLeft:
		return Action{Kind: ActionMove, DX: -1, DY: 0}
	case KeyRight:
		return Action{Kind: ActionMove, DX: 1, DY: 0}
	case KeyEnter:
		if ev.Alt {
			return Action{Kind: ActionToggleFullscreen}
		}
	case KeyEscape, KeyInterrupt:
		return Action{Kind: ActionExit}
	}
	return Action{Kind: ActionNone}
}
