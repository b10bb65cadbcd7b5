// Package input translates terminal key events into game actions.
package input

import "github.com/gdamore/tcell/v2"

// KeyCode identifies the keys the game reacts to.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	// KeyInterrupt is Ctrl+C, which the terminal delivers as a key in raw mode.
	KeyInterrupt
)

// String returns a human-readable key name.
func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// KeyEvent is a single key press.
type KeyEvent struct {
	Code KeyCode
	Rune rune // Character for printable keys, 0 otherwise
	Alt  bool
}

// FromTcell converts a tcell key event.
func FromTcell(ev *tcell.EventKey) KeyEvent {
	ke := KeyEvent{
		Code: KeyOther,
		Alt:  ev.Modifiers()&tcell.ModAlt != 0,
	}

	switch ev.Key() {
	case tcell.KeyUp:
		ke.Code = KeyUp
	case tcell.KeyDown:
		ke.Code = KeyDown
	case tcell.KeyLeft:
		ke.Code = KeyLeft
	case tcell.KeyRight:
		ke.Code = KeyRight
	case tcell.KeyEnter:
		ke.Code = KeyEnter
	case tcell.KeyEscape:
		ke.Code = KeyEscape
	case tcell.KeyCtrlC:
		ke.Code = KeyInterrupt
	case tcell.KeyRune:
		ke.Rune = ev.Rune()
	}

	return ke
}
