package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyEvent
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyEvent{Code: KeyUp}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyEvent{Code: KeyDown}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyEvent{Code: KeyLeft}},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyEvent{Code: KeyRight}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEvent{Code: KeyEnter}},
		{"alt enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModAlt), KeyEvent{Code: KeyEnter, Alt: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEvent{Code: KeyEscape}},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), KeyEvent{Code: KeyInterrupt}},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyEvent{Code: KeyOther, Rune: 'q'}},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), KeyEvent{Code: KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev); got != tt.want {
				t.Errorf("FromTcell() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want Action
	}{
		{KeyEvent{Code: KeyUp}, Action{Kind: ActionMove, DX: 0, DY: -1}},
		{KeyEvent{Code: KeyDown}, Action{Kind: ActionMove, DX: 0, DY: 1}},
		{KeyEvent{Code: KeyLeft}, Action{Kind: ActionMove, DX: -1, DY: 0}},
		{KeyEvent{Code: KeyRight}, Action{Kind: ActionMove, DX: 1, DY: 0}},
		{KeyEvent{Code: KeyUp, Alt: true}, Action{Kind: ActionMove, DX: 0, DY: -1}},
		{KeyEvent{Code: KeyEnter, Alt: true}, Action{Kind: ActionToggleFullscreen}},
		{KeyEvent{Code: KeyEnter}, Action{Kind: ActionNone}},
		{KeyEvent{Code: KeyEscape}, Action{Kind: ActionExit}},
		{KeyEvent{Code: KeyInterrupt}, Action{Kind: ActionExit}},
		{KeyEvent{Code: KeyOther, Rune: 'q'}, Action{Kind: ActionNone}},
		{KeyEvent{Code: KeyOther}, Action{Kind: ActionNone}},
	}

	for _, tt := range tests {
		if got := Resolve(tt.ev); got != tt.want {
			t.Errorf("Resolve(%s, alt=%v) = %+v, want %+v", tt.ev.Code, tt.ev.Alt, got, tt.want)
		}
	}
}

func TestActionKindString(t *testing.T) {
	tests := []struct {
		kind     ActionKind
		expected string
	}{
		{ActionNone, "none"},
		{ActionMove, "move"},
		{ActionToggleFullscreen, "toggle_fullscreen"},
		{ActionExit, "exit"},
		{ActionKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ActionKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
