package browser

import "github.com/gdamore/tcell/v2"

// Action is a browser command bound to a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionScrollDown
	ActionScrollUp
	ActionToggleTerse
	ActionReroll
	ActionQuit
)

// keyToAction maps a key press to an Action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyDown, tcell.KeyRight, tcell.KeyTab:
		return ActionNext
	case tcell.KeyUp, tcell.KeyLeft, tcell.KeyBacktab:
		return ActionPrev
	case tcell.KeyPgDn:
		return ActionScrollDown
	case tcell.KeyPgUp:
		return ActionScrollUp
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'j', 'l':
		return ActionNext
	case 'k', 'h':
		return ActionPrev
	case ' ', 'J':
		return ActionScrollDown
	case 'K':
		return ActionScrollUp
	case 't', 'T':
		return ActionToggleTerse
	case 'r', 'R':
		return ActionReroll
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
