// Package input maps terminal keys to logical game actions and dispatches them
// to whichever handlers the current screen has bound.
package input

import "github.com/gdamore/tcell/v2"

// Action is a logical input, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // Space: wait while exploring, marker back to start in a fight
	ActionHelp
	ActionExit // Leave the help screen
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionConfirm:
		return "confirm"
	case ActionHelp:
		return "help"
	case ActionExit:
		return "exit"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// FromKey maps a key event to an action. Letters match either case; arrow keys
// work alongside WASD.
func FromKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionUp
		case 's', 'S':
			return ActionDown
		case 'a', 'A':
			return ActionLeft
		case 'd', 'D':
			return ActionRight
		case ' ':
			return ActionConfirm
		case 'h', 'H':
			return ActionHelp
		case 'x', 'X':
			return ActionExit
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// Bindings holds one callback per action for the active screen. A screen
// rebinds everything when it is entered.
type Bindings struct {
	handlers map[Action]func()
	any      func()
}

// NewBindings creates an empty binding set.
func NewBindings() *Bindings {
	return &Bindings{handlers: make(map[Action]func())}
}

// Bind registers the callback for an action, replacing any previous one.
func (b *Bindings) Bind(a Action, fn func()) {
	b.handlers[a] = fn
}

// BindAny registers a callback for any key that has no specific binding.
func (b *Bindings) BindAny(fn func()) {
	b.any = fn
}

// Clear drops every binding.
func (b *Bindings) Clear() {
	clear(b.handlers)
	b.any = nil
}

// Dispatch runs the callback bound to an action and reports whether one ran.
func (b *Bindings) Dispatch(a Action) bool {
	if fn, ok := b.handlers[a]; ok {
		fn()
		return true
	}
	if b.any != nil {
		b.any()
		return true
	}
	return false
}
