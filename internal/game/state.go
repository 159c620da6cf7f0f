// Package game provides the main game loop and state management.
package game

// State represents the current screen.
type State int

const (
	// StateTitle shows the title and introduction.
	StateTitle State = iota
	// StateExplore is the overworld mode where the explorer moves one cell per key.
	StateExplore
	// StateFight is the combat grid mode against a single opponent.
	StateFight
	// StateHelp explains the controls and returns to the screen it was opened from.
	StateHelp
	// StateGameOver shows the ending text.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateExplore:
		return "explore"
	case StateFight:
		return "fight"
	case StateHelp:
		return "help"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
