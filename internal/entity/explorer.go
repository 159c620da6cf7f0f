// Package entity provides the combatants and the overworld explorer.
package entity

// Explorer is the player's position on the overworld map. The explorer is not
// stored in the level grid; enemies can step onto its cell to start a fight.
type Explorer struct {
	X, Y   int  // Current position on the level
	Symbol rune // Display symbol
}

// NewExplorer creates an explorer at the given position.
func NewExplorer(x, y int, symbol rune) *Explorer {
	return &Explorer{
		X:      x,
		Y:      y,
		Symbol: symbol,
	}
}

// Move updates the explorer position by the given delta.
func (e *Explorer) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Place puts the explorer on an absolute position.
func (e *Explorer) Place(x, y int) {
	e.X = x
	e.Y = y
}

// Position returns the current x, y coordinates.
func (e *Explorer) Position() (int, int) {
	return e.X, e.Y
}
