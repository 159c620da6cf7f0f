// Package world provides the overworld levels, enemy pursuit, and line of sight.
package world

import "unicode"

// Tile is a level cell code. Letters other than E and X are enemies: uppercase
// enemies are alert, lowercase ones are pursuing the player.
type Tile byte

const (
	// TileEmpty is open floor.
	TileEmpty Tile = ' '
	// TileTree is a forest obstacle.
	TileTree Tile = '*'
	// TileRock is a cave obstacle.
	TileRock Tile = '#'
	// TileEntrance leads back toward home.
	TileEntrance Tile = 'E'
	// TileExit leads deeper in.
	TileExit Tile = 'X'
)

// markBit flags a cell as already processed during an enemy scan.
const markBit Tile = 0x80

// Marked reports whether the processed mark is set.
func (t Tile) Marked() bool {
	return t&markBit != 0
}

// Unmarked returns the tile code without the processed mark.
func (t Tile) Unmarked() Tile {
	return t &^ markBit
}

// IsObstacle returns true if nothing may stand on the tile.
func (t Tile) IsObstacle() bool {
	u := t.Unmarked()
	return u == TileTree || u == TileRock
}

// IsPassable returns true if the explorer may walk onto the tile.
func (t Tile) IsPassable() bool {
	return !t.IsObstacle()
}

// IsTerrain returns true for floor, obstacles, entrance and exit.
func (t Tile) IsTerrain() bool {
	switch t.Unmarked() {
	case TileEmpty, TileTree, TileRock, TileEntrance, TileExit:
		return true
	}
	return false
}

// IsOpen returns true if a moving enemy may step onto the tile.
func (t Tile) IsOpen() bool {
	switch t {
	case TileEmpty, TileEntrance, TileExit:
		return true
	}
	return false
}

// IsEnemy returns true if the tile holds an enemy.
func (t Tile) IsEnemy() bool {
	return !t.IsTerrain() && unicode.IsLetter(t.Rune())
}

// IsPursuing returns true for an enemy chasing the player.
func (t Tile) IsPursuing() bool {
	return t.IsEnemy() && unicode.IsLower(t.Rune())
}

// Wanders returns true for enemy kinds that roam and give chase. Guards hold
// their post.
func (t Tile) Wanders() bool {
	switch t.Alert().Unmarked() {
	case 'B', 'W', 'S', 'A', 'R':
		return true
	}
	return false
}

// Pursuing returns the pursuing form of an enemy tile, keeping the mark.
func (t Tile) Pursuing() Tile {
	return Tile(unicode.ToLower(t.Rune())) | t&markBit
}

// Alert returns the alert form of an enemy tile, keeping the mark.
func (t Tile) Alert() Tile {
	return Tile(unicode.ToUpper(t.Rune())) | t&markBit
}

// Rune returns the tile's display character without the mark.
func (t Tile) Rune() rune {
	return rune(t.Unmarked())
}
