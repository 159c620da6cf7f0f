package world

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/gamedata"
)

const (
	// Width is the number of columns in every level.
	Width = 16
	// Height is the number of rows in every level.
	Height = 8
)

// Level is the mutable state of one overworld map. Levels keep their state when
// the explorer leaves them.
type Level struct {
	ID    string
	Name  string
	Floor tcell.Color

	data     [Width * Height]Tile
	entrance int // Index restored to E when vacated, -1 if none
	exit     int // Index restored to X when vacated, -1 if none
}

// index converts a coordinate into a cell index.
func index(x, y int) int {
	return x + Width*y
}

// InBounds returns true if the coordinate lies on the map.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// NewLevel builds a level from its data definition.
func NewLevel(def gamedata.LevelDef) (*Level, error) {
	if len(def.Rows) != Height {
		return nil, fmt.Errorf("level %s: %d rows, want %d", def.ID, len(def.Rows), Height)
	}

	l := &Level{
		ID:       def.ID,
		Name:     def.Name,
		Floor:    def.FloorColor(),
		entrance: -1,
		exit:     -1,
	}
	for y, row := range def.Rows {
		if len(row) != Width {
			return nil, fmt.Errorf("level %s row %d: width %d, want %d", def.ID, y, len(row), Width)
		}
		for x := 0; x < Width; x++ {
			t := Tile(row[x])
			i := index(x, y)
			l.data[i] = t
			switch t {
			case TileEntrance:
				l.entrance = i
			case TileExit:
				l.exit = i
			}
		}
	}
	return l, nil
}

// ParseLevel builds a level from raw rows. Used for hand-made maps.
func ParseLevel(id string, rows ...string) (*Level, error) {
	return NewLevel(gamedata.LevelDef{ID: id, Name: id, Floor: "#000000", Rows: rows})
}

// LoadLevels builds every level from the embedded level data, in file order.
func LoadLevels() ([]*Level, error) {
	defs, err := gamedata.LoadLevels()
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}

	levels := make([]*Level, 0, len(defs))
	for _, def := range defs {
		l, err := NewLevel(def)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// Get returns the raw tile at a coordinate, including the processed mark.
// Coordinates off the map read as rock.
func (l *Level) Get(x, y int) Tile {
	if !InBounds(x, y) {
		return TileRock
	}
	return l.data[index(x, y)]
}

// At returns the tile at a coordinate without the processed mark.
func (l *Level) At(x, y int) Tile {
	return l.Get(x, y).Unmarked()
}

// Move shifts the occupant of (prevX, prevY) to (nextX, nextY) if the target is
// on the map and open floor, entrance, or exit. The vacated cell reverts to
// floor, or to E/X if it is the level's entrance or exit. Returns where the
// occupant ended up.
func (l *Level) Move(prevX, prevY, nextX, nextY int) (int, int) {
	if !InBounds(nextX, nextY) || !InBounds(prevX, prevY) {
		return prevX, prevY
	}

	next := index(nextX, nextY)
	if !l.data[next].IsOpen() {
		return prevX, prevY
	}

	prev := index(prevX, prevY)
	occupant := l.data[prev]
	l.data[prev] = l.vacated(prev)
	l.data[next] = occupant
	return nextX, nextY
}

// Replace overwrites the tile at a coordinate. The processed mark is kept.
func (l *Level) Replace(x, y int, t Tile) {
	if !InBounds(x, y) {
		return
	}
	i := index(x, y)
	l.data[i] = t.Unmarked() | l.data[i]&markBit
}

// Clear empties a cell, restoring E/X on the entrance or exit.
func (l *Level) Clear(x, y int) {
	if !InBounds(x, y) {
		return
	}
	i := index(x, y)
	l.data[i] = l.vacated(i)
}

func (l *Level) vacated(i int) Tile {
	switch i {
	case l.entrance:
		return TileEntrance
	case l.exit:
		return TileExit
	default:
		return TileEmpty
	}
}

// Mark flags a cell as processed for the current enemy scan.
func (l *Level) Mark(x, y int) {
	if InBounds(x, y) {
		l.data[index(x, y)] |= markBit
	}
}

// UnmarkAll clears every processed mark.
func (l *Level) UnmarkAll() {
	for i := range l.data {
		l.data[i] = l.data[i].Unmarked()
	}
}

// Find returns the last cell holding the tile, scanning row by row.
func (l *Level) Find(t Tile) (x, y int, ok bool) {
	for i, cell := range l.data {
		if cell.Unmarked() == t {
			x, y, ok = i%Width, i/Width, true
		}
	}
	return x, y, ok
}

// EnemyCount returns the number of enemies left on the level.
func (l *Level) EnemyCount() int {
	n := 0
	for _, cell := range l.data {
		if cell.IsEnemy() {
			n++
		}
	}
	return n
}

// Rows renders the level as text rows without marks.
func (l *Level) Rows() []string {
	rows := make([]string, Height)
	for y := 0; y < Height; y++ {
		row := make([]byte, Width)
		for x := 0; x < Width; x++ {
			row[x] = byte(l.At(x, y))
		}
		rows[y] = string(row)
	}
	return rows
}
