package world

import (
	"strings"
	"testing"
)

// makeLevel builds a level from an empty map with the given cells set.
func makeLevel(t *testing.T, cells map[[2]int]byte) *Level {
	t.Helper()
	rows := make([][]byte, Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(" ", Width))
	}
	for pos, c := range cells {
		rows[pos[1]][pos[0]] = c
	}
	strs := make([]string, Height)
	for y := range rows {
		strs[y] = string(rows[y])
	}
	l, err := ParseLevel("test", strs...)
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	return l
}

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels() error: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, want 2", len(levels))
	}

	forest := levels[0]
	if x, y, ok := forest.Find(TileEntrance); !ok || x != 0 || y != 7 {
		t.Errorf("forest entrance = (%d,%d,%v), want (0,7)", x, y, ok)
	}
	if x, y, ok := forest.Find(TileExit); !ok || x != 15 || y != 2 {
		t.Errorf("forest exit = (%d,%d,%v), want (15,2)", x, y, ok)
	}
	if got := forest.EnemyCount(); got != 5 {
		t.Errorf("forest EnemyCount() = %d, want 5", got)
	}

	cave := levels[1]
	if x, y, ok := cave.Find('B'); !ok || x != 15 || y != 3 {
		t.Errorf("cave boss = (%d,%d,%v), want (15,3)", x, y, ok)
	}
	if _, _, ok := cave.Find(TileExit); ok {
		t.Error("cave should have no exit")
	}
}

func TestParseLevelErrors(t *testing.T) {
	if _, err := ParseLevel("short", "   "); err == nil {
		t.Error("ParseLevel with one row should fail")
	}
	rows := make([]string, Height)
	for i := range rows {
		rows[i] = "   "
	}
	if _, err := ParseLevel("narrow", rows...); err == nil {
		t.Error("ParseLevel with narrow rows should fail")
	}
}

func TestLevelMove(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{
		{0, 0}: 'E',
		{1, 0}: '#',
		{2, 0}: 'G',
	})

	// An enemy standing on the entrance leaves it behind.
	l.Replace(0, 0, 'W')
	if x, y := l.Move(0, 0, 0, 1); x != 0 || y != 1 {
		t.Fatalf("Move() = (%d,%d), want (0,1)", x, y)
	}
	if l.At(0, 0) != TileEntrance || l.At(0, 1) != 'W' {
		t.Errorf("after move: (0,0)=%q (0,1)=%q", l.At(0, 0), l.At(0, 1))
	}

	tests := []struct {
		name         string
		nextX, nextY int
	}{
		{"into obstacle", 1, 0},
		{"into enemy", 2, 0},
		{"off the map", -1, 1},
	}
	for _, tt := range tests {
		l.Move(0, 1, 0, 0) // back onto the entrance
		if x, y := l.Move(0, 0, tt.nextX, tt.nextY); x != 0 || y != 0 {
			t.Errorf("%s: Move() = (%d,%d), want to stay at (0,0)", tt.name, x, y)
		}
		l.Move(0, 0, 0, 1)
	}
}

func TestLevelClearRestoresExit(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{15, 2}: 'X'})
	l.Replace(15, 2, 'S')
	l.Clear(15, 2)
	if l.At(15, 2) != TileExit {
		t.Errorf("Clear() on exit = %q, want X", l.At(15, 2))
	}

	l.Replace(3, 3, 'R')
	l.Clear(3, 3)
	if l.At(3, 3) != TileEmpty {
		t.Errorf("Clear() = %q, want empty", l.At(3, 3))
	}
}

func TestLevelMarks(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{4, 4}: 'W'})

	l.Mark(4, 4)
	if !l.Get(4, 4).Marked() || l.At(4, 4) != 'W' {
		t.Fatalf("Mark() raw=%v at=%q", l.Get(4, 4), l.At(4, 4))
	}

	l.Replace(4, 4, 'w')
	if !l.Get(4, 4).Marked() || l.At(4, 4) != 'w' {
		t.Errorf("Replace() dropped the mark or tile: raw=%v", l.Get(4, 4))
	}

	l.UnmarkAll()
	if l.Get(4, 4).Marked() {
		t.Error("UnmarkAll() left a mark")
	}
}

func TestTile(t *testing.T) {
	tests := []struct {
		tile     Tile
		obstacle bool
		enemy    bool
		pursuing bool
		wanders  bool
	}{
		{TileEmpty, false, false, false, false},
		{TileTree, true, false, false, false},
		{TileRock, true, false, false, false},
		{TileEntrance, false, false, false, false},
		{TileExit, false, false, false, false},
		{'W', false, true, false, true},
		{'w', false, true, true, true},
		{'G', false, true, false, false},
		{'B' | markBit, false, true, false, true},
	}

	for _, tt := range tests {
		if tt.tile.IsObstacle() != tt.obstacle || tt.tile.IsEnemy() != tt.enemy ||
			tt.tile.IsPursuing() != tt.pursuing || tt.tile.Wanders() != tt.wanders {
			t.Errorf("Tile(%q): obstacle=%v enemy=%v pursuing=%v wanders=%v", tt.tile.Rune(),
				tt.tile.IsObstacle(), tt.tile.IsEnemy(), tt.tile.IsPursuing(), tt.tile.Wanders())
		}
	}

	if got := Tile('S' | markBit).Pursuing(); got != 's'|markBit {
		t.Errorf("Pursuing() = %v, want marked s", got)
	}
	if got := Tile('s').Alert(); got != 'S' {
		t.Errorf("Alert() = %q, want S", got)
	}
}
