package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 6 {
		t.Errorf("Expected 6 enemies, got %d", len(enemies))
	}

	expectedCodes := map[string]bool{"W": false, "S": false, "G": false, "A": false, "R": false, "B": false}
	for _, e := range enemies {
		if _, ok := expectedCodes[e.Code]; ok {
			expectedCodes[e.Code] = true
		}
	}

	for code, found := range expectedCodes {
		if !found {
			t.Errorf("Expected enemy %q not found", code)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 6 {
		t.Errorf("Expected 6 enemy types, got %d", registry.Count())
	}

	tests := []struct {
		code    byte
		name    string
		attack  int
		defense int
		health  int
		boss    bool
	}{
		{'W', "Wolf", 2, 2, 6, false},
		{'S', "Orc Scout", 2, 1, 6, false},
		{'G', "Orc Guard", 3, 2, 11, false},
		{'A', "Orc Warrior", 2, 2, 10, false},
		{'R', "Orc Raider", 3, 1, 9, false},
		{'B', "Orc Leader", 3, 3, 12, true},
	}

	for _, tt := range tests {
		def := registry.ByCode(tt.code)
		if def == nil {
			t.Errorf("ByCode(%q) = nil", tt.code)
			continue
		}
		if def.Name != tt.name || def.Attack != tt.attack || def.Defense != tt.defense ||
			def.Health != tt.health || def.Boss != tt.boss {
			t.Errorf("ByCode(%q) = %+v", tt.code, *def)
		}
	}
}

func TestEnemyRegistryLowercase(t *testing.T) {
	registry := MustLoadEnemyRegistry()

	if def := registry.ByCode('w'); def == nil || def.Name != "Wolf" {
		t.Errorf("ByCode('w') = %v, want Wolf", def)
	}
	if registry.IsEnemyCode('#') {
		t.Error("IsEnemyCode('#') = true, want false")
	}
	if registry.IsEnemyCode(' ') {
		t.Error("IsEnemyCode(' ') = true, want false")
	}
}

func TestGridDefs(t *testing.T) {
	grids, err := LoadGridDefs()
	if err != nil {
		t.Fatalf("Failed to load grids: %v", err)
	}

	tests := []struct {
		id     string
		width  int
		height int
		start  int
	}{
		{"player", 5, 5, 12},
		{"wolf", 2, 2, 0},
		{"scout", 2, 2, 0},
		{"guard", 3, 3, 0},
		{"warrior", 3, 3, 0},
		{"raider", 3, 3, 0},
		{"boss", 4, 4, 0},
	}

	for _, tt := range tests {
		g, ok := grids[tt.id]
		if !ok {
			t.Errorf("grid %q not found", tt.id)
			continue
		}
		if g.Width != tt.width || g.Height != tt.height || g.Start != tt.start {
			t.Errorf("grid %q = %dx%d start %d, want %dx%d start %d",
				tt.id, g.Width, g.Height, g.Start, tt.width, tt.height, tt.start)
		}
		if len(g.Cells) != g.Width*g.Height {
			t.Errorf("grid %q has %d cells, want %d", tt.id, len(g.Cells), g.Width*g.Height)
		}
		for i, cell := range g.Cells {
			if len(cell) > 4 {
				t.Errorf("grid %q cell %d has %d attachments, max 4", tt.id, i, len(cell))
			}
		}
	}
}

func TestEnemyGridsExist(t *testing.T) {
	grids, err := LoadGridDefs()
	if err != nil {
		t.Fatalf("Failed to load grids: %v", err)
	}
	for _, e := range MustLoadEnemyRegistry().All() {
		if _, ok := grids[e.Grid]; !ok {
			t.Errorf("enemy %q references unknown grid %q", e.Code, e.Grid)
		}
	}
	if _, ok := grids[MustLoadPlayer().Grid]; !ok {
		t.Error("player references unknown grid")
	}
}

func TestLoadLevels(t *testing.T) {
	levels := MustLoadLevels()
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(levels))
	}

	for _, lvl := range levels {
		if len(lvl.Rows) != 8 {
			t.Errorf("level %q has %d rows, want 8", lvl.ID, len(lvl.Rows))
		}
		for y, row := range lvl.Rows {
			if len(row) != 16 {
				t.Errorf("level %q row %d has width %d, want 16", lvl.ID, y, len(row))
			}
		}
	}

	if levels[0].ID != "forest" || levels[1].ID != "cave" {
		t.Errorf("level order = %q, %q; want forest, cave", levels[0].ID, levels[1].ID)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"40C040", tcell.NewRGBColor(0x40, 0xC0, 0x40), true},
		{"#000000", tcell.NewRGBColor(0, 0, 0), true},
		{"silver", tcell.ColorSilver, true},
		{"Silver", tcell.ColorSilver, true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFF", tcell.ColorDefault, false},
		{"#GG0000", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.input, err)
			continue
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) = %v, want an error", tt.input, got)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"player.json": {Data: []byte(`{"name": "x", "atack": 3}`)},
		"broken.json": {Data: []byte(`{"name": `)},
	}

	if _, err := loadFrom[PlayerDef](fsys, "player.json"); err == nil {
		t.Error("loadFrom() with a misspelled field = nil error")
	}
	if _, err := loadFrom[PlayerDef](fsys, "broken.json"); err == nil {
		t.Error("loadFrom() with truncated JSON = nil error")
	}
	if _, err := loadFrom[PlayerDef](fsys, "missing.json"); err == nil {
		t.Error("loadFrom() of a missing file = nil error")
	}
}

func TestPlayerDef(t *testing.T) {
	def, err := LoadPlayer()
	if err != nil {
		t.Fatalf("Failed to load player: %v", err)
	}

	if def.SymbolRune() != '@' {
		t.Errorf("Expected symbol '@', got %c", def.SymbolRune())
	}
	if def.Attack != 3 || def.Defense != 3 || def.Health != 10 || def.Stamina != 5 {
		t.Errorf("player stats = %+v", *def)
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}
}
