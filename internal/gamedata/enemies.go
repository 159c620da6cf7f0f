package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy archetype loaded from JSON. Enemies are placed on level maps
// by their single-letter code.
type EnemyDef struct {
	Code    string `json:"code"`    // Map tile letter, uppercase (e.g., "W")
	Name    string `json:"name"`    // Display name (e.g., "Wolf")
	Color   string `json:"color"`   // Hex color code for the map glyph and combat marker
	Attack  int    `json:"attack"`  // Base attack stat
	Defense int    `json:"defense"` // Base defense stat
	Health  int    `json:"health"`  // Base and maximum health
	Grid    string `json:"grid"`    // Combat grid archetype ID
	Boss    bool   `json:"boss"`    // Killing this enemy unlocks the escape
}

// CodeByte returns the map tile code as a byte.
func (e *EnemyDef) CodeByte() byte {
	if len(e.Code) == 0 {
		return '?'
	}
	return e.Code[0]
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOr(e.Color, tcell.ColorRed)
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
