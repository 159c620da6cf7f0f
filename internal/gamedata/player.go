package gamedata

import "github.com/gdamore/tcell/v2"

// PlayerDef defines the player's starting stats loaded from JSON.
type PlayerDef struct {
	Name         string `json:"name"`         // Display name
	Symbol       string `json:"symbol"`       // Map glyph (e.g., "@")
	Color        string `json:"color"`        // Hex color for the glyph and combat marker
	Attack       int    `json:"attack"`       // Base attack stat
	Defense      int    `json:"defense"`      // Base defense stat
	Health       int    `json:"health"`       // Maximum health
	Stamina      int    `json:"stamina"`      // Maximum stamina
	StaminaRegen int    `json:"staminaRegen"` // Stamina recovered per overworld step
	Grid         string `json:"grid"`         // Combat grid archetype ID
}

// SymbolRune returns the symbol as a rune for rendering.
func (p *PlayerDef) SymbolRune() rune {
	if len(p.Symbol) == 0 {
		return '@'
	}
	return rune(p.Symbol[0])
}

// TCellColor returns the color as a tcell.Color.
func (p *PlayerDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorGreen)
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadPlayer loads the player definition, panicking on error.
func MustLoadPlayer() *PlayerDef {
	return must(LoadPlayer())
}
