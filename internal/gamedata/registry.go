package gamedata

import (
	"errors"
	"unicode"
)

// EnemyRegistry holds loaded enemy definitions keyed by map tile code.
type EnemyRegistry struct {
	enemies []EnemyDef
	byCode  map[byte]*EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	registry := &EnemyRegistry{
		enemies: enemies,
		byCode:  make(map[byte]*EnemyDef, len(enemies)),
	}
	for i := range enemies {
		registry.byCode[enemies[i].CodeByte()] = &enemies[i]
	}
	return registry
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	return must(LoadEnemyRegistry())
}

// ByCode returns the enemy for a map tile code, or nil if none matches.
// Lowercase (pursuing) codes resolve to the same archetype.
func (r *EnemyRegistry) ByCode(code byte) *EnemyDef {
	return r.byCode[byte(unicode.ToUpper(rune(code)))]
}

// IsEnemyCode reports whether the tile code belongs to a known enemy archetype.
func (r *EnemyRegistry) IsEnemyCode(code byte) bool {
	return r.ByCode(code) != nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// GridRegistry
// =============================================================================

// LoadGridDefs loads grid definitions keyed by ID.
func LoadGridDefs() (map[string]GridDef, error) {
	grids, err := LoadGrids()
	if err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		return nil, errors.New("no grids loaded from grids.json")
	}
	byID := make(map[string]GridDef, len(grids))
	for _, g := range grids {
		byID[g.ID] = g
	}
	return byID, nil
}
