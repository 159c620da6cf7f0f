// Package gamedata provides the embedded game content: enemies, the player,
// combat grids and level maps.
package gamedata

import "embed"

// dataFS holds every JSON content file in this directory.
//
//go:embed *.json
var dataFS embed.FS
