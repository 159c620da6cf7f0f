package gamedata

import "github.com/gdamore/tcell/v2"

// LevelDef defines an overworld map loaded from JSON. Each row is one line of tile codes.
type LevelDef struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Floor string   `json:"floor"` // Hex color of empty floor
	Rows  []string `json:"rows"`
}

// FloorColor returns the floor color as a tcell.Color.
func (l *LevelDef) FloorColor() tcell.Color {
	return colorOr(l.Floor, tcell.ColorDarkGray)
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level layouts from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// MustLoadLevels loads level layouts, panicking on error.
func MustLoadLevels() []LevelDef {
	return must(LoadLevels())
}
