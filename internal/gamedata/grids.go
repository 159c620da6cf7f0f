package gamedata

// GridDef defines a combat grid layout loaded from JSON.
//
// Cells are listed row-major (index = x + width*y). Each cell lists up to four
// attachment names; duplicates are meaningful and stack.
type GridDef struct {
	ID     string     `json:"id"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Start  int        `json:"start"`
	Cells  [][]string `json:"cells"`
}

// GridsFile represents the structure of grids.json.
type GridsFile struct {
	Grids []GridDef `json:"grids"`
}

// LoadGrids loads combat grid definitions from the embedded grids.json file.
func LoadGrids() ([]GridDef, error) {
	file, err := Load[GridsFile]("grids.json")
	if err != nil {
		return nil, err
	}
	return file.Grids, nil
}
