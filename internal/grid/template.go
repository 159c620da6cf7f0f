package grid

import (
	"fmt"

	"github.com/samdwyer/tehon/internal/gamedata"
)

// TemplateType identifies one of the combat grid archetypes.
type TemplateType int

const (
	TemplatePlayer TemplateType = iota
	TemplateWolf
	TemplateScout
	TemplateGuard
	TemplateWarrior
	TemplateRaider
	TemplateBoss

	numTemplateTypes
)

// String returns the template's data ID.
func (t TemplateType) String() string {
	switch t {
	case TemplatePlayer:
		return "player"
	case TemplateWolf:
		return "wolf"
	case TemplateScout:
		return "scout"
	case TemplateGuard:
		return "guard"
	case TemplateWarrior:
		return "warrior"
	case TemplateRaider:
		return "raider"
	case TemplateBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ParseTemplateType converts a data ID into a TemplateType.
func ParseTemplateType(id string) (TemplateType, error) {
	for t := TemplatePlayer; t < numTemplateTypes; t++ {
		if t.String() == id {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown grid template %q", id)
}

// Template is an immutable grid layout shared by every combatant of an archetype.
type Template struct {
	Type   TemplateType
	Width  int
	Height int
	Start  int
	Spots  []Spot
}

// Size returns the number of cells in the template.
func (t *Template) Size() int {
	return t.Width * t.Height
}

// Index converts a cell coordinate into a cell index.
func (t *Template) Index(x, y int) int {
	return x + t.Width*y
}

// Coord converts a cell index into a cell coordinate.
func (t *Template) Coord(pos int) (x, y int) {
	return pos % t.Width, pos / t.Width
}

// AttachmentsAt returns the attachments of the cell at (x, y), or an empty
// spot when the coordinate is outside the template.
func (t *Template) AttachmentsAt(x, y int) Spot {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return Spot{}
	}
	return t.Spots[t.Index(x, y)]
}

// newTemplate builds a template from its data definition.
func newTemplate(def gamedata.GridDef) (*Template, error) {
	tt, err := ParseTemplateType(def.ID)
	if err != nil {
		return nil, err
	}
	if def.Width <= 0 || def.Height <= 0 {
		return nil, fmt.Errorf("grid %s: invalid size %dx%d", def.ID, def.Width, def.Height)
	}
	if len(def.Cells) != def.Width*def.Height {
		return nil, fmt.Errorf("grid %s: %d cells for a %dx%d grid", def.ID, len(def.Cells), def.Width, def.Height)
	}
	if def.Start < 0 || def.Start >= len(def.Cells) {
		return nil, fmt.Errorf("grid %s: start %d out of range", def.ID, def.Start)
	}

	tmpl := &Template{
		Type:   tt,
		Width:  def.Width,
		Height: def.Height,
		Start:  def.Start,
		Spots:  make([]Spot, len(def.Cells)),
	}
	for i, cell := range def.Cells {
		if len(cell) > SpotSize {
			return nil, fmt.Errorf("grid %s: cell %d has %d attachments", def.ID, i, len(cell))
		}
		for slot, name := range cell {
			a, err := ParseAttachment(name)
			if err != nil {
				return nil, fmt.Errorf("grid %s cell %d: %w", def.ID, i, err)
			}
			tmpl.Spots[i][slot] = a
		}
	}
	return tmpl, nil
}

// Store holds every combat grid template, built once when the fight subsystem starts.
type Store struct {
	templates [numTemplateTypes]*Template
}

// NewStore builds the template store from grid definitions keyed by ID.
// Every archetype must be present.
func NewStore(defs map[string]gamedata.GridDef) (*Store, error) {
	s := &Store{}
	for t := TemplatePlayer; t < numTemplateTypes; t++ {
		def, ok := defs[t.String()]
		if !ok {
			return nil, fmt.Errorf("missing grid template %q", t)
		}
		tmpl, err := newTemplate(def)
		if err != nil {
			return nil, err
		}
		s.templates[t] = tmpl
	}
	return s, nil
}

// LoadStore builds the template store from the embedded grid data.
func LoadStore() (*Store, error) {
	defs, err := gamedata.LoadGridDefs()
	if err != nil {
		return nil, fmt.Errorf("failed to load grid definitions: %w", err)
	}
	return NewStore(defs)
}

// MustLoadStore builds the template store, panicking on error.
func MustLoadStore() *Store {
	s, err := LoadStore()
	if err != nil {
		panic(err)
	}
	return s
}

// Get returns the template for an archetype.
func (s *Store) Get(t TemplateType) *Template {
	if t < 0 || t >= numTemplateTypes {
		return nil
	}
	return s.templates[t]
}

// ByID returns the template for a data ID, or nil if none matches.
func (s *Store) ByID(id string) *Template {
	t, err := ParseTemplateType(id)
	if err != nil {
		return nil
	}
	return s.Get(t)
}

// AttachmentsAt returns the attachments at a cell of an archetype's template.
func (s *Store) AttachmentsAt(t TemplateType, x, y int) Spot {
	tmpl := s.Get(t)
	if tmpl == nil {
		return Spot{}
	}
	return tmpl.AttachmentsAt(x, y)
}
