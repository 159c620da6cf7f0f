package grid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/rng"
)

// MoveRate is how much slide progress a marker makes per second (0.25s per cell).
const MoveRate = 4.0

// Direction is a marker move requested by a combatant.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	ToStart
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case ToStart:
		return "start"
	default:
		return "unknown"
	}
}

// Grid is a combatant's marker on its template. Pos equals PrevPos whenever
// no slide is in flight.
type Grid struct {
	Template *Template
	Pos      int
	PrevPos  int
	MoveAmt  float64 // Slide progress from PrevPos to Pos, in [0,1]
	Color    tcell.Color
}

// New creates a grid with its marker resting on the template's start cell.
func New(tmpl *Template, color tcell.Color) *Grid {
	g := &Grid{Template: tmpl, Color: color}
	g.Place(tmpl.Start)
	return g
}

// Place puts the marker on a cell with no slide animation.
func (g *Grid) Place(pos int) {
	g.Pos = pos
	g.PrevPos = pos
	g.MoveAmt = 0
}

// IsValidMove reports whether a marker on prevPos may move to newPos: the target
// must be inside the template and must not wrap across a row edge.
func IsValidMove(tmpl *Template, prevPos, newPos int) bool {
	if newPos < 0 || newPos >= tmpl.Size() {
		return false
	}
	if newPos%tmpl.Width == 0 && prevPos < newPos && newPos-prevPos == 1 {
		return false
	}
	if prevPos%tmpl.Width == 0 && newPos < prevPos && prevPos-newPos == 1 {
		return false
	}
	return true
}

// IsValidMove reports whether the marker may move from its current cell to newPos.
func (g *Grid) IsValidMove(newPos int) bool {
	return IsValidMove(g.Template, g.Pos, newPos)
}

// Target returns the cell index a direction leads to from the current cell.
// The result may be invalid; check it with IsValidMove.
func (g *Grid) Target(dir Direction) int {
	switch dir {
	case Up:
		return g.Pos - g.Template.Width
	case Down:
		return g.Pos + g.Template.Width
	case Left:
		return g.Pos - 1
	case Right:
		return g.Pos + 1
	default:
		return g.Template.Start
	}
}

// MoveTo starts a slide toward pos. The caller validates the move.
func (g *Grid) MoveTo(pos int) {
	g.Pos = pos
	g.MoveAmt = 0
}

// TryMove moves the marker in a direction if the move is valid.
func (g *Grid) TryMove(dir Direction) bool {
	target := g.Target(dir)
	if !g.IsValidMove(target) {
		return false
	}
	g.MoveTo(target)
	return true
}

// RandomMove moves the marker one step in a random valid direction. It returns
// false and leaves the marker alone when no neighbour is reachable.
func (g *Grid) RandomMove(src rng.Source) bool {
	steps := [4]int{1, -1, g.Template.Width, -g.Template.Width}

	reachable := false
	for _, step := range steps {
		if g.IsValidMove(g.Pos + step) {
			reachable = true
			break
		}
	}
	if !reachable {
		return false
	}

	for {
		target := g.Pos + steps[src.UniformU32()%4]
		if g.IsValidMove(target) {
			g.MoveTo(target)
			return true
		}
	}
}

// Idle reports whether the marker has finished sliding.
func (g *Grid) Idle() bool {
	return g.Pos == g.PrevPos
}

// Update advances the slide animation and reports whether the marker is at rest.
func (g *Grid) Update(dt float64) bool {
	if g.Idle() {
		return true
	}

	g.MoveAmt += dt * MoveRate
	if g.MoveAmt >= 1 {
		g.MoveAmt = 1
		g.PrevPos = g.Pos
		return true
	}
	return false
}

// Current returns the attachments of the marker's current cell.
func (g *Grid) Current() Spot {
	return g.Template.Spots[g.Pos]
}

// CountAttachments counts an attachment type on the marker's current cell.
func (g *Grid) CountAttachments(a Attachment) int {
	return g.Current().Count(a)
}

// ResetIfMarked snaps the marker back to the start cell when its current cell
// carries a Reset attachment. The snap is animated like any other move.
func (g *Grid) ResetIfMarked() bool {
	if g.CountAttachments(Reset) == 0 {
		return false
	}
	g.MoveTo(g.Template.Start)
	return true
}

// MarkerPos returns the marker's drawn position in cell units, interpolated
// between the previous and current cells.
func (g *Grid) MarkerPos() (x, y float64) {
	px, py := g.Template.Coord(g.PrevPos)
	cx, cy := g.Template.Coord(g.Pos)
	t := g.MoveAmt
	if g.Idle() {
		t = 1
	}
	return float64(px) + float64(cx-px)*t, float64(py) + float64(cy-py)*t
}
