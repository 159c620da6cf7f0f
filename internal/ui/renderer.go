package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/combat"
	"github.com/samdwyer/tehon/internal/entity"
	"github.com/samdwyer/tehon/internal/gamedata"
	"github.com/samdwyer/tehon/internal/grid"
	"github.com/samdwyer/tehon/internal/world"
)

// Screen layout in terminal cells.
const (
	mapLeft   = 2
	mapTop    = 2
	cellWidth = 2 // Map columns per level cell

	hudRow = mapTop + world.Height + 2

	gridTop       = 3
	playerGridX   = 2
	opponentGridX = 56
	gridCellW     = 5 // Four attachment glyphs and a gap
	gridCellH     = 2

	stageScaleX = 6.0  // Stage units per column
	stageScaleY = 16.0 // Stage units per row

	statsRow  = gridTop + 5*gridCellH + 1
	promptRow = statsRow + 3
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas  Canvas
	enemies *gamedata.EnemyRegistry
}

// NewRenderer creates a new renderer for the given canvas. Enemy definitions
// supply map glyph colors.
func NewRenderer(canvas Canvas, enemies *gamedata.EnemyRegistry) *Renderer {
	return &Renderer{canvas: canvas, enemies: enemies}
}

// frame clears the canvas, runs draw when the canvas is large enough for the
// layout, and flushes.
func (r *Renderer) frame(draw func()) {
	r.canvas.Clear()
	if w, h := r.canvas.Size(); w < MinWidth || h < MinHeight {
		DrawMarkup(r.canvas, 0, 0, w, fmt.Sprintf("Enlarge the terminal to %dx%d", MinWidth, MinHeight), tcell.ColorYellow)
	} else {
		draw()
	}
	r.canvas.Show()
}

// RenderTitle draws the title screen. The prompt appears once keys are accepted.
func (r *Renderer) RenderTitle(ready bool) {
	r.frame(func() {
		DrawCentered(r.canvas, MinWidth/2, 2, titleText, tcell.ColorAqua)
		DrawMarkup(r.canvas, 10, 5, 60, introText, tcell.ColorSilver)
		if ready {
			DrawCentered(r.canvas, MinWidth/2, 20, beginPrompt, tcell.ColorYellow)
		}
	})
}

// RenderHelp draws both help panels and the grid symbol legend.
func (r *Renderer) RenderHelp() {
	r.frame(func() {
		left := DrawMarkup(r.canvas, 2, 1, 36, exploreHelp, tcell.ColorWhite)
		right := DrawMarkup(r.canvas, 42, 1, 36, fightHelp, tcell.ColorWhite)

		row := max(left, right) + 2
		DrawMarkup(r.canvas, 2, row, 0, legendTitle, tcell.ColorYellow)
		row++
		for i, a := range grid.Legend {
			x := 2 + (i%3)*26
			y := row + i/3
			r.canvas.SetContent(x, y, a.Glyph(), tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
			DrawMarkup(r.canvas, x+2, y, 0, a.Label(), tcell.ColorWhite)
		}
		row += (len(grid.Legend)+2)/3 + 1

		DrawCentered(r.canvas, MinWidth/2, row, helpExit, tcell.ColorSilver)
	})
}

// RenderExplore draws the part of the level visible from the explorer, the
// explorer, the player's stats, and the current objective.
func (r *Renderer) RenderExplore(l *world.Level, ex *entity.Explorer, player *entity.Creature, killedBoss bool) {
	r.frame(func() {
		DrawMarkup(r.canvas, mapLeft, mapTop-1, 0, "<W>"+l.Name, tcell.ColorWhite)

		for y := 0; y < world.Height; y++ {
			for x := 0; x < world.Width; x++ {
				if !world.IsVisibleFrom(l, x, y, ex.X, ex.Y) {
					continue
				}
				ch, style := r.tileLook(l, l.At(x, y), killedBoss)
				r.canvas.SetContent(mapLeft+x*cellWidth, mapTop+y, ch, style)
			}
		}

		r.canvas.SetContent(mapLeft+ex.X*cellWidth, mapTop+ex.Y, ex.Symbol,
			tcell.StyleDefault.Foreground(player.Color).Bold(true))

		DrawMarkup(r.canvas, mapLeft, hudRow, 0, StatsLine(player), tcell.ColorWhite)
		objective := objectiveHunt
		if killedBoss {
			objective = objectiveEscape
		}
		DrawMarkup(r.canvas, 44, hudRow, 0, objective, tcell.ColorWhite)
	})
}

// tileLook returns how a level tile is drawn. The entrance only shows once the
// leader is dead and the exit only while the leader lives.
func (r *Renderer) tileLook(l *world.Level, t world.Tile, killedBoss bool) (rune, tcell.Style) {
	floor := tcell.StyleDefault.Foreground(l.Floor)

	switch {
	case t == world.TileEmpty:
		return '.', floor
	case t == world.TileTree:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case t == world.TileRock:
		return '#', tcell.StyleDefault.Foreground(tcell.ColorGray)
	case t == world.TileEntrance:
		if killedBoss {
			return 'E', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		return '.', floor
	case t == world.TileExit:
		if !killedBoss {
			return 'X', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		return '.', floor
	case t.IsEnemy():
		color := tcell.ColorRed
		if def := r.enemies.ByCode(byte(t)); def != nil {
			color = def.TCellColor()
		}
		return t.Alert().Rune(), tcell.StyleDefault.Foreground(color).Bold(true)
	default:
		return t.Rune(), tcell.StyleDefault
	}
}

// StatsLine returns a creature's stats as marked-up text.
func StatsLine(c *entity.Creature) string {
	switch {
	case c.Health <= 0:
		return "<R>DEAD!"
	case c.MaxStamina > 0:
		return fmt.Sprintf("<G>Stamina: %d/%d    <R>Health: %d/%d", c.Stamina, c.MaxStamina, c.Health, c.MaxHealth)
	default:
		return fmt.Sprintf("<R>Health: %d/%d", c.Health, c.MaxHealth)
	}
}

// RenderFight draws both combat grids with their markers, both creatures on
// the stage, their stats, and the floating combat text.
func (r *Renderer) RenderFight(player, opponent *entity.Creature, popups []combat.PopUp, prompt bool) {
	r.frame(func() {
		DrawMarkup(r.canvas, playerGridX, gridTop-2, 0, player.Name, tcell.ColorWhite)
		DrawMarkup(r.canvas, opponentGridX, gridTop-2, 0, opponent.Name, opponent.Color)

		r.drawGrid(playerGridX, gridTop, player.Grid)
		r.drawGrid(opponentGridX, gridTop, opponent.Grid)

		r.drawCreature(player)
		r.drawCreature(opponent)

		DrawMarkup(r.canvas, playerGridX, statsRow, 0, StatsLine(player), tcell.ColorWhite)
		DrawMarkup(r.canvas, opponentGridX, statsRow, 0, StatsLine(opponent), tcell.ColorWhite)

		for _, p := range popups {
			x, y := stageCell(p.Pos())
			color := p.Color
			if p.Alpha() < 0.35 {
				color = tcell.ColorGray
			}
			DrawCentered(r.canvas, x, y, p.Text, color)
		}

		if prompt {
			DrawMarkup(r.canvas, playerGridX, promptRow, 0, fightPrompt, tcell.ColorSilver)
		}
	})
}

// drawGrid draws a combat grid with its top-left corner at (left, top). The
// marker is drawn as a highlighted cell partway along its slide.
func (r *Renderer) drawGrid(left, top int, g *grid.Grid) {
	tmpl := g.Template
	mx, my := g.MarkerPos()
	markX, markY := int(math.Round(mx)), int(math.Round(my))

	for y := 0; y < tmpl.Height; y++ {
		for x := 0; x < tmpl.Width; x++ {
			style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
			if x == markX && y == markY {
				style = style.Background(g.Color).Foreground(tcell.ColorBlack)
			}

			cx, cy := left+x*gridCellW, top+y*gridCellH
			spot := tmpl.AttachmentsAt(x, y)
			for i := 0; i < grid.SpotSize; i++ {
				r.canvas.SetContent(cx+i, cy, spot[i].Glyph(), style)
			}
		}
	}
}

// drawCreature draws a creature's glyph at its stage position in its current
// pose, tinted by the action color.
func (r *Renderer) drawCreature(c *entity.Creature) {
	x, y := stageCell(c.ImgPos)

	color := c.Color
	if c.ImgColor != tcell.ColorWhite {
		color = c.ImgColor
	}
	style := tcell.StyleDefault.Foreground(color).Bold(true)

	glyph := c.Glyph
	switch c.Sprite {
	case entity.SpriteAttack:
		if c.Side == entity.SidePlayer {
			r.canvas.SetContent(x+1, y, '/', style)
		} else {
			r.canvas.SetContent(x-1, y, '\\', style)
		}
	case entity.SpriteDefend:
		if c.Side == entity.SidePlayer {
			r.canvas.SetContent(x+1, y, ']', style)
		} else {
			r.canvas.SetContent(x-1, y, '[', style)
		}
	case entity.SpriteDead:
		glyph = '%'
		style = tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	r.canvas.SetContent(x, y, glyph, style)

	if c.Stunned {
		DrawCentered(r.canvas, x, y+2, "Stunned", tcell.ColorYellow)
	}
}

// stageCell maps a stage position to a terminal cell.
func stageCell(v entity.Vec2) (int, int) {
	return int(math.Round(v.X / stageScaleX)), int(math.Round(v.Y / stageScaleY))
}

// RenderGameOver draws the ending text. The prompt appears once keys are accepted.
func (r *Renderer) RenderGameOver(ending int, ready bool) {
	r.frame(func() {
		if ending >= 0 && ending < len(endingTexts) {
			DrawMarkup(r.canvas, 10, 6, 60, endingTexts[ending], tcell.ColorSilver)
		}
		if ready {
			DrawCentered(r.canvas, MinWidth/2, 20, titlePrompt, tcell.ColorYellow)
		}
	})
}
