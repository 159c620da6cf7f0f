package combat

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/entity"
)

// PopUpMaxLife is how long a combat text pop-up stays visible, in seconds.
const PopUpMaxLife = 1.0

// popUpStagger is the minimum time between two pop-ups activating on one side.
const popUpStagger = PopUpMaxLife / 3

var popUpRise = entity.Vec2{X: 0, Y: -50}

// PopUp is floating combat text.
type PopUp struct {
	Text      string
	Color     tcell.Color
	Base      entity.Vec2
	Target    entity.Vec2
	TimeAlive float64
	InUse     bool
	Side      entity.Side
}

func easeOutQuad(t float64) float64 { return t * (2 - t) }
func easeInQuad(t float64) float64  { return t * t }

// Pos returns the pop-up's current position, easing out toward its target.
func (p PopUp) Pos() entity.Vec2 {
	return entity.Lerp(p.Base, p.Target, easeOutQuad(p.TimeAlive/PopUpMaxLife))
}

// Alpha returns the pop-up's opacity in [0,1], easing in toward transparent.
func (p PopUp) Alpha() float64 {
	return 1 - easeInQuad(p.TimeAlive/PopUpMaxLife)
}

// PopUps is the pool of pending and active combat text. New pop-ups wait until
// their side has had no activation for popUpStagger seconds.
type PopUps struct {
	items     []PopUp
	sinceLast [2]float64
}

// NewPopUps creates an empty pool.
func NewPopUps() *PopUps {
	p := &PopUps{}
	p.Clear()
	return p
}

// Clear drops every pop-up. The next pop-up on each side activates immediately.
func (p *PopUps) Clear() {
	p.items = p.items[:0]
	p.sinceLast = [2]float64{popUpStagger, popUpStagger}
}

// Push queues a pop-up rising from start.
func (p *PopUps) Push(color tcell.Color, start entity.Vec2, side entity.Side, text string) {
	p.items = append(p.items, PopUp{
		Text:   text,
		Color:  color,
		Base:   start,
		Target: start.Add(popUpRise),
		Side:   side,
	})
}

// PushEffects queues a pop-up for each attack effect above the affected creature.
func (p *PopUps) PushEffects(effects []Effect, player, opponent *entity.Creature) {
	for _, e := range effects {
		target := player
		if e.Side == entity.SideOpponent {
			target = opponent
		}
		p.Push(e.Color(), target.TextPos, e.Side, e.Text())
	}
}

// Update activates at most one waiting pop-up per side, ages active ones, and
// removes those past their lifetime.
func (p *PopUps) Update(dt float64) {
	for _, side := range []entity.Side{entity.SidePlayer, entity.SideOpponent} {
		p.sinceLast[side] += dt
		if p.sinceLast[side] >= popUpStagger && p.activate(side) {
			p.sinceLast[side] = 0
		}
	}

	kept := p.items[:0]
	for _, item := range p.items {
		if item.InUse {
			item.TimeAlive += dt
			if item.TimeAlive > PopUpMaxLife {
				continue
			}
		}
		kept = append(kept, item)
	}
	p.items = kept
}

func (p *PopUps) activate(side entity.Side) bool {
	for i := range p.items {
		if p.items[i].InUse || p.items[i].Side != side {
			continue
		}
		p.items[i].InUse = true
		return true
	}
	return false
}

// Active returns the pop-ups currently on screen.
func (p *PopUps) Active() []PopUp {
	var active []PopUp
	for _, item := range p.items {
		if item.InUse {
			active = append(active, item)
		}
	}
	return active
}

// Len returns the number of pending and active pop-ups.
func (p *PopUps) Len() int {
	return len(p.items)
}
