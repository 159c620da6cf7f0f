package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/gamedata"
	"github.com/samdwyer/tehon/internal/grid"
)

// Side identifies which half of the fight a creature stands on.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Sprite is the pose a creature is drawn in during a fight.
type Sprite int

const (
	SpriteIdle Sprite = iota
	SpriteAttack
	SpriteDefend
	SpriteDead
)

// String returns a human-readable sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteIdle:
		return "idle"
	case SpriteAttack:
		return "attack"
	case SpriteDefend:
		return "defend"
	case SpriteDead:
		return "dead"
	default:
		return "unknown"
	}
}

// stunnedAttacks marks a stunned creature as already done attacking this round.
const stunnedAttacks = 1000

// Creature is a fight participant. The player creature persists across fights;
// the opponent is rebuilt from an enemy definition at each encounter.
type Creature struct {
	Name  string
	Glyph rune
	Color tcell.Color // Map glyph color

	Attack  int
	Defense int

	Health    int
	MaxHealth int

	Stamina      int
	MaxStamina   int
	StaminaRegen int

	Grid *grid.Grid

	Side     Side
	Sprite   Sprite
	ImgPos   Vec2
	ImgColor tcell.Color
	TextPos  Vec2 // Where combat text pop-ups start

	// Per-fight transient state.
	AttacksTaken int
	Stunned      bool
	Boss         bool
}

// NewPlayer creates the player creature at full health and stamina.
func NewPlayer(def *gamedata.PlayerDef, tmpl *grid.Template) *Creature {
	return &Creature{
		Name:         def.Name,
		Glyph:        def.SymbolRune(),
		Color:        def.TCellColor(),
		Attack:       def.Attack,
		Defense:      def.Defense,
		Health:       def.Health,
		MaxHealth:    def.Health,
		Stamina:      def.Stamina,
		MaxStamina:   def.Stamina,
		StaminaRegen: def.StaminaRegen,
		Grid:         grid.New(tmpl, tcell.ColorGreen),
		Side:         SidePlayer,
		ImgColor:     tcell.ColorWhite,
	}
}

// NewOpponent creates an opponent from an enemy definition. Opponents have no stamina.
func NewOpponent(def *gamedata.EnemyDef, tmpl *grid.Template) *Creature {
	return &Creature{
		Name:      def.Name,
		Glyph:     rune(def.CodeByte()),
		Color:     def.TCellColor(),
		Attack:    def.Attack,
		Defense:   def.Defense,
		Health:    def.Health,
		MaxHealth: def.Health,
		Grid:      grid.New(tmpl, tcell.ColorRed),
		Side:      SideOpponent,
		ImgColor:  tcell.ColorWhite,
		Boss:      def.Boss,
	}
}

// IsAlive returns true if the creature has health remaining.
func (c *Creature) IsAlive() bool {
	return c.Health > 0
}

// Regen restores stamina by the regeneration amount, capped at the maximum.
func (c *Creature) Regen() {
	c.Stamina = min(c.Stamina+c.StaminaRegen, c.MaxStamina)
}

// EnterFight puts the marker on the grid start and the sprite at its base pose.
func (c *Creature) EnterFight(base, textPos Vec2) {
	c.Grid.Place(c.Grid.Template.Start)
	c.TextPos = textPos
	c.Stunned = false
	c.AttacksTaken = 0
	c.ResetPose(base)
}

// ResetPose returns the sprite to idle at its base position in the default color.
func (c *Creature) ResetPose(base Vec2) {
	c.Sprite = SpriteIdle
	c.ImgPos = base
	c.ImgColor = tcell.ColorWhite
}

// StartRound resets the attack counter for a new round. A stunned creature counts
// as already done attacking. The stun is consumed.
func (c *Creature) StartRound() {
	if c.Stunned {
		c.AttacksTaken = stunnedAttacks
	} else {
		c.AttacksTaken = 0
	}
	c.Stunned = false
}

// CanAct reports whether the creature opens the round and may move its own
// marker: not stunned and not on a skip-turn cell.
func (c *Creature) CanAct() bool {
	return !c.Stunned && c.Grid.CountAttachments(grid.SkipTurn) == 0
}
