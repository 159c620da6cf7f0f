package combat

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/entity"
)

// Action timings in seconds.
const (
	attackOutTime = 0.1
	attackInTime  = 0.2
	deathOutTime  = 0.0
	deathInTime   = 0.75
)

// ActionKind is the closed set of queued fight actions.
type ActionKind int

const (
	ActionBothAttack ActionKind = iota
	ActionPlayerAttack
	ActionOpponentAttack
	ActionBothDie
	ActionPlayerDie
	ActionOpponentDie
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionBothAttack:
		return "both_attack"
	case ActionPlayerAttack:
		return "player_attack"
	case ActionOpponentAttack:
		return "opponent_attack"
	case ActionBothDie:
		return "both_die"
	case ActionPlayerDie:
		return "player_die"
	case ActionOpponentDie:
		return "opponent_die"
	default:
		return "unknown"
	}
}

// IsDeath reports whether the action animates a death.
func (k ActionKind) IsDeath() bool {
	return k == ActionBothDie || k == ActionPlayerDie || k == ActionOpponentDie
}

// PlayerAttacks reports whether the player strikes during the action.
func (k ActionKind) PlayerAttacks() bool {
	return k == ActionBothAttack || k == ActionPlayerAttack
}

// OpponentAttacks reports whether the opponent strikes during the action.
func (k ActionKind) OpponentAttacks() bool {
	return k == ActionBothAttack || k == ActionOpponentAttack
}

// Pose is one creature's keyframes for an action. The outbound phase slides from
// InPos to OutPos showing OutSprite; the inbound phase slides back showing
// InSprite while the color fades from OutColor to InColor.
type Pose struct {
	OutPos    entity.Vec2
	InPos     entity.Vec2
	OutSprite entity.Sprite
	InSprite  entity.Sprite
	OutColor  tcell.Color
	InColor   tcell.Color
}

// Action is one timed step of the fight sequence.
type Action struct {
	Kind     ActionKind
	Player   Pose
	Opponent Pose

	OutTimeMax  float64
	OutTimeLeft float64
	InTimeMax   float64
	InTimeLeft  float64

	CheckForDeath bool
}

func still(base entity.Vec2, sprite entity.Sprite) Pose {
	return Pose{
		OutPos: base, InPos: base,
		OutSprite: sprite, InSprite: sprite,
		OutColor: tcell.ColorWhite, InColor: tcell.ColorWhite,
	}
}

// NewAction builds the keyframes and timings for an action kind.
func NewAction(kind ActionKind) Action {
	a := Action{Kind: kind}

	switch kind {
	case ActionBothAttack:
		a.Player = Pose{
			OutPos: PlayerBothAttack, InPos: PlayerBase,
			OutSprite: entity.SpriteDefend, InSprite: entity.SpriteAttack,
			OutColor: tcell.ColorRed, InColor: tcell.ColorWhite,
		}
		a.Opponent = Pose{
			OutPos: OpponentBothAttack, InPos: OpponentBase,
			OutSprite: entity.SpriteDefend, InSprite: entity.SpriteAttack,
			OutColor: tcell.ColorRed, InColor: tcell.ColorWhite,
		}
	case ActionPlayerAttack:
		a.Player = Pose{
			OutPos: PlayerAttackOnly, InPos: PlayerBase,
			OutSprite: entity.SpriteIdle, InSprite: entity.SpriteAttack,
			OutColor: tcell.ColorWhite, InColor: tcell.ColorWhite,
		}
		a.Opponent = Pose{
			OutPos: OpponentDefend, InPos: OpponentBase,
			OutSprite: entity.SpriteDefend, InSprite: entity.SpriteDefend,
			OutColor: tcell.ColorRed, InColor: tcell.ColorWhite,
		}
	case ActionOpponentAttack:
		a.Player = Pose{
			OutPos: PlayerDefend, InPos: PlayerBase,
			OutSprite: entity.SpriteDefend, InSprite: entity.SpriteDefend,
			OutColor: tcell.ColorRed, InColor: tcell.ColorWhite,
		}
		a.Opponent = Pose{
			OutPos: OpponentAttackOnly, InPos: OpponentBase,
			OutSprite: entity.SpriteIdle, InSprite: entity.SpriteAttack,
			OutColor: tcell.ColorWhite, InColor: tcell.ColorWhite,
		}
	case ActionBothDie:
		a.Player = still(PlayerBase, entity.SpriteDead)
		a.Opponent = still(OpponentBase, entity.SpriteDead)
	case ActionPlayerDie:
		a.Player = still(PlayerBase, entity.SpriteDead)
		a.Opponent = still(OpponentBase, entity.SpriteIdle)
	case ActionOpponentDie:
		a.Player = still(PlayerBase, entity.SpriteIdle)
		a.Opponent = still(OpponentBase, entity.SpriteDead)
	}

	if kind.IsDeath() {
		a.OutTimeMax, a.InTimeMax = deathOutTime, deathInTime
	} else {
		a.OutTimeMax, a.InTimeMax = attackOutTime, attackInTime
		a.CheckForDeath = true
	}
	a.OutTimeLeft = a.OutTimeMax
	a.InTimeLeft = a.InTimeMax

	return a
}

// applyOut poses a creature during the outbound phase.
func (p Pose) applyOut(c *entity.Creature, t float64) {
	c.ImgPos = entity.Lerp(p.OutPos, p.InPos, t)
	c.ImgColor = p.InColor
	c.Sprite = p.OutSprite
}

// applyIn poses a creature during the inbound phase.
func (p Pose) applyIn(c *entity.Creature, t float64) {
	c.ImgPos = entity.Lerp(p.InPos, p.OutPos, t)
	c.ImgColor = entity.LerpColor(p.InColor, p.OutColor, t)
	c.Sprite = p.InSprite
}

// deathFor picks the death action for the creatures that died, if any.
func deathFor(player, opponent *entity.Creature) (ActionKind, bool) {
	playerDead := player.Health <= 0
	opponentDead := opponent.Health <= 0
	switch {
	case playerDead && opponentDead:
		return ActionBothDie, true
	case playerDead:
		return ActionPlayerDie, true
	case opponentDead:
		return ActionOpponentDie, true
	default:
		return 0, false
	}
}
