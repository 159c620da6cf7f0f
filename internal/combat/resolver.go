// Package combat resolves attacks between two creatures and sequences the timed
// actions that animate a fight.
package combat

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/dice"
	"github.com/samdwyer/tehon/internal/entity"
	"github.com/samdwyer/tehon/internal/grid"
)

// counterThreshold is the number of counter attachments needed to reflect damage.
const counterThreshold = 2

// EffectKind is the kind of notification produced while damaging a creature.
type EffectKind int

const (
	// EffectStunned - the defender will skip its next round
	EffectStunned EffectKind = iota
	// EffectGuard - the attack was fully blocked
	EffectGuard
	// EffectStamina - the defender lost stamina
	EffectStamina
	// EffectHealth - the defender lost health
	EffectHealth
)

// String returns a human-readable effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectStunned:
		return "stunned"
	case EffectGuard:
		return "guard"
	case EffectStamina:
		return "stamina"
	case EffectHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Effect is one notification about what happened to a creature during an attack.
type Effect struct {
	Kind      EffectKind
	Side      entity.Side // Creature the effect applies to
	Amount    int         // Conflict result, zero or negative
	Countered bool        // Produced by a counter reflection
}

// Text returns the pop-up message for the effect.
func (e Effect) Text() string {
	suffix := ""
	if e.Countered {
		suffix = " Countered"
	}

	switch e.Kind {
	case EffectStunned:
		return "Stunned!"
	case EffectGuard:
		return "Guard" + suffix + "!"
	case EffectStamina:
		return fmt.Sprintf("%d Stamina%s!", e.Amount, suffix)
	case EffectHealth:
		return fmt.Sprintf("%d Health%s!", e.Amount, suffix)
	default:
		return ""
	}
}

// Color returns the pop-up color for the effect.
func (e Effect) Color() tcell.Color {
	switch e.Kind {
	case EffectStunned:
		return tcell.ColorYellow
	case EffectGuard:
		return tcell.ColorBlue
	case EffectStamina:
		return tcell.ColorGreen
	default:
		return tcell.ColorRed
	}
}

// AttackResult contains the outcome of one attack.
type AttackResult struct {
	Attack    int // Effective attack stat
	Defense   int // Effective defense stat
	Amount    int // Conflict result
	Effects   []Effect
	Countered bool
	Stunned   bool
}

// StaminaLost returns the total stamina loss reported across effects on a side.
func (r AttackResult) StaminaLost(side entity.Side) int {
	return r.lost(side, EffectStamina)
}

// HealthLost returns the total health loss reported across effects on a side.
func (r AttackResult) HealthLost(side entity.Side) int {
	return r.lost(side, EffectHealth)
}

func (r AttackResult) lost(side entity.Side, kind EffectKind) int {
	total := 0
	for _, e := range r.Effects {
		if e.Side == side && e.Kind == kind {
			total -= e.Amount
		}
	}
	return total
}

// CombatStats returns a creature's effective attack and defense on its current cell.
func CombatStats(c *entity.Creature) (attack, defense int) {
	attack = c.Attack + c.Grid.CountAttachments(grid.StrongAttack) - c.Grid.CountAttachments(grid.WeakAttack)
	defense = c.Defense + c.Grid.CountAttachments(grid.StrongDefense) - c.Grid.CountAttachments(grid.WeakDefense)
	return attack, defense
}

// AttacksThisRound returns how many attacks a creature makes this round.
func AttacksThisRound(c *entity.Creature) int {
	return 1 + c.Grid.CountAttachments(grid.MultiAttack)
}

// HasAttacksLeft reports whether a creature should attack again this round.
func HasAttacksLeft(c *entity.Creature) bool {
	return AttacksThisRound(c) > c.AttacksTaken && !c.Stunned
}

// DamageCreature applies a conflict result to the defender. A stun on the
// attacker's cell stuns the defender; a non-negative amount is guarded; otherwise
// stamina absorbs the loss before health. When allowCounter is set and the
// defender stands on enough counters, the same amount is reflected onto the
// attacker exactly once.
func DamageCreature(defender *entity.Creature, amount int, attacker *entity.Creature, allowCounter bool) []Effect {
	return damage(defender, amount, attacker, allowCounter, false)
}

func damage(defender *entity.Creature, amount int, attacker *entity.Creature, allowCounter, countered bool) []Effect {
	var effects []Effect

	if attacker.Grid.CountAttachments(grid.Stun) > 0 {
		defender.Stunned = true
		effects = append(effects, Effect{Kind: EffectStunned, Side: defender.Side, Countered: countered})
	}

	switch {
	case amount >= 0:
		effects = append(effects, Effect{Kind: EffectGuard, Side: defender.Side, Amount: 0, Countered: countered})
	case defender.Stamina > 0:
		defender.Stamina = max(0, defender.Stamina+amount)
		effects = append(effects, Effect{Kind: EffectStamina, Side: defender.Side, Amount: amount, Countered: countered})
	default:
		defender.Health = max(0, defender.Health+amount)
		effects = append(effects, Effect{Kind: EffectHealth, Side: defender.Side, Amount: amount, Countered: countered})
	}

	if allowCounter && defender.Grid.CountAttachments(grid.Counter) >= counterThreshold {
		effects = append(effects, damage(attacker, amount, defender, false, true)...)
	}

	return effects
}

// Resolver rolls and applies attacks.
type Resolver struct {
	roller *dice.Roller
}

// NewResolver creates a resolver using the given dice roller.
func NewResolver(roller *dice.Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Attack resolves one attack from attacker to defender and counts it against
// the attacker's attacks this round.
func (r *Resolver) Attack(attacker, defender *entity.Creature) AttackResult {
	att, _ := CombatStats(attacker)
	_, def := CombatStats(defender)

	amount := r.roller.RollConflict(att, def)
	effects := DamageCreature(defender, amount, attacker, true)
	attacker.AttacksTaken++

	result := AttackResult{
		Attack:  att,
		Defense: def,
		Amount:  amount,
		Effects: effects,
	}
	for _, e := range effects {
		if e.Countered {
			result.Countered = true
		}
		if e.Kind == EffectStunned {
			result.Stunned = true
		}
	}
	return result
}
