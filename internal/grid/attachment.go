// Package grid provides combat grid templates and the per-combatant marker
// that moves across them during a fight.
package grid

import "fmt"

// Attachment is a tag on a combat grid cell that modifies the round for the
// combatant whose marker ends on it.
type Attachment int

const (
	// None marks an empty attachment slot.
	None Attachment = iota
	// StrongAttack adds 1 to attack.
	StrongAttack
	// StrongDefense adds 1 to defense.
	StrongDefense
	// WeakAttack subtracts 1 from attack.
	WeakAttack
	// WeakDefense subtracts 1 from defense.
	WeakDefense
	// MultiAttack grants one extra attack this round.
	MultiAttack
	// Stun stuns the defender whenever this combatant attacks.
	Stun
	// Counter reflects incoming damage back when two or more are present.
	Counter
	// Reset snaps the marker back to the template start after the round.
	Reset
	// SkipMove lets the marker move an additional spot.
	SkipMove
	// SkipTurn holds back the owner's opening attack and keeps the owner's
	// marker from moving on its own.
	SkipTurn
)

// SpotSize is the number of attachment slots per grid cell.
const SpotSize = 4

// String returns the attachment's data name.
func (a Attachment) String() string {
	switch a {
	case None:
		return "none"
	case StrongAttack:
		return "strong_attack"
	case StrongDefense:
		return "strong_defense"
	case WeakAttack:
		return "weak_attack"
	case WeakDefense:
		return "weak_defense"
	case MultiAttack:
		return "multi_attack"
	case Stun:
		return "stun"
	case Counter:
		return "counter"
	case Reset:
		return "reset"
	case SkipMove:
		return "skip_move"
	case SkipTurn:
		return "skip_turn"
	default:
		return "unknown"
	}
}

// Label returns the legend text shown on the help screen.
func (a Attachment) Label() string {
	switch a {
	case StrongAttack:
		return "Strong Attack"
	case StrongDefense:
		return "Strong Defense"
	case WeakAttack:
		return "Weak Attack"
	case WeakDefense:
		return "Weak Defense"
	case MultiAttack:
		return "Extra Attack"
	case Stun:
		return "Stun"
	case Counter:
		return "Counter Attack"
	case Reset:
		return "Marker To Starting Position"
	case SkipMove:
		return "Extra Move"
	case SkipTurn:
		return "Skip Turn"
	default:
		return ""
	}
}

// Glyph returns the single character used to draw the attachment on a grid cell.
func (a Attachment) Glyph() rune {
	switch a {
	case StrongAttack:
		return 'A'
	case StrongDefense:
		return 'D'
	case WeakAttack:
		return 'a'
	case WeakDefense:
		return 'd'
	case MultiAttack:
		return 'M'
	case Stun:
		return 'S'
	case Counter:
		return 'C'
	case Reset:
		return 'R'
	case SkipMove:
		return '>'
	case SkipTurn:
		return 'Z'
	default:
		return ' '
	}
}

// Legend lists the attachments in the order they are explained to the player.
var Legend = []Attachment{
	StrongAttack, StrongDefense, WeakAttack, WeakDefense, MultiAttack,
	Stun, Counter, SkipTurn, Reset,
}

// ParseAttachment converts a data name into an Attachment.
func ParseAttachment(name string) (Attachment, error) {
	for a := None; a <= SkipTurn; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown grid attachment %q", name)
}

// Spot is a single grid cell. Empty slots hold None; duplicates stack.
type Spot [SpotSize]Attachment

// Count returns how many slots hold the given attachment.
func (s Spot) Count(a Attachment) int {
	n := 0
	for _, slot := range s {
		if slot == a {
			n++
		}
	}
	return n
}
