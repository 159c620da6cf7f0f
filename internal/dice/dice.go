// Package dice maps creature stats to exploding dice pools and resolves conflicts.
//
// A stat picks one die from a fixed progression (0 -> constant 1, 1 -> d4, 2 -> d6,
// 3 -> d8, 4 -> d10, 5 and up -> d12). Every further 6 points adds another die chosen
// the same way from the remainder, so stat 6 is d12+1 and stat 9 is d12+d8.
package dice

import "github.com/samdwyer/tehon/internal/rng"

// bracket is the number of stat points covered by a single die.
const bracket = 6

// DieSize returns the die size used for a single bracket of the given stat.
// A size of 1 is the constant die (always rolls 1). Negative stats return 0.
func DieSize(stat int) int {
	switch {
	case stat < 0:
		return 0
	case stat == 0:
		return 1
	case stat == 1:
		return 4
	case stat == 2:
		return 6
	case stat == 3:
		return 8
	case stat == 4:
		return 10
	default:
		return 12
	}
}

// Dice returns the sizes of every die rolled for the stat, highest bracket first.
func Dice(stat int) []int {
	var sizes []int
	for ; stat >= 0; stat -= bracket {
		sizes = append(sizes, DieSize(stat))
	}
	return sizes
}

// Roller rolls stat dice against a random source.
type Roller struct {
	src rng.Source
}

// NewRoller creates a Roller using the given random source.
func NewRoller(src rng.Source) *Roller {
	return &Roller{src: src}
}

// RollDie rolls a single die of the given size.
func (r *Roller) RollDie(size int) int {
	if size <= 0 {
		return 0
	}
	if size == 1 {
		return 1
	}
	return int(r.src.UniformByte())%size + 1
}

// Roll sums one die per 6-point bracket of the stat. Stats below 0 contribute 0.
func (r *Roller) Roll(stat int) int {
	total := 0
	for _, size := range Dice(stat) {
		total += r.RollDie(size)
	}
	return total
}

// RollConflict rolls attack against defense and returns min(0, defense - attack).
// Zero means the attack was fully blocked, including ties; a negative value is the
// amount of stamina or health lost by the defender.
func (r *Roller) RollConflict(attack, defense int) int {
	attRoll := r.Roll(attack)
	defRoll := r.Roll(defense)
	return min(0, defRoll-attRoll)
}
