// Package rng provides the random source used by dice, enemy AI, and audio pitch variance.
package rng

import (
	"math/rand"
	"time"
)

// Source is the random capability the game core depends on.
type Source interface {
	// UniformByte returns a value in [0, 255].
	UniformByte() uint8
	// UniformU32 returns a value in [0, 2^32).
	UniformU32() uint32
	// ToleranceFloat returns a value in [center-spread, center+spread].
	ToleranceFloat(center, spread float64) float64
	// ToleranceS32 returns an integer in [center-spread, center+spread].
	ToleranceS32(center, spread int) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// New creates a Rand with the given seed. A seed of 0 seeds from the clock.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand.
func FromRand(r *rand.Rand) *Rand {
	return &Rand{r: r}
}

// UniformByte returns a value in [0, 255].
func (s *Rand) UniformByte() uint8 {
	return uint8(s.r.Intn(256))
}

// UniformU32 returns a value in [0, 2^32).
func (s *Rand) UniformU32() uint32 {
	return s.r.Uint32()
}

// ToleranceFloat returns a value in [center-spread, center+spread].
func (s *Rand) ToleranceFloat(center, spread float64) float64 {
	return center - spread + s.r.Float64()*spread*2
}

// ToleranceS32 returns an integer in [center-spread, center+spread].
func (s *Rand) ToleranceS32(center, spread int) int {
	if spread <= 0 {
		return center
	}
	return center - spread + s.r.Intn(spread*2+1)
}
