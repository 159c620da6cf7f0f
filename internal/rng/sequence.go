package rng

// Sequence is a Source that replays scripted values in order, wrapping around when
// exhausted. Used to script exact dice outcomes and enemy moves.
type Sequence struct {
	Bytes   []uint8
	U32s    []uint32
	Floats  []float64
	Offsets []int

	bi, ui, fi, oi int
}

// UniformByte returns the next scripted byte, or 0 when none are scripted.
func (s *Sequence) UniformByte() uint8 {
	if len(s.Bytes) == 0 {
		return 0
	}
	v := s.Bytes[s.bi%len(s.Bytes)]
	s.bi++
	return v
}

// UniformU32 returns the next scripted uint32, or 0 when none are scripted.
func (s *Sequence) UniformU32() uint32 {
	if len(s.U32s) == 0 {
		return 0
	}
	v := s.U32s[s.ui%len(s.U32s)]
	s.ui++
	return v
}

// ToleranceFloat returns center plus the next scripted offset, clamped to the spread.
func (s *Sequence) ToleranceFloat(center, spread float64) float64 {
	if len(s.Floats) == 0 {
		return center
	}
	off := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	if off > spread {
		off = spread
	}
	if off < -spread {
		off = -spread
	}
	return center + off
}

// ToleranceS32 returns center plus the next scripted offset, clamped to the spread.
func (s *Sequence) ToleranceS32(center, spread int) int {
	if len(s.Offsets) == 0 {
		return center
	}
	off := s.Offsets[s.oi%len(s.Offsets)]
	s.oi++
	if off > spread {
		off = spread
	}
	if off < -spread {
		off = -spread
	}
	return center + off
}
