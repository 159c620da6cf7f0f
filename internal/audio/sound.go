// Package audio provides the game's sound cues: one-shot effects and looping
// music, synthesised at runtime.
package audio

// SoundID names a sound effect or music track.
type SoundID int

const (
	SoundStep SoundID = iota
	SoundClash
	SoundDefend
	SoundPlayerDeath
	SoundMonsterDeath

	MusicTitle
	MusicExplore
	MusicCombat
	MusicFailure
	MusicDeathSuccess
	MusicSuccess
)

// String returns a human-readable sound name.
func (id SoundID) String() string {
	switch id {
	case SoundStep:
		return "step"
	case SoundClash:
		return "clash"
	case SoundDefend:
		return "defend"
	case SoundPlayerDeath:
		return "player_death"
	case SoundMonsterDeath:
		return "monster_death"
	case MusicTitle:
		return "music_title"
	case MusicExplore:
		return "music_explore"
	case MusicCombat:
		return "music_combat"
	case MusicFailure:
		return "music_failure"
	case MusicDeathSuccess:
		return "music_death_success"
	case MusicSuccess:
		return "music_success"
	default:
		return "unknown"
	}
}

// IsMusic reports whether the sound is a looping music track.
func (id SoundID) IsMusic() bool {
	return id >= MusicTitle && id <= MusicSuccess
}

// Sink plays sounds. Calls are fire-and-forget; the game never asks what is
// playing.
type Sink interface {
	PlayOnce(id SoundID, volume, pitch float64)
	PlayLooping(id SoundID)
	StopLooping(id SoundID)
}

// NopSink discards every sound.
type NopSink struct{}

func (NopSink) PlayOnce(SoundID, float64, float64) {}
func (NopSink) PlayLooping(SoundID)                {}
func (NopSink) StopLooping(SoundID)                {}
