package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates an oscillator for wave generation.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase, &o.seed)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample returns the value of a wave at a phase in [0, 1). Noise uses a
// small xorshift generator so playback never touches the game's random source.
func waveSample(wave WaveType, phase float64, seed *uint32) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		x := *seed
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		*seed = x
		return float64(x)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a stream with an attack and a release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent; math.Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped oscillator voice of an effect.
func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Effect builds the streamer for a one-shot sound. Pitch scales every
// frequency; 1 is the natural pitch. Returns nil for music and unknown IDs.
func Effect(id SoundID, volume, pitch float64, rate beep.SampleRate) beep.Streamer {
	if pitch <= 0 {
		pitch = 1
	}

	var s beep.Streamer
	switch id {
	case SoundStep:
		s = tone(0, WaveNoise, 40*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate)
		s = newVolume(s, 0.3)
	case SoundClash:
		s = beep.Mix(
			newVolume(tone(220*pitch, WaveSquare, 150*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond, rate), 0.4),
			newVolume(tone(0, WaveNoise, 120*time.Millisecond, 1*time.Millisecond, 100*time.Millisecond, rate), 0.4),
		)
	case SoundDefend:
		s = tone(330*pitch, WaveSine, 100*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, rate)
	case SoundPlayerDeath:
		s = beep.Seq(
			tone(196*pitch, WaveSaw, 200*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond, rate),
			tone(147*pitch, WaveSaw, 200*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond, rate),
			tone(98*pitch, WaveSaw, 400*time.Millisecond, 10*time.Millisecond, 300*time.Millisecond, rate),
		)
		s = newVolume(s, 0.5)
	case SoundMonsterDeath:
		s = beep.Mix(
			newVolume(tone(80*pitch, WaveSaw, 500*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, rate), 0.5),
			newVolume(tone(0, WaveNoise, 300*time.Millisecond, 5*time.Millisecond, 250*time.Millisecond, rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// melody loops a note sequence forever. A zero frequency is a rest.
type melody struct {
	notes    []float64
	noteLen  int
	wave     WaveType
	rate     beep.SampleRate
	position int
	phase    float64
	seed     uint32
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (m.position / m.noteLen) % len(m.notes)
		freq := m.notes[note]
		inNote := m.position % m.noteLen

		val := 0.0
		if freq > 0 {
			// Short decay per note keeps the loop from droning.
			decay := 1 - float64(inNote)/float64(m.noteLen)
			val = waveSample(m.wave, m.phase, &m.seed) * decay
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// Note frequencies used by the music tracks.
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteD3 = 146.83
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
)

type track struct {
	notes []float64
	beat  time.Duration
	wave  WaveType
	vol   float64
}

var tracks = map[SoundID]track{
	MusicTitle:        {[]float64{noteA2, noteE3, noteA3, noteE3, noteC3, noteG3, noteC4, noteG3}, 300 * time.Millisecond, WaveSine, 0.25},
	MusicExplore:      {[]float64{noteA2, 0, noteC3, 0, noteD3, 0, noteE3, noteD3}, 400 * time.Millisecond, WaveSine, 0.2},
	MusicCombat:       {[]float64{noteA2, noteA2, noteC3, noteA2, noteD3, noteA2, noteE3, noteD3}, 150 * time.Millisecond, WaveSquare, 0.12},
	MusicFailure:      {[]float64{noteA3, noteG3, noteE3, noteD3, noteC3, noteA2, 0, 0}, 500 * time.Millisecond, WaveSine, 0.2},
	MusicDeathSuccess: {[]float64{noteA3, noteC4, noteE4, noteA3, noteG3, noteE3, 0, 0}, 450 * time.Millisecond, WaveSine, 0.2},
	MusicSuccess:      {[]float64{noteC4, noteE4, noteG4, noteA4, noteG4, noteE4, noteC4, 0}, 250 * time.Millisecond, WaveSaw, 0.15},
}

// Music builds the endless streamer for a music track, or nil if id is not music.
func Music(id SoundID, rate beep.SampleRate) beep.Streamer {
	t, ok := tracks[id]
	if !ok {
		return nil
	}
	m := &melody{
		notes:   t.notes,
		noteLen: max(1, rate.N(t.beat)),
		wave:    t.wave,
		rate:    rate,
		seed:    0x2545f491,
	}
	return newVolume(m, t.vol)
}
