package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// BeepSink plays synthesised sounds through the system speaker. Effects are
// mixed on top of whichever music tracks are looping.
type BeepSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[SoundID]*beep.Ctrl
	initialized bool
}

// NewBeepSink creates a sink. Call Init before playing anything.
func NewBeepSink() *BeepSink {
	return &BeepSink{
		mixer: &beep.Mixer{},
		loops: make(map[SoundID]*beep.Ctrl),
	}
}

// Init opens the speaker and starts the mixer.
func (s *BeepSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close stops every sound and releases the speaker.
func (s *BeepSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	for id, ctrl := range s.loops {
		ctrl.Paused = true
		delete(s.loops, id)
	}
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// PlayOnce mixes in a one-shot effect.
func (s *BeepSink) PlayOnce(id SoundID, volume, pitch float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer := Effect(id, volume, pitch, sampleRate)
	if streamer == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayLooping starts a music track unless it is already playing.
func (s *BeepSink) PlayLooping(id SoundID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if ctrl, ok := s.loops[id]; ok && !ctrl.Paused {
		return
	}
	streamer := Music(id, sampleRate)
	if streamer == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: streamer}
	s.loops[id] = ctrl
	speaker.Lock()
	s.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopLooping stops a music track and drops it from the mixer.
func (s *BeepSink) StopLooping(id SoundID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl, ok := s.loops[id]
	if !ok {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	// A Ctrl with a nil streamer drains from the mixer.
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(s.loops, id)
}
