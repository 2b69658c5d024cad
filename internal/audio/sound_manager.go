// Package audio plays the optional sound cues of the game.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(48000)
	defaultVolume = 0.5
)

// Player receives game events that have a sound attached.
// Frontends depend on this instead of SoundManager so sound can be left out.
type Player interface {
	PlayCollect()
	PlayWave()
	PlayLoss()
}

// Silent ignores every event.
type Silent struct{}

func (Silent) PlayCollect() {}
func (Silent) PlayWave() {}
func (Silent) PlayLoss() {}

// SoundManager mixes one-shot effects into the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager. Nothing plays until Initialize.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayCollect plays the target pickup chime.
func (sm *SoundManager) PlayCollect() {
	sm.play(CollectChime(sampleRate, sm.volume))
}

// PlayWave plays the new wave chime.
func (sm *SoundManager) PlayWave() {
	sm.play(WaveChime(sampleRate, sm.volume))
}

// PlayLoss plays the round lost buzz.
func (sm *SoundManager) PlayLoss() {
	sm.play(LossBuzz(sampleRate, sm.volume))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
