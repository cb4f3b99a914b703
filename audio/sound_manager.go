package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/spin-wheel/constants"
)

// SoundManager owns the speaker and mixes wheel sound effects
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time
	now         func() time.Time
}

// NewSoundManager creates a sound manager, nil config uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
}

// Initialize sets up the speaker, repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing effects
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, an empty mixer keeps the device silent
	sm.initialized = false
}

// IsInitialized reports whether the speaker is running
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a sound effect, ticks closer than MinTickGap are dropped
func (sm *SoundManager) Play(soundType SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	if soundType == SoundTick {
		now := sm.now()
		if !sm.lastTick.IsZero() && now.Sub(sm.lastTick) < constants.MinTickGap {
			return nil
		}
		sm.lastTick = now
	}

	streamer := GetSoundEffect(soundType, sm.config)
	if streamer == nil {
		return nil
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// PlayTick plays the pointer-crossing click
func (sm *SoundManager) PlayTick() { _ = sm.Play(SoundTick) }

// PlayWinner plays the resolution chime
func (sm *SoundManager) PlayWinner() { _ = sm.Play(SoundWinner) }

// PlayError plays the rejection buzz
func (sm *SoundManager) PlayError() { _ = sm.Play(SoundError) }

// PlayWhoosh plays the clear-all sweep
func (sm *SoundManager) PlayWhoosh() { _ = sm.Play(SoundWhoosh) }

// Active returns the number of effects still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
