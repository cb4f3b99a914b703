package audio

import (
	"errors"

	"github.com/lixenwraith/spin-wheel/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundTick   SoundType = iota // Pointer crosses into another wedge
	SoundWinner                  // Spin resolved
	SoundError                   // Rejected command
	SoundWhoosh                  // Wheel cleared
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundTick:
		return "tick"
	case SoundWinner:
		return "winner"
	case SoundError:
		return "error"
	case SoundWhoosh:
		return "whoosh"
	default:
		return "unknown"
	}
}

// AudioConfig holds output settings and per-effect volumes in [0, 1]
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: 0.7,
		EffectVolumes: [soundTypeCount]float64{
			SoundTick:   0.35,
			SoundWinner: 0.8,
			SoundError:  0.5,
			SoundWhoosh: 0.5,
		},
	}
}

// SetMasterPercent sets the master volume from a 0-100 value, clamped
func (c *AudioConfig) SetMasterPercent(percent int) {
	v := float64(percent) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.MasterVolume = v
}

// ErrNotInitialized is returned when playing before Initialize succeeded
var ErrNotInitialized = errors.New("audio not initialized")
