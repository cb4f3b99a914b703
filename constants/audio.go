package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinTickGap is the minimum gap between two tick clicks
	MinTickGap = 30 * time.Millisecond
)

// Tick Sound Timing
const (
	TickSoundDuration = 25 * time.Millisecond
	TickSoundAttack   = 1 * time.Millisecond
	TickSoundRelease  = 20 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Winner Sound Timing
const (
	WinnerSoundNote1Duration = 120 * time.Millisecond
	WinnerSoundNote2Duration = 120 * time.Millisecond
	WinnerSoundNote3Duration = 450 * time.Millisecond
	WinnerSoundAttack        = 5 * time.Millisecond
	WinnerSoundShortRelease  = 60 * time.Millisecond
	WinnerSoundLongRelease   = 380 * time.Millisecond
)

// Whoosh Sound Timing
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 30 * time.Millisecond
	WhooshSoundRelease  = 220 * time.Millisecond
)
