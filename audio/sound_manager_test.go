package audio

import (
	"errors"
	"testing"
	"time"
)

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsInitialized() {
		t.Fatal("Expected fresh manager to be uninitialized")
	}
	if err := sm.Play(SoundWinner); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}

	// Convenience wrappers and cleanup must not panic without a speaker
	sm.PlayTick()
	sm.PlayWinner()
	sm.PlayError()
	sm.PlayWhoosh()
	sm.Cleanup()

	if n := sm.Active(); n != 0 {
		t.Errorf("Expected no active sounds, got %d", n)
	}
}

func TestSoundManagerTickThrottle(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.initialized = true // skip device setup, mixer is never played

	clock := time.Unix(1000, 0)
	sm.now = func() time.Time { return clock }

	if err := sm.Play(SoundTick); err != nil {
		t.Fatalf("Play: %v", err)
	}
	clock = clock.Add(10 * time.Millisecond)
	_ = sm.Play(SoundTick)
	if n := sm.mixer.Len(); n != 1 {
		t.Errorf("Expected second tick within gap to be dropped, mixer has %d", n)
	}

	clock = clock.Add(50 * time.Millisecond)
	_ = sm.Play(SoundTick)
	if n := sm.mixer.Len(); n != 2 {
		t.Errorf("Expected tick after gap to play, mixer has %d", n)
	}

	// Non-tick sounds are never throttled
	_ = sm.Play(SoundError)
	_ = sm.Play(SoundError)
	if n := sm.mixer.Len(); n != 4 {
		t.Errorf("Expected 4 queued sounds, got %d", n)
	}
}

func TestAudioConfigMasterPercent(t *testing.T) {
	cfg := DefaultAudioConfig()

	tests := []struct {
		in   int
		want float64
	}{
		{50, 0.5},
		{0, 0},
		{100, 1},
		{-5, 0},
		{250, 1},
	}
	for _, tt := range tests {
		cfg.SetMasterPercent(tt.in)
		if cfg.MasterVolume != tt.want {
			t.Errorf("SetMasterPercent(%d) = %f, want %f", tt.in, cfg.MasterVolume, tt.want)
		}
	}
}
