package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/spin-wheel/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from one frequency to another
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// freq is the instantaneous pitch at the current position
func (o *oscillator) freq() float64 {
	if o.duration <= 0 || o.from == o.to {
		return o.from
	}
	t := float64(o.position) / float64(o.duration)
	return o.from + (o.to-o.from)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and a squared release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and a squared release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
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
			// Squared release tail
			r := float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			vol = min(vol, max(0, r*r))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect, 0 volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateTickSound generates a short wooden click for a pointer crossing
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := NewOscillator(1800.0, constants.TickSoundDuration, WaveSquare, rate)
	body := NewOscillator(0, constants.TickSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(click, 0.4), newVolume(body, 0.6))
	shaped := NewEnvelope(mixed, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundTick] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateWinnerSound generates a rising three-note chime (C6, E6, G6)
func CreateWinnerSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(1046.50, constants.WinnerSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.WinnerSoundNote1Duration, constants.WinnerSoundAttack, constants.WinnerSoundShortRelease, rate)

	n2 := NewOscillator(1318.51, constants.WinnerSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.WinnerSoundNote2Duration, constants.WinnerSoundAttack, constants.WinnerSoundShortRelease, rate)

	n3 := NewOscillator(1567.98, constants.WinnerSoundNote3Duration, WaveSine, rate)
	n3Shaped := NewEnvelope(n3, constants.WinnerSoundNote3Duration, constants.WinnerSoundAttack, constants.WinnerSoundLongRelease, rate)

	// Octave overtone on the last note
	over := NewOscillator(3135.96, constants.WinnerSoundNote3Duration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.WinnerSoundNote3Duration, constants.WinnerSoundAttack, constants.WinnerSoundShortRelease, rate)
	last := beep.Mix(newVolume(n3Shaped, 0.75), newVolume(overShaped, 0.25))

	sequence := beep.Seq(n1Shaped, n2Shaped, last)

	vol := cfg.EffectVolumes[SoundWinner] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateErrorSound generates a short falling square blip for rejected commands
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	blip := NewSweep(320.0, 180.0, constants.ErrorSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(blip, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundError] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateWhooshSound generates air noise over a falling tone, the wheel spinning down to empty
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.WhooshSoundDuration, WaveNoise, rate)
	tone := NewSweep(900.0, 120.0, constants.WhooshSoundDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.45), newVolume(tone, 0.55))
	shaped := NewEnvelope(mixed, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundWhoosh] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundWinner:
		return CreateWinnerSound(cfg)
	case SoundError:
		return CreateErrorSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	default:
		return nil
	}
}
