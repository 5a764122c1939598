package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

func effectVolume(cfg *AudioConfig, s SoundType) float64 {
	return cfg.EffectVolumes[s] * cfg.MasterVolume
}

// CreateDigSound generates a short gritty scrape
func CreateDigSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	scrape := tone(0, WaveNoise, constants.DigSoundDuration, constants.DigSoundAttack, constants.DigSoundRelease, rate)
	thud := tone(140.0, WaveSaw, constants.DigSoundDuration, constants.DigSoundAttack, constants.DigSoundRelease, rate)

	mixed := beep.Mix(newVolume(scrape, 0.5), newVolume(thud, 0.5))
	return newVolume(mixed, effectVolume(cfg, SoundDig))
}

// CreatePickupSound generates a bell ding
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5) and octave
	fund := tone(880.0, WaveSine, constants.PickupSoundDuration, constants.PickupSoundAttack, constants.PickupSoundFundamentalRelease, rate)
	over := tone(1760.0, WaveSine, constants.PickupSoundDuration, constants.PickupSoundAttack, constants.PickupSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, effectVolume(cfg, SoundPickup))
}

// CreateKillSound generates a low crunch
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := tone(110.0, WaveSquare, constants.KillSoundDuration, constants.KillSoundAttack, constants.KillSoundRelease, rate)
	crunch := tone(0, WaveNoise, constants.KillSoundDuration, constants.KillSoundAttack, constants.KillSoundRelease, rate)

	mixed := beep.Mix(newVolume(body, 0.6), newVolume(crunch, 0.4))
	return newVolume(mixed, effectVolume(cfg, SoundKill))
}

// CreateDeathSound generates a three-step falling saw
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := constants.DeathSoundDuration / 3

	notes := make([]beep.Streamer, 0, 3)
	for _, freq := range [...]float64{330.0, 247.0, 165.0} {
		notes = append(notes, tone(freq, WaveSaw, step, constants.DeathSoundAttack, step/2, rate))
	}
	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundDeath))
}

// createChime plays the given notes in sequence, the last one held longer
func createChime(freqs []float64, vol float64, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for i, freq := range freqs {
		dur, rel := constants.ChimeNote1Duration, constants.ChimeNote1Release
		if i == len(freqs)-1 {
			dur, rel = constants.ChimeNote2Duration, constants.ChimeNote2Release
		}
		notes = append(notes, tone(freq, WaveSquare, dur, constants.ChimeAttack, rel, rate))
	}
	return newVolume(beep.Seq(notes...), vol)
}

// CreateExitSound generates a two-note chime (B5, E6)
func CreateExitSound(cfg *AudioConfig) beep.Streamer {
	return createChime([]float64{987.77, 1318.51}, effectVolume(cfg, SoundExit), beep.SampleRate(cfg.SampleRate))
}

// CreateWinSound generates a rising major arpeggio (C6, E6, G6)
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	return createChime([]float64{1046.50, 1318.51, 1567.98}, effectVolume(cfg, SoundWin), beep.SampleRate(cfg.SampleRate))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundDig:
		return CreateDigSound(cfg)
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundExit:
		return CreateExitSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
