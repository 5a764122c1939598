package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Dig Sound Timing
const (
	DigSoundDuration = 120 * time.Millisecond
	DigSoundAttack   = 5 * time.Millisecond
	DigSoundRelease  = 60 * time.Millisecond
)

// Pickup (bell) Sound Timing
const (
	PickupSoundDuration           = 400 * time.Millisecond
	PickupSoundAttack             = 5 * time.Millisecond
	PickupSoundFundamentalRelease = 350 * time.Millisecond
	PickupSoundOvertoneRelease    = 150 * time.Millisecond
)

// Kill Sound Timing
const (
	KillSoundDuration = 250 * time.Millisecond
	KillSoundAttack   = 10 * time.Millisecond
	KillSoundRelease  = 200 * time.Millisecond
)

// Death Sound Timing
const (
	DeathSoundDuration = 500 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
)

// Exit/Win Chime Timing
const (
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Duration = 120 * time.Millisecond
	ChimeNote1Release  = 80 * time.Millisecond
	ChimeNote2Duration = 300 * time.Millisecond
	ChimeNote2Release  = 250 * time.Millisecond
)

// SoundRetriggerGap drops repeats of one effect closer together than this
const SoundRetriggerGap = 50 * time.Millisecond
