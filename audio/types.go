package audio

import "github.com/HJXCODE-810/Lode-runner-CG/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundDig    SoundType = iota // Hole opened
	SoundPickup                  // Gold collected
	SoundKill                    // Enemy crushed by a refill
	SoundDeath                   // Player lost a life
	SoundExit                    // Exit ladder revealed
	SoundWin                     // Level won
	soundTypeCount
)

var soundNames = [...]string{
	SoundDig:    "dig",
	SoundPickup: "pickup",
	SoundKill:   "kill",
	SoundDeath:  "death",
	SoundExit:   "exit",
	SoundWin:    "win",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType looks a sound up by its name
func ParseSoundType(name string) (SoundType, bool) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		if soundNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundDig:    0.6,
			SoundPickup: 1.0,
			SoundKill:   0.8,
			SoundDeath:  0.8,
			SoundExit:   0.7,
			SoundWin:    0.7,
		},
	}
}
