package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
)

// SoundManager owns the speaker and mixes one-shot effects into it.
// Every method is safe to call before Initialize or after Cleanup; they do nothing then.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Per-effect retrigger guard, keyed by sound
	lastPlayed [soundTypeCount]time.Time
	minGap     time.Duration
}

// NewSoundManager creates a sound manager; a nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		minGap: constants.SoundRetriggerGap,
	}
}

// Initialize sets up the speaker. Disabled configurations succeed without opening a device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio initialized: %d Hz, master volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// SetMuted silences new effects without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether new effects are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play mixes a one-shot effect in. Repeats of the same effect within the retrigger gap are dropped.
// Returns true when the effect was queued.
func (sm *SoundManager) Play(s SoundType, now time.Time) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s < 0 || s >= soundTypeCount {
		return false
	}
	if last := sm.lastPlayed[s]; !last.IsZero() && now.Sub(last) < sm.minGap {
		return false
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[s] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}
