package audio

import (
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/events"
)

// Player plays one-shot effects; SoundManager implements it
type Player interface {
	Play(s SoundType, now time.Time) bool
}

// cueTable maps simulation events to the effect they trigger
var cueTable = map[events.EventType]SoundType{
	events.EventDig:          SoundDig,
	events.EventPickup:       SoundPickup,
	events.EventEnemyKilled:  SoundKill,
	events.EventLifeLost:     SoundDeath,
	events.EventExitRevealed: SoundExit,
	events.EventWon:          SoundWin,
}

// CueHandler turns simulation events into sound effects.
// The router context is the wall-clock time of the dispatching frame.
type CueHandler struct {
	player Player
}

// NewCueHandler creates a handler playing through p
func NewCueHandler(p Player) *CueHandler {
	return &CueHandler{player: p}
}

// HandleEvent plays the effect mapped to the event type
func (h *CueHandler) HandleEvent(now time.Time, ev events.GameEvent) {
	if s, ok := cueTable[ev.Type]; ok {
		h.player.Play(s, now)
	}
}

// EventTypes returns every event type with a cue
func (h *CueHandler) EventTypes() []events.EventType {
	types := make([]events.EventType, 0, len(cueTable))
	for t := range cueTable {
		types = append(types, t)
	}
	return types
}
