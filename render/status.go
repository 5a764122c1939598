package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/events"
)

// StatusLine turns simulation events into short-lived HUD messages.
// Written from the tick goroutine through the router, read by the render loop.
type StatusLine struct {
	mu    sync.Mutex
	text  string
	until time.Time
}

// NewStatusLine creates an empty status line
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// HandleEvent implements events.Handler
func (s *StatusLine) HandleEvent(now time.Time, ev events.GameEvent) {
	var text string
	switch ev.Type {
	case events.EventPickup:
		if p, ok := ev.Payload.(*events.PickupPayload); ok {
			text = fmt.Sprintf(" GOLD %d/%d ", p.Collected, p.Total)
		}
	case events.EventTrapped:
		if p, ok := ev.Payload.(*events.EntityPayload); ok && p.Player {
			text = " TRAPPED "
		}
	case events.EventEnemyKilled:
		text = " ENEMY CRUSHED "
	case events.EventLifeLost:
		if p, ok := ev.Payload.(*events.LifePayload); ok {
			text = fmt.Sprintf(" LIFE LOST (%s) - %d LEFT ", p.Cause, p.Remaining)
		}
	case events.EventRestart:
		s.mu.Lock()
		s.text = ""
		s.until = time.Time{}
		s.mu.Unlock()
		return
	}
	if text == "" {
		return
	}

	s.mu.Lock()
	s.text = text
	s.until = now.Add(constants.StatusMessageDuration)
	s.mu.Unlock()
}

// EventTypes implements events.Handler
func (s *StatusLine) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPickup,
		events.EventTrapped,
		events.EventEnemyKilled,
		events.EventLifeLost,
		events.EventRestart,
	}
}

// Message returns the current message, if one has not expired
func (s *StatusLine) Message(now time.Time) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.text == "" || !now.Before(s.until) {
		return "", false
	}
	return s.text, true
}
