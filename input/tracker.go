package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Tracker turns a stream of terminal key presses into a per-tick KeySet.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until no event for it arrives within the hold window.
type Tracker struct {
	mu       sync.Mutex
	table    *KeyTable
	window   time.Duration
	lastSeen [keyCount]time.Time
}

// NewTracker creates a tracker with the given key table and hold window
func NewTracker(table *KeyTable, window time.Duration) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{table: table, window: window}
}

// HandleEvent records a tcell key event; other event kinds are ignored.
// Returns true when the event mapped to a game key.
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	k, ok := t.table.Lookup(kev)
	if !ok {
		return false
	}
	t.Press(k, now)
	return true
}

// Press marks a key as seen at now
func (t *Tracker) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	t.mu.Lock()
	t.lastSeen[k] = now
	t.mu.Unlock()
}

// Snapshot returns the keys seen within the hold window ending at now
func (t *Tracker) Snapshot(now time.Time) KeySet {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s KeySet
	for k := Key(0); k < keyCount; k++ {
		seen := t.lastSeen[k]
		if seen.IsZero() {
			continue
		}
		if now.Sub(seen) <= t.window {
			s = s.With(k)
		}
	}
	return s
}

// Release forgets a key immediately
func (t *Tracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	t.mu.Lock()
	t.lastSeen[k] = time.Time{}
	t.mu.Unlock()
}
