package events

import (
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
)

// EventQueue collects the events one tick produces until the router drains them.
// The simulation pushes during Step and the router drains right after, both on the
// scheduler goroutine; the queue itself is not synchronized.
//
// Capacity is bounded by EventQueueBatch. A tick that overflows it loses its oldest
// events, and the loss is counted in Dropped.
type EventQueue struct {
	ring    [constants.EventQueueBatch]GameEvent
	start   int // Oldest pending event
	n       int // Pending events
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event to the current batch
func (eq *EventQueue) Push(event GameEvent) {
	if eq.n == len(eq.ring) {
		eq.ring[eq.start] = event
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.n)%len(eq.ring)] = event
	eq.n++
}

// Drain returns the pending batch in push order and empties the queue.
// Returns nil when nothing is pending.
func (eq *EventQueue) Drain() []GameEvent {
	if eq.n == 0 {
		return nil
	}
	batch := make([]GameEvent, eq.n)
	for i := range batch {
		batch[i] = eq.ring[(eq.start+i)%len(eq.ring)]
		eq.ring[(eq.start+i)%len(eq.ring)] = GameEvent{}
	}
	eq.start, eq.n = 0, 0
	return batch
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int { return eq.n }

// Dropped returns how many events were lost to overflow since the queue was created
func (eq *EventQueue) Dropped() uint64 { return eq.dropped }
