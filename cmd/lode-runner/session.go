package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/engine"
	"github.com/HJXCODE-810/Lode-runner-CG/events"
	"github.com/HJXCODE-810/Lode-runner-CG/input"
	"github.com/HJXCODE-810/Lode-runner-CG/status"
)

// publisher receives every tick's snapshot and events; the spectator hub implements it
type publisher interface {
	Publish(snap *engine.Snapshot, evs []events.GameEvent) error
}

// session owns the simulation on the scheduler goroutine.
// Everything else reads the latest snapshot, never the simulation itself.
type session struct {
	sim     *engine.Simulation
	clock   engine.Clock
	tracker *input.Tracker
	router  *events.Router[time.Time]
	feed    publisher // nil without spectators

	latest atomic.Pointer[engine.Snapshot]

	// Events not yet streamed, held until the next published frame
	pending []events.GameEvent

	metrics  *status.Registry
	ticks    *atomic.Int64
	routed   *atomic.Int64
	dropped  *atomic.Int64
	streamed *atomic.Int64
	tickMs   *status.AtomicFloat
	peakMs   *status.AtomicFloat
}

func newSession(sim *engine.Simulation, clock engine.Clock, tracker *input.Tracker) *session {
	s := &session{
		sim:     sim,
		clock:   clock,
		tracker: tracker,
		router:  events.NewRouter[time.Time](sim.Events()),
		metrics: status.NewRegistry(),
	}
	s.ticks = s.metrics.Ints.Get(status.Ticks)
	s.routed = s.metrics.Ints.Get(status.EventsRouted)
	s.dropped = s.metrics.Ints.Get(status.EventsDropped)
	s.streamed = s.metrics.Ints.Get(status.FramesStreamed)
	s.tickMs = s.metrics.Floats.Get(status.TickMillis)
	s.peakMs = s.metrics.Floats.Get(status.TickMillisPeak)
	snap := sim.Snapshot()
	s.latest.Store(&snap)
	return s
}

// tick is the scheduler's TickFunc: step, dispatch the tick's events, publish the result
func (s *session) tick(elapsed time.Duration) {
	started := time.Now()
	defer func() {
		ms := float64(time.Since(started).Microseconds()) / 1000
		s.tickMs.Set(ms)
		s.peakMs.Max(ms)
	}()

	now := s.clock.Now()
	keys := s.tracker.Snapshot(now)
	s.sim.Step(keys, s.sim.Rules().ClampDelta(elapsed))

	evs := s.router.DispatchAll(now)
	s.ticks.Add(1)
	s.routed.Add(int64(len(evs)))
	s.dropped.Store(int64(s.sim.Events().Dropped()))
	snap := s.sim.Snapshot()
	s.latest.Store(&snap)

	if s.feed == nil {
		return
	}
	s.pending = append(s.pending, evs...)
	if len(s.pending) == 0 && snap.Frame%constants.SpectateFrameDivisor != 0 {
		return
	}
	if err := s.feed.Publish(&snap, s.pending); err != nil {
		log.Printf("spectate publish: %v", err)
		s.feed = nil
	} else {
		s.streamed.Add(1)
	}
	s.pending = s.pending[:0]
}

// snapshot returns the latest published state
func (s *session) snapshot() *engine.Snapshot {
	return s.latest.Load()
}
