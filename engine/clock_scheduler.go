package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/core"
)

// TickFunc advances the game by one tick; elapsed is the clock time since the previous tick
type TickFunc func(elapsed time.Duration)

// ClockScheduler runs game logic on a fixed tick
// Deadlines advance by the interval each tick so a late tick does not shift the ones after it
type ClockScheduler struct {
	clock        Clock
	tickInterval time.Duration
	tick         TickFunc

	lastTickTime     time.Time
	nextTickDeadline time.Time
	mu               sync.Mutex

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signalled after every tick; the render loop draws on receipt
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler and returns the channel signalled after each tick
func NewClockScheduler(clock Clock, tickInterval time.Duration, tick TickFunc) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	now := clock.Now()
	cs := &ClockScheduler{
		clock:            clock,
		tickInterval:     tickInterval,
		tick:             tick,
		lastTickTime:     now,
		nextTickDeadline: now.Add(tickInterval),
		stopChan:         make(chan struct{}),
		updateDone:       updateDone,
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the tick in progress
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop sleeps until each deadline and runs one tick
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastTickTime.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		if !now.Before(deadline) {
			cs.processTick(now)

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			maxBehind := cs.tickInterval * 2
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()
		}

		sleep := deadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Advance runs one tick immediately at the clock's current reading.
// Used by tests and by callers that drive the clock themselves.
func (cs *ClockScheduler) Advance() {
	cs.processTick(cs.clock.Now())
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick(now time.Time) {
	cs.mu.Lock()
	elapsed := now.Sub(cs.lastTickTime)
	cs.lastTickTime = now
	cs.mu.Unlock()

	cs.tick(elapsed)
	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
