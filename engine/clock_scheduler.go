package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/parameter"
)

// ClockScheduler runs World.Step on a fixed tick in a single goroutine
// It is the only caller of Step once started; readers use Latest
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	world *World

	isPaused atomic.Bool

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64

	// Latest published snapshot
	snapMu sync.RWMutex
	latest Snapshot

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stepChan chan struct{}

	// Send signal that a tick is complete
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler over world with the given tick interval
// Returns the scheduler and an updateDone channel signalled (non-blocking) after every tick
func NewClockScheduler(world *World, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}

	cs := &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		latest:       world.Snapshot(),
		stopChan:     make(chan struct{}),
		stepChan:     make(chan struct{}, 1),
		updateDone:   make(chan struct{}, 1),
	}
	return cs, cs.updateDone
}

// Start begins the scheduler loop; it stops on ctx cancellation or Stop
func (cs *ClockScheduler) Start(ctx context.Context) {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(func() { cs.schedulerLoop(ctx) })
	}
}

// Stop halts the scheduler loop and waits for an in-flight tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
	cs.wg.Wait()
	cs.running.Store(false)
}

func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
}

// Resume restarts ticking from now, without catching up the paused interval
func (cs *ClockScheduler) Resume() {
	cs.isPaused.Store(false)
}

// TogglePause flips the pause state and returns the new value
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// StepOnce requests a single tick while paused; ignored while running
func (cs *ClockScheduler) StepOnce() {
	if !cs.isPaused.Load() {
		return
	}
	select {
	case cs.stepChan <- struct{}{}:
	default:
	}
}

// Latest returns the most recent snapshot
func (cs *ClockScheduler) Latest() Snapshot {
	cs.snapMu.RLock()
	defer cs.snapMu.RUnlock()
	return cs.latest
}

// TickCount returns the number of ticks run by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop(ctx context.Context) {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(0)
	drainTimer(timer)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Longer poll while paused to save CPU
			sleepDuration = parameter.PausedPollInterval
		} else {
			now := time.Now()
			deadline := cs.nextTickDeadline

			if !now.Before(deadline) {
				cs.processTick()

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * 2
				if now.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
			}

			sleepDuration = max(deadline.Sub(time.Now()), 0)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
				if cs.isPaused.Load() {
					cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
				}
			case <-cs.stepChan:
				drainTimer(timer)
				if cs.isPaused.Load() {
					cs.processTick()
				}
			case <-ctx.Done():
				return
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick executes one step and publishes its snapshot
func (cs *ClockScheduler) processTick() {
	cs.world.Step()
	snap := cs.world.Snapshot()

	cs.snapMu.Lock()
	cs.latest = snap
	cs.snapMu.Unlock()

	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

func drainTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
