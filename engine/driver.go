package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/morph/constants"
	"github.com/lixenwraith/morph/core"
)

// Driver runs the scheduler's frame loop on its own goroutine. While tweens
// are in flight it ticks at the frame interval; when the scheduler settles
// it backs off to the idle interval and waits for a wake, so a settled
// presentation costs almost nothing.
type Driver struct {
	sched    *Scheduler
	clock    Clock
	interval time.Duration
	idle     time.Duration

	wakeChan chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewDriver wires a driver to a scheduler. The scheduler's wake callback is
// registered here; construct the driver before dispatching to the
// scheduler from other goroutines.
func NewDriver(sched *Scheduler) *Driver {
	d := &Driver{
		sched:    sched,
		clock:    sched.opts.Clock,
		interval: constants.FrameInterval,
		idle:     constants.IdleInterval,
		wakeChan: make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
	sched.SetWake(d.Wake)
	return d
}

// Start launches the frame loop. Safe to call once.
func (d *Driver) Start() {
	if !d.running.CompareAndSwap(false, true) {
		return
	}
	d.wg.Add(1)
	core.Go(func() {
		defer d.wg.Done()
		d.loop()
	})
}

// Stop terminates the frame loop and waits for it to exit. In-flight
// tweens freeze where they are; call StopAllTweens or InitializeTargets on
// the scheduler for a clean end state.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
	d.wg.Wait()
	d.running.Store(false)
}

// Wake nudges an idle frame loop; coalesces while one nudge is pending
func (d *Driver) Wake() {
	select {
	case d.wakeChan <- struct{}{}:
	default:
	}
}

func (d *Driver) loop() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	animating := false
	for {
		if animating {
			select {
			case <-d.stopChan:
				return
			case <-d.wakeChan:
			case <-ticker.C:
			}
		} else {
			// Idle: long sleep, interruptible by wake or stop
			idleTimer := time.NewTimer(d.idle)
			select {
			case <-d.stopChan:
				idleTimer.Stop()
				return
			case <-d.wakeChan:
				idleTimer.Stop()
			case <-idleTimer.C:
			}
		}

		animating = d.sched.Tick(d.clock.Now())
	}
}
