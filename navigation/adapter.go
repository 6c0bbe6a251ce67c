// Package navigation translates host presentation signals into scheduler
// calls. The host owns two values: a monotonic per-page click counter
// (0 means baseline) and the current page index. This package owns the
// mapping from those values to animate/skip/reset decisions; the scheduler
// stays ignorant of presentation software.
package navigation

import (
	"sync"

	"github.com/lixenwraith/morph/engine"
	"github.com/lixenwraith/morph/events"
)

// Adapter consumes click and page signals for one page's scheduler.
// The type parameter is the dispatch context of the router the adapter
// registers with; the adapter itself never touches it.
//
// Clicks map to steps as clicks-1, clamped to the last step. A jump of
// more than one click in either direction forces a skip, so host-side
// slide jumps land instantly on the right state.
type Adapter[C any] struct {
	mu    sync.Mutex
	sched *engine.Scheduler

	clicks     int
	page       int
	pageKnown  bool
	totalSteps int
}

// NewAdapter binds an adapter to a scheduler. Total steps is the largest
// per-target step count, matching what a progress indicator should show.
func NewAdapter[C any](sched *engine.Scheduler) *Adapter[C] {
	total := 0
	seq := sched.Sequence()
	for _, tgt := range seq.Targets() {
		if n := seq.StepsTouching(tgt); n > total {
			total = n
		}
	}
	return &Adapter[C]{
		sched:      sched,
		totalSteps: total,
	}
}

// SetClicks applies a new click counter value. Unchanged values are
// ignored; zero resets to baseline; anything else navigates to the
// corresponding step, skipping when the counter jumped.
func (a *Adapter[C]) SetClicks(clicks int) {
	a.mu.Lock()
	prev := a.clicks
	if clicks == prev {
		a.mu.Unlock()
		return
	}
	a.clicks = clicks
	a.mu.Unlock()

	if clicks <= 0 {
		a.sched.InitializeTargets()
		return
	}

	target := clicks - 1
	if target > a.totalSteps-1 {
		target = a.totalSteps - 1
	}
	diff := clicks - prev
	if diff < 0 {
		diff = -diff
	}
	a.sched.AnimateToStep(target, diff > 1)
}

// PageChanged handles the host moving to another page: cancel whatever is
// in flight and restore baselines, so re-entering the page starts clean.
func (a *Adapter[C]) PageChanged(page int) {
	a.mu.Lock()
	if a.pageKnown && page == a.page {
		a.mu.Unlock()
		return
	}
	a.page = page
	a.pageKnown = true
	a.clicks = 0
	a.mu.Unlock()

	a.sched.StopAllTweens()
	a.sched.InitializeTargets()
}

// CurrentStep reports the step cursor, -1 at baseline
func (a *Adapter[C]) CurrentStep() int { return a.sched.CurrentStep() }

// TotalSteps reports the number of advance positions on this page
func (a *Adapter[C]) TotalSteps() int { return a.totalSteps }

// IsAnimating reports whether a tween is in flight
func (a *Adapter[C]) IsAnimating() bool { return a.sched.IsAnimating() }

// HandleSignal routes a queued signal to the matching method
func (a *Adapter[C]) HandleSignal(_ C, s events.Signal) {
	switch s.Type {
	case events.SignalClicks:
		a.SetClicks(s.Value)
	case events.SignalPage:
		a.PageChanged(s.Value)
	}
}

// SignalTypes declares the signals this adapter consumes
func (a *Adapter[C]) SignalTypes() []events.SignalType {
	return []events.SignalType{events.SignalClicks, events.SignalPage}
}
