package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/engine/status"
)

// Scheduler owns the timeline of one animation sequence: it decides, on
// every advance/retreat request, whether to animate, skip, or snap back,
// and drives all in-flight tweens through a single shared per-frame tick.
//
// States: Idle (currentStep == -1), Settled(k) (no tween in flight), and
// Animating (tweens in flight toward currentStep). currentStep reflects the
// destination as soon as an animation starts, so observers always read
// where the presentation is, not where pixels are.
//
// Backward navigation uses the snap-back strategy: the cumulative end-state
// of the destination step is applied instantly, never animated. This is
// applied consistently for every target.
//
// A Scheduler is explicitly constructed and owned by its caller; dispose it
// with the page that owns it. There is no process-wide shared state.
type Scheduler struct {
	mu   sync.Mutex
	seq  *morph.Sequence
	opts Options

	currentStep int
	lastAdvance time.Time
	active      []*tweenHandle

	wake func()

	// Lock-free observables
	stepObs      atomic.Int64
	animatingObs atomic.Bool

	// Cached metric pointers
	statTicks    *atomic.Int64
	statTweens   *atomic.Int64
	statSkips    *atomic.Int64
	statSnaps    *atomic.Int64
	statResets   *atomic.Int64
	statCancels  *atomic.Int64
	statProgress *status.AtomicFloat
}

// NewScheduler initializes a scheduler over a registered sequence.
// The sequence's targets are mutated in place while animating; the
// scheduler is their sole writer for the duration of a tween.
func NewScheduler(seq *morph.Sequence, opts Options) *Scheduler {
	opts = opts.withDefaults()

	s := &Scheduler{
		seq:          seq,
		opts:         opts,
		currentStep:  -1,
		lastAdvance:  opts.Clock.Now(),
		statTicks:    opts.Status.Ints.Get("morph.ticks"),
		statTweens:   opts.Status.Ints.Get("morph.tweens_started"),
		statSkips:    opts.Status.Ints.Get("morph.skips"),
		statSnaps:    opts.Status.Ints.Get("morph.snap_backs"),
		statResets:   opts.Status.Ints.Get("morph.resets"),
		statCancels:  opts.Status.Ints.Get("morph.cancels"),
		statProgress: opts.Status.Floats.Get("morph.progress"),
	}
	s.stepObs.Store(-1)
	return s
}

// SetWake registers the driver's wake callback, invoked whenever a new
// tween set enters flight. Must be set before concurrent use.
func (s *Scheduler) SetWake(fn func()) {
	s.mu.Lock()
	s.wake = fn
	s.mu.Unlock()
}

// CurrentStep returns the step cursor: -1 at baseline, otherwise the index
// of the step the presentation is at (or animating into)
func (s *Scheduler) CurrentStep() int {
	return int(s.stepObs.Load())
}

// TotalSteps returns the number of steps in the sequence
func (s *Scheduler) TotalSteps() int {
	return s.seq.StepCount()
}

// IsAnimating reports whether any tween is in flight
func (s *Scheduler) IsAnimating() bool {
	return s.animatingObs.Load()
}

// Sequence returns the registered sequence
func (s *Scheduler) Sequence() *morph.Sequence {
	return s.seq
}

// pending collects side effects raised under the lock and fired after it
// is released, so callbacks never run inside the scheduler's critical
// section
type pending struct {
	steps []int
	flush bool
	wake  bool
}

func (s *Scheduler) fire(p pending) {
	for _, k := range p.steps {
		if s.opts.OnStepApplied != nil {
			s.opts.OnStepApplied(k)
		}
	}
	if p.flush && s.opts.OnFlush != nil {
		s.opts.OnFlush()
	}
	if p.wake && s.wake != nil {
		s.wake()
	}
}

// AnimateToStep moves the timeline to the given step index.
//
// The destination is clamped to [0, StepCount-1]; out-of-range requests are
// never an error. Any in-flight tween is cancelled first, before any
// mutation (cancel-before-mutate): without a skip in the same call, the
// interrupted properties freeze at their last-committed values.
//
// forceSkip, or a forward advance arriving within SkipThreshold of the
// previous transition, applies cumulative end-states instantly with no
// tween. A backward destination snaps back instantly. A forward adjacent
// destination outside the threshold animates. Non-adjacent forward
// destinations snap the intermediate steps and animate only the final one,
// so the end state is correct even when the caller skips validation.
func (s *Scheduler) AnimateToStep(target int, forceSkip bool) {
	s.mu.Lock()

	n := s.seq.StepCount()
	if target < 0 {
		target = 0
	}
	if target > n-1 {
		target = n - 1
	}

	now := s.opts.Clock.Now()
	s.cancelLocked()

	var p pending
	switch {
	case forceSkip:
		p = s.snapLocked(target, now)

	case target == s.currentStep:
		// No-op branch: refresh the advance timestamp only
		s.lastAdvance = now

	case target > s.currentStep && now.Sub(s.lastAdvance) < s.opts.SkipThreshold:
		s.statSkips.Add(1)
		p = s.snapLocked(target, now)

	case target < s.currentStep:
		s.statSnaps.Add(1)
		p = s.snapLocked(target, now)

	default:
		p = s.forwardLocked(target, now)
	}

	s.mu.Unlock()
	s.fire(p)
}

// InitializeTargets writes every target's baseline back, cancels any
// in-flight tween, and returns the cursor to -1. Called on page change.
func (s *Scheduler) InitializeTargets() {
	s.mu.Lock()

	s.cancelLocked()
	for _, tgt := range s.seq.Targets() {
		tgt.Apply(s.seq.BaselineOf(tgt))
	}
	s.currentStep = -1
	s.stepObs.Store(-1)
	s.lastAdvance = s.opts.Clock.Now()
	s.statResets.Add(1)
	s.statProgress.Set(0)

	s.mu.Unlock()
	s.fire(pending{flush: true})
}

// StopAllTweens cancels any in-flight tween. Properties freeze at their
// last-committed interpolated values.
func (s *Scheduler) StopAllTweens() {
	s.mu.Lock()
	s.cancelLocked()
	s.mu.Unlock()
}

// cancelLocked drops every active handle; superseded frame callbacks can
// never re-apply stale values because handles are gone before any mutation
func (s *Scheduler) cancelLocked() {
	if len(s.active) == 0 {
		return
	}
	s.statCancels.Add(int64(len(s.active)))
	s.active = nil
	s.animatingObs.Store(false)
}

// snapLocked applies cumulative end-states instantly.
//
// Forward: every step index from currentStep+1 through target is applied
// in order, so per-step side effects fire in presentation order; only the
// terminal application is observably meaningful. Backward or re-applied:
// the destination's cumulative end-state alone, which by construction
// contains the full baseline with steps 0..target folded in (snap-back).
func (s *Scheduler) snapLocked(target int, now time.Time) pending {
	var p pending

	first := s.currentStep + 1
	if first < 0 {
		first = 0
	}
	if first > target {
		first = target
	}
	for k := first; k <= target; k++ {
		for _, tgt := range s.seq.Targets() {
			tgt.Apply(s.seq.EndState(k, tgt))
		}
		p.steps = append(p.steps, k)
	}

	s.currentStep = target
	s.stepObs.Store(int64(target))
	s.lastAdvance = now
	s.statProgress.Set(1)
	p.flush = true
	return p
}

// forwardLocked starts a tween into step target from live values
func (s *Scheduler) forwardLocked(target int, now time.Time) pending {
	var p pending

	// A non-adjacent forward destination can arrive when the caller skips
	// click validation. Snap the intermediate steps, animate only the
	// final one.
	for k := s.currentStep + 1; k < target; k++ {
		if k < 0 {
			continue
		}
		for _, tgt := range s.seq.Targets() {
			tgt.Apply(s.seq.EndState(k, tgt))
		}
		p.steps = append(p.steps, k)
		p.flush = true
	}

	st := s.seq.Step(target)
	for tgt, d := range st.Deltas {
		if s.seq.BaselineOf(tgt) == nil {
			// Unregistered target referenced by a step: no-op for it
			continue
		}

		duration := d.Duration
		if duration <= 0 {
			duration = s.opts.DefaultDuration
		}
		fn := d.Easing
		if fn == nil {
			fn = s.opts.DefaultEasing
		}

		h := newTweenHandle(tgt, d.Properties, s.seq.BaselineOf(tgt), now, d.Delay, duration, fn)
		if h.empty() {
			continue
		}
		s.active = append(s.active, h)
	}

	s.currentStep = target
	s.stepObs.Store(int64(target))
	s.lastAdvance = now

	if len(s.active) > 0 {
		s.animatingObs.Store(true)
		s.statTweens.Add(int64(len(s.active)))
		s.statProgress.Set(0)
		p.wake = true
	} else {
		// Step touches nothing animatable: settled on arrival
		p.steps = append(p.steps, target)
	}
	return p
}

// Tick advances every active handle together in one pass and commits the
// results as per-target batches. Returns true while tweens remain in
// flight. The driver calls this once per frame; tests call it directly
// with a mock clock.
//
// On the tick where every handle reaches progress 1, all endpoint values
// are committed exactly, the active set clears, and the scheduler settles.
func (s *Scheduler) Tick(now time.Time) bool {
	s.mu.Lock()

	if len(s.active) == 0 {
		s.mu.Unlock()
		return false
	}
	s.statTicks.Add(1)

	allDone := true
	progSum := 0.0
	staged := make(map[*morph.Target]map[string]float64, len(s.active))
	for _, h := range s.active {
		if h.done {
			progSum += 1
			continue
		}
		batch, complete := h.valuesAt(now)
		h.done = complete
		if !complete {
			allDone = false
		}
		if p := h.progressAt(now); p < 1 {
			progSum += p
		} else {
			progSum += 1
		}

		if merged, ok := staged[h.target]; ok {
			for k, v := range batch {
				merged[k] = v
			}
		} else {
			staged[h.target] = batch
		}
	}
	s.statProgress.Set(progSum / float64(len(s.active)))

	// Commit: one locked batch per target, after all evaluation
	for tgt, batch := range staged {
		tgt.Apply(batch)
	}

	var p pending
	p.flush = len(staged) > 0

	if allDone {
		settled := s.currentStep
		s.active = nil
		s.animatingObs.Store(false)
		p.steps = append(p.steps, settled)
	}

	s.mu.Unlock()
	s.fire(p)
	return !allDone
}
