// Package sequence provides the authoring sugars that materialize the step
// model: a fluent builder and an iterator collector. The scheduler consumes
// only the materialized morph.Sequence and knows nothing about authoring.
//
// Validation of authored data lives here. The scheduler assumes well-typed
// numeric deltas; the builder rejects non-finite values at Build.
package sequence

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/easing"
)

// ErrNonFiniteValue reports a NaN or infinite property value in an
// authored step
var ErrNonFiniteValue = errors.New("sequence: non-finite property value")

// TweenOption adjusts the timing or pacing of one authored delta
type TweenOption func(*morph.Delta)

// Over sets the delta's duration
func Over(d time.Duration) TweenOption {
	return func(dl *morph.Delta) { dl.Duration = d }
}

// After sets the delta's start delay
func After(d time.Duration) TweenOption {
	return func(dl *morph.Delta) { dl.Delay = d }
}

// Ease selects a preset easing by name. Unknown names degrade to linear;
// authoring typos slow nothing down.
func Ease(name string) TweenOption {
	return func(dl *morph.Delta) {
		fn, ok := easing.Named(name)
		if !ok {
			fn = easing.Linear
		}
		dl.Easing = fn
	}
}

// Builder accumulates steps through ordinary method calls.
// Chain Step and Tween, then Build once:
//
//	seq, err := sequence.NewBuilder().
//		Step().Tween(box, map[string]float64{"x": 100}, sequence.Over(time.Second)).
//		Step().Tween(box, map[string]float64{"x": 200}).
//		Build()
type Builder struct {
	steps    []morph.Step
	targets  []*morph.Target
	seen     map[*morph.Target]bool
	explicit morph.Baseline
	errs     []error
}

// NewBuilder starts an empty builder
func NewBuilder() *Builder {
	return &Builder{
		seen:     make(map[*morph.Target]bool),
		explicit: make(morph.Baseline),
	}
}

// Register declares targets up front, so targets no step touches still get
// baselines captured and reset on navigation
func (b *Builder) Register(targets ...*morph.Target) *Builder {
	for _, tgt := range targets {
		b.addTarget(tgt)
	}
	return b
}

// Baseline records an explicit baseline for a target, overriding
// auto-capture entirely
func (b *Builder) Baseline(tgt *morph.Target, props map[string]float64) *Builder {
	if tgt == nil {
		b.errs = append(b.errs, morph.ErrNilTarget)
		return b
	}
	b.addTarget(tgt)
	snap := make(map[string]float64, len(props))
	for k, v := range props {
		snap[k] = v
	}
	b.explicit[tgt] = snap
	return b
}

// Step opens the next presentation-advance position
func (b *Builder) Step() *Builder {
	b.steps = append(b.steps, morph.Step{
		Index:  len(b.steps),
		Deltas: make(map[*morph.Target]morph.Delta),
	})
	return b
}

// Tween declares property end values for one target in the current step.
// Calling Tween before any Step opens step 0 implicitly.
func (b *Builder) Tween(tgt *morph.Target, props map[string]float64, opts ...TweenOption) *Builder {
	if tgt == nil {
		b.errs = append(b.errs, morph.ErrNilTarget)
		return b
	}
	if len(b.steps) == 0 {
		b.Step()
	}
	b.addTarget(tgt)

	d := morph.Delta{Properties: make(map[string]float64, len(props))}
	for k, v := range props {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.errs = append(b.errs, fmt.Errorf("%w: step %d, target %q, property %q",
				ErrNonFiniteValue, len(b.steps)-1, tgt.Name(), k))
			continue
		}
		d.Properties[k] = v
	}
	for _, opt := range opts {
		opt(&d)
	}

	step := &b.steps[len(b.steps)-1]
	if prev, ok := step.Deltas[tgt]; ok {
		// Repeated Tween for the same target merges into one delta
		for k, v := range d.Properties {
			prev.Properties[k] = v
		}
		if d.Duration != 0 {
			prev.Duration = d.Duration
		}
		if d.Delay != 0 {
			prev.Delay = d.Delay
		}
		if d.Easing != nil {
			prev.Easing = d.Easing
		}
		step.Deltas[tgt] = prev
		return b
	}
	step.Deltas[tgt] = d
	return b
}

// Build materializes the accumulated steps into a registered sequence.
// Authoring errors collected along the way surface here, joined.
func (b *Builder) Build() (*morph.Sequence, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return morph.NewSequence(b.steps, b.targets, b.explicit)
}

func (b *Builder) addTarget(tgt *morph.Target) {
	if tgt == nil || b.seen[tgt] {
		return
	}
	b.seen[tgt] = true
	b.targets = append(b.targets, tgt)
}
