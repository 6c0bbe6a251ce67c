package morph

import "fmt"

// Baseline holds each target's property values at step -1, before any step
// has applied
type Baseline map[*Target]map[string]float64

// Sequence is the materialized step model for one animation instance: the
// ordered steps, the participating targets, and each target's captured
// baseline. How the steps were authored (builder, iterator, deck file) is
// invisible here.
//
// The baseline is captured once at registration and immutable for the life
// of the instance; registering a new Sequence over the same unmodified
// targets captures identical values.
type Sequence struct {
	steps    []Step
	targets  []*Target
	baseline Baseline
}

// NewSequence registers targets and steps, capturing baselines.
//
// For each target: an explicit baseline entry is used verbatim. Otherwise
// capture reads the target's currently-set recognized properties plus every
// property its own steps animate. A property animated by a step with neither
// an explicit baseline nor a live value is a registration error, never a
// silent NaN at playback.
func NewSequence(steps []Step, targets []*Target, explicit Baseline) (*Sequence, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	ordered := make([]Step, len(steps))
	for i, st := range steps {
		deltas := make(map[*Target]Delta, len(st.Deltas))
		for tgt, d := range st.Deltas {
			if tgt == nil {
				return nil, fmt.Errorf("step %d: %w", i, ErrNilTarget)
			}
			deltas[tgt] = d.clone()
		}
		ordered[i] = Step{Index: i, Deltas: deltas}
	}

	seen := make(map[*Target]bool, len(targets))
	participants := make([]*Target, 0, len(targets))
	for _, tgt := range targets {
		if tgt == nil {
			return nil, ErrNilTarget
		}
		if !seen[tgt] {
			seen[tgt] = true
			participants = append(participants, tgt)
		}
	}
	// Steps may reference targets the caller forgot to list
	for _, st := range ordered {
		for tgt := range st.Deltas {
			if !seen[tgt] {
				seen[tgt] = true
				participants = append(participants, tgt)
			}
		}
	}

	base := make(Baseline, len(participants))
	for _, tgt := range participants {
		snap, err := captureBaseline(tgt, ordered, explicit[tgt])
		if err != nil {
			return nil, err
		}
		base[tgt] = snap
	}

	return &Sequence{
		steps:    ordered,
		targets:  participants,
		baseline: base,
	}, nil
}

// captureBaseline resolves one target's step -1 snapshot
func captureBaseline(tgt *Target, steps []Step, explicit map[string]float64) (map[string]float64, error) {
	if explicit != nil {
		snap := make(map[string]float64, len(explicit))
		for k, v := range explicit {
			snap[k] = v
		}
		return snap, nil
	}

	snap := make(map[string]float64)
	for _, key := range RecognizedProperties {
		if v, ok := tgt.Get(key); ok {
			snap[key] = v
		}
	}
	for _, st := range steps {
		d, ok := st.Deltas[tgt]
		if !ok {
			continue
		}
		for key := range d.Properties {
			if _, have := snap[key]; have {
				continue
			}
			v, ok := tgt.Get(key)
			if !ok {
				return nil, fmt.Errorf("target %q property %q (step %d): %w",
					tgt.Name(), key, st.Index, ErrMissingBaseline)
			}
			snap[key] = v
		}
	}
	return snap, nil
}

// StepCount returns the number of registered steps
func (s *Sequence) StepCount() int { return len(s.steps) }

// Step returns the step at index; index must be in [0, StepCount)
func (s *Sequence) Step(index int) Step { return s.steps[index] }

// Targets returns the participating targets in registration order
func (s *Sequence) Targets() []*Target { return s.targets }

// BaselineOf returns a copy of the target's captured baseline, or nil for a
// target outside the sequence
func (s *Sequence) BaselineOf(tgt *Target) map[string]float64 {
	base, ok := s.baseline[tgt]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(base))
	for k, v := range base {
		out[k] = v
	}
	return out
}

// EndState returns the deterministic state of tgt after step stepIndex has
// fully applied: the baseline with every delta in steps 0..stepIndex folded
// in order, later steps overriding earlier ones. stepIndex -1 yields the
// baseline itself. Works for any index and either direction of travel.
func (s *Sequence) EndState(stepIndex int, tgt *Target) map[string]float64 {
	out := s.BaselineOf(tgt)
	if out == nil {
		return nil
	}
	if stepIndex >= len(s.steps) {
		stepIndex = len(s.steps) - 1
	}
	for i := 0; i <= stepIndex; i++ {
		d, ok := s.steps[i].Deltas[tgt]
		if !ok {
			continue
		}
		for k, v := range d.Properties {
			out[k] = v
		}
	}
	return out
}

// StepsTouching returns how many steps carry a delta for tgt
func (s *Sequence) StepsTouching(tgt *Target) int {
	n := 0
	for _, st := range s.steps {
		if _, ok := st.Deltas[tgt]; ok {
			n++
		}
	}
	return n
}
