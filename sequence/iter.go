package sequence

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/lixenwraith/morph"
)

// Collect materializes a sequence from an iterator of steps. Steps are
// reindexed in consumption order, so the producer need not number them.
// Targets absent from the list but referenced by steps are registered
// automatically by morph.NewSequence.
//
// This is the lazy-producer counterpart of Builder: a generator function
// yields steps one at a time, and nothing about suspension crosses the
// scheduler boundary.
func Collect(steps iter.Seq[morph.Step], targets []*morph.Target, explicit morph.Baseline) (*morph.Sequence, error) {
	var (
		out  []morph.Step
		errs []error
	)
	for st := range steps {
		st.Index = len(out)
		for tgt, d := range st.Deltas {
			for k, v := range d.Properties {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					name := "<nil>"
					if tgt != nil {
						name = tgt.Name()
					}
					errs = append(errs, fmt.Errorf("%w: step %d, target %q, property %q",
						ErrNonFiniteValue, st.Index, name, k))
				}
			}
		}
		out = append(out, st)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return morph.NewSequence(out, targets, explicit)
}
