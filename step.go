package morph

import (
	"time"

	"github.com/lixenwraith/morph/easing"
)

// Delta declares the property changes one step applies to one target.
// Zero Duration, zero Delay, and nil Easing mean "use scheduler defaults".
type Delta struct {
	Properties map[string]float64
	Duration   time.Duration
	Delay      time.Duration
	Easing     easing.Func
}

// Step is one presentation-advance's worth of declared changes.
// A target absent from Deltas keeps whatever values it held entering the
// step; there is no implicit revert.
type Step struct {
	Index  int
	Deltas map[*Target]Delta
}

// clone returns a deep copy of the delta's property map; timing and easing
// are value/function copies
func (d Delta) clone() Delta {
	props := make(map[string]float64, len(d.Properties))
	for k, v := range d.Properties {
		props[k] = v
	}
	return Delta{
		Properties: props,
		Duration:   d.Duration,
		Delay:      d.Delay,
		Easing:     d.Easing,
	}
}
