package engine

import (
	"time"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/easing"
)

// tweenHandle is one in-flight interpolation job: the properties of one
// target for one step, sharing a single start time, duration, delay, and
// easing. Created on forward animation, destroyed on completion or
// cancellation.
type tweenHandle struct {
	target   *morph.Target
	start    map[string]float64
	end      map[string]float64
	startAt  time.Time
	delay    time.Duration
	duration time.Duration
	fn       easing.Func
	done     bool
}

// newTweenHandle captures start values from the target's current live
// values (not the previous step's end state, to tolerate external
// mutation), falling back to the captured baseline for properties the live
// object has lost. A property with neither is dropped from the handle.
func newTweenHandle(tgt *morph.Target, end map[string]float64, baseline map[string]float64,
	startAt time.Time, delay, duration time.Duration, fn easing.Func) *tweenHandle {

	start := make(map[string]float64, len(end))
	ends := make(map[string]float64, len(end))
	for k, endV := range end {
		v, ok := tgt.Get(k)
		if !ok {
			v, ok = baseline[k]
		}
		if !ok {
			continue
		}
		start[k] = v
		ends[k] = endV
	}

	return &tweenHandle{
		target:   tgt,
		start:    start,
		end:      ends,
		startAt:  startAt,
		delay:    delay,
		duration: duration,
		fn:       fn,
	}
}

// progressAt returns raw progress in [0, +inf); values >= 1 mean complete
func (h *tweenHandle) progressAt(now time.Time) float64 {
	elapsed := now.Sub(h.startAt) - h.delay
	if elapsed <= 0 {
		if h.duration <= 0 {
			return 1
		}
		return 0
	}
	if h.duration <= 0 {
		return 1
	}
	return float64(elapsed) / float64(h.duration)
}

// valuesAt computes the handle's property batch at now and whether the
// handle has completed. At completion every value is the exact declared
// endpoint.
func (h *tweenHandle) valuesAt(now time.Time) (map[string]float64, bool) {
	p := h.progressAt(now)
	batch := make(map[string]float64, len(h.end))
	for k, endV := range h.end {
		batch[k] = morph.ValueAt(h.start[k], endV, p, h.fn)
	}
	return batch, p >= 1
}

// empty reports whether the handle carries no animatable properties
func (h *tweenHandle) empty() bool {
	return len(h.end) == 0
}
