package morph

import "github.com/lixenwraith/morph/easing"

// Interpolate computes start + (end-start)*eased. eased is an easing output
// and may lie outside [0,1] for overshoot curves.
func Interpolate(start, end, eased float64) float64 {
	return start + (end-start)*eased
}

// ValueAt evaluates one property at raw progress through fn.
// At progress >= 1 the result is forced to exactly end; easing float error
// must never leave a residual offset at rest.
func ValueAt(start, end, progress float64, fn easing.Func) float64 {
	if progress >= 1 {
		return end
	}
	if progress < 0 {
		progress = 0
	}
	return Interpolate(start, end, easing.Evaluate(fn, progress))
}
