package easing

import "math"

// Evaluate runs fn at t, degrading to linear progress when the function
// panics or produces a non-finite result. A broken custom easing must never
// abort the batch it belongs to; it costs that tween its curve, nothing more.
func Evaluate(fn Func, t float64) (out float64) {
	if fn == nil {
		return t
	}

	defer func() {
		if r := recover(); r != nil {
			out = t
		}
	}()

	out = fn(t)
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return t
	}
	return out
}
