package easing

import "math"

// Func remaps normalized progress. Input is in [0,1]; output may leave [0,1]
// for overshoot families (back, elastic, bounce). Callers must not clamp the
// output before interpolating with it.
type Func func(t float64) float64

// Linear is the identity remap and the universal fallback
func Linear(t float64) float64 { return t }

// Quadratic family (the plain "ease" presets)

func EaseIn(t float64) float64  { return t * t }
func EaseOut(t float64) float64 { return 1 - (1-t)*(1-t) }

func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Quintic family ("strong" presets)

func StrongIn(t float64) float64 { return t * t * t * t * t }

func StrongOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u*u
}

func StrongInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u*u/2
}

// Exponential family

func ExpoIn(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func ExpoOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func ExpoInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

// Back family (overshoots past the endpoint)

const (
	backOvershoot    = 1.70158
	backOvershootMid = backOvershoot * 1.525
)

func BackIn(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

func BackOut(t float64) float64 {
	u := t - 1
	return 1 + u*u*((backOvershoot+1)*u+backOvershoot)
}

func BackInOut(t float64) float64 {
	if t < 0.5 {
		u := 2 * t
		return u * u * ((backOvershootMid+1)*u - backOvershootMid) / 2
	}
	u := 2*t - 2
	return (u*u*((backOvershootMid+1)*u+backOvershootMid) + 2) / 2
}

// Elastic family (damped oscillation around the endpoint)

const (
	elasticPeriod    = 2 * math.Pi / 3
	elasticPeriodMid = 2 * math.Pi / 4.5
)

func ElasticIn(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticPeriod)
}

func ElasticOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticPeriod) + 1
}

func ElasticInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return -math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticPeriodMid) / 2
	default:
		return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticPeriodMid)/2 + 1
	}
}

// Bounce family

func BounceOut(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

func BounceIn(t float64) float64 { return 1 - BounceOut(1-t) }

func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - BounceOut(1-2*t)) / 2
	}
	return (1 + BounceOut(2*t-1)) / 2
}
