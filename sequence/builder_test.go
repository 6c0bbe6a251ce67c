package sequence

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/morph"
)

func TestBuilderMaterializesSteps(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0})

	seq, err := NewBuilder().
		Step().Tween(box, map[string]float64{morph.PropX: 100}, Over(200*time.Millisecond), Ease("bounceOut")).
		Step().Tween(box, map[string]float64{morph.PropX: 200}, After(50*time.Millisecond)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if seq.StepCount() != 2 {
		t.Fatalf("StepCount = %d, want 2", seq.StepCount())
	}

	d0 := seq.Step(0).Deltas[box]
	if d0.Properties[morph.PropX] != 100 {
		t.Fatalf("step 0 x = %v", d0.Properties[morph.PropX])
	}
	if d0.Duration != 200*time.Millisecond {
		t.Fatalf("step 0 duration = %v", d0.Duration)
	}
	if d0.Easing == nil {
		t.Fatal("step 0 easing not set")
	}

	d1 := seq.Step(1).Deltas[box]
	if d1.Delay != 50*time.Millisecond {
		t.Fatalf("step 1 delay = %v", d1.Delay)
	}
	if d1.Easing != nil {
		t.Fatal("step 1 easing should be unset, scheduler supplies the default")
	}
}

func TestTweenBeforeStepOpensStepZero(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0})
	seq, err := NewBuilder().
		Tween(box, map[string]float64{morph.PropX: 1}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if seq.StepCount() != 1 {
		t.Fatalf("StepCount = %d, want 1", seq.StepCount())
	}
}

func TestRepeatedTweenMergesDeltas(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0, morph.PropY: 0})
	seq, err := NewBuilder().
		Step().
		Tween(box, map[string]float64{morph.PropX: 10}).
		Tween(box, map[string]float64{morph.PropY: 20}, Over(time.Second)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	d := seq.Step(0).Deltas[box]
	if d.Properties[morph.PropX] != 10 || d.Properties[morph.PropY] != 20 {
		t.Fatalf("merged properties = %v", d.Properties)
	}
	if d.Duration != time.Second {
		t.Fatalf("merged duration = %v", d.Duration)
	}
}

func TestUnknownEasingNameDegradesToLinear(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0})
	seq, err := NewBuilder().
		Step().Tween(box, map[string]float64{morph.PropX: 1}, Ease("wobblySchmoove")).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	d := seq.Step(0).Deltas[box]
	if d.Easing == nil {
		t.Fatal("easing should fall back to linear, not nil")
	}
	if got := d.Easing(0.3); got != 0.3 {
		t.Fatalf("fallback easing(0.3) = %v, want linear", got)
	}
}

func TestNonFiniteValueRejectedAtBuild(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0})
	_, err := NewBuilder().
		Step().Tween(box, map[string]float64{morph.PropX: math.NaN()}).
		Build()
	if !errors.Is(err, ErrNonFiniteValue) {
		t.Fatalf("err = %v, want ErrNonFiniteValue", err)
	}

	_, err = NewBuilder().
		Step().Tween(box, map[string]float64{morph.PropX: math.Inf(1)}).
		Build()
	if !errors.Is(err, ErrNonFiniteValue) {
		t.Fatalf("err = %v, want ErrNonFiniteValue", err)
	}
}

func TestNilTargetRejected(t *testing.T) {
	_, err := NewBuilder().
		Step().Tween(nil, map[string]float64{morph.PropX: 1}).
		Build()
	if !errors.Is(err, morph.ErrNilTarget) {
		t.Fatalf("err = %v, want ErrNilTarget", err)
	}
}

func TestExplicitBaselineWinsOverAutoCapture(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 42})
	seq, err := NewBuilder().
		Baseline(box, map[string]float64{morph.PropX: 7}).
		Step().Tween(box, map[string]float64{morph.PropX: 100}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := seq.BaselineOf(box)[morph.PropX]; got != 7 {
		t.Fatalf("baseline x = %v, want explicit 7", got)
	}
}

func TestRegisterOnlyTargetGetsBaseline(t *testing.T) {
	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0})
	idle := morph.NewTarget("idle", map[string]float64{morph.PropOpacity: 0.5})

	seq, err := NewBuilder().
		Register(idle).
		Step().Tween(box, map[string]float64{morph.PropX: 1}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := seq.BaselineOf(idle)[morph.PropOpacity]; got != 0.5 {
		t.Fatalf("untouched target baseline = %v, want 0.5", got)
	}
}
