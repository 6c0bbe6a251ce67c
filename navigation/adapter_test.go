package navigation

import (
	"testing"
	"time"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/engine"
	"github.com/lixenwraith/morph/events"
)

func newAdapterRig(t *testing.T) (*Adapter[struct{}], *engine.MockClock, *morph.Target) {
	t.Helper()

	box := morph.NewTarget("box", map[string]float64{morph.PropX: 0})
	steps := []morph.Step{
		{Index: 0, Deltas: map[*morph.Target]morph.Delta{
			box: {Properties: map[string]float64{morph.PropX: 100}, Duration: 100 * time.Millisecond},
		}},
		{Index: 1, Deltas: map[*morph.Target]morph.Delta{
			box: {Properties: map[string]float64{morph.PropX: 200}, Duration: 100 * time.Millisecond},
		}},
		{Index: 2, Deltas: map[*morph.Target]morph.Delta{
			box: {Properties: map[string]float64{morph.PropX: 300}, Duration: 100 * time.Millisecond},
		}},
	}
	seq, err := morph.NewSequence(steps, []*morph.Target{box}, nil)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	clock := engine.NewMockClock(time.Unix(0, 0))
	sched := engine.NewScheduler(seq, engine.Options{Clock: clock})
	clock.Advance(time.Second)
	return NewAdapter[struct{}](sched), clock, box
}

func TestClicksMapToSteps(t *testing.T) {
	a, clock, _ := newAdapterRig(t)

	a.SetClicks(1)
	if a.CurrentStep() != 0 {
		t.Fatalf("clicks=1 should target step 0, got %d", a.CurrentStep())
	}

	clock.Advance(time.Second)
	a.SetClicks(2)
	if a.CurrentStep() != 1 {
		t.Fatalf("clicks=2 should target step 1, got %d", a.CurrentStep())
	}
}

func TestZeroClicksResetsToBaseline(t *testing.T) {
	a, clock, box := newAdapterRig(t)

	a.SetClicks(3)
	clock.Advance(time.Second)
	a.SetClicks(0)

	if a.CurrentStep() != -1 {
		t.Fatalf("clicks=0 should reset, cursor = %d", a.CurrentStep())
	}
	if got := box.GetOr(morph.PropX, -1); got != 0 {
		t.Fatalf("x = %v, want baseline 0", got)
	}
}

func TestClickJumpForcesSkip(t *testing.T) {
	a, clock, box := newAdapterRig(t)
	clock.Advance(time.Second)

	a.SetClicks(3)
	if a.IsAnimating() {
		t.Fatal("multi-click jump must skip, not animate")
	}
	if got := box.GetOr(morph.PropX, -1); got != 300 {
		t.Fatalf("x = %v, want 300", got)
	}
}

func TestClicksClampToLastStep(t *testing.T) {
	a, _, _ := newAdapterRig(t)

	a.SetClicks(50)
	if a.CurrentStep() != 2 {
		t.Fatalf("overshoot clicks should clamp to last step, got %d", a.CurrentStep())
	}
}

func TestRepeatedClicksIgnored(t *testing.T) {
	a, clock, box := newAdapterRig(t)

	a.SetClicks(2)
	clock.Advance(time.Second)
	before := box.Snapshot()

	a.SetClicks(2)
	if a.IsAnimating() {
		t.Fatal("unchanged clicks must not start anything")
	}
	after := box.Snapshot()
	for k, v := range before {
		if after[k] != v {
			t.Fatalf("unchanged clicks mutated %s", k)
		}
	}
}

func TestPageChangeResets(t *testing.T) {
	a, clock, box := newAdapterRig(t)

	a.PageChanged(0)
	a.SetClicks(2)
	clock.Advance(30 * time.Millisecond)

	a.PageChanged(1)
	if a.IsAnimating() {
		t.Fatal("page change must cancel tweens")
	}
	if a.CurrentStep() != -1 {
		t.Fatalf("page change cursor = %d, want -1", a.CurrentStep())
	}
	if got := box.GetOr(morph.PropX, -1); got != 0 {
		t.Fatalf("x = %v, want baseline 0", got)
	}

	// Clicks restart from zero on the new page
	a.SetClicks(1)
	if a.CurrentStep() != 0 {
		t.Fatalf("first click on new page should target step 0, got %d", a.CurrentStep())
	}
}

func TestSamePageChangeIgnored(t *testing.T) {
	a, clock, box := newAdapterRig(t)

	a.PageChanged(4)
	a.SetClicks(2)
	clock.Advance(time.Second)
	want := box.Snapshot()

	a.PageChanged(4)
	got := box.Snapshot()
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("repeated page signal reset state (%s)", k)
		}
	}
}

func TestTotalStepsIsMaxPerTarget(t *testing.T) {
	a, _, _ := newAdapterRig(t)
	if a.TotalSteps() != 3 {
		t.Fatalf("TotalSteps = %d, want 3", a.TotalSteps())
	}
}

func TestSignalsRouteThroughQueue(t *testing.T) {
	a, clock, box := newAdapterRig(t)
	clock.Advance(time.Second)

	q := events.NewQueue()
	r := events.NewRouter[struct{}](q)
	r.Register(a)

	q.Push(events.Signal{Type: events.SignalClicks, Value: 2, At: clock.Now()})
	q.Push(events.Signal{Type: events.SignalPage, Value: 1, At: clock.Now()})
	r.DispatchAll(struct{}{})

	if a.CurrentStep() != -1 {
		t.Fatalf("page signal after clicks should leave baseline, got %d", a.CurrentStep())
	}
	if got := box.GetOr(morph.PropX, -1); got != 0 {
		t.Fatalf("x = %v, want 0", got)
	}
}
