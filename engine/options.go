package engine

import (
	"time"

	"github.com/lixenwraith/morph/constants"
	"github.com/lixenwraith/morph/easing"
	"github.com/lixenwraith/morph/engine/status"
)

// Options configures a Scheduler. The zero value is usable; unset fields
// take package defaults.
type Options struct {
	// SkipThreshold is the window after the last step transition within
	// which a further forward advance applies end-state directly instead
	// of tweening
	SkipThreshold time.Duration

	// DefaultDuration applies when a step's delta carries no duration
	DefaultDuration time.Duration

	// DefaultEasing applies when a step's delta carries no easing
	DefaultEasing easing.Func

	// Clock is the time source; nil selects the system clock
	Clock Clock

	// Status receives scheduler telemetry; nil allocates a private registry
	Status *status.Registry

	// OnFlush fires after each batched property commit. The rendering
	// layer hooks this to redraw; there is no hidden reactivity.
	// Must not call back into the scheduler.
	OnFlush func()

	// OnStepApplied fires once per step index as steps settle or are
	// skipped through, in presentation order.
	// Must not call back into the scheduler.
	OnStepApplied func(index int)
}

// withDefaults returns a copy with every unset field resolved
func (o Options) withDefaults() Options {
	if o.SkipThreshold <= 0 {
		o.SkipThreshold = constants.DefaultSkipThreshold
	}
	if o.DefaultDuration <= 0 {
		o.DefaultDuration = constants.DefaultDuration
	}
	if o.DefaultEasing == nil {
		o.DefaultEasing, _ = easing.Named(constants.DefaultEasingName)
	}
	if o.Clock == nil {
		o.Clock = NewSystemClock()
	}
	if o.Status == nil {
		o.Status = status.NewRegistry()
	}
	return o
}
