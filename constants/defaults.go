package constants

import "time"

// Scheduler Timing Constants
const (
	// DefaultSkipThresholdMs is the fast-advance window in milliseconds
	DefaultSkipThresholdMs = 300

	// DefaultDurationMs is the tween duration when a step omits one
	DefaultDurationMs = 1000

	// DefaultSkipThreshold is the window within which rapid successive
	// advances bypass animation and apply end-state directly
	DefaultSkipThreshold = DefaultSkipThresholdMs * time.Millisecond

	// DefaultDuration is the duration applied when a step omits one
	DefaultDuration = DefaultDurationMs * time.Millisecond
)

// Frame Driver Constants
const (
	// FrameInterval is the driver evaluation cadence (~30 evaluations/sec)
	// Sub-refresh throttle; endpoint exactness does not depend on it
	FrameInterval = 33 * time.Millisecond

	// IdleInterval is the driver sleep cadence while no tween is in flight
	IdleInterval = FrameInterval * 4
)

// DefaultEasingName resolves through the easing preset table when a step
// carries no easing of its own
const DefaultEasingName = "easeInOut"

// Signal Queue Constants
const (
	// SignalQueueSize is the navigation signal ring capacity (power of two)
	SignalQueueSize = 64

	// SignalBufferMask masks ring indices
	SignalBufferMask = SignalQueueSize - 1
)

// Audio Constants
const (
	// AudioSampleRate is the cue synthesis sample rate in Hz
	AudioSampleRate = 48000

	// CueVolume scales synthesized cue amplitude
	CueVolume = 0.25
)
