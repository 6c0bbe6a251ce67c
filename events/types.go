package events

import "time"

// SignalType classifies a navigation signal from the host presentation
// framework
type SignalType int

const (
	// SignalClicks carries the host's monotonic advance counter for the
	// current page. Value 0 means baseline (nothing applied).
	// Consumer: navigation.Adapter
	SignalClicks SignalType = iota

	// SignalPage carries the host's current page index. A change resets the
	// animation state of the departing page.
	// Consumer: navigation.Adapter
	SignalPage
)

// Signal is one serialized navigation event.
// The host emits clicks/page changes from a single input stream; the queue
// preserves their order, the router fans them out.
type Signal struct {
	Type  SignalType
	Value int
	At    time.Time
}
