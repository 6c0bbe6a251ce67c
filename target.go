package morph

import "sync"

// Recognized property names captured during baseline auto-sniff.
// Arbitrary custom numeric keys are equally valid on a Target; these are the
// ones probed even when no step mentions them.
const (
	PropX        = "x"
	PropY        = "y"
	PropWidth    = "width"
	PropHeight   = "height"
	PropScaleX   = "scaleX"
	PropScaleY   = "scaleY"
	PropRotation = "rotation"
	PropOpacity  = "opacity"
)

// RecognizedProperties lists the property names probed during auto-capture
var RecognizedProperties = []string{
	PropX, PropY, PropWidth, PropHeight,
	PropScaleX, PropScaleY, PropRotation, PropOpacity,
}

// Target is an externally owned bag of named numeric properties.
// The scheduler mutates properties in place while a tween is active; the
// rendering layer reads them every frame. Writes from one tick land as a
// single batch so a reader never observes a half-applied frame.
//
// Concurrent external writes to properties under active tween produce
// undefined visual results; the scheduler does not arbitrate them.
type Target struct {
	name string

	mu    sync.RWMutex
	props map[string]float64
}

// NewTarget creates a target with the given initial properties.
// props may be nil; a copy is taken either way.
func NewTarget(name string, props map[string]float64) *Target {
	t := &Target{
		name:  name,
		props: make(map[string]float64, len(props)),
	}
	for k, v := range props {
		t.props[k] = v
	}
	return t
}

// Name returns the target's display name
func (t *Target) Name() string { return t.name }

// Get returns the value for key and whether it is set
func (t *Target) Get(key string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.props[key]
	return v, ok
}

// GetOr returns the value for key or fallback when unset
func (t *Target) GetOr(key string, fallback float64) float64 {
	if v, ok := t.Get(key); ok {
		return v
	}
	return fallback
}

// Set writes a single property
func (t *Target) Set(key string, v float64) {
	t.mu.Lock()
	t.props[key] = v
	t.mu.Unlock()
}

// Apply writes every entry of batch under one lock acquisition.
// This is the only write path the scheduler uses per frame tick, so a
// concurrent reader sees either the whole batch or none of it.
func (t *Target) Apply(batch map[string]float64) {
	if len(batch) == 0 {
		return
	}
	t.mu.Lock()
	for k, v := range batch {
		t.props[k] = v
	}
	t.mu.Unlock()
}

// Snapshot returns a copy of the current property set
func (t *Target) Snapshot() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]float64, len(t.props))
	for k, v := range t.props {
		out[k] = v
	}
	return out
}
