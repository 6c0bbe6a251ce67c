package events

// Handler processes specific signal types within a context T.
// The navigation adapter implements this to receive routed signals.
type Handler[T any] interface {
	// HandleSignal processes a single signal.
	// Called synchronously during the dispatch phase.
	HandleSignal(ctx T, s Signal)

	// SignalTypes returns the signal types this handler processes.
	// The router uses this for registration.
	SignalTypes() []SignalType
}

// Router dispatches queued signals to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same signal type
//   - Handlers are invoked in registration order
type Router[T any] struct {
	handlers map[SignalType][]Handler[T]
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[SignalType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared signal types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.SignalTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending signals and routes them to handlers.
// Signals are processed in FIFO order.
func (r *Router[T]) DispatchAll(ctx T) {
	signals := r.queue.Consume()
	for _, s := range signals {
		for _, h := range r.handlers[s.Type] {
			h.HandleSignal(ctx, s)
		}
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t SignalType) bool {
	return len(r.handlers[t]) > 0
}
