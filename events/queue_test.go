package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/morph/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(Signal{Type: SignalClicks, Value: i})
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d signals, want 5", len(got))
	}
	for i, s := range got {
		if s.Value != i {
			t.Errorf("signal %d has value %d, want %d", i, s.Value, i)
		}
	}
}

func TestQueueEmptyConsume(t *testing.T) {
	q := NewQueue()
	if got := q.Consume(); got != nil {
		t.Errorf("Consume on empty queue = %v, want nil", got)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	total := constants.SignalQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Signal{Type: SignalClicks, Value: i})
	}

	got := q.Consume()
	if len(got) > constants.SignalQueueSize {
		t.Fatalf("consumed %d, queue capacity is %d", len(got), constants.SignalQueueSize)
	}
	if last := got[len(got)-1].Value; last != total-1 {
		t.Errorf("last value = %d, want newest %d", last, total-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 4

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Signal{Type: SignalClicks, Value: i})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d signals, want %d", got, producers*perProducer)
	}
}

type recordingHandler struct {
	seen  []Signal
	types []SignalType
}

func (h *recordingHandler) HandleSignal(_ struct{}, s Signal) { h.seen = append(h.seen, s) }
func (h *recordingHandler) SignalTypes() []SignalType         { return h.types }

func TestRouterDispatchByType(t *testing.T) {
	q := NewQueue()
	r := NewRouter[struct{}](q)

	clicks := &recordingHandler{types: []SignalType{SignalClicks}}
	pages := &recordingHandler{types: []SignalType{SignalPage}}
	r.Register(clicks)
	r.Register(pages)

	q.Push(Signal{Type: SignalClicks, Value: 1})
	q.Push(Signal{Type: SignalPage, Value: 2})
	q.Push(Signal{Type: SignalClicks, Value: 3})

	r.DispatchAll(struct{}{})

	if len(clicks.seen) != 2 || clicks.seen[1].Value != 3 {
		t.Errorf("clicks handler saw %v", clicks.seen)
	}
	if len(pages.seen) != 1 || pages.seen[0].Value != 2 {
		t.Errorf("pages handler saw %v", pages.seen)
	}
}

func TestRouterHasHandlers(t *testing.T) {
	r := NewRouter[struct{}](NewQueue())
	if r.HasHandlers(SignalClicks) {
		t.Error("empty router claims handlers")
	}
	r.Register(&recordingHandler{types: []SignalType{SignalClicks}})
	if !r.HasHandlers(SignalClicks) {
		t.Error("registered handler not reported")
	}
}
