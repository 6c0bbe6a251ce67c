package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapCachedPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get("morph.ticks")
	b := m.Get("morph.ticks")
	if a != b {
		t.Error("Get returned different pointers for the same key")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("cached pointer sees %d, want 3", b.Load())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b")
	m.Get("a")
	m.Get("c")

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})

	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Range order = %v, want %v", keys, want)
		}
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get("shared").Load(); got != 1600 {
		t.Errorf("shared = %d, want 1600", got)
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat

	if f.Get() != 0 {
		t.Errorf("zero value = %v, want 0", f.Get())
	}

	f.Set(1.5)
	if f.Get() != 1.5 {
		t.Errorf("Get = %v, want 1.5", f.Get())
	}

	if got := f.Add(0.25); got != 1.75 {
		t.Errorf("Add returned %v, want 1.75", got)
	}
}

func TestRegistryTotalCount(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("a")
	r.Floats.Get("b")

	if got := r.TotalCount(); got != 2 {
		t.Errorf("TotalCount = %d, want 2", got)
	}
}
