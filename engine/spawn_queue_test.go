package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/horde/core"
)

func TestSpawnQueueFIFO(t *testing.T) {
	q := NewSpawnQueue()
	for i := 1; i <= 5; i++ {
		q.Push(core.Entity(i))
	}

	got := q.Drain()
	if len(got) != 5 {
		t.Fatalf("drained %d, want 5", len(got))
	}
	for i, e := range got {
		if e != core.Entity(i+1) {
			t.Errorf("position %d = %d, want %d", i, e, i+1)
		}
	}

	if again := q.Drain(); again != nil {
		t.Errorf("second drain returned %v, want nil", again)
	}
}

func TestSpawnQueueConcurrentProducers(t *testing.T) {
	q := NewSpawnQueue()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(core.Entity(base*perProducer + i + 1))
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[core.Entity]struct{})
	for _, e := range q.Drain() {
		if _, dup := seen[e]; dup {
			t.Errorf("entity %d drained twice", e)
		}
		seen[e] = struct{}{}
	}
	if len(seen) != producers*perProducer {
		t.Errorf("drained %d unique entities, want %d", len(seen), producers*perProducer)
	}
	if q.TakeDropped() != 0 {
		t.Error("drops reported below capacity")
	}
}
