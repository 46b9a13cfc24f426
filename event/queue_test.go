package event

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 4; i++ {
		q.Push(GameEvent{Type: EventEntityDied, Frame: int64(i)})
	}

	if q.Len() != 4 {
		t.Errorf("Len = %d, want 4", q.Len())
	}

	events := q.Consume()
	if len(events) != 4 {
		t.Fatalf("consumed %d, want 4", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("position %d has frame %d", i, ev.Frame)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("second consume returned %v", again)
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()

	const producers = 6
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventPickupCollected})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d, want %d", got, producers*perProducer)
	}
}

func TestDiedPoolReset(t *testing.T) {
	p := AcquireDied()
	p.Entity = 99
	p.XP = 5
	p.IsBoss = true
	ReleaseDied(p)

	next := AcquireDied()
	if next.Entity != 0 || next.XP != 0 || next.IsBoss {
		t.Errorf("recycled payload leaked state: %+v", next)
	}
	ReleaseDied(next)

	ReleaseDied(nil) // must not panic
}
