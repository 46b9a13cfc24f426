package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/core"
)

// SpawnQueue is a lock-free MPMC-push, single-consumer ring buffering
// cross-thread entity insertions. Entities enqueued during frame N are
// drained at the start of frame N+1 and never become visible mid-frame
//
// Overflow overwrites the oldest pending insertion; Dropped exposes the
// overwrite count so the scheduler can log it instead of blocking
type SpawnQueue struct {
	entries   [constant.SpawnQueueSize]core.Entity
	published [constant.SpawnQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
	dropped   atomic.Uint64
}

func NewSpawnQueue() *SpawnQueue {
	return &SpawnQueue{}
}

// Push enqueues an entity from any goroutine, CAS with published flags
func (q *SpawnQueue) Push(e core.Entity) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constant.SpawnQueueMask

			q.entries[idx] = e
			q.published[idx].Store(true) // MUST be after write

			currentHead := q.head.Load()
			if nextTail-currentHead > constant.SpawnQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-constant.SpawnQueueSize) {
					q.dropped.Add(1)
				}
			}
			return
		}
	}
}

// Drain returns all pending entities in FIFO order; simulation
// goroutine only
func (q *SpawnQueue) Drain() []core.Entity {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constant.SpawnQueueSize {
			maxAvailable = constant.SpawnQueueSize
			currentHead = currentTail - constant.SpawnQueueSize
		}

		result := make([]core.Entity, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constant.SpawnQueueMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.entries[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// TakeDropped returns and resets the overflow counter
func (q *SpawnQueue) TakeDropped() uint64 {
	return q.dropped.Swap(0)
}
