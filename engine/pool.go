package engine

import "sync"

// Pool is a generic acquire/release recycler for high-churn payloads
// (projectile specs, particle bursts, popups). Release applies the
// caller-supplied reset before the item becomes available again, so a
// re-acquired item never leaks prior state
type Pool[T any] struct {
	inner sync.Pool
	reset func(*T)
}

// NewPool creates a pool with a constructor and a reset function
// reset may be nil when the zero value is a valid fresh state
func NewPool[T any](construct func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		inner: sync.Pool{
			New: func() any { return construct() },
		},
		reset: reset,
	}
}

// Acquire pops a recycled instance or constructs a new one
func (p *Pool[T]) Acquire() *T {
	return p.inner.Get().(*T)
}

// Release resets the item and returns it to the pool
// The caller must not retain the pointer afterward
func (p *Pool[T]) Release(item *T) {
	if item == nil {
		return
	}
	if p.reset != nil {
		p.reset(item)
	}
	p.inner.Put(item)
}
