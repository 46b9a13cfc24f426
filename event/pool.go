package event

import "sync"

var diedPool = sync.Pool{
	New: func() any {
		return &DiedPayload{}
	},
}

// AcquireDied returns a pooled death payload
// Death events are the highest-churn payload at the 100-enemy load
func AcquireDied() *DiedPayload {
	return diedPool.Get().(*DiedPayload)
}

// ReleaseDied resets and returns a payload to the pool
// Call only after all handlers for the event have run
func ReleaseDied(p *DiedPayload) {
	if p == nil {
		return
	}
	*p = DiedPayload{}
	diedPool.Put(p)
}
