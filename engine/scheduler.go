package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
)

// Scheduler owns the single authoritative simulation timeline
// Each tick: drain queued insertions, route events, run systems in
// priority order, sweep inactive entities in one compacting pass, then
// publish an immutable snapshot for cross-thread readers
type Scheduler struct {
	world  *World
	logger *zap.Logger

	pending  *SpawnQueue
	live     []core.Entity
	snapshot atomic.Pointer[[]core.Entity]

	handlers map[event.EventType][]event.Handler

	paused         atomic.Bool
	clearRequested atomic.Bool
	running        atomic.Bool
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	tickInterval time.Duration
	tickCount    atomic.Uint64
}

// NewScheduler creates a scheduler for the world
func NewScheduler(world *World, logger *zap.Logger) *Scheduler {
	s := &Scheduler{
		world:        world,
		logger:       logger,
		pending:      NewSpawnQueue(),
		handlers:     make(map[event.EventType][]event.Handler),
		stopChan:     make(chan struct{}),
		tickInterval: constant.TickInterval,
	}
	empty := make([]core.Entity, 0)
	s.snapshot.Store(&empty)
	return s
}

// AddEntity queues an entity for insertion at the start of the next
// frame. Safe from any goroutine; components must already be set
func (s *Scheduler) AddEntity(e core.Entity) {
	s.pending.Push(e)
}

// RemoveEntity soft-deletes an entity from any goroutine
// Physical removal is deferred to the end-of-frame sweep
func (s *Scheduler) RemoveEntity(e core.Entity) {
	s.world.Deactivate(e)
}

// AddSystem registers a system and, if it handles events, wires it
// into the routing table. Must be called before Start
func (s *Scheduler) AddSystem(system System) {
	s.world.AddSystem(system)
	if h, ok := system.(event.Handler); ok {
		for _, t := range h.EventTypes() {
			s.handlers[t] = append(s.handlers[t], h)
		}
	}
}

// Start launches the simulation goroutine
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the loop and waits for the current frame to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

// Pause halts system execution; snapshots keep publishing so
// presentation continues to reflect the frozen world
func (s *Scheduler) Pause() {
	s.paused.Store(true)
}

// Resume re-enables system execution
func (s *Scheduler) Resume() {
	s.paused.Store(false)
}

// Paused reports the pause flag
func (s *Scheduler) Paused() bool {
	return s.paused.Load()
}

// Clear requests a deferred full reset, applied at the start of the
// next tick to avoid tearing state already shared with readers
func (s *Scheduler) Clear() {
	s.clearRequested.Store(true)
}

// EntitiesSnapshot returns the most recently published live entity
// list. The slice is never mutated after publication
func (s *Scheduler) EntitiesSnapshot() []core.Entity {
	return *s.snapshot.Load()
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// loop is the fixed-timestep driver
func (s *Scheduler) loop() {
	defer s.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	last := time.Now()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		frameStart := time.Now()
		dt := frameStart.Sub(last)
		last = frameStart
		if dt > constant.MaxDeltaTime {
			// Recover locally from stalls; never propagate huge deltas
			dt = constant.MaxDeltaTime
		}

		s.tick(dt)

		// Frame pacing: sleep the remaining budget
		sleep := s.tickInterval - time.Since(frameStart)
		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-s.stopChan:
				return
			}
		}
	}
}

// tick runs one frame
func (s *Scheduler) tick(dt time.Duration) {
	if s.clearRequested.CompareAndSwap(true, false) {
		s.executeClear()
	}

	// Insertions enqueued during the previous frame become visible now
	s.drainPending()

	if !s.paused.Load() {
		s.routeEvents()
		s.world.Update(dt)
		s.sweep()
	}

	s.publishSnapshot()
	s.world.AdvanceFrame()
	s.tickCount.Add(1)
}

// drainPending moves queued insertions into the live list
func (s *Scheduler) drainPending() {
	for _, e := range s.pending.Drain() {
		s.live = append(s.live, e)
	}
	if dropped := s.pending.TakeDropped(); dropped > 0 {
		s.logger.Warn("spawn queue overflow, oldest insertions dropped",
			zap.Uint64("dropped", dropped))
	}
}

// routeEvents dispatches pending events to registered handler systems
func (s *Scheduler) routeEvents() {
	for _, ev := range s.world.Events().Consume() {
		for _, h := range s.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
		if p, ok := ev.Payload.(*event.DiedPayload); ok {
			event.ReleaseDied(p)
		}
	}
}

// sweep physically removes entities whose active flag is false, in a
// single compacting pass over the live list
func (s *Scheduler) sweep() {
	var dead []core.Entity
	writeIdx := 0
	for _, e := range s.live {
		if s.world.IsActive(e) {
			s.live[writeIdx] = e
			writeIdx++
		} else {
			dead = append(dead, e)
		}
	}
	s.live = s.live[:writeIdx]
	s.world.DestroyBatch(dead)
}

// publishSnapshot swaps in a freshly allocated copy of the live list
// so readers always observe a complete, never-partially-mutated list
func (s *Scheduler) publishSnapshot() {
	snap := make([]core.Entity, len(s.live))
	copy(snap, s.live)
	s.snapshot.Store(&snap)
}

// executeClear resets world and scheduler state in one place
func (s *Scheduler) executeClear() {
	s.pending.Drain()
	s.world.Events().Consume()
	s.live = s.live[:0]
	s.world.Clear()
	s.logger.Info("world cleared")
}
