package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
)

// System is the unit of simulation logic, run in ascending priority
// order once per tick on the simulation goroutine
type System interface {
	Name() string
	Priority() int
	Update(dt time.Duration)
}

// anyStore allows uniform lifecycle operations across typed stores
type anyStore interface {
	Remove(core.Entity)
	RemoveBatch([]core.Entity)
	Clear()
}

// World contains all entities and their components in typed stores
// Component mutation happens only on the simulation goroutine during
// the system-execution phase; stores are internally locked so factory
// writes from other goroutines (pre-insertion) stay safe
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	active       map[core.Entity]bool

	Transforms  *Store[component.TransformComponent]
	Velocities  *Store[component.VelocityComponent]
	Healths     *Store[component.HealthComponent]
	Stats       *Store[component.StatsComponent]
	Colliders   *Store[component.ColliderComponent]
	AIs         *Store[component.AIComponent]
	Buffs       *Store[component.BuffComponent]
	Weapons     *Store[component.WeaponComponent]
	Projectiles *Store[component.ProjectileComponent]
	Particles   *Store[component.ParticleComponent]
	Players     *Store[component.PlayerTagComponent]
	Zombies     *Store[component.ZombieTagComponent]
	Bosses      *Store[component.BossTagComponent]
	Pickups     *Store[component.PickupTagComponent]
	Obstacles   *Store[component.ObstacleTagComponent]
	Turrets     *Store[component.TurretTagComponent]

	allStores []anyStore
	systems   []System

	eventQueue *event.Queue
	frame      atomic.Int64
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		active:       make(map[core.Entity]bool, 256),
		Transforms:   NewStore[component.TransformComponent](),
		Velocities:   NewStore[component.VelocityComponent](),
		Healths:      NewStore[component.HealthComponent](),
		Stats:        NewStore[component.StatsComponent](),
		Colliders:    NewStore[component.ColliderComponent](),
		AIs:          NewStore[component.AIComponent](),
		Buffs:        NewStore[component.BuffComponent](),
		Weapons:      NewStore[component.WeaponComponent](),
		Projectiles:  NewStore[component.ProjectileComponent](),
		Particles:    NewStore[component.ParticleComponent](),
		Players:      NewStore[component.PlayerTagComponent](),
		Zombies:      NewStore[component.ZombieTagComponent](),
		Bosses:       NewStore[component.BossTagComponent](),
		Pickups:      NewStore[component.PickupTagComponent](),
		Obstacles:    NewStore[component.ObstacleTagComponent](),
		Turrets:      NewStore[component.TurretTagComponent](),
		eventQueue:   event.NewQueue(),
	}

	w.allStores = []anyStore{
		w.Transforms, w.Velocities, w.Healths, w.Stats, w.Colliders,
		w.AIs, w.Buffs, w.Weapons, w.Projectiles, w.Particles,
		w.Players, w.Zombies, w.Bosses, w.Pickups, w.Obstacles, w.Turrets,
	}

	return w
}

// CreateEntity reserves a new entity ID, born active
// Safe to call from any goroutine; the entity joins the live list only
// after the scheduler drains it from the spawn queue
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.active[id] = true
	return id
}

// Deactivate soft-deletes an entity: a flag flip safe from any
// goroutine. Physical removal happens in the scheduler's sweep.
// Returns true only for the call that flipped the flag, which gives
// death-signal emitters an exactly-once guarantee
func (w *World) Deactivate(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if alive, ok := w.active[e]; ok && alive {
		w.active[e] = false
		return true
	}
	return false
}

// IsActive reports whether the entity participates in system logic
func (w *World) IsActive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active[e]
}

// DestroyEntity removes the entity from all stores and the active set
// Called by the sweep; not for use mid-pass
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	delete(w.active, e)
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// DestroyBatch removes many entities in one pass per store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	w.mu.Lock()
	for _, e := range entities {
		delete(w.active, e)
	}
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.RemoveBatch(entities)
	}
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.active = make(map[core.Entity]bool, 256)
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system, keeping the list priority-sorted
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially with the frame delta
func (w *World) Update(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(dt)
	}
}

// PushEvent emits a game event; hot path for system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Events exposes the queue for the scheduler's routing phase
func (w *World) Events() *event.Queue {
	return w.eventQueue
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// AdvanceFrame increments the tick index; scheduler only
func (w *World) AdvanceFrame() {
	w.frame.Add(1)
}

// PlayerEntity returns the active player entity if one exists
func (w *World) PlayerEntity() (core.Entity, bool) {
	for _, e := range w.Players.Entities() {
		if w.IsActive(e) {
			return e, true
		}
	}
	return 0, false
}
