package system

import (
	"time"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/vmath"
)

// CollisionEvent is emitted once per colliding pair per frame, in the
// order pairs are discovered
type CollisionEvent struct {
	A, B           core.Entity
	LayerA, LayerB core.Layer
}

// CollisionListener receives events synchronously within the frame
// the collision is detected; no deferred queue across frames
type CollisionListener func(ev CollisionEvent)

// CollisionSystem runs broad phase (hash grid rebuilt every frame) and
// narrow phase (circle/AABB tests), then dispatches events
// It performs no physics resolution beyond stop-on-contact against
// blocking obstacles
type CollisionSystem struct {
	world     *engine.World
	grid      *engine.SpatialGrid
	listeners []CollisionListener
	seen      map[[2]core.Entity]struct{}
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{
		world: world,
		grid:  engine.NewSpatialGrid(constant.GridCellSize),
		seen:  make(map[[2]core.Entity]struct{}, 128),
	}
}

// Name returns the system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return constant.PriorityCollision
}

// AddListener registers a collision consumer; simulation goroutine or
// pre-start wiring only
func (s *CollisionSystem) AddListener(listener CollisionListener) {
	s.listeners = append(s.listeners, listener)
}

// Grid exposes the broad-phase index for proximity queries
func (s *CollisionSystem) Grid() *engine.SpatialGrid {
	return s.grid
}

func (s *CollisionSystem) Update(dt time.Duration) {
	// Rebuild rather than incrementally update: avoids stale-cell bugs
	// when entities cross cell boundaries
	s.grid.Clear()
	for _, e := range s.world.Colliders.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		tr, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		collider, _ := s.world.Colliders.Get(e)
		s.grid.Insert(e, collider.Shape, tr.Pos)
	}

	clear(s.seen)
	s.grid.ForEachCell(func(entities []core.Entity) {
		for i := 0; i < len(entities); i++ {
			for j := i + 1; j < len(entities); j++ {
				s.testPair(entities[i], entities[j])
			}
		}
	})
}

// testPair runs masks, narrow phase, blocking revert, and dispatch
// Each unordered pair is tested at most once per frame regardless of
// how many cells it shares
func (s *CollisionSystem) testPair(a, b core.Entity) {
	key := [2]core.Entity{a, b}
	if b < a {
		key = [2]core.Entity{b, a}
	}
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}

	ca, ok := s.world.Colliders.Get(a)
	if !ok {
		return
	}
	cb, ok := s.world.Colliders.Get(b)
	if !ok {
		return
	}

	maskA := ca.Mask
	if maskA == 0 {
		maskA = constant.DefaultMask(ca.Layer)
	}
	maskB := cb.Mask
	if maskB == 0 {
		maskB = constant.DefaultMask(cb.Layer)
	}
	if maskA&cb.Layer.Bit() == 0 && maskB&ca.Layer.Bit() == 0 {
		return
	}

	ta, ok := s.world.Transforms.Get(a)
	if !ok {
		return
	}
	tb, ok := s.world.Transforms.Get(b)
	if !ok {
		return
	}

	if !physics.Overlap(ca.Shape, ta.Pos, cb.Shape, tb.Pos) {
		return
	}

	s.resolveBlocking(a, ca, b, cb)

	ev := CollisionEvent{A: a, B: b, LayerA: ca.Layer, LayerB: cb.Layer}
	for _, listener := range s.listeners {
		listener(ev)
	}
}

// resolveBlocking applies stop-on-contact: a non-trigger body hitting
// an obstacle reverts to its pre-integration position
func (s *CollisionSystem) resolveBlocking(a core.Entity, ca component.ColliderComponent, b core.Entity, cb component.ColliderComponent) {
	if ca.Trigger || cb.Trigger {
		return
	}

	var mover core.Entity
	switch {
	case ca.Layer == core.LayerObstacle && cb.Layer != core.LayerObstacle:
		mover = b
	case cb.Layer == core.LayerObstacle && ca.Layer != core.LayerObstacle:
		mover = a
	default:
		return
	}

	if tr, ok := s.world.Transforms.Get(mover); ok {
		tr.Pos = tr.PrevPos
		s.world.Transforms.Set(mover, tr)
	}
	if vel, ok := s.world.Velocities.Get(mover); ok {
		vel.Vel = vmath.Vec2{}
		s.world.Velocities.Set(mover, vel)
	}
}
