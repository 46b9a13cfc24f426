package system

import (
	"time"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// AutoAimSystem orients every weapon toward its strictly-nearest
// enemy in range, ties broken by first-encountered. With no qualifying
// target the last known facing is retained, never snapped to a default
type AutoAimSystem struct {
	world *engine.World
}

func NewAutoAimSystem(world *engine.World) engine.System {
	return &AutoAimSystem{world: world}
}

// Name returns the system's name
func (s *AutoAimSystem) Name() string {
	return "autoaim"
}

func (s *AutoAimSystem) Priority() int {
	return constant.PriorityAutoAim
}

func (s *AutoAimSystem) Update(dt time.Duration) {
	for _, e := range s.world.Weapons.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		tr, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		weapon, _ := s.world.Weapons.Get(e)

		target, found := s.nearestEnemy(e, tr.Pos)
		weapon.HasTarget = found
		if found {
			targetTr, _ := s.world.Transforms.Get(target)
			weapon.Facing = vmath.Normalize(vmath.Sub(targetTr.Pos, tr.Pos))
		}
		s.world.Weapons.Set(e, weapon)
	}
}

// nearestEnemy scans active entities carrying Health on the enemy
// layer within the maximum range, selecting by squared distance
func (s *AutoAimSystem) nearestEnemy(self core.Entity, pos vmath.Vec2) (core.Entity, bool) {
	maxSq := constant.AutoAimRange * constant.AutoAimRange

	var best core.Entity
	bestSq := maxSq
	found := false

	for _, candidate := range s.world.Healths.Entities() {
		if candidate == self || !s.world.IsActive(candidate) {
			continue
		}
		collider, ok := s.world.Colliders.Get(candidate)
		if !ok || collider.Layer != core.LayerEnemy {
			continue
		}
		tr, ok := s.world.Transforms.Get(candidate)
		if !ok {
			continue
		}
		dSq := vmath.DistSq(pos, tr.Pos)
		// Strictly nearest; first-encountered wins ties
		if dSq <= maxSq && (!found || dSq < bestSq) {
			best = candidate
			bestSq = dSq
			found = true
		}
	}
	return best, found
}
