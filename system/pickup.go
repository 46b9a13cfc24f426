package system

import (
	"time"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// PickupSystem pulls collectibles toward the player once they enter
// the pickup radius (scaled by the player's pickup-radius modifier)
// Collection itself resolves through the collision pipeline
type PickupSystem struct {
	world *engine.World
}

func NewPickupSystem(world *engine.World) engine.System {
	return &PickupSystem{world: world}
}

// Name returns the system's name
func (s *PickupSystem) Name() string {
	return "pickup"
}

func (s *PickupSystem) Priority() int {
	return constant.PriorityPickup
}

func (s *PickupSystem) Update(dt time.Duration) {
	player, ok := s.world.PlayerEntity()
	if !ok {
		return
	}
	playerTr, ok := s.world.Transforms.Get(player)
	if !ok {
		return
	}

	radius := constant.PickupBaseRadius
	if stats, ok := s.world.Stats.Get(player); ok {
		radius *= stats.PickupRadiusMult
	}
	radiusSq := radius * radius

	for _, e := range s.world.Pickups.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		tr, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		vel, ok := s.world.Velocities.Get(e)
		if !ok {
			continue
		}

		if vmath.DistSq(tr.Pos, playerTr.Pos) <= radiusSq {
			dir := vmath.Normalize(vmath.Sub(playerTr.Pos, tr.Pos))
			vel.Vel = vmath.Scale(dir, constant.PickupAttractSpeed)
		} else {
			vel.Vel = vmath.Vec2{}
		}
		s.world.Velocities.Set(e, vel)
	}
}
