package system

import (
	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/vmath"
)

// Test fixtures build entities directly on the world so each test
// controls the exact stats it asserts against

func testPlayer(w *engine.World, pos vmath.Vec2, hp int) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{})
	w.Healths.Set(e, component.HealthComponent{
		Current:        hp,
		Max:            hp,
		InvulnDuration: constant.InvulnDuration,
	})
	w.Stats.Set(e, component.NewStats(140, 0, 0))
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Circle(14),
		Layer: core.LayerPlayer,
	})
	w.Players.Set(e, component.PlayerTagComponent{})
	return e
}

func testEnemy(w *engine.World, pos vmath.Vec2, behavior component.Behavior, aggroRange, moveSpeed, damage float64, hp int) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{})
	w.Healths.Set(e, component.HealthComponent{
		Current:        hp,
		Max:            hp,
		InvulnDuration: constant.InvulnDuration,
	})
	w.Stats.Set(e, component.NewStats(moveSpeed, damage, 0))
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Circle(12),
		Layer: core.LayerEnemy,
	})
	w.AIs.Set(e, component.NewAI(behavior, aggroRange))
	w.Zombies.Set(e, component.ZombieTagComponent{Type: component.ZombieWalker})
	return e
}

// specRecorder captures projectile spawn requests and releases the
// pooled specs the way the production hook does
type specRecorder struct {
	specs []struct {
		Dir     vmath.Vec2
		Damage  float64
		Hostile bool
	}
}

func (r *specRecorder) hook() SpawnHook {
	return func(spec *content.ProjectileSpec) {
		r.specs = append(r.specs, struct {
			Dir     vmath.Vec2
			Damage  float64
			Hostile bool
		}{spec.Dir, spec.Damage, spec.Hostile})
		content.ProjectileSpecs.Release(spec)
	}
}
