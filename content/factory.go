package content

import (
	"time"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/vmath"
)

// Factories assemble fixed component bundles at construction
// The returned entity is not yet live; callers enqueue it through the
// scheduler so it joins the world at the next frame boundary

// ProjectileSpec is the pooled spawn request payload for projectiles
// Projectiles churn every frame, so the spec struct recycles through
// an object pool instead of allocating per shot
type ProjectileSpec struct {
	Pos         vmath.Vec2
	Dir         vmath.Vec2
	Speed       float64
	Damage      float64
	Class       component.DamageClass
	MaxDistance float64
	MaxLife     time.Duration
	Penetrating bool
	Hostile     bool
	GrowthRate  float64
	FadeRate    float64
	Owner       core.Entity
}

// ProjectileSpecs recycles spawn requests between weapon/AI systems
// and the factory
var ProjectileSpecs = engine.NewPool(
	func() *ProjectileSpec { return &ProjectileSpec{} },
	func(s *ProjectileSpec) { *s = ProjectileSpec{} },
)

// SpawnPlayer creates the player entity from config
func SpawnPlayer(w *engine.World, cfg *Config, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{})
	w.Healths.Set(e, component.HealthComponent{
		Current:        cfg.Player.HP,
		Max:            cfg.Player.HP,
		InvulnDuration: constant.InvulnDuration,
	})
	w.Stats.Set(e, component.NewStats(cfg.Player.MoveSpeed, 0, cfg.Player.Armor))
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Circle(14),
		Layer: core.LayerPlayer,
	})
	w.Players.Set(e, component.PlayerTagComponent{})

	kind, err := cfg.WeaponKind()
	if err != nil {
		kind = component.WeaponPistol
	}
	stats := WeaponStatsFor(kind)
	w.Weapons.Set(e, component.WeaponComponent{
		Kind:     kind,
		Damage:   stats.Damage,
		FireRate: stats.FireRate,
		Facing:   vmath.Vec2{X: 1},
		Owner:    e,
	})
	return e
}

// SpawnZombie creates an enemy of the given type with wave-scaled HP
func SpawnZombie(w *engine.World, t component.ZombieType, pos vmath.Vec2, hpMult float64) core.Entity {
	stats := ZombieStatsFor(t)
	hp := int(float64(stats.HP) * hpMult)
	if hp < 1 {
		hp = 1
	}

	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{})
	w.Healths.Set(e, component.HealthComponent{
		Current:        hp,
		Max:            hp,
		InvulnDuration: constant.InvulnDuration,
	})
	w.Stats.Set(e, component.NewStats(stats.MoveSpeed, stats.Damage, 0))
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Circle(stats.Radius),
		Layer: core.LayerEnemy,
	})
	w.AIs.Set(e, component.NewAI(stats.Behavior, stats.Range))
	w.Zombies.Set(e, component.ZombieTagComponent{Type: t})
	return e
}

// SpawnBoss creates a boss; HP scales with the spawn ordinal:
// base * (1 + 0.5*number)
func SpawnBoss(w *engine.World, t component.BossType, pos vmath.Vec2, number int) core.Entity {
	stats := BossStatsFor(t)
	hp := int(float64(stats.BaseHP) * (1 + constant.BossHPGrowth*float64(number)))

	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{})
	w.Healths.Set(e, component.HealthComponent{
		Current:        hp,
		Max:            hp,
		InvulnDuration: constant.InvulnDuration,
	})
	w.Stats.Set(e, component.NewStats(stats.MoveSpeed, stats.Damage, 0))
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Circle(stats.Radius),
		Layer: core.LayerEnemy,
	})
	w.AIs.Set(e, component.NewAI(stats.Behavior, stats.Range))
	w.Bosses.Set(e, component.BossTagComponent{Type: t, Number: number})
	return e
}

// SpawnProjectile creates a projectile from a pooled spec and releases
// the spec back to the pool
func SpawnProjectile(w *engine.World, spec *ProjectileSpec) core.Entity {
	dir := vmath.Normalize(spec.Dir)

	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{
		Pos:      spec.Pos,
		PrevPos:  spec.Pos,
		Rotation: vmath.Angle(dir),
		Scale:    1,
	})
	w.Velocities.Set(e, component.VelocityComponent{Vel: vmath.Scale(dir, spec.Speed)})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:   physics.Circle(4),
		Layer:   core.LayerProjectile,
		Trigger: true,
	})
	w.Projectiles.Set(e, component.ProjectileComponent{
		Damage:      spec.Damage,
		Class:       spec.Class,
		MaxDistance: spec.MaxDistance,
		MaxLife:     spec.MaxLife,
		Penetrating: spec.Penetrating,
		Hostile:     spec.Hostile,
		GrowthRate:  spec.GrowthRate,
		FadeRate:    spec.FadeRate,
		Fade:        1,
		Owner:       spec.Owner,
	})

	ProjectileSpecs.Release(spec)
	return e
}

// SpawnPickup creates a collectible at a position
func SpawnPickup(w *engine.World, kind component.PickupKind, value int, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:   physics.Circle(constant.PickupColliderSize),
		Layer:   core.LayerPickup,
		Trigger: true,
	})
	w.Pickups.Set(e, component.PickupTagComponent{Kind: kind, Value: value})
	return e
}

// SpawnObstacle creates a static blocking box
func SpawnObstacle(w *engine.World, pos vmath.Vec2, halfW, halfH float64) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Box(halfW, halfH),
		Layer: core.LayerObstacle,
	})
	w.Obstacles.Set(e, component.ObstacleTagComponent{})
	return e
}

// SpawnTurret creates a placed auto-firing turret owned by the player
// Owner is a lookup key, not ownership
func SpawnTurret(w *engine.World, owner core.Entity, pos vmath.Vec2) core.Entity {
	stats := WeaponStatsFor(component.WeaponPistol)

	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Healths.Set(e, component.HealthComponent{
		Current:        40,
		Max:            40,
		InvulnDuration: constant.InvulnDuration,
	})
	w.Stats.Set(e, component.NewStats(0, stats.Damage, 0))
	w.Colliders.Set(e, component.ColliderComponent{
		Shape: physics.Circle(12),
		Layer: core.LayerTurret,
	})
	w.Weapons.Set(e, component.WeaponComponent{
		Kind:     component.WeaponPistol,
		Damage:   stats.Damage,
		FireRate: stats.FireRate,
		Facing:   vmath.Vec2{X: 1},
		Owner:    e,
	})
	w.Turrets.Set(e, component.TurretTagComponent{Owner: owner})
	return e
}

// SpawnParticle creates a short-lived visual effect entity
func SpawnParticle(w *engine.World, pos, vel vmath.Vec2, life time.Duration) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, PrevPos: pos, Scale: 1})
	w.Velocities.Set(e, component.VelocityComponent{Vel: vel})
	w.Particles.Set(e, component.ParticleComponent{
		MaxLife:    life,
		Fade:       1,
		FadeRate:   1 / life.Seconds(),
		GrowthRate: 0.5,
	})
	return e
}
