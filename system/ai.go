package system

import (
	"time"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// SpawnHook injects side-effect spawns (projectiles) without the AI
// system owning the scheduler
type SpawnHook func(spec *content.ProjectileSpec)

// AISystem drives the per-entity behavior state machine
// Each entity is permanently assigned one behavior at spawn; the
// machine is the set of sub-states a behavior cycles through over time
type AISystem struct {
	world *engine.World
	spawn SpawnHook
}

// NewAISystem creates the AI system; spawn may be nil when no
// projectile side effects are wanted (tests)
func NewAISystem(world *engine.World, spawn SpawnHook) engine.System {
	return &AISystem{world: world, spawn: spawn}
}

// Name returns the system's name
func (s *AISystem) Name() string {
	return "ai"
}

func (s *AISystem) Priority() int {
	return constant.PriorityAI
}

func (s *AISystem) Update(dt time.Duration) {
	s.expireBuffs(dt)

	playerEntity, havePlayer := s.world.PlayerEntity()
	var playerPos vmath.Vec2
	if havePlayer {
		tr, ok := s.world.Transforms.Get(playerEntity)
		if !ok {
			havePlayer = false
		} else {
			playerPos = tr.Pos
		}
	}

	for _, e := range s.world.AIs.Entities() {
		if !s.world.IsActive(e) {
			continue
		}

		// Missing required components: not applicable this frame
		tr, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		vel, ok := s.world.Velocities.Get(e)
		if !ok {
			continue
		}
		stats, ok := s.world.Stats.Get(e)
		if !ok {
			continue
		}
		ai, _ := s.world.AIs.Get(e)

		if !havePlayer {
			vel.Vel = vmath.Vec2{}
			s.world.Velocities.Set(e, vel)
			continue
		}

		toPlayer := vmath.Sub(playerPos, tr.Pos)
		dist := vmath.Mag(toPlayer)

		switch ai.Behavior {
		case component.BehaviorChase:
			vel.Vel = chaseVelocity(toPlayer, stats.MoveSpeed)

		case component.BehaviorRanged:
			// Cooldown ticks every frame regardless of range
			ai.AttackCooldown -= dt
			if dist > ai.Range {
				vel.Vel = chaseVelocity(toPlayer, stats.MoveSpeed)
			} else {
				vel.Vel = vmath.Vec2{}
				if ai.AttackCooldown <= 0 {
					s.fireAt(e, tr.Pos, toPlayer, stats)
					ai.AttackCooldown = constant.RangedAttackGap
				}
			}

		case component.BehaviorExplode:
			if dist > ai.Range {
				vel.Vel = chaseVelocity(toPlayer, stats.MoveSpeed)
			} else if !ai.Detonated {
				ai.Detonated = true
				s.world.AIs.Set(e, ai)
				s.detonate(e, tr.Pos, stats)
				continue
			}

		case component.BehaviorCharge:
			vel.Vel = s.updateCharge(&ai, tr.Pos, toPlayer, dist, stats, dt)

		case component.BehaviorBuff:
			ai.BuffScanTimer -= dt
			if ai.BuffScanTimer <= 0 {
				ai.BuffScanTimer = constant.BuffScanInterval
				s.buffAllies(e, tr.Pos, ai.Range)
			}
			if dist > constant.BuffStandoff {
				vel.Vel = chaseVelocity(toPlayer, stats.MoveSpeed)
			} else {
				vel.Vel = vmath.Vec2{}
			}

		case component.BehaviorFlee:
			vel.Vel = chaseVelocity(vmath.Scale(toPlayer, -1), stats.MoveSpeed)

		case component.BehaviorIdle:
			vel.Vel = vmath.Vec2{}
		}

		s.world.Velocities.Set(e, vel)
		s.world.AIs.Set(e, ai)
	}
}

// chaseVelocity points a full-speed velocity along dir
func chaseVelocity(dir vmath.Vec2, moveSpeed float64) vmath.Vec2 {
	return vmath.Scale(vmath.Normalize(dir), moveSpeed)
}

// updateCharge runs the charge sub-states: approach, telegraph-free
// burst toward the locked target point, cooldown, resume
func (s *AISystem) updateCharge(ai *component.AIComponent, pos, toPlayer vmath.Vec2, dist float64, stats component.StatsComponent, dt time.Duration) vmath.Vec2 {
	if ai.Charging {
		ai.ChargeTimer -= dt
		if ai.ChargeTimer <= 0 {
			ai.Charging = false
			ai.ChargeCooldown = constant.ChargeCooldown
			return vmath.Vec2{}
		}
		toTarget := vmath.Sub(ai.ChargeTarget, pos)
		return chaseVelocity(toTarget, stats.MoveSpeed*constant.ChargeSpeedMult)
	}

	ai.ChargeCooldown -= dt
	if dist <= ai.Range && ai.ChargeCooldown <= 0 {
		// Lock the player's position at charge start
		ai.Charging = true
		ai.ChargeTimer = constant.ChargeDuration
		ai.ChargeTarget = vmath.Add(pos, toPlayer)
		toTarget := vmath.Sub(ai.ChargeTarget, pos)
		return chaseVelocity(toTarget, stats.MoveSpeed*constant.ChargeSpeedMult)
	}
	return chaseVelocity(toPlayer, stats.MoveSpeed)
}

// fireAt spawns a ranged projectile toward the player via the hook
func (s *AISystem) fireAt(owner core.Entity, pos, dir vmath.Vec2, stats component.StatsComponent) {
	if s.spawn == nil {
		return
	}
	spec := content.ProjectileSpecs.Acquire()
	spec.Pos = pos
	spec.Dir = dir
	spec.Speed = constant.EnemyProjectileSpeed
	spec.Damage = stats.BaseDamage * stats.DamageMult
	spec.Class = component.DamageProjectile
	spec.MaxDistance = constant.EnemyProjectileDistance
	spec.Hostile = true
	spec.Owner = owner
	s.spawn(spec)
}

// detonate deals explosion damage to every entity in radius via a
// proximity check, then signals the bomber's own death exactly once
func (s *AISystem) detonate(self core.Entity, pos vmath.Vec2, stats component.StatsComponent) {
	raw := stats.BaseDamage * stats.DamageMult
	radiusSq := constant.ExplosionRadius * constant.ExplosionRadius

	for _, target := range s.world.Healths.Entities() {
		if target == self || !s.world.IsActive(target) {
			continue
		}
		targetTr, ok := s.world.Transforms.Get(target)
		if !ok {
			continue
		}
		if vmath.DistSq(pos, targetTr.Pos) <= radiusSq {
			ApplyDamage(s.world, target, raw, component.DamageExplosion)
		}
	}

	Kill(s.world, self)
}

// buffAllies applies a temporary speed/damage multiplier to non-buff
// AI entities in range. Pre-buff values are snapshotted so expiry
// restores them exactly; an already-buffed ally only has its timer
// refreshed, never a second snapshot taken
func (s *AISystem) buffAllies(self core.Entity, pos vmath.Vec2, buffRange float64) {
	rangeSq := buffRange * buffRange

	for _, ally := range s.world.AIs.Entities() {
		if ally == self || !s.world.IsActive(ally) {
			continue
		}
		allyAI, _ := s.world.AIs.Get(ally)
		if allyAI.Behavior == component.BehaviorBuff {
			continue
		}
		allyTr, ok := s.world.Transforms.Get(ally)
		if !ok || vmath.DistSq(pos, allyTr.Pos) > rangeSq {
			continue
		}
		allyStats, ok := s.world.Stats.Get(ally)
		if !ok {
			continue
		}

		if buff, buffed := s.world.Buffs.Get(ally); buffed {
			buff.Remaining = constant.BuffDuration
			s.world.Buffs.Set(ally, buff)
			continue
		}

		s.world.Buffs.Set(ally, component.BuffComponent{
			Remaining:      constant.BuffDuration,
			PrevMoveSpeed:  allyStats.MoveSpeed,
			PrevDamageMult: allyStats.DamageMult,
		})
		allyStats.MoveSpeed *= constant.BuffSpeedMult
		allyStats.DamageMult *= constant.BuffDamageMult
		s.world.Stats.Set(ally, allyStats)
	}
}

// expireBuffs counts down buffs and restores the snapshotted values
// verbatim when a countdown reaches zero
func (s *AISystem) expireBuffs(dt time.Duration) {
	for _, e := range s.world.Buffs.Entities() {
		buff, _ := s.world.Buffs.Get(e)
		buff.Remaining -= dt
		if buff.Remaining > 0 {
			s.world.Buffs.Set(e, buff)
			continue
		}

		if stats, ok := s.world.Stats.Get(e); ok {
			stats.MoveSpeed = buff.PrevMoveSpeed
			stats.DamageMult = buff.PrevDamageMult
			s.world.Stats.Set(e, stats)
		}
		s.world.Buffs.Remove(e)
	}
}
