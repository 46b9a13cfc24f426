package system

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// WeaponSystem gates firing on cooldown timers
// A weapon is ready when its cooldown <= 0; firing resets the timer to
// 1/(fireRate*fireRateMult) seconds. Shotgun/flame kinds spawn arc
// spreads through the same gate instead of single projectiles
type WeaponSystem struct {
	world *engine.World
	rng   *rand.Rand
	spawn SpawnHook
}

// NewWeaponSystem creates the weapon system; rng drives spread jitter
// and comes from the session so a run ID reproduces the sequence
func NewWeaponSystem(world *engine.World, rng *rand.Rand, spawn SpawnHook) engine.System {
	return &WeaponSystem{world: world, rng: rng, spawn: spawn}
}

// Name returns the system's name
func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return constant.PriorityWeapon
}

func (s *WeaponSystem) Update(dt time.Duration) {
	for _, e := range s.world.Weapons.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		weapon, _ := s.world.Weapons.Get(e)

		weapon.Cooldown -= dt
		if weapon.Cooldown > 0 || !weapon.HasTarget {
			s.world.Weapons.Set(e, weapon)
			continue
		}

		tr, ok := s.world.Transforms.Get(e)
		if !ok {
			s.world.Weapons.Set(e, weapon)
			continue
		}

		fireRateMult := 1.0
		damageMult := 1.0
		if stats, ok := s.world.Stats.Get(e); ok {
			fireRateMult = stats.FireRateMult
			damageMult = stats.DamageMult
		}

		s.fire(weapon, tr.Pos, damageMult)
		weapon.Cooldown = time.Duration(float64(time.Second) / (weapon.FireRate * fireRateMult))
		s.world.Weapons.Set(e, weapon)
	}
}

// fire spawns the weapon's projectile pattern along its facing
func (s *WeaponSystem) fire(weapon component.WeaponComponent, pos vmath.Vec2, damageMult float64) {
	if s.spawn == nil {
		return
	}
	stats := content.WeaponStatsFor(weapon.Kind)

	pellets := stats.Pellets
	if pellets < 1 {
		pellets = 1
	}

	for i := 0; i < pellets; i++ {
		dir := weapon.Facing
		if pellets > 1 {
			// Even arc across the spread with per-pellet jitter
			offset := stats.Spread * (float64(i)/float64(pellets-1) - 0.5)
			jitter := (s.rng.Float64() - 0.5) * stats.Spread * 0.2
			dir = vmath.Rotate(dir, offset+jitter)
		}

		spec := content.ProjectileSpecs.Acquire()
		spec.Pos = pos
		spec.Dir = dir
		spec.Speed = stats.ProjectileSpeed
		spec.Damage = weapon.Damage * damageMult
		spec.Class = component.DamageProjectile
		spec.MaxDistance = stats.MaxDistance
		spec.MaxLife = stats.MaxLife
		spec.Penetrating = stats.Penetrating
		spec.GrowthRate = stats.GrowthRate
		spec.FadeRate = stats.FadeRate
		spec.Owner = weapon.Owner
		s.spawn(spec)
	}
}
