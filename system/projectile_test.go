package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

func TestProjectileExpiresByDistance(t *testing.T) {
	w := engine.NewWorld()

	spec := content.ProjectileSpecs.Acquire()
	spec.Dir = vmath.Vec2{X: 1}
	spec.Speed = 100
	spec.MaxDistance = 50
	e := content.SpawnProjectile(w, spec)

	ps := NewProjectileSystem(w)

	ps.Update(250 * time.Millisecond) // 25 units
	assert.True(t, w.IsActive(e))

	ps.Update(300 * time.Millisecond) // 55 units total
	assert.False(t, w.IsActive(e), "expired past max distance")
}

func TestProjectileExpiresByLifetime(t *testing.T) {
	w := engine.NewWorld()

	spec := content.ProjectileSpecs.Acquire()
	spec.Dir = vmath.Vec2{X: 1}
	spec.Speed = 10
	spec.MaxDistance = 10000
	spec.MaxLife = 100 * time.Millisecond
	e := content.SpawnProjectile(w, spec)

	ps := NewProjectileSystem(w)

	ps.Update(50 * time.Millisecond)
	assert.True(t, w.IsActive(e))

	ps.Update(60 * time.Millisecond)
	assert.False(t, w.IsActive(e), "expired past max lifetime")
}

func TestProjectileGrowthAndFade(t *testing.T) {
	w := engine.NewWorld()

	spec := content.ProjectileSpecs.Acquire()
	spec.Dir = vmath.Vec2{X: 1}
	spec.Speed = 10
	spec.MaxDistance = 10000
	spec.GrowthRate = 2.0
	spec.FadeRate = 1.0
	e := content.SpawnProjectile(w, spec)

	NewProjectileSystem(w).Update(500 * time.Millisecond)

	tr, _ := w.Transforms.Get(e)
	assert.InDelta(t, 2.0, tr.Scale, 1e-9, "scale grows from 1")
	proj, _ := w.Projectiles.Get(e)
	assert.InDelta(t, 0.5, proj.Fade, 1e-9, "fade decays from 1")
}

func TestParticleExpires(t *testing.T) {
	w := engine.NewWorld()
	e := content.SpawnParticle(w, vmath.Vec2{}, vmath.Vec2{X: 10}, 100*time.Millisecond)

	ps := NewParticleSystem(w)
	ps.Update(50 * time.Millisecond)
	assert.True(t, w.IsActive(e))

	ps.Update(60 * time.Millisecond)
	assert.False(t, w.IsActive(e))
}

func TestPickupMagnetism(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{}, 100)

	near := content.SpawnPickup(w, component.PickupXP, 1, vmath.Vec2{X: 30})
	far := content.SpawnPickup(w, component.PickupXP, 1, vmath.Vec2{X: 300})

	NewPickupSystem(w).Update(tick)

	vel, _ := w.Velocities.Get(near)
	require.InDelta(t, -constant.PickupAttractSpeed, vel.Vel.X, 1e-9, "pulled toward the player")

	vel, _ = w.Velocities.Get(far)
	assert.Equal(t, vmath.Vec2{}, vel.Vel, "outside the radius stays put")
}

func TestPickupRadiusScalesWithStats(t *testing.T) {
	w := engine.NewWorld()
	player := testPlayer(w, vmath.Vec2{}, 100)
	stats, _ := w.Stats.Get(player)
	stats.PickupRadiusMult = 4.0
	w.Stats.Set(player, stats)

	e := content.SpawnPickup(w, component.PickupXP, 1, vmath.Vec2{X: 150})

	NewPickupSystem(w).Update(tick)

	vel, _ := w.Velocities.Get(e)
	assert.Less(t, vel.Vel.X, 0.0, "widened radius reaches the pickup")
}
