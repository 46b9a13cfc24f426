package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

const tick = 16 * time.Millisecond

func TestChaseMovesTowardPlayer(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{}, 100)
	enemy := testEnemy(w, vmath.Vec2{X: 10}, component.BehaviorChase, 0, 10, 8, 20)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	vel, _ := w.Velocities.Get(enemy)
	assert.InDelta(t, -10.0, vel.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, vel.Vel.Y, 1e-9)
}

func TestFleeMovesAwayFromPlayer(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{}, 100)
	enemy := testEnemy(w, vmath.Vec2{X: 10}, component.BehaviorFlee, 0, 10, 0, 20)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	vel, _ := w.Velocities.Get(enemy)
	assert.InDelta(t, 10.0, vel.Vel.X, 1e-9)
}

func TestIdleStaysStill(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{}, 100)
	enemy := testEnemy(w, vmath.Vec2{X: 10}, component.BehaviorIdle, 0, 10, 0, 20)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	vel, _ := w.Velocities.Get(enemy)
	assert.Equal(t, vmath.Vec2{}, vel.Vel)
}

func TestNoPlayerStopsEveryone(t *testing.T) {
	w := engine.NewWorld()
	enemy := testEnemy(w, vmath.Vec2{X: 10}, component.BehaviorChase, 0, 10, 8, 20)
	w.Velocities.Set(enemy, component.VelocityComponent{Vel: vmath.Vec2{X: 5}})

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	vel, _ := w.Velocities.Get(enemy)
	assert.Equal(t, vmath.Vec2{}, vel.Vel)
}

func TestRangedFiresOnceThenHolds(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{}, 100)
	enemy := testEnemy(w, vmath.Vec2{X: 100}, component.BehaviorRanged, 260, 55, 7, 16)

	rec := &specRecorder{}
	ai := NewAISystem(w, rec.hook())

	ai.Update(tick)
	require.Len(t, rec.specs, 1)
	assert.True(t, rec.specs[0].Hostile)
	assert.InDelta(t, 7.0, rec.specs[0].Damage, 1e-9)
	// Shot points from the enemy toward the player
	assert.Less(t, rec.specs[0].Dir.X, 0.0)

	// Inside range the enemy holds position
	vel, _ := w.Velocities.Get(enemy)
	assert.Equal(t, vmath.Vec2{}, vel.Vel)

	// Cooldown blocks a second shot
	ai.Update(tick)
	assert.Len(t, rec.specs, 1)

	aiComp, _ := w.AIs.Get(enemy)
	assert.Greater(t, aiComp.AttackCooldown, time.Duration(0))
}

func TestRangedAdvancesWhenOutOfRange(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{}, 100)
	enemy := testEnemy(w, vmath.Vec2{X: 400}, component.BehaviorRanged, 260, 55, 7, 16)

	rec := &specRecorder{}
	ai := NewAISystem(w, rec.hook())
	ai.Update(tick)

	assert.Empty(t, rec.specs)
	vel, _ := w.Velocities.Get(enemy)
	assert.InDelta(t, -55.0, vel.Vel.X, 1e-9)
}

func TestExplodeDetonatesExactlyOnce(t *testing.T) {
	w := engine.NewWorld()
	player := testPlayer(w, vmath.Vec2{}, 100)
	bomber := testEnemy(w, vmath.Vec2{X: 50}, component.BehaviorExplode, 70, 75, 18, 14)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	hp, _ := w.Healths.Get(player)
	assert.Equal(t, 82, hp.Current, "explosion damage applied once")
	assert.False(t, w.IsActive(bomber), "bomber dies in its own blast")

	// A second frame must not detonate again
	ai.Update(tick)
	hp, _ = w.Healths.Get(player)
	assert.Equal(t, 82, hp.Current)
}

func TestExplosionSparesOutOfRadius(t *testing.T) {
	w := engine.NewWorld()
	player := testPlayer(w, vmath.Vec2{}, 100)
	// In trigger range of the bomber's own sensor but outside the blast
	bomber := testEnemy(w, vmath.Vec2{X: 60}, component.BehaviorExplode, 70, 75, 18, 14)
	bystander := testEnemy(w, vmath.Vec2{X: 300}, component.BehaviorChase, 0, 60, 8, 20)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	require.False(t, w.IsActive(bomber))
	hp, _ := w.Healths.Get(player)
	assert.Less(t, hp.Current, 100, "player inside blast radius")
	bhp, _ := w.Healths.Get(bystander)
	assert.Equal(t, 20, bhp.Current, "distant enemy untouched")
}

func TestChargeLocksTargetPosition(t *testing.T) {
	w := engine.NewWorld()
	player := testPlayer(w, vmath.Vec2{}, 100)
	brute := testEnemy(w, vmath.Vec2{X: 100}, component.BehaviorCharge, 220, 45, 14, 45)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	aiComp, _ := w.AIs.Get(brute)
	require.True(t, aiComp.Charging)
	assert.Equal(t, vmath.Vec2{}, aiComp.ChargeTarget, "target locked at charge start")

	vel, _ := w.Velocities.Get(brute)
	assert.InDelta(t, -45*constant.ChargeSpeedMult, vel.Vel.X, 1e-9)

	// Moving the player mid-charge does not bend the charge
	tr, _ := w.Transforms.Get(player)
	tr.Pos = vmath.Vec2{Y: 500}
	w.Transforms.Set(player, tr)

	ai.Update(tick)
	vel, _ = w.Velocities.Get(brute)
	assert.InDelta(t, 0.0, vel.Vel.Y, 1e-9, "charge still aims at the locked point")

	// Timer expiry ends the burst and opens the cooldown
	ai.Update(constant.ChargeDuration)
	aiComp, _ = w.AIs.Get(brute)
	assert.False(t, aiComp.Charging)
	assert.Equal(t, constant.ChargeCooldown, aiComp.ChargeCooldown)
	vel, _ = w.Velocities.Get(brute)
	assert.Equal(t, vmath.Vec2{}, vel.Vel)
}

func TestBuffSnapshotAndExactRestore(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{X: 300}, 100)
	shaman := testEnemy(w, vmath.Vec2{}, component.BehaviorBuff, 200, 50, 5, 25)
	walker := testEnemy(w, vmath.Vec2{X: 50}, component.BehaviorChase, 0, 60, 8, 20)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	stats, _ := w.Stats.Get(walker)
	assert.InDelta(t, 60*constant.BuffSpeedMult, stats.MoveSpeed, 1e-9)
	assert.InDelta(t, constant.BuffDamageMult, stats.DamageMult, 1e-9)

	buff, ok := w.Buffs.Get(walker)
	require.True(t, ok)
	assert.InDelta(t, 60.0, buff.PrevMoveSpeed, 1e-9)
	assert.InDelta(t, 1.0, buff.PrevDamageMult, 1e-9)

	// A rescan while buffed refreshes the timer without compounding
	aiComp, _ := w.AIs.Get(shaman)
	aiComp.BuffScanTimer = 0
	w.AIs.Set(shaman, aiComp)
	ai.Update(tick)

	stats, _ = w.Stats.Get(walker)
	assert.InDelta(t, 60*constant.BuffSpeedMult, stats.MoveSpeed, 1e-9, "no double buff")
	buff, _ = w.Buffs.Get(walker)
	assert.InDelta(t, 60.0, buff.PrevMoveSpeed, 1e-9, "snapshot untouched on refresh")

	// Expiry restores the snapshot verbatim
	buff.Remaining = time.Millisecond
	w.Buffs.Set(walker, buff)
	aiComp, _ = w.AIs.Get(shaman)
	aiComp.BuffScanTimer = time.Hour // keep the shaman quiet
	w.AIs.Set(shaman, aiComp)
	ai.Update(tick)

	stats, _ = w.Stats.Get(walker)
	assert.Equal(t, 60.0, stats.MoveSpeed)
	assert.Equal(t, 1.0, stats.DamageMult)
	assert.False(t, w.Buffs.Has(walker))
}

func TestBuffSkipsOtherShamans(t *testing.T) {
	w := engine.NewWorld()
	testPlayer(w, vmath.Vec2{X: 300}, 100)
	testEnemy(w, vmath.Vec2{}, component.BehaviorBuff, 200, 50, 5, 25)
	other := testEnemy(w, vmath.Vec2{X: 40}, component.BehaviorBuff, 200, 50, 5, 25)

	ai := NewAISystem(w, nil)
	ai.Update(tick)

	assert.False(t, w.Buffs.Has(other), "shamans never buff each other")
}
