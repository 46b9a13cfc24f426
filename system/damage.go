package system

import (
	"math"
	"time"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
)

// ApplyDamage resolves a single hit against a target and reports
// whether any damage landed. Net damage is flat armor subtraction
// floored at zero, applied after the attacker's multiplier has already
// been folded into raw. Only contact damage respects and opens the
// invincibility window; projectiles and explosions always connect
func ApplyDamage(w *engine.World, target core.Entity, raw float64, class component.DamageClass) bool {
	hp, ok := w.Healths.Get(target)
	if !ok || !hp.Alive() {
		return false
	}
	if class == component.DamageContact && hp.InvulnRemaining > 0 {
		return false
	}

	armor := 0.0
	if stats, ok := w.Stats.Get(target); ok {
		armor = stats.Armor
	}
	net := raw - armor
	if net < constant.MinNetDamage {
		net = constant.MinNetDamage
	}

	hp.Current -= int(math.Round(net))
	hp.Clamp()
	if class == component.DamageContact {
		hp.InvulnRemaining = hp.InvulnDuration
		hp.InvulnClass = class
	}
	w.Healths.Set(target, hp)

	if !hp.Alive() {
		Kill(w, target)
	}
	return true
}

// Kill signals an entity's death exactly once. The payload copies
// position and reward data out of the stores because the sweep strips
// the entity's components before handlers run on the next tick
func Kill(w *engine.World, e core.Entity) {
	if !w.Deactivate(e) {
		return
	}

	p := event.AcquireDied()
	p.Entity = e
	if collider, ok := w.Colliders.Get(e); ok {
		p.Layer = collider.Layer
	}
	if tr, ok := w.Transforms.Get(e); ok {
		p.Pos = tr.Pos
	}
	if boss, ok := w.Bosses.Get(e); ok {
		p.IsBoss = true
		p.XP = content.BossStatsFor(boss.Type).XP
	} else if zombie, ok := w.Zombies.Get(e); ok {
		p.Zombie = zombie.Type
		p.XP = content.ZombieStatsFor(zombie.Type).XP
	}
	w.PushEvent(event.EventEntityDied, p)

	if _, ok := w.Players.Get(e); ok {
		w.PushEvent(event.EventPlayerDied, nil)
	}
}

// DamageSystem owns per-frame health bookkeeping (invincibility
// countdown, regeneration) and resolves collision events into damage,
// projectile termination, and pickup collection
type DamageSystem struct {
	world   *engine.World
	session *engine.Session
}

// NewDamageSystem creates the damage system and registers its
// listeners on the collision system; session may be nil in tests
func NewDamageSystem(world *engine.World, session *engine.Session, collision *CollisionSystem) engine.System {
	s := &DamageSystem{world: world, session: session}
	collision.AddListener(s.onContact)
	collision.AddListener(s.onProjectile)
	collision.AddListener(s.onPickup)
	return s
}

// Name returns the system's name
func (s *DamageSystem) Name() string {
	return "damage"
}

func (s *DamageSystem) Priority() int {
	return constant.PriorityDamage
}

func (s *DamageSystem) Update(dt time.Duration) {
	for _, e := range s.world.Healths.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		hp, _ := s.world.Healths.Get(e)
		changed := false

		if hp.InvulnRemaining > 0 {
			hp.InvulnRemaining -= dt
			if hp.InvulnRemaining < 0 {
				hp.InvulnRemaining = 0
			}
			changed = true
		}

		if stats, ok := s.world.Stats.Get(e); ok && stats.HPRegen > 0 && hp.Alive() && hp.Current < hp.Max {
			hp.RegenCarry += stats.HPRegen * dt.Seconds()
			if hp.RegenCarry >= 1 {
				whole := int(hp.RegenCarry)
				hp.RegenCarry -= float64(whole)
				hp.Current += whole
				hp.Clamp()
			}
			changed = true
		}

		if changed {
			s.world.Healths.Set(e, hp)
		}
	}
}

// onContact resolves body contact: an enemy touching the player or a
// turret deals its melee damage through the invincibility gate
func (s *DamageSystem) onContact(ev CollisionEvent) {
	var enemy, victim core.Entity
	switch {
	case ev.LayerA == core.LayerEnemy && victimLayer(ev.LayerB):
		enemy, victim = ev.A, ev.B
	case ev.LayerB == core.LayerEnemy && victimLayer(ev.LayerA):
		enemy, victim = ev.B, ev.A
	default:
		return
	}
	if !s.world.IsActive(enemy) || !s.world.IsActive(victim) {
		return
	}

	stats, ok := s.world.Stats.Get(enemy)
	if !ok {
		return
	}
	ApplyDamage(s.world, victim, stats.BaseDamage*stats.DamageMult, component.DamageContact)
}

func victimLayer(l core.Layer) bool {
	return l == core.LayerPlayer || l == core.LayerTurret
}

// onProjectile resolves projectile contact: obstacles absorb the shot,
// valid targets take its damage. Hostility gates friendly fire both
// ways. Penetrating projectiles record each target hit so an overlap
// spanning frames damages it only once; others expire on first hit
func (s *DamageSystem) onProjectile(ev CollisionEvent) {
	var proj, other core.Entity
	var otherLayer core.Layer
	switch {
	case ev.LayerA == core.LayerProjectile:
		proj, other, otherLayer = ev.A, ev.B, ev.LayerB
	case ev.LayerB == core.LayerProjectile:
		proj, other, otherLayer = ev.B, ev.A, ev.LayerA
	default:
		return
	}
	if !s.world.IsActive(proj) {
		return
	}

	pc, ok := s.world.Projectiles.Get(proj)
	if !ok {
		return
	}

	if otherLayer == core.LayerObstacle {
		s.world.Deactivate(proj)
		return
	}

	hostileTarget := pc.Hostile && victimLayer(otherLayer)
	friendlyTarget := !pc.Hostile && otherLayer == core.LayerEnemy
	if !hostileTarget && !friendlyTarget {
		return
	}
	if !s.world.IsActive(other) {
		return
	}

	if pc.Penetrating {
		if pc.HitSet == nil {
			pc.HitSet = make(map[core.Entity]struct{}, 4)
		}
		if _, hit := pc.HitSet[other]; hit {
			return
		}
		pc.HitSet[other] = struct{}{}
		s.world.Projectiles.Set(proj, pc)
		ApplyDamage(s.world, other, pc.Damage, pc.Class)
		return
	}

	ApplyDamage(s.world, other, pc.Damage, pc.Class)
	s.world.Deactivate(proj)
}

// onPickup resolves the player touching a collectible: XP credits the
// session counter through the player's multiplier, health heals with
// clamping. The pickup despawns either way
func (s *DamageSystem) onPickup(ev CollisionEvent) {
	var pickup, player core.Entity
	switch {
	case ev.LayerA == core.LayerPickup && ev.LayerB == core.LayerPlayer:
		pickup, player = ev.A, ev.B
	case ev.LayerB == core.LayerPickup && ev.LayerA == core.LayerPlayer:
		pickup, player = ev.B, ev.A
	default:
		return
	}
	if !s.world.IsActive(pickup) || !s.world.IsActive(player) {
		return
	}

	tag, ok := s.world.Pickups.Get(pickup)
	if !ok {
		return
	}

	switch tag.Kind {
	case component.PickupXP:
		value := tag.Value
		if stats, ok := s.world.Stats.Get(player); ok {
			value = int(math.Round(float64(tag.Value) * stats.XPMult))
		}
		if s.session != nil {
			s.session.XPCollected.Add(int64(value))
		}
		s.world.PushEvent(event.EventPickupCollected, event.PickupCollectedPayload{
			Entity: pickup,
			Kind:   tag.Kind,
			Value:  value,
		})

	case component.PickupHealth:
		if hp, ok := s.world.Healths.Get(player); ok {
			hp.Current += tag.Value
			hp.Clamp()
			s.world.Healths.Set(player, hp)
		}
		s.world.PushEvent(event.EventPickupCollected, event.PickupCollectedPayload{
			Entity: pickup,
			Kind:   tag.Kind,
			Value:  tag.Value,
		})
	}

	s.world.Deactivate(pickup)
}
