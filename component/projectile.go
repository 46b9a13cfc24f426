package component

import (
	"time"

	"github.com/lixenwraith/horde/core"
)

// ProjectileComponent tracks projectile travel and decay
// Expiry: Traveled >= MaxDistance, or Life >= MaxLife when MaxLife > 0
// (stationary sweep hitboxes), or contact per the damage listeners.
// Penetrating projectiles pass through enemies and record each hit in
// HitSet so an overlap spanning frames damages a target only once
type ProjectileComponent struct {
	Damage      float64
	Class       DamageClass
	Traveled    float64
	MaxDistance float64
	Life        time.Duration
	MaxLife     time.Duration
	Penetrating bool
	Hostile     bool
	GrowthRate  float64
	FadeRate    float64
	Fade        float64
	Owner       core.Entity
	HitSet      map[core.Entity]struct{}
}
