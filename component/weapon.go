package component

import (
	"time"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// WeaponKind selects the firing pattern
type WeaponKind uint8

const (
	WeaponPistol WeaponKind = iota
	WeaponShotgun
	WeaponFlame
)

// WeaponComponent gates firing on a cooldown timer
// A weapon is ready when Cooldown <= 0; firing resets it to
// 1/(FireRate*FireRateMult) seconds. Facing persists when no target
// qualifies so the aim never snaps to a default direction
type WeaponComponent struct {
	Kind      WeaponKind
	Damage    float64
	FireRate  float64
	Cooldown  time.Duration
	Facing    vmath.Vec2
	HasTarget bool
	Owner     core.Entity
}
