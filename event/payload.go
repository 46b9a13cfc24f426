package event

import (
	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// DiedPayload reports an entity death, fired exactly once per entity
// Pos and type data are copied in because the sweep removes the
// entity's components before handlers see the event
type DiedPayload struct {
	Entity core.Entity
	Layer  core.Layer
	Pos    vmath.Vec2
	Zombie component.ZombieType
	XP     int
	IsBoss bool
}

// PickupCollectedPayload reports a pickup resolved against the player
type PickupCollectedPayload struct {
	Entity core.Entity
	Kind   component.PickupKind
	Value  int
}

// WaveAdvancedPayload reports a difficulty breakpoint crossing
type WaveAdvancedPayload struct {
	Index  int
	Rate   float64
	HPMult float64
}
