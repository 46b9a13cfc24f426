package component

import (
	"time"

	"github.com/lixenwraith/horde/vmath"
)

// Behavior tags the single behavior an AI entity is assigned at spawn
// Behaviors do not transition between each other during normal play;
// each cycles through its own sub-states over time
type Behavior uint8

const (
	BehaviorIdle Behavior = iota
	BehaviorChase
	BehaviorRanged
	BehaviorExplode
	BehaviorBuff
	BehaviorCharge
	BehaviorFlee
)

// String returns the behavior name for logging
func (b Behavior) String() string {
	switch b {
	case BehaviorIdle:
		return "idle"
	case BehaviorChase:
		return "chase"
	case BehaviorRanged:
		return "ranged"
	case BehaviorExplode:
		return "explode"
	case BehaviorBuff:
		return "buff"
	case BehaviorCharge:
		return "charge"
	case BehaviorFlee:
		return "flee"
	}
	return "unknown"
}

// AIComponent holds the assigned behavior and its transient sub-state
// Transient fields are meaningful only for the assigned behavior; NewAI
// zeroes them so no stale state survives a behavior assignment
type AIComponent struct {
	Behavior Behavior
	Range    float64

	// Ranged
	AttackCooldown time.Duration

	// Charge
	Charging       bool
	ChargeTimer    time.Duration
	ChargeCooldown time.Duration
	ChargeTarget   vmath.Vec2

	// Buff
	BuffScanTimer time.Duration

	// Explode
	Detonated bool
}

// NewAI assigns a behavior with clean transient state
func NewAI(behavior Behavior, aggroRange float64) AIComponent {
	return AIComponent{Behavior: behavior, Range: aggroRange}
}
