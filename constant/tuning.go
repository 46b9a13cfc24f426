package constant

import "time"

// Scheduler
const (
	// TickRate is the fixed simulation frequency
	TickRate = 60

	// TickInterval is the frame budget at TickRate
	TickInterval = time.Second / TickRate

	// MaxDeltaTime clamps elapsed time after a stall so one long frame
	// cannot cascade into runaway integration
	MaxDeltaTime = 50 * time.Millisecond

	// SpawnQueueSize is the cross-thread insertion ring capacity
	// Must be a power of two for mask indexing
	SpawnQueueSize = 1024
	SpawnQueueMask = SpawnQueueSize - 1

	// EventQueueSize is the game event ring capacity
	EventQueueSize = 4096
	EventQueueMask = EventQueueSize - 1
)

// Spatial grid
const (
	// GridCellSize keeps mean entities-per-cell in low single digits at
	// the 100-enemy target load
	GridCellSize = 64.0
)

// Combat
const (
	// InvulnDuration is the post-hit immunity window for contact damage
	InvulnDuration = 500 * time.Millisecond

	// AutoAimRange is the maximum targeting distance for player weapons
	AutoAimRange = 400.0

	// MinNetDamage floors mitigated damage; armor can fully absorb a hit
	MinNetDamage = 0
)

// AI
const (
	ChargeSpeedMult         = 3.0
	ChargeDuration          = 600 * time.Millisecond
	ChargeCooldown          = 2500 * time.Millisecond
	RangedAttackGap         = 1800 * time.Millisecond
	ExplosionRadius         = 90.0
	BuffScanInterval        = 5 * time.Second
	BuffDuration            = 4 * time.Second
	BuffSpeedMult           = 1.5
	BuffDamageMult          = 1.5
	BuffStandoff            = 160.0
	EnemyProjectileSpeed    = 220.0
	EnemyProjectileDistance = 600.0
)

// Spawner
const (
	MaxActiveEnemies = 150
	SpawnRingRadius  = 520.0
	BossInterval     = 120 * time.Second
	BossHPGrowth     = 0.5
)

// Pickups
const (
	PickupBaseRadius   = 48.0
	PickupAttractSpeed = 260.0
	PickupColliderSize = 10.0
)
