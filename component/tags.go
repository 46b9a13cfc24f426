package component

import "github.com/lixenwraith/horde/core"

// ZombieType keys the static per-type stat table in content
type ZombieType uint8

const (
	ZombieWalker ZombieType = iota
	ZombieRunner
	ZombieSpitter
	ZombieBomber
	ZombieBrute
	ZombieShaman
	ZombieTypeCount
)

// BossType keys the static boss stat table in content
type BossType uint8

const (
	BossButcher BossType = iota
	BossColossus
	BossTypeCount
)

// PickupKind selects the pickup effect on collection
type PickupKind uint8

const (
	PickupXP PickupKind = iota
	PickupHealth
)

// PlayerTagComponent marks the player entity
type PlayerTagComponent struct{}

// ZombieTagComponent marks an enemy and references its stat table row
type ZombieTagComponent struct {
	Type ZombieType
}

// BossTagComponent marks a boss; Number is the 0-based spawn ordinal
// used for HP scaling
type BossTagComponent struct {
	Type   BossType
	Number int
}

// PickupTagComponent marks a collectible; Value is XP or HP restored
type PickupTagComponent struct {
	Kind  PickupKind
	Value int
}

// ObstacleTagComponent marks a static blocking body
type ObstacleTagComponent struct{}

// TurretTagComponent marks a placed turret; Owner is a lookup key back
// to the placing player, not ownership
type TurretTagComponent struct {
	Owner core.Entity
}
