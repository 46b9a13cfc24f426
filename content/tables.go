package content

import (
	"time"

	"github.com/lixenwraith/horde/component"
)

// ZombieStats is a static per-type stat row; behavior is assigned once
// at spawn and never changes for the entity's lifetime
type ZombieStats struct {
	Name      string
	HP        int
	MoveSpeed float64
	Damage    float64
	Behavior  component.Behavior
	Range     float64
	Radius    float64
	XP        int
}

var zombieTable = [component.ZombieTypeCount]ZombieStats{
	component.ZombieWalker: {
		Name: "walker", HP: 20, MoveSpeed: 60, Damage: 8,
		Behavior: component.BehaviorChase, Radius: 12, XP: 1,
	},
	component.ZombieRunner: {
		Name: "runner", HP: 12, MoveSpeed: 110, Damage: 6,
		Behavior: component.BehaviorChase, Radius: 10, XP: 1,
	},
	component.ZombieSpitter: {
		Name: "spitter", HP: 16, MoveSpeed: 55, Damage: 7,
		Behavior: component.BehaviorRanged, Range: 260, Radius: 12, XP: 2,
	},
	component.ZombieBomber: {
		Name: "bomber", HP: 14, MoveSpeed: 75, Damage: 18,
		Behavior: component.BehaviorExplode, Range: 70, Radius: 11, XP: 2,
	},
	component.ZombieBrute: {
		Name: "brute", HP: 45, MoveSpeed: 45, Damage: 14,
		Behavior: component.BehaviorCharge, Range: 220, Radius: 18, XP: 3,
	},
	component.ZombieShaman: {
		Name: "shaman", HP: 25, MoveSpeed: 50, Damage: 5,
		Behavior: component.BehaviorBuff, Range: 200, Radius: 13, XP: 3,
	},
}

// ZombieStatsFor returns the stat row for a zombie type
func ZombieStatsFor(t component.ZombieType) ZombieStats {
	if t >= component.ZombieTypeCount {
		return zombieTable[component.ZombieWalker]
	}
	return zombieTable[t]
}

// BossStats is a static per-type boss row; BaseHP scales with the boss
// ordinal: hp = BaseHP * (1 + 0.5*number)
type BossStats struct {
	Name      string
	BaseHP    int
	MoveSpeed float64
	Damage    float64
	Behavior  component.Behavior
	Range     float64
	Radius    float64
	XP        int
}

var bossTable = [component.BossTypeCount]BossStats{
	component.BossButcher: {
		Name: "butcher", BaseHP: 400, MoveSpeed: 70, Damage: 25,
		Behavior: component.BehaviorCharge, Range: 260, Radius: 28, XP: 25,
	},
	component.BossColossus: {
		Name: "colossus", BaseHP: 650, MoveSpeed: 40, Damage: 35,
		Behavior: component.BehaviorChase, Radius: 36, XP: 40,
	},
}

// BossStatsFor returns the stat row for a boss type
func BossStatsFor(t component.BossType) BossStats {
	if t >= component.BossTypeCount {
		return bossTable[component.BossButcher]
	}
	return bossTable[t]
}

// WeaponStats describes a firing pattern; Pellets > 1 spawns an arc
// spread, MaxLife > 0 marks short-lived sweep projectiles (flame cone)
type WeaponStats struct {
	Name            string
	Kind            component.WeaponKind
	Damage          float64
	FireRate        float64
	ProjectileSpeed float64
	MaxDistance     float64
	Penetrating     bool
	Pellets         int
	Spread          float64
	MaxLife         time.Duration
	GrowthRate      float64
	FadeRate        float64
}

var weaponTable = map[component.WeaponKind]WeaponStats{
	component.WeaponPistol: {
		Name: "pistol", Kind: component.WeaponPistol,
		Damage: 10, FireRate: 2.0, ProjectileSpeed: 420, MaxDistance: 500,
		Pellets: 1,
	},
	component.WeaponShotgun: {
		Name: "shotgun", Kind: component.WeaponShotgun,
		Damage: 6, FireRate: 1.1, ProjectileSpeed: 380, MaxDistance: 260,
		Pellets: 5, Spread: 0.5,
	},
	component.WeaponFlame: {
		Name: "flame", Kind: component.WeaponFlame,
		Damage: 4, FireRate: 6.0, ProjectileSpeed: 180, MaxDistance: 180,
		Penetrating: true, Pellets: 3, Spread: 0.35,
		MaxLife: 350 * time.Millisecond, GrowthRate: 1.5, FadeRate: 2.5,
	},
}

// WeaponStatsFor returns the stat row for a weapon kind
func WeaponStatsFor(k component.WeaponKind) WeaponStats {
	if stats, ok := weaponTable[k]; ok {
		return stats
	}
	return weaponTable[component.WeaponPistol]
}
