package constant

// System priorities, ascending run order within a tick
// Spawner runs first so budget spawns enter before AI targets them;
// collision runs after movement so events reflect post-integration
// positions; damage ticks (regen, invincibility) run last
const (
	PrioritySpawner    = 10
	PriorityInput      = 15
	PriorityAI         = 20
	PriorityAutoAim    = 30
	PriorityWeapon     = 40
	PriorityPickup     = 45
	PriorityProjectile = 50
	PriorityParticle   = 55
	PriorityMovement   = 60
	PriorityCollision  = 70
	PriorityDamage     = 80
)
