package core

// Entity is a unique identifier for an entity
// IDs are monotonically increasing and never reused within a session
type Entity uint64

// Layer identifies the collision role of an entity
// The set is closed; default masks are derived per layer in constant
type Layer uint8

const (
	LayerPlayer Layer = iota
	LayerEnemy
	LayerProjectile
	LayerObstacle
	LayerPickup
	LayerTurret
	LayerCount
)

// Bit returns the mask bit for the layer
func (l Layer) Bit() uint8 {
	return 1 << l
}

// String returns the layer name for logging
func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerProjectile:
		return "projectile"
	case LayerObstacle:
		return "obstacle"
	case LayerPickup:
		return "pickup"
	case LayerTurret:
		return "turret"
	}
	return "unknown"
}
