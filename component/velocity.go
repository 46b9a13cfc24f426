package component

import "github.com/lixenwraith/horde/vmath"

// VelocityComponent is linear velocity in world units per second
type VelocityComponent struct {
	Vel vmath.Vec2
}
