package component

import "github.com/lixenwraith/horde/vmath"

// TransformComponent is the world-space placement of an entity
// PrevPos holds the pre-integration position for blocking-contact revert
type TransformComponent struct {
	Pos      vmath.Vec2
	PrevPos  vmath.Vec2
	Rotation float64
	Scale    float64
}
