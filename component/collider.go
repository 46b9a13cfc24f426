package component

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/physics"
)

// ColliderComponent attaches a broad/narrow-phase shape to an entity
// Mask zero means "use the default mask for Layer" from constant
type ColliderComponent struct {
	Shape   physics.Shape
	Layer   core.Layer
	Trigger bool
	Mask    uint8
}
