package constant

import "github.com/lixenwraith/horde/core"

// defaultMasks defines which layers each layer tests against when a
// collider carries no explicit mask
var defaultMasks = [core.LayerCount]uint8{
	core.LayerPlayer:     core.LayerEnemy.Bit() | core.LayerPickup.Bit() | core.LayerObstacle.Bit(),
	core.LayerEnemy:      core.LayerPlayer.Bit() | core.LayerProjectile.Bit() | core.LayerObstacle.Bit() | core.LayerTurret.Bit(),
	core.LayerProjectile: core.LayerPlayer.Bit() | core.LayerEnemy.Bit() | core.LayerObstacle.Bit(),
	core.LayerObstacle:   core.LayerPlayer.Bit() | core.LayerEnemy.Bit() | core.LayerProjectile.Bit(),
	core.LayerPickup:     core.LayerPlayer.Bit(),
	core.LayerTurret:     core.LayerEnemy.Bit(),
}

// DefaultMask returns the default collision mask for a layer
func DefaultMask(l core.Layer) uint8 {
	if l >= core.LayerCount {
		return 0
	}
	return defaultMasks[l]
}
