package system

import (
	"time"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// MovementSystem integrates velocity into position
// The pre-integration position is kept so the collision system can
// revert blocking contacts (stop-on-contact, no impulse response)
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{world: world}
}

// Name returns the system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return constant.PriorityMovement
}

func (s *MovementSystem) Update(dt time.Duration) {
	sec := dt.Seconds()

	for _, e := range s.world.Velocities.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		tr, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		vel, _ := s.world.Velocities.Get(e)

		tr.PrevPos = tr.Pos
		tr.Pos = vmath.Add(tr.Pos, vmath.Scale(vel.Vel, sec))
		s.world.Transforms.Set(e, tr)
	}
}
