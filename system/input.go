package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// InputSystem bridges the input layer into the simulation: any
// goroutine stores the latest movement vector, the simulation reads it
// exactly once per frame and converts it into player velocity
// Intermediate updates between frames are intentionally lost
type InputSystem struct {
	world *engine.World
	move  atomic.Pointer[vmath.Vec2]
}

func NewInputSystem(world *engine.World) *InputSystem {
	s := &InputSystem{world: world}
	s.move.Store(&vmath.Vec2{})
	return s
}

// Name returns the system's name
func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return constant.PriorityInput
}

// SetMovement publishes a movement vector; safe from any goroutine
// Magnitudes above 1 are treated as full deflection
func (s *InputSystem) SetMovement(v vmath.Vec2) {
	s.move.Store(&v)
}

func (s *InputSystem) Update(dt time.Duration) {
	player, ok := s.world.PlayerEntity()
	if !ok {
		return
	}
	vel, ok := s.world.Velocities.Get(player)
	if !ok {
		return
	}
	stats, ok := s.world.Stats.Get(player)
	if !ok {
		return
	}

	move := vmath.ClampMag(*s.move.Load(), 1)
	vel.Vel = vmath.Scale(move, stats.MoveSpeed)
	s.world.Velocities.Set(player, vel)
}
