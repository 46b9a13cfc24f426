package system

import (
	"time"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/engine"
)

// ParticleSystem ages visual effect entities and expires them by
// lifetime; particles never collide and never deal damage
type ParticleSystem struct {
	world *engine.World
}

func NewParticleSystem(world *engine.World) engine.System {
	return &ParticleSystem{world: world}
}

// Name returns the system's name
func (s *ParticleSystem) Name() string {
	return "particle"
}

func (s *ParticleSystem) Priority() int {
	return constant.PriorityParticle
}

func (s *ParticleSystem) Update(dt time.Duration) {
	sec := dt.Seconds()

	for _, e := range s.world.Particles.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		p, _ := s.world.Particles.Get(e)

		p.Life += dt
		if p.Life >= p.MaxLife {
			s.world.Deactivate(e)
			continue
		}

		p.Fade -= p.FadeRate * sec
		if p.Fade < 0 {
			p.Fade = 0
		}
		if tr, ok := s.world.Transforms.Get(e); ok {
			tr.Scale += p.GrowthRate * sec
			s.world.Transforms.Set(e, tr)
		}
		s.world.Particles.Set(e, p)
	}
}
