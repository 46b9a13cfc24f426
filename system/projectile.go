package system

import (
	"time"

	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/vmath"
)

// ProjectileSystem tracks travel distance and lifetime against limits
// and applies visual growth/fade decay. Contact-driven termination is
// handled by the damage listeners; this system only expires by
// distance or time
type ProjectileSystem struct {
	world *engine.World
}

func NewProjectileSystem(world *engine.World) engine.System {
	return &ProjectileSystem{world: world}
}

// Name returns the system's name
func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return constant.PriorityProjectile
}

func (s *ProjectileSystem) Update(dt time.Duration) {
	sec := dt.Seconds()

	for _, e := range s.world.Projectiles.Entities() {
		if !s.world.IsActive(e) {
			continue
		}
		proj, _ := s.world.Projectiles.Get(e)

		if vel, ok := s.world.Velocities.Get(e); ok {
			proj.Traveled += vmath.Mag(vel.Vel) * sec
		}
		proj.Life += dt

		if proj.GrowthRate != 0 || proj.FadeRate != 0 {
			if tr, ok := s.world.Transforms.Get(e); ok {
				tr.Scale += proj.GrowthRate * sec
				s.world.Transforms.Set(e, tr)
			}
			proj.Fade -= proj.FadeRate * sec
			if proj.Fade < 0 {
				proj.Fade = 0
			}
		}

		expired := proj.Traveled >= proj.MaxDistance ||
			(proj.MaxLife > 0 && proj.Life >= proj.MaxLife)
		if expired {
			s.world.Deactivate(e)
			continue
		}
		s.world.Projectiles.Set(e, proj)
	}
}
