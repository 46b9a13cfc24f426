package system

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/constant"
	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/vmath"
)

// maxSpawnBudget caps fractional spawn accrual so a long stall cannot
// dump the whole backlog in one frame
const maxSpawnBudget = 10.0

// SpawnerSystem drives enemy pressure: continuous spawns paced by the
// wave table, fixed-interval bosses, and kill-reward drops
// New entities go through enqueue so they join the world at the next
// frame boundary like every other insertion
type SpawnerSystem struct {
	world   *engine.World
	logger  *zap.Logger
	session *engine.Session
	enqueue func(core.Entity)

	waves        []content.WaveBreakpoint
	maxEnemies   int
	bossInterval time.Duration

	elapsed    time.Duration
	budget     float64
	waveIdx    int
	unlocked   []component.ZombieType
	bossTimer  time.Duration
	bossNumber int
	spawning   bool
}

// NewSpawnerSystem creates the spawner
// enqueue routes fresh entities into the scheduler's insertion queue
func NewSpawnerSystem(world *engine.World, logger *zap.Logger, session *engine.Session, cfg *content.Config, enqueue func(core.Entity)) *SpawnerSystem {
	maxEnemies := constant.MaxActiveEnemies
	bossInterval := constant.BossInterval
	if cfg != nil {
		if cfg.Spawner.MaxEnemies > 0 {
			maxEnemies = cfg.Spawner.MaxEnemies
		}
		if cfg.Spawner.BossInterval > 0 {
			bossInterval = cfg.Spawner.BossInterval
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SpawnerSystem{
		world:        world,
		logger:       logger,
		session:      session,
		enqueue:      enqueue,
		waves:        content.DefaultWaves,
		maxEnemies:   maxEnemies,
		bossInterval: bossInterval,
		waveIdx:      -1,
		spawning:     true,
	}
	return s
}

// Name returns the system's name
func (s *SpawnerSystem) Name() string {
	return "spawner"
}

func (s *SpawnerSystem) Priority() int {
	return constant.PrioritySpawner
}

func (s *SpawnerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventEntityDied, event.EventPlayerDied}
}

// HandleEvent credits kills, drops rewards, and halts spawning when
// the player dies
func (s *SpawnerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEntityDied:
		p, ok := ev.Payload.(*event.DiedPayload)
		if !ok || p.Layer != core.LayerEnemy {
			return
		}
		if s.session != nil {
			s.session.Kills.Add(1)
			if p.IsBoss {
				s.session.BossesDefeated.Add(1)
			}
		}
		if p.IsBoss {
			s.logger.Info("boss defeated",
				zap.Uint64("entity", uint64(p.Entity)),
				zap.Int("xp", p.XP))
			s.world.PushEvent(event.EventBossDefeated, nil)
		}
		if p.XP > 0 {
			s.enqueueEntity(content.SpawnPickup(s.world, component.PickupXP, p.XP, p.Pos))
		}
		s.deathBurst(p.Pos)

	case event.EventPlayerDied:
		s.spawning = false
		s.logger.Info("player died, spawning halted",
			zap.Int64("frame", ev.Frame))
	}
}

func (s *SpawnerSystem) Update(dt time.Duration) {
	if !s.spawning {
		return
	}
	s.elapsed += dt
	s.advanceWave()

	playerEntity, ok := s.world.PlayerEntity()
	if !ok {
		return
	}
	tr, ok := s.world.Transforms.Get(playerEntity)
	if !ok {
		return
	}

	wave := s.waves[s.waveIdx]
	s.budget += wave.Rate * dt.Seconds()
	if s.budget > maxSpawnBudget {
		s.budget = maxSpawnBudget
	}

	for s.budget >= 1 && s.world.Zombies.Count() < s.maxEnemies {
		s.budget--
		s.spawnZombie(tr.Pos, wave.HPMult)
	}

	s.bossTimer += dt
	for s.bossTimer >= s.bossInterval {
		s.bossTimer -= s.bossInterval
		s.spawnBoss(tr.Pos)
	}
}

// advanceWave crosses any breakpoints reached since last frame,
// accumulating their unlocked types into the draw set
func (s *SpawnerSystem) advanceWave() {
	for s.waveIdx+1 < len(s.waves) && s.elapsed >= s.waves[s.waveIdx+1].At {
		s.waveIdx++
		wave := s.waves[s.waveIdx]
		s.unlocked = append(s.unlocked, wave.Unlocked...)
		s.logger.Info("wave advanced",
			zap.Int("wave", s.waveIdx),
			zap.Float64("rate", wave.Rate),
			zap.Float64("hp_mult", wave.HPMult))
		s.world.PushEvent(event.EventWaveAdvanced, event.WaveAdvancedPayload{
			Index:  s.waveIdx,
			Rate:   wave.Rate,
			HPMult: wave.HPMult,
		})
	}
}

// spawnZombie draws a type from the unlocked set and places it on the
// spawn ring around the player
func (s *SpawnerSystem) spawnZombie(center vmath.Vec2, hpMult float64) {
	if len(s.unlocked) == 0 {
		return
	}
	t := s.unlocked[s.randIntn(len(s.unlocked))]
	pos := s.ringPosition(center)
	s.enqueueEntity(content.SpawnZombie(s.world, t, pos, hpMult))
}

// spawnBoss alternates boss types by spawn ordinal
func (s *SpawnerSystem) spawnBoss(center vmath.Vec2) {
	t := component.BossType(s.bossNumber % int(component.BossTypeCount))
	pos := s.ringPosition(center)
	e := content.SpawnBoss(s.world, t, pos, s.bossNumber)
	s.enqueueEntity(e)
	s.logger.Info("boss spawned",
		zap.String("type", content.BossStatsFor(t).Name),
		zap.Int("number", s.bossNumber))
	s.bossNumber++
}

// ringPosition picks a uniform angle on the spawn ring around center
func (s *SpawnerSystem) ringPosition(center vmath.Vec2) vmath.Vec2 {
	angle := s.randFloat() * 2 * math.Pi
	return vmath.Add(center, vmath.Scale(vmath.FromAngle(angle), constant.SpawnRingRadius))
}

// deathBurst spawns a small radial particle burst at a death position
func (s *SpawnerSystem) deathBurst(pos vmath.Vec2) {
	const count = 6
	for i := 0; i < count; i++ {
		angle := float64(i) / count * 2 * math.Pi
		vel := vmath.Scale(vmath.FromAngle(angle), 40+s.randFloat()*30)
		s.enqueueEntity(content.SpawnParticle(s.world, pos, vel, 400*time.Millisecond))
	}
}

func (s *SpawnerSystem) enqueueEntity(e core.Entity) {
	if s.enqueue != nil {
		s.enqueue(e)
	}
}

func (s *SpawnerSystem) randIntn(n int) int {
	if s.session != nil {
		return s.session.Rand.Intn(n)
	}
	return 0
}

func (s *SpawnerSystem) randFloat() float64 {
	if s.session != nil {
		return s.session.Rand.Float64()
	}
	return 0.5
}
