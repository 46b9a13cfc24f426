package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/horde/content"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/system"
	"github.com/lixenwraith/horde/vmath"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config (defaults apply when empty)")
	duration := flag.Duration("duration", 0, "override run duration")
	flag.Parse()

	cfg, err := content.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *duration > 0 {
		cfg.Sim.Duration = *duration
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func buildLogger(cfg content.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// run assembles the world, wires every system, and drives one session
// to completion
func run(cfg *content.Config, logger *zap.Logger) error {
	world := engine.NewWorld()
	session := engine.NewSession()
	sched := engine.NewScheduler(world, logger)

	logger.Info("session starting",
		zap.String("id", session.ID.String()),
		zap.Uint64("seed", session.Seed),
		zap.Duration("duration", cfg.Sim.Duration))

	// Projectiles spawned as system side effects go through the same
	// insertion queue as everything else
	spawnProjectile := func(spec *content.ProjectileSpec) {
		sched.AddEntity(content.SpawnProjectile(world, spec))
	}

	collision := system.NewCollisionSystem(world)

	sched.AddSystem(system.NewSpawnerSystem(world, logger, session, cfg, sched.AddEntity))
	sched.AddSystem(system.NewInputSystem(world))
	sched.AddSystem(system.NewAISystem(world, spawnProjectile))
	sched.AddSystem(system.NewAutoAimSystem(world))
	sched.AddSystem(system.NewWeaponSystem(world, session.Rand, spawnProjectile))
	sched.AddSystem(system.NewPickupSystem(world))
	sched.AddSystem(system.NewProjectileSystem(world))
	sched.AddSystem(system.NewParticleSystem(world))
	sched.AddSystem(system.NewMovementSystem(world))
	sched.AddSystem(collision)
	sched.AddSystem(system.NewDamageSystem(world, session, collision))

	sched.AddEntity(content.SpawnPlayer(world, cfg, vmath.Vec2{}))
	for _, pos := range []vmath.Vec2{
		{X: 200, Y: 120}, {X: -260, Y: -80}, {X: 80, Y: -300}, {X: -140, Y: 240},
	} {
		sched.AddEntity(content.SpawnObstacle(world, pos, 40, 24))
	}

	sched.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-time.After(cfg.Sim.Duration):
	case sig := <-sigChan:
		logger.Info("signal received", zap.String("signal", sig.String()))
	}

	sched.Stop()

	summary := session.Summary()
	logger.Info("session finished",
		zap.String("id", summary.ID.String()),
		zap.Int64("kills", summary.Kills),
		zap.Int64("bosses_defeated", summary.BossesDefeated),
		zap.Int64("xp_collected", summary.XPCollected),
		zap.Duration("survived", summary.Survived),
		zap.Uint64("ticks", sched.TickCount()),
		zap.Int("entities", len(sched.EntitiesSnapshot())))

	return nil
}
