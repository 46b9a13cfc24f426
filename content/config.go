package content

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/horde/component"
)

// Config is the tunable simulation configuration
// Compiled-in defaults apply when no file is given; a TOML file
// overrides only the keys it sets
type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Spawner SpawnerConfig `toml:"spawner"`
	Player  PlayerConfig  `toml:"player"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	Duration time.Duration `toml:"duration"`
}

type SpawnerConfig struct {
	MaxEnemies   int           `toml:"max_enemies"`
	BossInterval time.Duration `toml:"boss_interval"`
}

type PlayerConfig struct {
	HP        int     `toml:"hp"`
	MoveSpeed float64 `toml:"move_speed"`
	Armor     float64 `toml:"armor"`
	Weapon    string  `toml:"weapon"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func defaults() *Config {
	return &Config{
		Sim:     SimConfig{Duration: time.Minute},
		Spawner: SpawnerConfig{MaxEnemies: 150, BossInterval: 2 * time.Minute},
		Player:  PlayerConfig{HP: 100, MoveSpeed: 140, Armor: 0, Weapon: "pistol"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// LoadConfig reads a TOML config over the defaults
// An empty path returns the defaults unchanged
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WeaponKind maps a config weapon name to its kind
func (c *Config) WeaponKind() (component.WeaponKind, error) {
	switch c.Player.Weapon {
	case "pistol", "":
		return component.WeaponPistol, nil
	case "shotgun":
		return component.WeaponShotgun, nil
	case "flame":
		return component.WeaponFlame, nil
	}
	return 0, fmt.Errorf("unknown weapon %q", c.Player.Weapon)
}
