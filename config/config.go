// Package config resolves simulation tunables from an optional TOML file
// A missing file yields defaults; invalid values are clamped, not rejected
package config

import (
	"os"
	"time"

	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/toml"
)

// ArenaConfig is the explicit configuration context passed into the
// simulation; systems never reach for package-level lookups
type ArenaConfig struct {
	Debug bool   `toml:"debug"`
	Seed  uint64 `toml:"seed"`

	World struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"world"`

	Spawn struct {
		BaseIntervalSec float64 `toml:"base_interval_sec"`
		GracePeriodSec  float64 `toml:"grace_period_sec"`
		EnemyCapBase    int     `toml:"enemy_cap_base"`
		EnemyCapMax     int     `toml:"enemy_cap_max"`
	} `toml:"spawn"`

	Weapon struct {
		FireIntervalInitialMs int `toml:"fire_interval_initial_ms"`
		FireIntervalMinMs     int `toml:"fire_interval_min_ms"`
		FireRampTimeMs        int `toml:"fire_ramp_time_ms"`
	} `toml:"weapon"`

	Audio struct {
		Enabled bool `toml:"enabled"`
	} `toml:"audio"`
}

// Default returns the built-in configuration
func Default() *ArenaConfig {
	cfg := &ArenaConfig{}
	cfg.World.Width = parameter.WorldWidth
	cfg.World.Height = parameter.WorldHeight
	cfg.Spawn.BaseIntervalSec = parameter.SpawnBaseInterval.Seconds()
	cfg.Spawn.GracePeriodSec = parameter.SpawnGracePeriod.Seconds()
	cfg.Spawn.EnemyCapBase = parameter.EnemyCapBase
	cfg.Spawn.EnemyCapMax = parameter.EnemyCapMax
	cfg.Weapon.FireIntervalInitialMs = int(parameter.FireIntervalInitial.Milliseconds())
	cfg.Weapon.FireIntervalMinMs = int(parameter.FireIntervalMin.Milliseconds())
	cfg.Weapon.FireRampTimeMs = int(parameter.FireRampTime.Milliseconds())
	cfg.Audio.Enabled = true
	return cfg
}

// Load reads the config file, falling back to defaults when absent
// Parse errors are returned; value sanity is enforced by Clamp
func Load(path string) (*ArenaConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Clamp()
	return cfg, nil
}

// Clamp forces every tunable into its valid range
func (c *ArenaConfig) Clamp() {
	if c.World.Width < 256 {
		c.World.Width = 256
	}
	if c.World.Height < 256 {
		c.World.Height = 256
	}
	if c.Spawn.BaseIntervalSec <= 0 {
		c.Spawn.BaseIntervalSec = parameter.SpawnBaseInterval.Seconds()
	}
	if c.Spawn.GracePeriodSec < 0 {
		c.Spawn.GracePeriodSec = 0
	}
	if c.Spawn.EnemyCapBase < 1 {
		c.Spawn.EnemyCapBase = 1
	}
	if c.Spawn.EnemyCapMax < c.Spawn.EnemyCapBase {
		c.Spawn.EnemyCapMax = c.Spawn.EnemyCapBase
	}
	if c.Weapon.FireIntervalMinMs < 1 {
		c.Weapon.FireIntervalMinMs = 1
	}
	if c.Weapon.FireIntervalInitialMs < c.Weapon.FireIntervalMinMs {
		c.Weapon.FireIntervalInitialMs = c.Weapon.FireIntervalMinMs
	}
	if c.Weapon.FireRampTimeMs < 1 {
		c.Weapon.FireRampTimeMs = 1
	}
}

// BaseInterval returns the spawn cadence as a duration
func (c *ArenaConfig) BaseInterval() time.Duration {
	return time.Duration(c.Spawn.BaseIntervalSec * float64(time.Second))
}

// GracePeriod returns the spawn grace window as a duration
func (c *ArenaConfig) GracePeriod() time.Duration {
	return time.Duration(c.Spawn.GracePeriodSec * float64(time.Second))
}
