package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Spawn.BaseIntervalSec != 1.5 {
		t.Errorf("default base interval = %v, want 1.5", cfg.Spawn.BaseIntervalSec)
	}
	if cfg.Spawn.EnemyCapBase != 15 || cfg.Spawn.EnemyCapMax != 25 {
		t.Errorf("default caps = %d/%d", cfg.Spawn.EnemyCapBase, cfg.Spawn.EnemyCapMax)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	data := `
[spawn]
base_interval_sec = 0.5
enemy_cap_base = 5
enemy_cap_max = 10
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spawn.BaseIntervalSec != 0.5 {
		t.Errorf("base interval = %v", cfg.Spawn.BaseIntervalSec)
	}
	if cfg.Spawn.EnemyCapBase != 5 {
		t.Errorf("cap base = %d", cfg.Spawn.EnemyCapBase)
	}
}

func TestClampInvalidValues(t *testing.T) {
	cfg := Default()
	cfg.Spawn.BaseIntervalSec = -1
	cfg.Spawn.EnemyCapBase = 0
	cfg.Weapon.FireIntervalInitialMs = 0
	cfg.Clamp()

	if cfg.Spawn.BaseIntervalSec <= 0 {
		t.Error("negative interval must clamp to a positive default")
	}
	if cfg.Spawn.EnemyCapBase < 1 {
		t.Error("cap must clamp to at least 1")
	}
	if cfg.Weapon.FireIntervalInitialMs < cfg.Weapon.FireIntervalMinMs {
		t.Error("initial fire interval must not undercut the minimum")
	}
}
