package toml

import "testing"

type testConfig struct {
	Title string `toml:"title"`
	Debug bool   `toml:"debug"`

	World struct {
		Width  int     `toml:"width"`
		Height int     `toml:"height"`
		Ratio  float64 `toml:"ratio"`
	} `toml:"world"`

	Spawn struct {
		Interval float64 `toml:"interval"`
	} `toml:"spawn"`
}

func TestUnmarshal(t *testing.T) {
	data := []byte(`
# arena configuration
title = "test arena"
debug = true

[world]
width = 4096
height = 2048  # units
ratio = 0.5

[spawn]
interval = 1.5
`)

	var cfg testConfig
	if err := Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Title != "test arena" {
		t.Errorf("title = %q", cfg.Title)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.World.Width != 4096 || cfg.World.Height != 2048 {
		t.Errorf("world = %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Ratio != 0.5 {
		t.Errorf("ratio = %v", cfg.World.Ratio)
	}
	if cfg.Spawn.Interval != 1.5 {
		t.Errorf("interval = %v", cfg.Spawn.Interval)
	}
}

func TestUnmarshalUnknownKey(t *testing.T) {
	var cfg testConfig
	if err := Unmarshal([]byte("bogus = 1"), &cfg); err == nil {
		t.Error("unknown key should error")
	}
}

func TestUnmarshalNonPointer(t *testing.T) {
	var cfg testConfig
	if err := Unmarshal([]byte(""), cfg); err == nil {
		t.Error("non-pointer target should error")
	}
}
