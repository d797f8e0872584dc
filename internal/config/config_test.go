package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseArena(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded arena.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArenaConfig()) {
		t.Errorf("embedded defaults drifted from DefaultArenaConfig():\n got %+v\nwant %+v", cfg, DefaultArenaConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadArenaCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("map:\n  strategy: box\nlevels:\n  max: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() failed: %v", err)
	}
	if cfg.Map.Strategy != "box" || cfg.Levels.Max != 5 {
		t.Errorf("overrides not applied: strategy=%q max=%d", cfg.Map.Strategy, cfg.Levels.Max)
	}
	if cfg.Player.Speed != 300 || cfg.Map.TileSize != 64 {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadArenaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArena(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArena(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  radius: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArena(invalid); err == nil {
		t.Error("expected validation error for zero player radius")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArenaConfig)
	}{
		{"zero tile size", func(c *ArenaConfig) { c.Map.TileSize = 0 }},
		{"negative enemy radius", func(c *ArenaConfig) { c.Enemies.Tank.Radius = -1 }},
		{"unknown strategy", func(c *ArenaConfig) { c.Map.Strategy = "maze" }},
		{"grid too small", func(c *ArenaConfig) { c.Map.BaseSize = 4; c.Map.SizePerLevel = 1 }},
		{"start inside clear radius", func(c *ArenaConfig) { c.Map.StartTile = 3 }},
		{"no levels", func(c *ArenaConfig) { c.Levels.Max = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArenaConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	_, err := ParsePreset("nightmare")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplyArenaPreset(t *testing.T) {
	cfg := DefaultArenaConfig()
	ApplyArenaPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v initial=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultArenaConfig()
	ApplyArenaPreset(&cfg, DifficultyEasy)
	if cfg.Player.HP != 150 {
		t.Errorf("easy preset player HP = %d, expected 150", cfg.Player.HP)
	}

	cfg = DefaultArenaConfig()
	cfg.Difficulty.Enabled = true
	ApplyArenaPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultArenaConfig().Difficulty

	off := NewDifficultyManager(cfg)
	if off.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := off.Speed(100, 3, 0); got != 100 {
		t.Errorf("disabled Speed() = %f, expected base 100", got)
	}

	cfg.Enabled = true
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		level int
		want  float64
	}{
		{1, 0},
		{2, 0.5},
		{3, 1},
		{7, 1}, // clamped
	}
	for _, tc := range tests {
		if got := dm.Level(tc.level, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.level, got, tc.want)
		}
	}

	if got := dm.Speed(100, 3, 0); math.Abs(got-150) > 1e-9 {
		t.Errorf("Speed at max = %f, expected 150", got)
	}
	if got := dm.Damage(1, 3, 0); got != 2 {
		t.Errorf("Damage at max = %d, expected 2", got)
	}
	if got := dm.Damage(1, 1, 0); got != 1 {
		t.Errorf("Damage at start = %d, expected 1", got)
	}
}
