package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseDash(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseDash(embedded) failed: %v", err)
	}

	if cfg != DefaultDashConfig() {
		t.Errorf("embedded YAML drifted from DefaultDashConfig:\n got %+v\nwant %+v", cfg, DefaultDashConfig())
	}
}

func TestGroundY(t *testing.T) {
	cfg := DefaultDashConfig()
	if got := cfg.GroundY(); got != 442 {
		t.Errorf("GroundY() = %v, expected 442", got)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := ParseDash([]byte("physics:\n  max_speed: 20\n"))
	if err != nil {
		t.Fatalf("ParseDash failed: %v", err)
	}

	if cfg.Physics.MaxSpeed != 20 {
		t.Errorf("MaxSpeed = %v, expected 20", cfg.Physics.MaxSpeed)
	}
	if cfg.Physics.Gravity != DefaultDashConfig().Physics.Gravity {
		t.Error("unnamed keys should keep their defaults")
	}
}

func TestLoadDashCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	if err := os.WriteFile(path, []byte("spawner:\n  coin_chance: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDash(path)
	if err != nil {
		t.Fatalf("LoadDash failed: %v", err)
	}
	if cfg.Spawner.CoinChance != 1 {
		t.Errorf("CoinChance = %v, expected 1", cfg.Spawner.CoinChance)
	}
}

func TestLoadDashMissingFile(t *testing.T) {
	cfg, err := LoadDash(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if cfg != DefaultDashConfig() {
		t.Error("a failed load should still hand back usable defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DashConfig)
	}{
		{"zero field", func(c *DashConfig) { c.Field.Width = 0 }},
		{"ground ratio", func(c *DashConfig) { c.Field.GroundRatio = 1.5 }},
		{"runner", func(c *DashConfig) { c.Runner.Height = 0 }},
		{"inverted speed", func(c *DashConfig) { c.Physics.MaxSpeed = 1 }},
		{"divisor", func(c *DashConfig) { c.Physics.ScoreDivisor = 0 }},
		{"clock", func(c *DashConfig) { c.Clock.MaxDelta = 0 }},
		{"easing", func(c *DashConfig) { c.Clock.Easing = 2 }},
		{"weights", func(c *DashConfig) { c.Spawner.Weights = SpawnWeights{} }},
		{"coin chance", func(c *DashConfig) { c.Spawner.CoinChance = -0.1 }},
	}

	if err := DefaultDashConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDashConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestApplyDashPreset(t *testing.T) {
	base := DefaultDashConfig()

	fixed := base
	ApplyDashPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedRamp != 0 {
		t.Errorf("fixed preset should disable the ramp, got %v", fixed.Physics.SpeedRamp)
	}

	hard := base
	ApplyDashPreset(&hard, DifficultyHard)
	if hard.Physics.InitialSpeed <= base.Physics.InitialSpeed || hard.Physics.InitialSpeed > hard.Physics.MaxSpeed {
		t.Errorf("hard initial speed = %v", hard.Physics.InitialSpeed)
	}

	easy := base
	ApplyDashPreset(&easy, DifficultyEasy)
	if easy.Physics.InitialSpeed >= base.Physics.InitialSpeed {
		t.Errorf("easy should start slower, got %v", easy.Physics.InitialSpeed)
	}

	normal := base
	ApplyDashPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard not parsed")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}
