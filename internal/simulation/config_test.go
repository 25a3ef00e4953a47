package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/saveaunty/internal/core/geom"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	data := `{"step": {"sub_steps": 10}, "swarm": {"max_speed": 9, "default_speed_multiplier": -1}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Step.SubSteps != 10 {
		t.Errorf("Expected 10 sub-steps, got %d", cfg.Step.SubSteps)
	}
	if cfg.Swarm.MaxSpeed != 9 {
		t.Errorf("Expected max speed 9, got %v", cfg.Swarm.MaxSpeed)
	}
	if cfg.Swarm.DefaultSpeedMultiplier != 1.6 {
		t.Errorf("Expected invalid multiplier replaced by default, got %v", cfg.Swarm.DefaultSpeedMultiplier)
	}
	if cfg.Step.VictoryDelay != 8000 {
		t.Errorf("Expected untouched victory delay, got %v", cfg.Step.VictoryDelay)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestNewEngineSanitizesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Step.SubSteps = 0
	e := NewEngine(cfg)

	if got := e.Config().Step.SubSteps; got != 30 {
		t.Errorf("Expected 30 sub-steps, got %d", got)
	}
	if cfg.Step.SubSteps != 0 {
		t.Error("Expected caller's config left untouched")
	}
}

func TestLoadConfigReplacesNegativeShieldSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(`{"shield": {"max_speed": -5}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Shield.MaxSpeed != DefaultConfig().Shield.MaxSpeed {
		t.Errorf("Expected shield max speed reset to default, got %v", cfg.Shield.MaxSpeed)
	}

	// A resting shield must stay at rest under the sanitized cap
	e := NewEngine(cfg)
	sh := newShield([]geom.Point{{X: 150, Y: 200}, {X: 200, Y: 200}, {X: 250, Y: 200}})
	e.integrateShield(sh)
	if sh.VX != 0 {
		t.Errorf("Expected resting shield to keep zero horizontal speed, got %v", sh.VX)
	}
}
