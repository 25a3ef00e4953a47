package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, v := range []string{EnvDataDir, EnvPack, EnvTuning, EnvSeed, EnvFeedbackURL, EnvFeedbackTimeout, EnvServerAddr} {
		t.Setenv(v, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvDataDir, "/srv/levels")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvFeedbackTimeout, "750ms")
	t.Setenv(EnvServerAddr, ":9000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.DataDir != "/srv/levels" || cfg.Seed != 42 || cfg.ServerAddr != ":9000" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.FeedbackTimeout != 750*time.Millisecond {
		t.Errorf("Expected 750ms timeout, got %v", cfg.FeedbackTimeout)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	// godotenv never overrides variables that are already set
	for _, v := range []string{EnvPack, EnvFeedbackURL} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	path := filepath.Join(t.TempDir(), ".env")
	data := "SAVEAUNTY_PACK=classic\nSAVEAUNTY_FEEDBACK_URL=http://localhost:8080\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Pack != "classic" || cfg.FeedbackURL != "http://localhost:8080" {
		t.Errorf("Expected values from .env, got %+v", cfg)
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "many")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for non-numeric seed")
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Error("Expected error for empty name")
	}
	t.Setenv("SAVEAUNTY_TEST_VAR", "x")
	if v, err := GetEnvVariable("SAVEAUNTY_TEST_VAR"); err != nil || v != "x" {
		t.Errorf("Expected x, got %q %v", v, err)
	}
}
