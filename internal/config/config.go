// Package config reads process settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvDataDir         = "SAVEAUNTY_DATA_DIR"
	EnvPack            = "SAVEAUNTY_PACK"
	EnvTuning          = "SAVEAUNTY_TUNING"
	EnvSeed            = "SAVEAUNTY_SEED"
	EnvFeedbackURL     = "SAVEAUNTY_FEEDBACK_URL"
	EnvFeedbackTimeout = "SAVEAUNTY_FEEDBACK_TIMEOUT"
	EnvServerAddr      = "SAVEAUNTY_SERVER_ADDR"
)

// Config holds settings shared by the binaries
type Config struct {
	DataDir         string        // Directory scanned for level packs
	Pack            string        // Level pack to play; empty = first found, or the generator
	TuningPath      string        // Simulation tuning JSON
	Seed            int64         // Generator seed; 0 = classic levels
	FeedbackURL     string        // feedbackd base URL; empty = local quotes
	FeedbackTimeout time.Duration // Give up on a feedback line after this long
	ServerAddr      string        // Listen address for feedbackd
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		DataDir:         "data",
		TuningPath:      "data/tuning.json",
		FeedbackTimeout: 3 * time.Second,
		ServerAddr:      ":8080",
	}
}

// Load reads the .env files (when present) and then the environment.
// Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
		log.Printf("Loaded environment from %s", f)
	}

	cfg := Default()
	if v, err := GetEnvVariable(EnvDataDir); err == nil {
		cfg.DataDir = v
	}
	if v, err := GetEnvVariable(EnvPack); err == nil {
		cfg.Pack = v
	}
	if v, err := GetEnvVariable(EnvTuning); err == nil {
		cfg.TuningPath = v
	}
	if v, err := GetEnvVariable(EnvFeedbackURL); err == nil {
		cfg.FeedbackURL = v
	}
	if v, err := GetEnvVariable(EnvServerAddr); err == nil {
		cfg.ServerAddr = v
	}
	if v, err := GetEnvVariable(EnvSeed); err == nil {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, err := GetEnvVariable(EnvFeedbackTimeout); err == nil {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvFeedbackTimeout, err)
		}
		cfg.FeedbackTimeout = d
	}

	return cfg, nil
}

// GetEnvVariable returns the value of v, or an error when it is unset or empty
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}
