// Package app wires configuration, level packs, tuning and feedback into a
// game.Manager for the front-end binaries.
package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"chosenoffset.com/saveaunty/internal/config"
	"chosenoffset.com/saveaunty/internal/feedback"
	"chosenoffset.com/saveaunty/internal/game"
	"chosenoffset.com/saveaunty/internal/gamescanner"
	"chosenoffset.com/saveaunty/internal/render"
	"chosenoffset.com/saveaunty/internal/simulation"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// Options are the command line settings shared by the game binaries
type Options struct {
	Config *config.Config
	Level  int // 1-based level to start on
}

// ParseFlags loads the environment configuration and overlays command line flags
func ParseFlags(fs *flag.FlagSet, args []string) (*Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	opts := &Options{Config: cfg, Level: 1}

	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory holding level packs")
	fs.StringVar(&cfg.Pack, "pack", cfg.Pack, "level pack to play (default: first pack found)")
	fs.StringVar(&cfg.TuningPath, "tuning", cfg.TuningPath, "simulation tuning JSON")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "level generator seed when no pack is found (0 = classic)")
	fs.StringVar(&cfg.FeedbackURL, "feedback", cfg.FeedbackURL, "feedbackd base URL (default: built-in quotes)")
	fs.DurationVar(&cfg.FeedbackTimeout, "feedback-timeout", cfg.FeedbackTimeout, "how long to wait for a feedback line")
	fs.IntVar(&opts.Level, "level", opts.Level, "level to start on")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadLevels returns the configured level pack. When the data directory holds
// no packs and none was asked for by name, the built-in generator is used.
func LoadLevels(cfg *config.Config) ([]level.Level, string, error) {
	packs, err := gamescanner.ScanDataDirectory(cfg.DataDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", err
	}

	var entry gamescanner.PackEntry
	switch {
	case cfg.Pack != "":
		found, ok := gamescanner.FindPack(packs, cfg.Pack)
		if !ok {
			return nil, "", fmt.Errorf("level pack %q not found in %s", cfg.Pack, cfg.DataDir)
		}
		entry = found
	case len(packs) > 0:
		entry = packs[0]
	default:
		log.Printf("No level packs in %s, generating levels (seed %d)", cfg.DataDir, cfg.Seed)
		gen := level.NewGenerator(level.GeneratorConfig{Seed: cfg.Seed})
		return gen.Generate(), "generated", nil
	}

	pack, err := level.LoadPack(entry.Path(cfg.DataDir))
	if err != nil {
		return nil, "", err
	}
	if len(pack.Levels) == 0 {
		return nil, "", fmt.Errorf("level pack %q has no levels", entry.Name)
	}
	log.Printf("Loaded %d levels from pack %s", len(pack.Levels), entry.Name)
	return pack.Levels, entry.Name, nil
}

// NewProvider returns the remote feedback provider when a URL is configured,
// otherwise the built-in quotes.
func NewProvider(cfg *config.Config) feedback.Provider {
	if cfg.FeedbackURL != "" {
		log.Printf("Using feedback service at %s", cfg.FeedbackURL)
		return feedback.NewHTTPProvider(cfg.FeedbackURL)
	}
	return feedback.NewQuoteProvider(cfg.Seed)
}

// NewManager builds a game manager from the options, positioned on opts.Level
func NewManager(opts *Options, r render.Renderer, input render.InputManager) (*game.Manager, error) {
	cfg := opts.Config
	tuning, err := simulation.LoadConfig(cfg.TuningPath)
	if err != nil {
		return nil, err
	}
	levels, _, err := LoadLevels(cfg)
	if err != nil {
		return nil, err
	}

	m, err := game.NewManager(r, input, simulation.NewEngine(tuning), levels, NewProvider(cfg))
	if err != nil {
		return nil, err
	}
	m.FeedbackTimeout = cfg.FeedbackTimeout
	if opts.Level > 1 {
		m.LoadLevel(opts.Level - 1)
	}
	return m, nil
}

// Exit maps the error returned by an engine run to a process outcome.
// Quitting from inside the game is a clean exit.
func Exit(err error) {
	if err == nil || errors.Is(err, game.ErrQuit) {
		log.Println("Bye!")
		return
	}
	log.Fatal(err)
}
