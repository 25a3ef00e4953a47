package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/saveaunty/internal/world/level"
)

func main() {
	dataDir := flag.String("data", "data", "data directory")
	name := flag.String("pack", "classic", "pack name (also the directory name)")
	count := flag.Int("count", 50, "number of levels")
	seed := flag.Int64("seed", 0, "layout seed (0 = classic layouts)")
	flag.Parse()

	fmt.Println("Save the Aunty Level Pack Generator")
	fmt.Println("===================================")
	fmt.Println()

	gen := level.NewGenerator(level.GeneratorConfig{Count: *count, Seed: *seed})
	path := filepath.Join(*dataDir, *name, "levels.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := level.SavePack(path, gen.Pack(*name)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d levels to %s\n", *count, path)
	fmt.Println("Run the game with -pack", *name, "to play them!")
}
