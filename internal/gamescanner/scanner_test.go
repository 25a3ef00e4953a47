package gamescanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDataDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "classic", "levels.json"))
	writeFile(t, filepath.Join(dir, "classic", "bonus_levels.json"))
	writeFile(t, filepath.Join(dir, "classic", "tuning.json"))
	writeFile(t, filepath.Join(dir, "empty", "notes.json"))
	writeFile(t, filepath.Join(dir, ".hidden", "levels.json"))
	writeFile(t, filepath.Join(dir, "tuning.json"))

	packs, err := ScanDataDirectory(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(packs) != 1 {
		t.Fatalf("Expected 1 pack, got %d: %+v", len(packs), packs)
	}
	p := packs[0]
	if p.Name != "classic" || len(p.LevelFiles) != 2 {
		t.Fatalf("Unexpected pack %+v", p)
	}
	if p.LevelFiles[0] != "bonus_levels.json" {
		t.Errorf("Expected sorted level files, got %v", p.LevelFiles)
	}
	if got := p.Path(dir); got != filepath.Join(dir, "classic", "bonus_levels.json") {
		t.Errorf("Unexpected path %q", got)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := ScanDataDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestFindPack(t *testing.T) {
	packs := []PackEntry{{Name: "a"}, {Name: "b"}}

	if p, ok := FindPack(packs, ""); !ok || p.Name != "a" {
		t.Errorf("Expected first pack, got %+v", p)
	}
	if p, ok := FindPack(packs, "b"); !ok || p.Name != "b" {
		t.Errorf("Expected pack b, got %+v", p)
	}
	if _, ok := FindPack(packs, "c"); ok {
		t.Error("Expected no match for c")
	}
}
