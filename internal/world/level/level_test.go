package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	l := Level{ID: 7, ThreatCount: 3, SpeedMultiplier: 1.4}
	if err := l.Normalize(); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if l.MaxInk != DefaultMaxInk {
		t.Errorf("MaxInk = %f, want %f", l.MaxInk, DefaultMaxInk)
	}
	if l.Title != "Level 7" {
		t.Errorf("Title = %q", l.Title)
	}
	if len(l.Threats) != 3 {
		t.Fatalf("expected 3 threats from shorthand, got %d", len(l.Threats))
	}
	if l.Threats[2].ID != "b2" || l.Threats[2].SpeedMultiplier != 1.4 {
		t.Errorf("unexpected threat spec %+v", l.Threats[2])
	}
}

func TestNormalizeRejectsUnknownKind(t *testing.T) {
	l := Level{ID: 1, Obstacles: []Obstacle{{ID: "x", Kind: "lava"}}}
	if err := l.Normalize(); err == nil {
		t.Fatalf("expected error for unknown obstacle kind")
	}
}

func TestObstacleKindClassification(t *testing.T) {
	if !KindPlatform.Solid() || !KindCrate.Solid() {
		t.Errorf("platform and crate must be solid")
	}
	if KindSpikes.Solid() || KindWater.Solid() {
		t.Errorf("hazards must not be solid")
	}
	if !KindSpikes.Hazard() || !KindWater.Hazard() {
		t.Errorf("spikes and water must be hazards")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	l := NewGenerator(GeneratorConfig{}).Level(2)
	c := l.Clone()
	c.Obstacles[0].X = -999
	c.Threats[0].SpeedMultiplier = 99
	if l.Obstacles[0].X == -999 || l.Threats[0].SpeedMultiplier == 99 {
		t.Fatalf("clone shares slices with the original")
	}
}

func TestParsePackJSON(t *testing.T) {
	data := `{
		"name": "custom",
		"levels": [
			{
				"title": "Backyard",
				"character_start": {"x": 200, "y": 485},
				"hive_pos": {"x": 200, "y": 120},
				"obstacles": [
					{"id": "f", "kind": "platform", "x": 0, "y": 560, "width": 400, "height": 40},
					{"id": "w", "kind": "water", "x": 110, "y": 570, "width": 180, "height": 30}
				],
				"threat_count": 10,
				"speed_multiplier": 1.3
			}
		]
	}`

	pack, err := ParsePack([]byte(data))
	if err != nil {
		t.Fatalf("ParsePack failed: %v", err)
	}
	l := pack.Levels[0]
	if l.ID != 1 {
		t.Errorf("ID = %d, want 1", l.ID)
	}
	if l.Obstacles[0].W != 400 || l.Obstacles[1].Kind != KindWater {
		t.Errorf("obstacles decoded incorrectly: %+v", l.Obstacles)
	}
	if len(l.Threats) != 10 {
		t.Errorf("threats = %d, want 10", len(l.Threats))
	}
	if l.MaxInk != DefaultMaxInk {
		t.Errorf("MaxInk = %f, want default", l.MaxInk)
	}
}

func TestParsePackRejectsEmpty(t *testing.T) {
	if _, err := ParsePack([]byte(`{"name":"empty","levels":[]}`)); err == nil {
		t.Fatalf("expected error for empty pack")
	}
	if _, err := ParsePack([]byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestSaveAndLoadPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	pack := NewGenerator(GeneratorConfig{Count: 3}).Pack("classic")
	if err := SavePack(path, pack); err != nil {
		t.Fatalf("SavePack failed: %v", err)
	}
	loaded, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack failed: %v", err)
	}
	if len(loaded.Levels) != 3 || loaded.Levels[2].Title != pack.Levels[2].Title {
		t.Fatalf("round trip mismatch: %+v", loaded.Levels)
	}
	if _, err := LoadPack(filepath.Join(t.TempDir(), "missing.json")); !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error for missing file: %v", err)
	}
	_ = os.Remove(path)
}
