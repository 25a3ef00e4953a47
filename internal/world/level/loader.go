package level

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pack is a named, ordered list of levels stored as JSON
type Pack struct {
	Name   string  `json:"name"`
	Levels []Level `json:"levels"`
}

// LoadPack reads and normalizes a level pack from a JSON file
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level pack: %w", err)
	}
	return ParsePack(data)
}

// ParsePack decodes and normalizes a level pack
func ParsePack(data []byte) (*Pack, error) {
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse level pack: %w", err)
	}
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("level pack %q has no levels", pack.Name)
	}
	for i := range pack.Levels {
		if pack.Levels[i].ID == 0 {
			pack.Levels[i].ID = i + 1
		}
		if err := pack.Levels[i].Normalize(); err != nil {
			return nil, fmt.Errorf("invalid level pack %q: %w", pack.Name, err)
		}
	}
	return &pack, nil
}

// SavePack writes a level pack as indented JSON
func SavePack(path string, pack *Pack) error {
	data, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode level pack: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write level pack: %w", err)
	}
	return nil
}
