package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PackEntry represents a level pack found in the data directory
type PackEntry struct {
	Name       string   // Display name (directory name)
	Dir        string   // Directory path relative to data/
	LevelFiles []string // Level pack JSON files in the directory
}

// Path returns the path of the pack's first level file below dataPath
func (p PackEntry) Path(dataPath string) string {
	if len(p.LevelFiles) == 0 {
		return ""
	}
	return filepath.Join(dataPath, p.Dir, p.LevelFiles[0])
}

// ScanDataDirectory scans the data directory for available level packs
// Returns a list of PackEntry objects, one for each directory holding level files
func ScanDataDirectory(dataPath string) ([]PackEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var packs []PackEntry

	for _, entry := range entries {
		// Skip non-directories
		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories
		dirName := entry.Name()
		if strings.HasPrefix(dirName, ".") {
			continue
		}

		packPath := filepath.Join(dataPath, dirName)
		levelFiles, err := scanLevelFiles(packPath)
		if err != nil {
			// Skip directories that can't be read
			continue
		}

		// Only include directories with at least one level file
		if len(levelFiles) > 0 {
			packs = append(packs, PackEntry{
				Name:       dirName,
				Dir:        dirName,
				LevelFiles: levelFiles,
			})
		}
	}

	return packs, nil
}

// FindPack returns the pack called name, or the first pack when name is empty
func FindPack(packs []PackEntry, name string) (PackEntry, bool) {
	for _, p := range packs {
		if name == "" || p.Name == name {
			return p, true
		}
	}
	return PackEntry{}, false
}

// scanLevelFiles finds all level pack files in a directory
func scanLevelFiles(packPath string) ([]string, error) {
	entries, err := os.ReadDir(packPath)
	if err != nil {
		return nil, err
	}

	var levelFiles []string
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		// Level packs are JSON files with "level" in the name
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".json") && strings.Contains(name, "level") {
			levelFiles = append(levelFiles, entry.Name())
		}
	}
	sort.Strings(levelFiles)

	return levelFiles, nil
}
