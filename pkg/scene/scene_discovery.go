package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to scene file (file type only)
	Spheres     int    `json:"spheres"`     // Number of spheres
}

// FindScenesDir returns the first existing scenes directory, or "" if there is none
func FindScenesDir() string {
	// Try different possible paths for scenes directory
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListBuiltinScenes returns the scenes that are compiled in
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		s := b.create()
		scenes = append(scenes, SceneInfo{
			ID:          b.id,
			DisplayName: b.displayName,
			Description: s.Description,
			Type:        "builtin",
			Spheres:     s.GetPrimitiveCount(),
		})
	}
	return scenes
}

// ListSceneFiles scans dir for *.json scene files. Files that fail to parse
// are logged and skipped.
func ListSceneFiles(dir string, logger core.Logger) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		file, err := ReadSceneFile(filePath)
		if err != nil {
			logger.Printf("Warning: skipping scene file %s: %v\n", filePath, err)
			continue
		}

		id := strings.TrimSuffix(filepath.Base(filePath), ".json")
		displayName := file.DisplayName
		if displayName == "" {
			displayName = titleCase(file.Name)
		}

		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: displayName,
			Description: file.Description,
			Type:        "file",
			FilePath:    filePath,
			Spheres:     len(file.Spheres),
		})
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// titleCase converts "my-scene_name" to "My Scene Name"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
