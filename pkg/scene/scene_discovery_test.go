package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-spheres", "Two Spheres"},
		{"sphere_grid", "Sphere Grid"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

// recordingLogger collects messages for assertions
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, format)
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"b-scene.json": `{"displayName": "Beta", "spheres": [{"center": [0,0,-1], "radius": 0.5}]}`,
		"a-scene.json": `{"name": "alpha-scene", "description": "first", "spheres": []}`,
		"broken.json":  `{"spheres": [`,
		"notes.txt":    `not a scene`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	logger := &recordingLogger{}
	scenes, err := ListSceneFiles(dir, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}
	if len(logger.messages) != 1 {
		t.Errorf("Expected one warning for the broken file, got %d", len(logger.messages))
	}

	if scenes[0].DisplayName != "Alpha Scene" || scenes[0].ID != "a-scene" {
		t.Errorf("Expected first scene Alpha Scene (a-scene), got %+v", scenes[0])
	}
	if scenes[0].Description != "first" {
		t.Errorf("Expected description 'first', got %q", scenes[0].Description)
	}
	if scenes[1].DisplayName != "Beta" || scenes[1].Spheres != 1 {
		t.Errorf("Expected second scene Beta with 1 sphere, got %+v", scenes[1])
	}
	for _, s := range scenes {
		if s.Type != "file" {
			t.Errorf("Expected type 'file', got %q", s.Type)
		}
	}
}

func TestListSceneFiles_NoDirectory(t *testing.T) {
	scenes, err := ListSceneFiles("", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %d", len(scenes))
	}
}

func TestListBuiltinScenes(t *testing.T) {
	scenes := ListBuiltinScenes()

	if len(scenes) != 3 {
		t.Fatalf("Expected 3 built-in scenes, got %d", len(scenes))
	}
	for _, s := range scenes {
		if s.Type != "builtin" {
			t.Errorf("Scene %s: expected type builtin, got %q", s.ID, s.Type)
		}
		if s.Spheres == 0 {
			t.Errorf("Scene %s: expected spheres", s.ID)
		}
		if !IsBuiltin(s.ID) {
			t.Errorf("Scene %s: expected IsBuiltin", s.ID)
		}
	}
}
