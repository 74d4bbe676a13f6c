package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

type builtin struct {
	id          string
	displayName string
	create      func(...renderer.CameraConfig) *Scene
}

var builtins = []builtin{
	{"default", "Default", NewDefaultScene},
	{"spheregrid", "Sphere Grid", NewSphereGridScene},
	{"nested", "Nested Groups", NewNestedScene},
}

// IsBuiltin reports whether name is a compiled-in scene
func IsBuiltin(name string) bool {
	for _, b := range builtins {
		if b.id == name {
			return true
		}
	}
	return false
}

// Create builds a scene by name: a built-in, a scene file in the scenes
// directory, or a direct path to a .json file.
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", ErrUnknownScene)
	}

	for _, b := range builtins {
		if b.id == name {
			return b.create(cameraOverrides...), nil
		}
	}

	path := ResolveSceneFile(name)
	if path == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	return LoadSceneFile(path, cameraOverrides...)
}

// ResolveSceneFile maps a scene name or path to an existing scene file, or "" if none exists.
// Names without a .json suffix only resolve to files directly inside the scenes directory.
func ResolveSceneFile(name string) string {
	var candidates []string
	if strings.HasSuffix(name, ".json") {
		candidates = append(candidates, name)
	} else if dir := FindScenesDir(); dir != "" && isPlainName(name) {
		candidates = append(candidates, filepath.Join(dir, name+".json"))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// isPlainName reports whether name is a bare file name with no directory parts
func isPlainName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
