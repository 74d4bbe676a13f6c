package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// File is the JSON description of a scene
type File struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Camera      *CameraFile     `json:"camera,omitempty"`
	Background  *BackgroundFile `json:"background,omitempty"`
	Spheres     []SphereFile    `json:"spheres"`
}

// CameraFile describes camera fields; zero values keep the defaults
type CameraFile struct {
	Origin         *[3]float64 `json:"origin,omitempty"`
	Width          int         `json:"width,omitempty"`
	AspectRatio    float64     `json:"aspectRatio,omitempty"`
	ViewportHeight float64     `json:"viewportHeight,omitempty"`
	FocalLength    float64     `json:"focalLength,omitempty"`
}

// BackgroundFile describes the sky gradient
type BackgroundFile struct {
	Top    [3]float64 `json:"top"`
	Bottom [3]float64 `json:"bottom"`
}

// SphereFile describes a single sphere
type SphereFile struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

func toVec(v [3]float64) core.Vec3[float64] {
	return core.NewVec3(v[0], v[1], v[2])
}

// ReadSceneFile reads and parses a JSON scene description
func ReadSceneFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &file, nil
}

// cameraConfig merges the file's camera fields over the default camera
func (f *File) cameraConfig() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	if f.Camera == nil {
		return config
	}

	override := renderer.CameraConfig{
		Width:          f.Camera.Width,
		AspectRatio:    f.Camera.AspectRatio,
		ViewportHeight: f.Camera.ViewportHeight,
		FocalLength:    f.Camera.FocalLength,
	}
	config = renderer.MergeCameraConfig(config, override)

	// An explicit origin may legitimately be (0,0,0)
	if f.Camera.Origin != nil {
		config.Origin = toVec(*f.Camera.Origin)
	}
	return config
}

// Build creates a Scene from the description
func (f *File) Build(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene(f.Name, f.cameraConfig(), cameraOverrides)
	s.Description = f.Description

	if f.Background != nil {
		s.TopColor = toVec(f.Background.Top)
		s.BottomColor = toVec(f.Background.Bottom)
	}

	for _, sphere := range f.Spheres {
		s.AddSphere(toVec(sphere.Center), sphere.Radius)
	}
	return s
}

// LoadSceneFile reads a JSON scene description and builds the scene
func LoadSceneFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	file, err := ReadSceneFile(path)
	if err != nil {
		return nil, err
	}
	return file.Build(cameraOverrides...), nil
}
