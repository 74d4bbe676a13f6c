package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Description  string
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.Objects // Objects in the scene
	TopColor     core.Color        // Sky color straight up
	BottomColor  core.Color        // Sky color straight down
}

// DefaultTopColor and DefaultBottomColor form the blue-to-white sky
var (
	DefaultTopColor    = core.NewVec3(0.5, 0.7, 1.0)
	DefaultBottomColor = core.NewVec3(1.0, 1.0, 1.0)
)

// newScene creates an empty scene, applying any camera overrides to the given defaults
func newScene(name string, defaults renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        geometry.NewObjects(),
		TopColor:     DefaultTopColor,
		BottomColor:  DefaultBottomColor,
	}
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Point, radius float64) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius)
	s.World.Add(sphere)
	return sphere
}

// AddGroup adds a nested group of shapes to the world
func (s *Scene) AddGroup(group *geometry.Objects) {
	s.World.Add(group)
}

// GetPrimitiveCount returns the total number of spheres in the scene, including nested groups
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Leaves()
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetCameraConfig returns the configuration the camera was built from
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetWorld returns the aggregate of every shape in the scene
func (s *Scene) GetWorld() geometry.Hit {
	return s.World
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Color) {
	return s.TopColor, s.BottomColor
}
