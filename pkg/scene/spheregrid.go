package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewSphereGridScene creates a scene with a grid of small spheres above the ground
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.Origin = core.NewVec3(0, 0.4, 1.5) // Step back to fit the grid
	defaultCameraConfig.FocalLength = 1.2

	s := newScene("spheregrid", defaultCameraConfig, cameraOverrides)
	s.Description = "Five by three grid of spheres"

	const (
		columns = 5
		rows    = 3
		spacing = 0.6
		radius  = 0.22
	)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := (float64(col) - float64(columns-1)/2) * spacing
			z := -1 - float64(row)*spacing
			s.AddSphere(core.NewVec3(x, radius-0.5, z), radius)
		}
	}

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100)

	return s
}
