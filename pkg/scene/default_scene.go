package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewDefaultScene creates the classic scene: one sphere resting on a huge ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("default", renderer.DefaultCameraConfig(), cameraOverrides)
	s.Description = "Sphere on a ground sphere under a sky gradient"

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100)

	return s
}
