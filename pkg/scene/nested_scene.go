package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewNestedScene creates a scene whose spheres are split into nested groups,
// including a pair that overlap along the view axis
func NewNestedScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("nested", renderer.DefaultCameraConfig(), cameraOverrides)
	s.Description = "Overlapping spheres organised in nested groups"

	overlapping := geometry.NewObjects()
	overlapping.Add(geometry.NewSphere(core.NewVec3(0.15, 0, -1.4), 0.45))
	overlapping.Add(geometry.NewSphere(core.NewVec3(-0.15, 0.05, -1.1), 0.35))

	satellites := geometry.NewObjects()
	satellites.Add(geometry.NewSphere(core.NewVec3(-1.1, -0.25, -1.3), 0.25))
	satellites.Add(geometry.NewSphere(core.NewVec3(1.1, -0.25, -1.3), 0.25))
	satellites.Add(overlapping)

	s.AddGroup(satellites)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100)

	return s
}
