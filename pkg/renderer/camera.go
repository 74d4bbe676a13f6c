package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// CameraConfig contains the parameters for a viewport camera
type CameraConfig struct {
	Origin         core.Point // Eye position
	Width          int        // Image width in pixels
	AspectRatio    float64    // Width / height
	ViewportHeight float64    // Viewport height in world units
	FocalLength    float64    // Distance from origin to viewport along -Z
}

// DefaultCameraConfig returns the 16:9 camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		Width:          400,
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Origin != (core.Point{}) {
		result.Origin = override.Origin
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight > 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.FocalLength > 0 {
		result.FocalLength = override.FocalLength
	}
	return result
}

// Height returns the image height implied by width and aspect ratio
func (c CameraConfig) Height() int {
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Camera generates rays through a flat viewport
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3[float64]
	vertical        core.Vec3[float64]
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1,
// with (0, 0) the lower left corner of the viewport
func (c *Camera) GetRay(u, v float64) geometry.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return geometry.NewRay(c.origin, direction)
}
