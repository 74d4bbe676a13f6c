package renderer

import (
	"context"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetCameraConfig() CameraConfig
	GetWorld() geometry.Hit
	GetBackgroundColors() (topColor, bottomColor core.Color)
}

// BandResult is passed to the RenderRows callback after each band of rows
type BandResult struct {
	Image     *image.RGBA     // Image rendered so far; rows below Bounds are still empty
	Bounds    image.Rectangle // Rows finished by this band
	RowsDone  int
	TotalRows int
	Stats     RenderStats // Cumulative statistics
}

// IsLast reports whether this band completed the image
func (b BandResult) IsLast() bool {
	return b.RowsDone == b.TotalRows
}

// Raytracer casts one primary ray per pixel into a scene
type Raytracer struct {
	scene  Scene
	width  int
	height int
	logger core.Logger
}

// NewRaytracer creates a new raytracer sized from the scene's camera config
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	config := scene.GetCameraConfig()
	return &Raytracer{
		scene:  scene,
		width:  config.Width,
		height: config.Height(),
		logger: logger,
	}
}

// Size returns the output image dimensions
func (rt *Raytracer) Size() (width, height int) {
	return rt.width, rt.height
}

// RayColor returns the color seen along a primary ray
func (rt *Raytracer) RayColor(ray geometry.Ray) core.Color {
	c, _ := rt.shade(ray)
	return c
}

// shade visualizes the surface normal of a hit, or falls back to the sky gradient
func (rt *Raytracer) shade(ray geometry.Ray) (core.Color, bool) {
	if hit, ok := rt.scene.GetWorld().FindRayHit(ray, 0, math.Inf(1)); ok {
		return hit.Normal().Add(core.NewVec3(1, 1, 1)).Divide(2), true
	}
	return rt.backgroundGradient(ray), false
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(ray geometry.Ray) core.Color {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	// t = 0 at y = -1, t = 1 at y = 1
	t := (ray.Dir().Y + 1) / 2
	return bottomColor.Lerp(topColor, t)
}

// ColorToRGBA converts a color in [0, 1] to 8-bit RGBA.
// Out-of-range components are clamped; NaN components become 0.
func ColorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: channelToByte(c.X),
		G: channelToByte(c.Y),
		B: channelToByte(c.Z),
		A: 255,
	}
}

// channelToByte clamps one color channel to [0, 1] and scales it to 0-255
func channelToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(min(1.0, max(0.0, v)) * 255.999)
}

// screenCoord maps a pixel index to [0, 1]; a single-pixel axis maps to 0
func screenCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// PixelRay returns the primary ray through image pixel (x, y), with y = 0 the top row
func (rt *Raytracer) PixelRay(x, y int) geometry.Ray {
	return rt.scene.GetCamera().GetRay(screenCoord(x, rt.width), screenCoord(rt.height-1-y, rt.height))
}

// Inspect traces the primary ray through pixel (x, y) and reports what it hit
func (rt *Raytracer) Inspect(x, y int) (geometry.RayHit, core.Color, bool) {
	ray := rt.PixelRay(x, y)
	hit, ok := rt.scene.GetWorld().FindRayHit(ray, 0, math.Inf(1))
	return hit, rt.RayColor(ray), ok
}

// renderRow renders image row y, which is viewport row height-1-y
func (rt *Raytracer) renderRow(img *image.RGBA, camera *Camera, y int, stats *RenderStats) {
	v := screenCoord(rt.height-1-y, rt.height)
	for i := 0; i < rt.width; i++ {
		u := screenCoord(i, rt.width)
		c, hit := rt.shade(camera.GetRay(u, v))
		stats.add(hit)
		img.SetRGBA(i, y, ColorToRGBA(c))
	}
}

// RenderPass renders the whole image in one go
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()

	var stats RenderStats
	start := time.Now()
	for y := 0; y < rt.height; y++ {
		rt.renderRow(img, camera, y, &stats)
	}
	stats.Duration = time.Since(start)

	rt.logger.Printf("Rendered %dx%d in %v (%d hits, %d misses)\n",
		rt.width, rt.height, stats.Duration, stats.Hits, stats.Misses)
	return img, stats
}

// RenderRows renders the image top to bottom in bands of bandHeight rows,
// calling onBand after each band. It stops early if ctx is cancelled or the
// callback returns an error.
func (rt *Raytracer) RenderRows(ctx context.Context, bandHeight int, onBand func(BandResult) error) (*image.RGBA, RenderStats, error) {
	if bandHeight <= 0 {
		bandHeight = rt.height
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()

	var stats RenderStats
	start := time.Now()

	for top := 0; top < rt.height; top += bandHeight {
		if err := ctx.Err(); err != nil {
			rt.logger.Printf("Render cancelled after %d of %d rows\n", top, rt.height)
			return img, stats, err
		}

		bottom := min(top+bandHeight, rt.height)
		for y := top; y < bottom; y++ {
			rt.renderRow(img, camera, y, &stats)
		}
		stats.Duration = time.Since(start)

		if onBand == nil {
			continue
		}
		band := BandResult{
			Image:     img,
			Bounds:    image.Rect(0, top, rt.width, bottom),
			RowsDone:  bottom,
			TotalRows: rt.height,
			Stats:     stats,
		}
		if err := onBand(band); err != nil {
			return img, stats, err
		}
	}

	rt.logger.Printf("Rendered %dx%d in %v (%d hits, %d misses)\n",
		rt.width, rt.height, stats.Duration, stats.Hits, stats.Misses)
	return img, stats, nil
}
