package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Hits        int           // Primary rays that struck the world
	Misses      int           // Primary rays that fell through to the sky
	Duration    time.Duration // Wall time spent in the pixel loop
}

// HitRatio returns the fraction of pixels whose primary ray hit something
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}

// add records one pixel
func (s *RenderStats) add(hit bool) {
	s.TotalPixels++
	if hit {
		s.Hits++
	} else {
		s.Misses++
	}
}
