package renderer

import "testing"

func TestRenderStats_HitRatio(t *testing.T) {
	var stats RenderStats
	if stats.HitRatio() != 0 {
		t.Errorf("Expected 0 ratio for empty stats, got %f", stats.HitRatio())
	}

	stats.add(true)
	stats.add(false)
	stats.add(true)
	stats.add(true)

	if stats.TotalPixels != 4 || stats.Hits != 3 || stats.Misses != 1 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.HitRatio() != 0.75 {
		t.Errorf("Expected ratio 0.75, got %f", stats.HitRatio())
	}
}
