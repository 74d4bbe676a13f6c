package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func vecNear(a, b core.Vec3[float64], tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_FindRayHit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, ok := sphere.FindRayHit(ray, 0, math.Inf(1))
	if ok {
		t.Errorf("Expected miss, but got hit at dist=%f", hit.Dist())
	}
}

func TestSphere_FindRayHit_OutsideAndInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5)

	tests := []struct {
		name            string
		rayOrigin       core.Point
		rayDirection    core.Vec3[float64]
		expectedDist    float64
		expectedOutside bool
		expectedNormal  core.Vec3[float64]
	}{
		{
			name:            "from camera origin",
			rayOrigin:       core.NewVec3(0, 0, 0),
			rayDirection:    core.NewVec3(0, 0, -1),
			expectedDist:    0.5,
			expectedOutside: true,
			expectedNormal:  core.NewVec3(0, 0, 1),
		},
		{
			name:            "from center along x",
			rayOrigin:       core.NewVec3(0, 0, -1),
			rayDirection:    core.NewVec3(1, 0, 0),
			expectedDist:    0.5,
			expectedOutside: false,
			expectedNormal:  core.NewVec3(-1, 0, 0),
		},
		{
			name:            "from center toward camera",
			rayOrigin:       core.NewVec3(0, 0, -1),
			rayDirection:    core.NewVec3(0, 0, 1),
			expectedDist:    0.5,
			expectedOutside: false,
			expectedNormal:  core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.rayOrigin, tt.rayDirection)
			hit, ok := sphere.FindRayHit(ray, 0, math.Inf(1))

			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.Dist()-tt.expectedDist) > 1e-9 {
				t.Errorf("Expected dist=%f, got dist=%f", tt.expectedDist, hit.Dist())
			}
			if hit.Outside() != tt.expectedOutside {
				t.Errorf("Expected outside %t, got %t", tt.expectedOutside, hit.Outside())
			}
			if !vecNear(hit.Normal(), tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal())
			}
			if hit.Normal().Dot(ray.Dir()) > 0 {
				t.Errorf("Expected normal to face against the ray, got %v", hit.Normal())
			}
		})
	}
}

func TestSphere_FindRayHit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, ok := sphere.FindRayHit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if !vecNear(hit.Point(), core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected hit point (1,0,0), got %v", hit.Point())
	}
}

func TestSphere_FindRayHit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name         string
		minDist      float64
		maxDist      float64
		expectHit    bool
		expectedDist float64
	}{
		{"full range takes near root", 0, math.Inf(1), true, 1},
		{"max bound before near root", 0, 0.5, false, 0},
		{"min bound past far root", 3.5, 1000, false, 0},
		{"near root clipped falls back to far root", 1.5, 1000, true, 3},
		{"min equals max at near root", 1, 1, true, 1},
		{"min equals max at far root", 3, 3, true, 3},
		{"min equals max between roots", 2, 2, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.FindRayHit(ray, tt.minDist, tt.maxDist)

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (dist=%f)", tt.expectHit, ok, hit.Dist())
			}
			if ok && math.Abs(hit.Dist()-tt.expectedDist) > 1e-9 {
				t.Errorf("Expected dist=%f, got dist=%f", tt.expectedDist, hit.Dist())
			}
		})
	}
}

func TestSphere_FindRayHit_FarRootIsInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, ok := sphere.FindRayHit(ray, 1.5, math.Inf(1))
	if !ok {
		t.Fatal("Expected far root hit, but got miss")
	}

	if hit.Outside() {
		t.Error("Expected far crossing to be reported as inside")
	}
	if !vecNear(hit.Normal(), core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected flipped normal (0,0,1), got %v", hit.Normal())
	}
}

func TestSphere_FindRayHit_Idempotent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.3, -0.2, -1.5), 0.7)
	ray := NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, -0.05, -1))

	first, ok1 := sphere.FindRayHit(ray, 0, math.Inf(1))
	second, ok2 := sphere.FindRayHit(ray, 0, math.Inf(1))

	if !ok1 || !ok2 {
		t.Fatal("Expected both queries to hit")
	}
	if first != second {
		t.Errorf("Expected identical results, got %+v and %+v", first, second)
	}
}

func TestSphere_FindRayHit_DegenerateRadius(t *testing.T) {
	ray := NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Zero radius only touches the center point
	hit, ok := NewSphere(core.NewVec3(0, 0, -2), 0).FindRayHit(ray, 0, math.Inf(1))
	if !ok || math.Abs(hit.Dist()-2) > 1e-9 {
		t.Errorf("Expected tangent hit at dist 2 for zero radius, got hit=%t dist=%f", ok, hit.Dist())
	}

	// A negative radius squares to the same quadratic
	hit, ok = NewSphere(core.NewVec3(0, 0, -2), -0.5).FindRayHit(ray, 0, math.Inf(1))
	if !ok || math.Abs(hit.Dist()-1.5) > 1e-9 {
		t.Errorf("Expected hit at dist 1.5 for negative radius, got hit=%t dist=%f", ok, hit.Dist())
	}
}
