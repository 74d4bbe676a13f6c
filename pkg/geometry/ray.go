package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Ray is a half-line with a position and a unit direction
type Ray struct {
	pos core.Point
	dir core.Vec3[float64]
}

// NewRay creates a new ray; the direction is normalized once, here
func NewRay(pos core.Point, dir core.Vec3[float64]) Ray {
	return Ray{pos: pos, dir: dir.Normalize()}
}

// Pos returns the origin of the ray
func (r Ray) Pos() core.Point {
	return r.pos
}

// Dir returns the unit direction of the ray
func (r Ray) Dir() core.Vec3[float64] {
	return r.dir
}

// At returns the point at distance t along the ray. Negative t lies behind the origin.
func (r Ray) At(t float64) core.Point {
	return r.pos.Add(r.dir.Multiply(t))
}

// RayHit contains information about a ray-object intersection
type RayHit struct {
	point   core.Point         // Point of intersection
	normal  core.Vec3[float64] // Surface normal, always facing against the ray
	dist    float64            // Distance along the ray
	outside bool               // Whether the ray struck the outside of the surface
}

// NewRayHit builds a hit record from the raw geometric normal at ray.At(dist).
// The stored normal is flipped when the raw normal does not oppose the ray.
func NewRayHit(ray Ray, dist float64, normal core.Vec3[float64]) RayHit {
	outside := ray.Dir().Dot(normal) < 0
	if !outside {
		normal = normal.Negate()
	}

	return RayHit{
		point:   ray.At(dist),
		normal:  normal,
		dist:    dist,
		outside: outside,
	}
}

// Point returns the point of intersection
func (h RayHit) Point() core.Point {
	return h.point
}

// Normal returns the surface normal facing against the incoming ray
func (h RayHit) Normal() core.Vec3[float64] {
	return h.normal
}

// Dist returns the distance along the ray to the intersection
func (h RayHit) Dist() float64 {
	return h.dist
}

// Outside reports whether the ray is incident on the outside of the surface
func (h RayHit) Outside() bool {
	return h.outside
}

// Hit is implemented by anything that can be tested for ray intersection.
// FindRayHit returns the nearest hit with minDist <= dist <= maxDist, or false
// when there is none. Implementations must not mutate themselves.
type Hit interface {
	FindRayHit(ray Ray, minDist, maxDist float64) (RayHit, bool)
}
