package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	center core.Point
	radius float64
}

// NewSphere creates a new sphere. The radius is not validated.
func NewSphere(center core.Point, radius float64) *Sphere {
	return &Sphere{center: center, radius: radius}
}

// Center returns the center of the sphere
func (s *Sphere) Center() core.Point {
	return s.center
}

// Radius returns the radius of the sphere
func (s *Sphere) Radius() float64 {
	return s.radius
}

// FindRayHit solves for the point at which the ray meets the sphere:
//
//	t²(d⋅d) + 2t d⋅(P−C) + (P−C)⋅(P−C) − r² = 0
//
// with P the ray position, d its direction, C the center and r the radius.
func (s *Sphere) FindRayHit(ray Ray, minDist, maxDist float64) (RayHit, bool) {
	dir := ray.Dir()
	oc := ray.Pos().Subtract(s.center)

	// b = 2h
	a := dir.Dot(dir)
	h := dir.Dot(oc)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return RayHit{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-h - sqrtD) / a
	if root < minDist || root > maxDist {
		root = (-h + sqrtD) / a
		if root < minDist || root > maxDist {
			return RayHit{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.center).Normalize()

	return NewRayHit(ray, root, outwardNormal), true
}
