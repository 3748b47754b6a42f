package geometry

import (
	"math"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// NewSphere creates a sphere. The radius is not validated: a negative radius
// keeps the same surface but turns the normal inwards, and a zero radius
// produces non-finite normals.
func NewSphere(center core.Point, radius float64) Geometry {
	return Geometry{
		kind:   KindSphere,
		center: center,
		radius: radius,
	}
}

// Center returns the sphere centre
func (g Geometry) Center() core.Point {
	return g.center
}

// Radius returns the signed sphere radius
func (g Geometry) Radius() float64 {
	return g.radius
}

// hitSphere solves the ray-sphere quadratic
func hitSphere(center core.Point, radius float64, ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := center.Towards(ray.Origin)

	// Quadratic equation coefficients: at² + 2(half_b)t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !inRange(root, tMin, tMax) {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if !inRange(root, tMin, tMax) {
			return Intersection{}, false
		}
	}

	point := ray.At(root)

	// Divide by the signed radius rather than normalising so that a negative
	// radius flips the normal
	return Intersection{
		T:             root,
		Point:         point,
		OutwardNormal: center.Towards(point).Divide(radius),
	}, true
}

// inRange reports whether t lies in the closed range [tMin, tMax]. NaN is
// never in range.
func inRange(t, tMin, tMax float64) bool {
	return t >= tMin && t <= tMax
}
