package geometry

import (
	"fmt"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// Kind enumerates the supported primitive shapes
type Kind uint8

const (
	// KindSphere is a sphere described by a centre and a (signed) radius
	KindSphere Kind = iota
)

// String returns the name of the shape kind
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Geometry is a primitive shape value. The set of shapes is closed, so the
// variant is selected by Kind and every operation switches on it.
type Geometry struct {
	kind   Kind
	center core.Point
	radius float64
}

// Intersection is the raw result of a ray-geometry test
type Intersection struct {
	T             float64        // Distance along the ray
	Point         core.Point     // Point of intersection
	OutwardNormal core.Direction // Geometric normal pointing out of the shape
}

// Kind returns the shape variant
func (g Geometry) Kind() Kind {
	return g.kind
}

// Hit tests the ray against the shape for a distance within [tMin, tMax]
func (g Geometry) Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	switch g.kind {
	case KindSphere:
		return hitSphere(g.center, g.radius, ray, tMin, tMax)
	}
	panic(fmt.Sprintf("geometry: hit on unknown shape %s", g.kind))
}
