package scene

import (
	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/geometry"
	"github.com/df07/go-lens-pathtracer/pkg/material"
)

// Object pairs one shape with the material covering it
type Object struct {
	Geometry geometry.Geometry
	Material material.Material
}

// NewObject creates an object from a shape and a material
func NewObject(g geometry.Geometry, m material.Material) Object {
	return Object{Geometry: g, Material: m}
}

// NewSphereObject creates a sphere object
func NewSphereObject(center core.Point, radius float64, m material.Material) Object {
	return NewObject(geometry.NewSphere(center, radius), m)
}

// Hit tests the ray against the object's shape and builds the hit record
func (o Object) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	hit, isHit := o.Geometry.Hit(ray, tMin, tMax)
	if !isHit {
		return material.HitRecord{}, false
	}
	return material.NewHitRecord(ray, hit.T, hit.Point, hit.OutwardNormal, o.Material), true
}
