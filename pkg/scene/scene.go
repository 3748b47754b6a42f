package scene

import (
	"errors"

	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/log"
	"github.com/df07/go-lens-pathtracer/pkg/material"
)

var logger = log.New("scene")

// Errors returned while building scenes
var (
	ErrUnknownScene    = errors.New("unknown scene")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrInvalidMaterial = errors.New("invalid material")
	ErrUnknownShape    = errors.New("unknown shape")
	ErrInvalidSphere   = errors.New("invalid sphere")
)

// Scene is an unordered collection of objects searched linearly
type Scene struct {
	objects []Object
}

// NewScene creates a scene holding the given objects
func NewScene(objects ...Object) *Scene {
	s := &Scene{}
	s.Add(objects...)
	return s
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...Object) {
	s.objects = append(s.objects, objects...)
}

// Clear removes every object
func (s *Scene) Clear() {
	s.objects = s.objects[:0]
}

// Len returns the number of objects
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the objects in insertion order
func (s *Scene) Objects() []Object {
	return s.objects
}

// FindIntersection returns the nearest hit in [tMin, tMax]. Every object is
// tested against the same range; on equal distances the first object wins.
func (s *Scene) FindIntersection(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false

	for _, object := range s.objects {
		hit, isHit := object.Hit(ray, tMin, tMax)
		if isHit && (!hitAnything || hit.T < closest.T) {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}
