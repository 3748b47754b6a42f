package config

import (
	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/renderer"
)

// Vec is a YAML-friendly [x, y, z] triple
type Vec [3]float64

// Point returns v as a position
func (v Vec) Point() core.Point { return core.NewPoint(v[0], v[1], v[2]) }

// Direction returns v as a direction
func (v Vec) Direction() core.Direction { return core.NewDirection(v[0], v[1], v[2]) }

// Camera describes a look-at camera
type Camera struct {
	Center        Vec     `yaml:"center"`
	LookAt        Vec     `yaml:"look_at"`
	Up            Vec     `yaml:"up"`
	FocalDistance float64 `yaml:"focal_distance"` // 0 focuses on LookAt
	Aperture      float64 `yaml:"aperture"`
	FieldOfView   float64 `yaml:"field_of_view"` // vertical, degrees
}

// Build creates a renderer camera for the render settings. Up is made
// perpendicular to the view direction first.
func (c Camera) Build(r Render) *renderer.Camera {
	forward := c.Center.Point().Towards(c.LookAt.Point())
	left := c.Up.Direction().Cross(forward)
	up := forward.Cross(left)

	focalDistance := c.FocalDistance
	if focalDistance <= 0 {
		focalDistance = forward.Length()
	}

	return renderer.NewCameraBuilder().
		Position(c.Center.Point(), forward, up).
		Sensor(r.Width, r.Height, r.SamplesPerPixel, r.MaxDepth).
		Lens(focalDistance, c.Aperture, c.FieldOfView).
		WithSeed(r.Seed).
		Build()
}
