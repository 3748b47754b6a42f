package renderer

import (
	"math"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// DefaultSeed seeds the per-row samplers when the builder is not given one
const DefaultSeed int64 = 1

// Field of view limits in degrees
const (
	minFieldOfView = 0.1
	maxFieldOfView = 179.9
)

// Camera generates rays for rendering. It is immutable once built; create
// one with NewCameraBuilder.
type Camera struct {
	center  core.Point
	forward core.Direction
	up      core.Direction
	left    core.Direction

	sensorWidth   int
	sensorHeight  int
	shutterLength int
	maxRayDepth   int

	focalDistance float64
	aperture      float64
	fieldOfView   float64

	jitter bool
	seed   int64
}

// Center returns the lens centre
func (c *Camera) Center() core.Point { return c.center }

// Basis returns the forward, up and left unit vectors
func (c *Camera) Basis() (forward, up, left core.Direction) {
	return c.forward, c.up, c.left
}

// SensorSize returns the image width and height in pixels
func (c *Camera) SensorSize() (width, height int) {
	return c.sensorWidth, c.sensorHeight
}

// ShutterLength returns the number of samples taken per pixel
func (c *Camera) ShutterLength() int { return c.shutterLength }

// MaxRayDepth returns the bounce limit per sample
func (c *Camera) MaxRayDepth() int { return c.maxRayDepth }

// Lens returns focal distance, aperture and vertical field of view in degrees
func (c *Camera) Lens() (focalDistance, aperture, fieldOfView float64) {
	return c.focalDistance, c.aperture, c.fieldOfView
}

// Seed returns the base seed for per-row samplers
func (c *Camera) Seed() int64 { return c.seed }

// GetRay generates the sample ray for pixel (x, y), where (0, 0) is the
// top-left pixel. The returned direction is unit length.
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	verticalExtent := math.Tan(c.fieldOfView*math.Pi/360.0) * c.focalDistance
	horizontalExtent := verticalExtent * (float64(c.sensorWidth) / float64(c.sensorHeight))

	var jitterX, jitterY float64
	if c.jitter {
		jitterX, jitterY = core.Jitter(sampler)
	}
	horizontalOffset := ((float64(x)+0.5+jitterX)/float64(c.sensorWidth))*2 - 1
	verticalOffset := ((float64(y)+0.5+jitterY)/float64(c.sensorHeight))*2 - 1

	// Depth of field: move the origin within the lens plane
	lensX, lensY := core.Jitter(sampler)
	origin := c.center.
		Add(c.up.Multiply(c.aperture * lensY)).
		Add(c.left.Multiply(c.aperture * lensX))

	target := c.center.
		Add(c.forward.Multiply(c.focalDistance)).
		Add(c.up.Multiply(verticalExtent * -verticalOffset)).
		Add(c.left.Multiply(horizontalExtent * -horizontalOffset))

	return core.NewRay(origin, origin.Towards(target).Unit())
}

// rowSeed derives an independent sampler seed for an image row
func (c *Camera) rowSeed(row int) int64 {
	return c.seed*1_000_003 + int64(row)
}
