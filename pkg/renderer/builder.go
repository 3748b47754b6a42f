package renderer

import (
	"math"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// Camera construction is staged: each stage type only exposes the method
// that leads to the next one, so an incomplete camera cannot be built.
//
//	camera := NewCameraBuilder().
//		Position(center, forward, up).
//		Sensor(width, height, samples, depth).
//		Lens(focalDistance, aperture, fov).
//		Build()

// PositionStage expects the camera pose
type PositionStage struct {
	camera Camera
}

// SensorStage expects the sensor resolution and sampling parameters
type SensorStage struct {
	camera Camera
}

// LensStage expects the lens parameters
type LensStage struct {
	camera Camera
}

// CompleteStage holds a fully configured camera
type CompleteStage struct {
	camera Camera
}

// NewCameraBuilder starts a camera description
func NewCameraBuilder() PositionStage {
	return PositionStage{camera: Camera{jitter: true, seed: DefaultSeed}}
}

// Position sets the lens centre and orientation. forward and up are
// normalised; left is up x forward and is not re-orthogonalised, so an up
// vector that is not perpendicular to forward shears the viewport.
func (b PositionStage) Position(center core.Point, forward, up core.Direction) SensorStage {
	c := b.camera
	c.center = center
	c.forward = forward.Unit()
	c.up = up.Unit()
	c.left = up.Cross(forward).Unit()
	return SensorStage{camera: c}
}

// Sensor sets the image size, the samples per pixel and the bounce limit
func (b SensorStage) Sensor(width, height, shutterLength, maxRayDepth int) LensStage {
	c := b.camera
	c.sensorWidth = width
	c.sensorHeight = height
	c.shutterLength = shutterLength
	c.maxRayDepth = maxRayDepth
	return LensStage{camera: c}
}

// Lens sets focal distance, aperture and vertical field of view in degrees.
// Negative distances are clamped to zero and the field of view to
// [0.1, 179.9].
func (b LensStage) Lens(focalDistance, aperture, fieldOfView float64) CompleteStage {
	c := b.camera
	c.focalDistance = math.Max(focalDistance, 0)
	c.aperture = math.Max(aperture, 0)
	c.fieldOfView = math.Min(math.Max(fieldOfView, minFieldOfView), maxFieldOfView)
	return CompleteStage{camera: c}
}

// WithSeed sets the base seed for sampling
func (b CompleteStage) WithSeed(seed int64) CompleteStage {
	b.camera.seed = seed
	return b
}

// WithoutJitter disables per-pixel anti-aliasing jitter
func (b CompleteStage) WithoutJitter() CompleteStage {
	b.camera.jitter = false
	return b
}

// Build returns the configured camera
func (b CompleteStage) Build() *Camera {
	c := b.camera
	return &c
}
