package core

import (
	"math/rand"
)

// Vec2 holds a pair of samples
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator. It is not safe for
// concurrent use; give every goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a fresh generator for seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// Jitter returns a pair of independent values in [-1, 1)
func Jitter(sampler Sampler) (float64, float64) {
	s := sampler.Get2D()
	return s.X*2 - 1, s.Y*2 - 1
}

// RandomDirection returns a direction with every component in [-1, 1)
func RandomDirection(sampler Sampler) Direction {
	s := sampler.Get3D()
	return NewDirection(s.X*2-1, s.Y*2-1, s.Z*2-1)
}

// RandomInUnitSphere rejection-samples the [-1, 1)^3 cube until the point
// lies strictly inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Direction {
	for {
		d := RandomDirection(sampler)
		if d.LengthSquared() < 1 {
			return d
		}
	}
}

// RandomInHemisphere returns a unit direction on the side of d's hemisphere
// (positive dot product with d)
func (d Direction) RandomInHemisphere(sampler Sampler) Direction {
	onUnitSphere := RandomInUnitSphere(sampler).Unit()
	if onUnitSphere.Dot(d) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomColour returns a colour with every channel in [0, 1)
func RandomColour(sampler Sampler) Colour {
	return Colour(sampler.Get3D())
}
