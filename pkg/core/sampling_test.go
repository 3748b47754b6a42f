package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomDirectionRange(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		d := RandomDirection(sampler)
		for axis := 0; axis < 3; axis++ {
			assert.GreaterOrEqual(t, d.Index(axis), -1.0)
			assert.Less(t, d.Index(axis), 1.0)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		assert.Less(t, RandomInUnitSphere(sampler).LengthSquared(), 1.0)
	}
}

func TestRandomInHemisphere(t *testing.T) {
	normals := []Direction{
		NewDirection(0, 1, 0),
		NewDirection(0, 0, -1),
		NewDirection(1, -1, 1).Unit(),
	}
	sampler := NewSeededSampler(3)

	for _, normal := range normals {
		for i := 0; i < 200; i++ {
			d := normal.RandomInHemisphere(sampler)
			assert.Greater(t, d.Dot(normal), 0.0)
			assert.InDelta(t, 1.0, d.Length(), tolerance)
		}
	}
}

func TestJitterRange(t *testing.T) {
	sampler := NewSeededSampler(11)
	for i := 0; i < 500; i++ {
		x, y := Jitter(sampler)
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
		assert.GreaterOrEqual(t, y, -1.0)
		assert.Less(t, y, 1.0)
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Get3D(), b.Get3D())
	}
}
