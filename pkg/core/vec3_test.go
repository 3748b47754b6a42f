package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestDirection_Unit(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
	}{
		{"axis aligned", NewDirection(0, 0, -5)},
		{"diagonal", NewDirection(1, 1, 1)},
		{"tiny", NewDirection(1e-6, -2e-6, 3e-6)},
		{"large", NewDirection(1e6, 4e5, -7e5)},
		{"already unit", NewDirection(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := tt.direction.Unit()
			assert.InDelta(t, 1.0, unit.Length(), tolerance)
			// Same orientation as the input
			assert.Greater(t, unit.Dot(tt.direction), 0.0)
		})
	}
}

func TestDirection_UnitOfZeroIsNaN(t *testing.T) {
	unit := NewDirection(0, 0, 0).Unit()
	assert.True(t, math.IsNaN(unit.X))
	assert.True(t, math.IsNaN(unit.Y))
	assert.True(t, math.IsNaN(unit.Z))
}

func TestDirection_Reflect(t *testing.T) {
	tests := []struct {
		name   string
		v      Direction
		normal Direction
	}{
		{"head on", NewDirection(0, -1, 0), NewDirection(0, 1, 0)},
		{"45 degrees", NewDirection(1, -1, 0), NewDirection(0, 1, 0)},
		{"grazing", NewDirection(10, -0.01, 3), NewDirection(0, 1, 0)},
		{"tilted normal", NewDirection(0.3, -0.2, -0.9), NewDirection(1, 1, 1).Unit()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Less(t, tt.v.Dot(tt.normal), 0.0, "test setup: v must face the normal")
			r := tt.v.Reflect(tt.normal)
			assert.InDelta(t, -tt.v.Dot(tt.normal), r.Dot(tt.normal), tolerance)
			assert.InDelta(t, tt.v.Length(), r.Length(), tolerance)
		})
	}
}

func TestDirection_RefractFollowsSnell(t *testing.T) {
	normal := NewDirection(0, 1, 0)
	incoming := NewDirection(1, -1, 0).Unit()
	ratio := 1.0 / 1.5

	refracted := incoming.Refract(normal, ratio)

	sinIn := incoming.Cross(normal).Length()
	sinOut := refracted.Unit().Cross(normal).Length()
	assert.InDelta(t, ratio*sinIn, sinOut, tolerance)
	assert.InDelta(t, 1.0, refracted.Length(), tolerance)
	assert.Less(t, refracted.Y, 0.0, "refracted ray continues through the surface")
}

func TestDirection_RefractMatchedIndexIsStraight(t *testing.T) {
	normal := NewDirection(0, 0, 1)
	incoming := NewDirection(0.6, 0, -0.8)

	refracted := incoming.Refract(normal, 1.0)
	assert.InDelta(t, incoming.X, refracted.X, tolerance)
	assert.InDelta(t, incoming.Y, refracted.Y, tolerance)
	assert.InDelta(t, incoming.Z, refracted.Z, tolerance)
}

func TestDirection_Cross(t *testing.T) {
	x := NewDirection(1, 0, 0)
	y := NewDirection(0, 1, 0)
	assert.Equal(t, NewDirection(0, 0, 1), x.Cross(y))
	assert.Equal(t, NewDirection(0, 0, -1), y.Cross(x))
}

func TestPoint_TowardsAndAdd(t *testing.T) {
	from := NewPoint(1, 2, 3)
	to := NewPoint(4, 6, 3)

	d := from.Towards(to)
	assert.Equal(t, NewDirection(3, 4, 0), d)
	assert.InDelta(t, 5.0, d.Length(), tolerance)
	assert.Equal(t, to, from.Add(d))
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{"exact zero", NewVec3(0, 0, 0), true},
		{"round-off", NewVec3(1e-17, -1e-17, 0), true},
		{"one component set", NewVec3(0, 1e-10, 0), false},
		{"unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.vector.IsZero())
			assert.Equal(t, tt.expected, Direction(tt.vector).IsZero())
		})
	}
}

func TestIndex(t *testing.T) {
	c := NewColour(0.1, 0.2, 0.3)
	assert.Equal(t, 0.1, c.Index(0))
	assert.Equal(t, 0.2, c.Index(1))
	assert.Equal(t, 0.3, c.Index(2))

	p := NewPoint(7, 8, 9)
	assert.Equal(t, 9.0, p.Index(2))

	assert.Panics(t, func() { c.Index(3) })
	assert.Panics(t, func() { NewDirection(1, 2, 3).Index(-1) })
}

func TestColour_LinearToGamma(t *testing.T) {
	c := NewColour(0.25, 1, 0).LinearToGamma()
	assert.Equal(t, NewColour(0.5, 1, 0), c)
}

func TestColour_AttenuateAndLerp(t *testing.T) {
	a := NewColour(0.5, 0.5, 1)
	b := NewColour(0.2, 1, 0.5)
	assert.Equal(t, NewColour(0.1, 0.5, 0.5), a.Attenuate(b))

	mid := White.Lerp(NewColour(0.5, 0.7, 1.0), 0.5)
	assert.InDelta(t, 0.75, mid.X, tolerance)
	assert.InDelta(t, 0.85, mid.Y, tolerance)
	assert.InDelta(t, 1.0, mid.Z, tolerance)
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint(1, 0, 0), NewDirection(0, 2, 0))
	assert.Equal(t, NewPoint(1, 3, 0), ray.At(1.5))

	unit := ray.UnitRay()
	assert.Equal(t, ray.Origin, unit.Origin)
	assert.Equal(t, NewDirection(0, 1, 0), unit.Direction)
}
