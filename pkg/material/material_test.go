package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

const tolerance = 1e-9

// fixedSampler returns the same value for every draw
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64   { return f.value }
func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.value, f.value) }
func (f fixedSampler) Get3D() core.Vec3 { return core.NewVec3(f.value, f.value, f.value) }

func assertDirection(t *testing.T, expected, actual core.Direction) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, "X")
	assert.InDelta(t, expected.Y, actual.Y, tolerance, "Y")
	assert.InDelta(t, expected.Z, actual.Z, tolerance, "Z")
}

func TestNewHitRecord_FrontFace(t *testing.T) {
	tests := []struct {
		name           string
		rayDirection   core.Direction
		outwardNormal  core.Direction
		expectedFront  bool
		expectedNormal core.Direction
	}{
		{
			name:           "front face hit",
			rayDirection:   core.NewDirection(0, 0, -1),
			outwardNormal:  core.NewDirection(0, 0, 1),
			expectedFront:  true,
			expectedNormal: core.NewDirection(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayDirection:   core.NewDirection(0, 0, 1),
			outwardNormal:  core.NewDirection(0, 0, 1),
			expectedFront:  false,
			expectedNormal: core.NewDirection(0, 0, -1),
		},
		{
			name:           "oblique back face",
			rayDirection:   core.NewDirection(1, 1, 0),
			outwardNormal:  core.NewDirection(0, 1, 0),
			expectedFront:  false,
			expectedNormal: core.NewDirection(0, -1, 0),
		},
	}

	lambert := NewLambert(core.NewColour(0.5, 0.5, 0.5))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewPoint(0, 0, 0), tt.rayDirection)
			hit := NewHitRecord(ray, 2.0, core.NewPoint(1, 2, 3), tt.outwardNormal, lambert)

			assert.Equal(t, tt.expectedFront, hit.FrontFace)
			assert.Equal(t, tt.expectedNormal, hit.Normal)
			assert.Less(t, hit.Normal.Dot(tt.rayDirection), 0.0, "normal must oppose the ray")
			assert.Equal(t, ray, hit.Ray)
			assert.Equal(t, 2.0, hit.T)
			assert.Equal(t, lambert, hit.Material)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "lambert", KindLambert.String())
	assert.Equal(t, "metal", KindMetal.String())
	assert.Equal(t, "dielectric", KindDielectric.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestConstructors(t *testing.T) {
	albedo := core.NewColour(0.1, 0.2, 0.3)

	lambert := NewLambert(albedo)
	assert.Equal(t, KindLambert, lambert.Kind())
	assert.Equal(t, albedo, lambert.Albedo())

	metal := NewMetal(albedo, 0.4)
	assert.Equal(t, KindMetal, metal.Kind())
	assert.Equal(t, 0.4, metal.Fuzz())

	glass := NewDielectric(1.5)
	assert.Equal(t, KindDielectric, glass.Kind())
	assert.Equal(t, 1.5, glass.RefractionIndex())
}
