package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-lens-pathtracer/pkg/config"
	"github.com/df07/go-lens-pathtracer/pkg/material"
)

func TestLookup(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			found, err := Lookup(p.Name)
			require.NoError(t, err)
			assert.Equal(t, p.Name, found.Name)
			assert.NotEmpty(t, found.Description)
			assert.Positive(t, found.Build(1).Len())
		})
	}

	_, err := Lookup("cornell-box")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestCoverScene(t *testing.T) {
	s := NewCoverScene(42)
	objects := s.Objects()

	// Ground first, three feature spheres last, small spheres in between
	require.GreaterOrEqual(t, len(objects), 4)
	assert.Equal(t, 1000.0, objects[0].Geometry.Radius())
	for _, o := range objects[len(objects)-3:] {
		assert.Equal(t, 1.0, o.Geometry.Radius())
	}

	small := objects[1 : len(objects)-3]
	assert.LessOrEqual(t, len(small), 22*22)
	for _, o := range small {
		assert.Equal(t, 0.2, o.Geometry.Radius())
		assert.Equal(t, 0.2, o.Geometry.Center().Y)

		m := o.Material
		switch m.Kind() {
		case material.KindMetal:
			assert.GreaterOrEqual(t, m.Albedo().X, 0.5)
			assert.Less(t, m.Fuzz(), 0.5)
		case material.KindDielectric:
			assert.Equal(t, 1.5, m.RefractionIndex())
		}
	}
}

func TestCoverScene_SeedIsReproducible(t *testing.T) {
	assert.Equal(t, NewCoverScene(7).Objects(), NewCoverScene(7).Objects())
	assert.NotEqual(t, NewCoverScene(7).Objects(), NewCoverScene(8).Objects())
}

func TestThreeSpheresScene_HollowGlass(t *testing.T) {
	objects := NewThreeSpheresScene().Objects()
	require.Len(t, objects, 5)

	outer, inner := objects[2], objects[3]
	assert.Equal(t, outer.Geometry.Center(), inner.Geometry.Center())
	assert.Negative(t, inner.Geometry.Radius())
	assert.Equal(t, material.KindDielectric, outer.Material.Kind())
	assert.Equal(t, material.KindDielectric, inner.Material.Kind())
}

func TestOpen(t *testing.T) {
	s, camera, err := Open("single", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, config.Vec{0, 0, -1}, camera.LookAt)

	_, _, err = Open("missing", 1)
	assert.ErrorIs(t, err, ErrUnknownScene)
}
