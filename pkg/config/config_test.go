package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Render)
	}{
		{"zero width", func(r *Render) { r.Width = 0 }},
		{"negative height", func(r *Render) { r.Height = -1 }},
		{"no samples", func(r *Render) { r.SamplesPerPixel = 0 }},
		{"no depth", func(r *Render) { r.MaxDepth = 0 }},
		{"negative workers", func(r *Render) { r.Workers = -2 }},
		{"missing scene", func(r *Render) { r.Scene = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad_KeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 64\nheight: 48\nscene: single\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, 48, c.Height)
	assert.Equal(t, "single", c.Scene)
	assert.Equal(t, Default().SamplesPerPixel, c.SamplesPerPixel)
	assert.Nil(t, c.Camera)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("max_depth: -1\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("width: [1, 2\n"), 0644))
	_, err = Load(garbled)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	c := Default()
	c.Seed = 77
	c.Camera = &Camera{
		Center:      Vec{1, 2, 3},
		LookAt:      Vec{0, 0, 0},
		Up:          Vec{0, 1, 0},
		Aperture:    0.1,
		FieldOfView: 30,
	}

	require.NoError(t, Save(path, c))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestCamera_Build(t *testing.T) {
	c := Camera{
		Center:      Vec{0, 0, 5},
		LookAt:      Vec{0, 0, 0},
		Up:          Vec{0, 1, 1}, // tilted, made perpendicular by Build
		Aperture:    0.2,
		FieldOfView: 45,
	}
	r := Default()
	r.Width, r.Height, r.Seed = 32, 16, 9

	camera := c.Build(r)

	forward, up, left := camera.Basis()
	assert.InDelta(t, -1.0, forward.Z, 1e-9)
	assert.InDelta(t, 1.0, up.Y, 1e-9)
	assert.InDelta(t, 0.0, up.Dot(forward), 1e-9)
	assert.InDelta(t, -1.0, left.X, 1e-9)

	focal, aperture, fov := camera.Lens()
	assert.InDelta(t, 5.0, focal, 1e-9, "focuses on the look-at point")
	assert.Equal(t, 0.2, aperture)
	assert.Equal(t, 45.0, fov)

	width, height := camera.SensorSize()
	assert.Equal(t, 32, width)
	assert.Equal(t, 16, height)
	assert.Equal(t, int64(9), camera.Seed())
	assert.Equal(t, core.NewPoint(0, 0, 5), camera.Center())
}

func TestCamera_BuildKeepsExplicitFocalDistance(t *testing.T) {
	c := Camera{Center: Vec{0, 0, 0}, LookAt: Vec{0, 0, -4}, Up: Vec{0, 1, 0}, FocalDistance: 1.5, FieldOfView: 60}
	focal, _, _ := c.Build(Default()).Lens()
	assert.Equal(t, 1.5, focal)
}
