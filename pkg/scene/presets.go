package scene

import (
	"fmt"

	"github.com/df07/go-lens-pathtracer/pkg/config"
	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/material"
)

// Preset is a built-in scene together with the camera that frames it
type Preset struct {
	Name        string
	Description string
	Camera      config.Camera
	Build       func(seed int64) *Scene // seed drives any random placement
}

var presets = []Preset{
	{
		Name:        "cover",
		Description: "Field of small random spheres around three large ones",
		Camera: config.Camera{
			Center:        config.Vec{13, 2, 3},
			LookAt:        config.Vec{0, 0, 0},
			Up:            config.Vec{0, 1, 0},
			FocalDistance: 10,
			Aperture:      0.125,
			FieldOfView:   20,
		},
		Build: NewCoverScene,
	},
	{
		Name:        "three-spheres",
		Description: "Diffuse, hollow glass and fuzzy metal spheres on a ground sphere",
		Camera: config.Camera{
			Center:      config.Vec{-2, 2, 1},
			LookAt:      config.Vec{0, 0, -1},
			Up:          config.Vec{0, 1, 0},
			Aperture:    0.05,
			FieldOfView: 30,
		},
		Build: func(int64) *Scene { return NewThreeSpheresScene() },
	},
	{
		Name:        "single",
		Description: "One grey diffuse sphere in front of the camera",
		Camera: config.Camera{
			Center:      config.Vec{0, 0, 0},
			LookAt:      config.Vec{0, 0, -1},
			Up:          config.Vec{0, 1, 0},
			FieldOfView: 90,
		},
		Build: func(int64) *Scene { return NewSingleSphereScene() },
	},
}

// Presets returns every built-in scene
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup finds a built-in scene by name
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// NewCoverScene scatters small spheres over a large ground sphere, leaving
// room around the three feature spheres.
func NewCoverScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)
	s := NewScene(NewSphereObject(core.NewPoint(0, -1000, 0), 1000, material.NewLambert(core.NewColour(0.5, 0.5, 0.5))))

	clearing := core.NewPoint(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewPoint(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Towards(clearing).Length() <= 0.9 {
				continue
			}
			s.Add(NewSphereObject(center, 0.2, randomMaterial(sampler)))
		}
	}

	s.Add(
		NewSphereObject(core.NewPoint(0, 1, 0), 1, material.NewDielectric(1.5)),
		NewSphereObject(core.NewPoint(-4, 1, 0), 1, material.NewLambert(core.NewColour(0.4, 0.2, 0.1))),
		NewSphereObject(core.NewPoint(4, 1, 0), 1, material.NewMetal(core.NewColour(0.7, 0.6, 0.5), 0)),
	)
	return s
}

// randomMaterial picks 85% diffuse, 5% metal and 10% glass
func randomMaterial(sampler core.Sampler) material.Material {
	choice := sampler.Get1D()
	switch {
	case choice < 0.85:
		albedo := core.RandomColour(sampler).Attenuate(core.RandomColour(sampler))
		return material.NewLambert(albedo)
	case choice < 0.9:
		albedo := core.RandomColour(sampler).Divide(2).Add(core.NewColour(0.5, 0.5, 0.5))
		return material.NewMetal(albedo, sampler.Get1D()/2)
	default:
		return material.NewDielectric(1.5)
	}
}

// NewThreeSpheresScene builds three spheres in a row. The glass sphere on
// the left is hollow: a negative-radius sphere inside it flips the normals
// of the inner surface.
func NewThreeSpheresScene() *Scene {
	glass := material.NewDielectric(1.5)
	return NewScene(
		NewSphereObject(core.NewPoint(0, -100.5, -1), 100, material.NewLambert(core.NewColour(0.8, 0.8, 0.0))),
		NewSphereObject(core.NewPoint(0, 0, -1), 0.5, material.NewLambert(core.NewColour(0.1, 0.2, 0.5))),
		NewSphereObject(core.NewPoint(-1, 0, -1), 0.5, glass),
		NewSphereObject(core.NewPoint(-1, 0, -1), -0.4, glass),
		NewSphereObject(core.NewPoint(1, 0, -1), 0.5, material.NewMetal(core.NewColour(0.8, 0.6, 0.2), 0.3)),
	)
}

// NewSingleSphereScene places one grey diffuse sphere at (0, 0, -1)
func NewSingleSphereScene() *Scene {
	return NewScene(NewSphereObject(core.NewPoint(0, 0, -1), 0.5, material.NewLambert(core.NewColour(0.5, 0.5, 0.5))))
}
