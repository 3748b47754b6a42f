package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-lens-pathtracer/pkg/config"
	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/geometry"
	"github.com/df07/go-lens-pathtracer/pkg/material"
)

// File is the YAML layout of a scene file
type File struct {
	Camera  config.Camera `yaml:"camera"`
	Objects []ObjectSpec  `yaml:"objects"`
}

// ObjectSpec describes one object in a scene file
type ObjectSpec struct {
	Shape    string       `yaml:"shape"` // "sphere"
	Center   config.Vec   `yaml:"center"`
	Radius   float64      `yaml:"radius"`
	Material MaterialSpec `yaml:"material"`
}

// MaterialSpec describes a material in a scene file
type MaterialSpec struct {
	Type            string     `yaml:"type"` // "lambert", "metal" or "dielectric"
	Albedo          config.Vec `yaml:"albedo,omitempty"`
	Fuzz            float64    `yaml:"fuzz,omitempty"`
	RefractionIndex float64    `yaml:"refraction_index,omitempty"`
}

// IsSceneFile reports whether name refers to a scene file rather than a preset
func IsSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// Open resolves a scene name: a path ending in .yaml or .yml is loaded from
// disk, anything else must name a preset.
func Open(name string, seed int64) (*Scene, config.Camera, error) {
	if IsSceneFile(name) {
		return LoadFile(name)
	}
	preset, err := Lookup(name)
	if err != nil {
		return nil, config.Camera{}, err
	}
	return preset.Build(seed), preset.Camera, nil
}

// LoadFile reads and parses a YAML scene file
func LoadFile(path string) (*Scene, config.Camera, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, config.Camera{}, err
	}
	s, camera, err := Parse(b)
	if err != nil {
		return nil, config.Camera{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf("loaded %d objects from %s", s.Len(), path)
	return s, camera, nil
}

// Parse builds a scene from YAML scene file contents
func Parse(data []byte) (*Scene, config.Camera, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, config.Camera{}, err
	}

	s := NewScene()
	for i, spec := range f.Objects {
		object, err := spec.Object()
		if err != nil {
			return nil, config.Camera{}, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(object)
	}
	return s, f.Camera, nil
}

// Object validates the description and converts it into a scene object.
// Negative radii are allowed and invert the sphere's normals.
func (o ObjectSpec) Object() (Object, error) {
	if o.Shape != geometry.KindSphere.String() {
		return Object{}, fmt.Errorf("%w: %q", ErrUnknownShape, o.Shape)
	}
	if o.Radius == 0 || !isFinite(o.Radius) {
		return Object{}, fmt.Errorf("%w: radius %v", ErrInvalidSphere, o.Radius)
	}
	for _, c := range o.Center {
		if !isFinite(c) {
			return Object{}, fmt.Errorf("%w: center %v", ErrInvalidSphere, o.Center)
		}
	}

	m, err := o.Material.Material()
	if err != nil {
		return Object{}, err
	}
	return NewSphereObject(o.Center.Point(), o.Radius, m), nil
}

// Material converts the description into a material value
func (m MaterialSpec) Material() (material.Material, error) {
	albedo := core.NewColour(m.Albedo[0], m.Albedo[1], m.Albedo[2])

	switch m.Type {
	case material.KindLambert.String():
		return material.NewLambert(albedo), nil
	case material.KindMetal.String():
		return material.NewMetal(albedo, m.Fuzz), nil
	case material.KindDielectric.String():
		if m.RefractionIndex <= 0 || !isFinite(m.RefractionIndex) {
			return material.Material{}, fmt.Errorf("%w: refraction index %v", ErrInvalidMaterial, m.RefractionIndex)
		}
		return material.NewDielectric(m.RefractionIndex), nil
	}
	return material.Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, m.Type)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
