package material

import (
	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// NewLambert creates a diffuse material
func NewLambert(albedo core.Colour) Material {
	return Material{kind: KindLambert, albedo: albedo}
}

func (m Material) scatterLambert(hit HitRecord, sampler core.Sampler) ScatterResult {
	direction := hit.Normal.Add(hit.Normal.RandomInHemisphere(sampler).Unit())

	// Opposite normal and sample cancel out; fall back to the normal
	if direction.IsZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Attenuation: m.albedo,
		Scattered:   core.NewRay(hit.Point, direction),
	}
}
