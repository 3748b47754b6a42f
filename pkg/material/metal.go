package material

import (
	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// NewMetal creates a metallic material. Fuzz is expected in [0, 1]
// (0 = perfect mirror) but is not clamped.
func NewMetal(albedo core.Colour, fuzz float64) Material {
	return Material{kind: KindMetal, albedo: albedo, fuzz: fuzz}
}

// scatterMetal reflects the incoming ray and perturbs it by the fuzz factor.
// The result can point below the surface; such rays find no forward hit and
// simply end up absorbed by the geometry.
func (m Material) scatterMetal(hit HitRecord, sampler core.Sampler) ScatterResult {
	reflected := hit.Ray.Direction.Reflect(hit.Normal)
	perturbation := core.RandomInUnitSphere(sampler).Unit().Multiply(m.fuzz)

	return ScatterResult{
		Attenuation: m.albedo,
		Scattered:   core.NewRay(hit.Point, reflected.Add(perturbation)),
	}
}
