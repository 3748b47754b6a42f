package material

import (
	"math"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// NewDielectric creates a transparent material like glass that can both
// reflect and refract
func NewDielectric(refractionIndex float64) Material {
	return Material{kind: KindDielectric, refractionIndex: refractionIndex}
}

func (m Material) scatterDielectric(hit HitRecord, sampler core.Sampler) ScatterResult {
	// Determine if we're entering or exiting the material
	refractionRatio := m.refractionIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.refractionIndex
	}

	unitDirection := hit.Ray.Direction.Unit()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Direction
	if cannotRefract || sampler.Get1D() < Reflectance(cosTheta, refractionRatio) {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	// Clear glass does not tint
	return ScatterResult{
		Attenuation: core.White,
		Scattered:   core.NewRay(hit.Point, direction),
	}
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
