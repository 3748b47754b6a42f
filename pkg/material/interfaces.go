package material

import (
	"fmt"

	"github.com/df07/go-lens-pathtracer/pkg/core"
)

// Kind enumerates the supported surface materials
type Kind uint8

const (
	// KindLambert is an ideal diffuse surface
	KindLambert Kind = iota
	// KindMetal is a specular reflector with optional fuzz
	KindMetal
	// KindDielectric is a clear refracting surface such as glass
	KindDielectric
)

// String returns the name of the material kind
func (k Kind) String() string {
	switch k {
	case KindLambert:
		return "lambert"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Material is a surface material value. Materials are copied freely and
// carry no identity; the variant is selected by Kind.
type Material struct {
	kind            Kind
	albedo          core.Colour
	fuzz            float64
	refractionIndex float64
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Colour // Colour attenuation
	Scattered   core.Ray    // The scattered ray
}

// Kind returns the material variant
func (m Material) Kind() Kind {
	return m.kind
}

// Albedo returns the reflectance colour of lambert and metal materials
func (m Material) Albedo() core.Colour {
	return m.albedo
}

// Fuzz returns the metal fuzz factor
func (m Material) Fuzz() float64 {
	return m.fuzz
}

// RefractionIndex returns the dielectric index of refraction
func (m Material) RefractionIndex() float64 {
	return m.refractionIndex
}

// Scatter computes the attenuation and outgoing ray for a hit. The boolean
// is false when the material absorbs the ray; none of the current
// materials do.
func (m Material) Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.kind {
	case KindLambert:
		return m.scatterLambert(hit, sampler), true
	case KindMetal:
		return m.scatterMetal(hit, sampler), true
	case KindDielectric:
		return m.scatterDielectric(hit, sampler), true
	}
	panic(fmt.Sprintf("material: scatter on unknown material %s", m.kind))
}

// HitRecord binds a ray to the intersection it produced and the material
// found there. It lives for a single trace step.
type HitRecord struct {
	Ray       core.Ray       // The intersecting ray
	T         float64        // Parameter t along the ray
	Point     core.Point     // Point of intersection
	Normal    core.Direction // Surface normal, always facing the incoming ray
	FrontFace bool           // Whether the ray hit the outside of the surface
	Material  Material       // Material of the hit object
}

// NewHitRecord orients the outward normal against the incoming ray
func NewHitRecord(ray core.Ray, t float64, point core.Point, outwardNormal core.Direction, material Material) HitRecord {
	h := HitRecord{
		Ray:      ray,
		T:        t,
		Point:    point,
		Material: material,
	}
	h.SetFaceNormal(ray, outwardNormal)
	return h
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Direction) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Scatter hands the hit to its material
func (h HitRecord) Scatter(sampler core.Sampler) (ScatterResult, bool) {
	return h.Material.Scatter(h, sampler)
}
