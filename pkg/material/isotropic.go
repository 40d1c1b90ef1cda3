package material

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// Isotropic is a uniform phase function used as the scatter model of
// ConstantMedium. It is not meant to be attached to a solid surface.
type Isotropic struct {
	Texture texture.Texture
}

// NewIsotropic creates an isotropic phase function from a texture.
func NewIsotropic(tex texture.Texture) *Isotropic {
	return &Isotropic{Texture: tex}
}

// NewIsotropicColor creates an isotropic phase function from a constant color.
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return &Isotropic{Texture: texture.NewSolidColor(albedo)}
}

// Scatter picks a uniform random direction on the unit sphere from the hit point.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	scattered := core.NewRayAtTime(hit.P, core.RandomUnitVector(random), rayIn.Time)
	albedo := i.Texture.Value(hit.U, hit.V, hit.P)
	return ScatterRecord{Scattered: scattered, Albedo: albedo}, true
}

// Emitted reports that the phase function never emits light.
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) (EmitRecord, bool) {
	return EmitRecord{}, false
}
