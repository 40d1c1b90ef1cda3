package material

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
)

// Metal is a specular reflector with an optional fuzz term.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming direction about the normal and perturbs it
// by fuzz*random_in_unit_sphere. Rays reflected into the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)
	return ScatterRecord{Scattered: scattered, Albedo: m.Albedo}, true
}

// Emitted reports that Metal surfaces never emit light.
func (m *Metal) Emitted(u, v float64, p core.Vec3) (EmitRecord, bool) {
	return EmitRecord{}, false
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
