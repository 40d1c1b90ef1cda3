package material

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water.
type Dielectric struct {
	IOR float64
}

// NewDielectric creates a dielectric material with the given index of refraction.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Scatter reflects or refracts according to Snell's law and Schlick's
// reflectance approximation. Albedo is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	eta := d.IOR
	if hit.FrontFace {
		eta = 1.0 / d.IOR
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if eta*sinTheta > 1.0 || schlickReflectance(cosTheta, d.IOR) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, eta, cosTheta)
	}

	scattered := core.NewRayAtTime(hit.P, direction, rayIn.Time)
	return ScatterRecord{Scattered: scattered, Albedo: core.NewVec3(1, 1, 1)}, true
}

// Emitted reports that Dielectric surfaces never emit light.
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) (EmitRecord, bool) {
	return EmitRecord{}, false
}

func refract(uv, n core.Vec3, eta, cosTheta float64) core.Vec3 {
	outPerp := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	outParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel)
}

// schlickReflectance computes R0 + (1-R0)(1-cosine)^5 where R0 is the
// reflectance at normal incidence, derived from the ratio of the two IORs
// (the incident medium is taken to be vacuum, IOR 1).
func schlickReflectance(cosine, ior float64) float64 {
	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
