package material

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Texture texture.Texture
}

// NewLambertian creates a diffuse material from a texture.
func NewLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Texture: tex}
}

// NewLambertianColor creates a diffuse material from a constant color.
func NewLambertianColor(albedo core.Vec3) *Lambertian {
	return &Lambertian{Texture: texture.NewSolidColor(albedo)}
}

// Scatter reflects in a direction offset from the normal by a uniform random
// unit vector, substituting the normal itself when the result is near zero.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.P, direction, rayIn.Time)
	albedo := l.Texture.Value(hit.U, hit.V, hit.P)

	return ScatterRecord{Scattered: scattered, Albedo: albedo}, true
}

// Emitted reports that Lambertian surfaces never emit light.
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) (EmitRecord, bool) {
	return EmitRecord{}, false
}
