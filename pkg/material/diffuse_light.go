package material

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// DiffuseLight emits light and never scatters.
type DiffuseLight struct {
	Texture   texture.Texture
	Luminance float64
}

// NewDiffuseLight creates a light material from a texture and luminance scalar.
func NewDiffuseLight(tex texture.Texture, luminance float64) *DiffuseLight {
	return &DiffuseLight{Texture: tex, Luminance: luminance}
}

// NewDiffuseLightColor creates a light material from a constant color and luminance scalar.
func NewDiffuseLightColor(color core.Vec3, luminance float64) *DiffuseLight {
	return &DiffuseLight{Texture: texture.NewSolidColor(color), Luminance: luminance}
}

// Scatter reports that light sources never scatter incident rays.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the texture color at the hit and the fixed luminance scalar.
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) (EmitRecord, bool) {
	return EmitRecord{Color: d.Texture.Value(u, v, p), Luminance: d.Luminance}, true
}
