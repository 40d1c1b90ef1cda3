package texture

import (
	"math"

	"github.com/few-photons/pathtracer/pkg/core"
)

// NoiseTexture produces a marbled pattern by modulating a sine wave with
// Perlin turbulence.
type NoiseTexture struct {
	Perlin *Perlin
	Scale  float64
}

// NewNoiseTexture creates a noise texture at the given frequency scale.
func NewNoiseTexture(perlin *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Perlin: perlin, Scale: scale}
}

// Value returns 0.5*(1+sin(scale*z+10*turb(p,7))) of white.
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	intensity := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Perlin.Turbulence(p, 7)))
	return core.NewVec3(intensity, intensity, intensity)
}
