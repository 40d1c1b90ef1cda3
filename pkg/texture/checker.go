package texture

import (
	"math"

	"github.com/few-photons/pathtracer/pkg/core"
)

// CheckerTexture alternates between two sub-textures based on the sign of
// sin(10x)*sin(10y)*sin(10z) at the world point.
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker pattern from two sub-textures.
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerTextureColors creates a checker pattern from two solid colors.
func NewCheckerTextureColors(even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Value recurses into whichever sub-texture is selected by the world point.
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
