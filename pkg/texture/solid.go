package texture

import "github.com/few-photons/pathtracer/pkg/core"

// SolidColor is a texture that returns the same color everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a constant-color texture.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a constant-color texture from components.
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// Value returns the constant color regardless of uv or p.
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
