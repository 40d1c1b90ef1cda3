// Package texture maps surface coordinates and world points to linear color.
package texture

import (
	"github.com/few-photons/pathtracer/pkg/core"
)

// Texture evaluates to a linear color at a given surface location.
type Texture interface {
	// Value returns the color at uv surface coordinates and world point p.
	Value(u, v float64, p core.Vec3) core.Vec3
}
