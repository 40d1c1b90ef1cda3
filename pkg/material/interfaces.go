// Package material implements the scatter/emit protocol surfaces use to
// interact with incident light.
package material

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
)

// Material is the scatter/emit protocol every surface material implements.
type Material interface {
	// Scatter proposes an outgoing ray and its attenuation for a ray hitting
	// this material. The second return value is false if the material
	// absorbs the ray instead (e.g. grazing metal, or a light).
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// Emitted returns the light emitted at the hit, if any.
	Emitted(u, v float64, p core.Vec3) (EmitRecord, bool)
}

// ScatterRecord is the outcome of a successful scatter.
type ScatterRecord struct {
	Scattered core.Ray
	Albedo    core.Vec3
}

// EmitRecord is the outcome of a successful emission.
type EmitRecord struct {
	Color     core.Vec3
	Luminance float64
}

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	P         core.Point3
	Normal    core.Vec3
	T         float64
	FrontFace bool
	U, V      float64
	Material  Material
}

// SetFaceNormal orients Normal against the ray and records which face was hit.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(rayIn core.Ray, outwardNormal core.Vec3) {
	core.Assert(math.Abs(outwardNormal.Length()-1) < 0.02, "outward normal not unit length: %v", outwardNormal)
	h.FrontFace = rayIn.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
