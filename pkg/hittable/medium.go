package hittable

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// boundaryEpsilon separates the search for a medium's exit crossing from its
// entry crossing, so the second Hit call doesn't re-find the entry point.
const boundaryEpsilon = 1e-4

// ConstantMedium is a volumetric scatterer of uniform density bounded by an
// arbitrary Hittable surface (typically a Cuboid or Sphere). A ray passing
// through the boundary may scatter at a random point inside, governed by an
// exponential free-path distribution, instead of only at the surface.
type ConstantMedium struct {
	Boundary Hittable
	Phase    material.Material
	Density  float64
}

// NewConstantMedium creates a volumetric scatterer with the given boundary,
// phase-function texture and density (higher density scatters sooner).
func NewConstantMedium(boundary Hittable, phaseTexture texture.Texture, density float64) *ConstantMedium {
	return &ConstantMedium{
		Boundary: boundary,
		Phase:    material.NewIsotropic(phaseTexture),
		Density:  density,
	}
}

// Hit finds the ray's span inside the boundary, then draws a free path from
// an exponential distribution; if the free path falls within the span the
// ray scatters at that point with the medium's isotropic phase material.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	rec1, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok {
		return material.HitRecord{}, false
	}

	rec2, ok := c.Boundary.Hit(ray, rec1.T+boundaryEpsilon, math.Inf(1), random)
	if !ok {
		return material.HitRecord{}, false
	}

	t1 := math.Max(rec1.T, tMin)
	t2 := math.Min(rec2.T, tMax)
	if t1 >= t2 {
		return material.HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	// 1-Float64() maps [0,1) to (0,1], keeping the free-path sample finite.
	hitDistance := -(1 / c.Density) * math.Log(1-random.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	return material.HitRecord{
		T:         t,
		P:         ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; unused inside a medium
		FrontFace: true,
		Material:  c.Phase,
	}, true
}
