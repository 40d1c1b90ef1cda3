// Package integrator implements the recursive radiance estimator that walks
// a ray's bounces against the scene's Hittable tree.
package integrator

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
)

// Integrator estimates the radiance arriving along a camera ray.
type Integrator interface {
	RayColor(ray core.Ray, random *rand.Rand) core.Vec3
}
