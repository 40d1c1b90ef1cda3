package integrator

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/hittable"
)

// minHitDistance is the minimum ray parameter considered a valid
// intersection; it avoids shadow-acne self-intersection on surfaces the
// ray just left.
const minHitDistance = 0.001

// Background evaluates the radiance returned for a ray that escapes the
// scene entirely, i.e. hits nothing. It is a construction parameter of
// PathTracer rather than a scene property, so the same World can be walked
// under either policy.
type Background func(ray core.Ray) core.Vec3

// Black is the background policy for fully enclosed scenes, such as a
// Cornell box, where no light should arrive except through the geometry.
func Black(ray core.Ray) core.Vec3 {
	return core.Vec3{}
}

// SkyGradient is a vertical gradient from white straight down to a pale
// blue straight up, used by the ambient-sky example scenes.
func SkyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

// PathTracer implements the bounded recursive radiance estimator: no
// next-event estimation, no Russian roulette, no acceleration structure.
// Recursion simply stops after MaxDepth bounces.
type PathTracer struct {
	World      hittable.Hittable
	Background Background
	MaxDepth   int
}

// New creates a PathTracer over world, bounded to maxDepth bounces, using
// the given background policy for rays that escape the scene.
func New(world hittable.Hittable, background Background, maxDepth int) *PathTracer {
	return &PathTracer{World: world, Background: background, MaxDepth: maxDepth}
}

// RayColor estimates the radiance arriving along ray.
func (pt *PathTracer) RayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, pt.MaxDepth, random)
}

func (pt *PathTracer) rayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := pt.World.Hit(ray, minHitDistance, math.Inf(1), random)
	if !ok {
		return pt.Background(ray)
	}

	emit, didEmit := hit.Material.Emitted(hit.U, hit.V, hit.P)
	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if didScatter {
		core.Assert(scatter.Albedo.Clamp(0, 1).Equals(scatter.Albedo), "attenuation outside [0,1]: %v", scatter.Albedo)
	}

	switch {
	case !didEmit && !didScatter:
		return pt.Background(ray)
	case didEmit && !didScatter:
		return emit.Color.Multiply(emit.Luminance)
	case !didEmit && didScatter:
		incoming := pt.rayColor(scatter.Scattered, depth-1, random)
		return scatter.Albedo.MultiplyVec(incoming)
	default:
		incoming := pt.rayColor(scatter.Scattered, depth-1, random)
		emitted := emit.Color.Multiply(emit.Luminance)
		scattered := scatter.Albedo.MultiplyVec(incoming)
		return emitted.Add(scattered)
	}
}
