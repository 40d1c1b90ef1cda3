// Package hittable implements the ray-primitive intersection contracts of
// the scene graph: analytic primitives, composite lists, and transforming
// instance wrappers.
package hittable

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// Hittable is the single operation every scene primitive implements.
type Hittable interface {
	// Hit returns a record if and only if ray intersects the primitive with
	// a parameter t in [tMin, tMax]. random is only consulted by
	// ConstantMedium's free-path sampling; every other variant ignores it.
	Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool)
}
