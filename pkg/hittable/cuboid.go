package hittable

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// Cuboid is an axis-aligned box composed of its six bounding rectangles.
type Cuboid struct {
	Min, Max core.Point3
	sides    *List
}

// NewCuboid creates a box spanning min to max.
func NewCuboid(min, max core.Point3, mat material.Material) *Cuboid {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Cuboid{Min: min, Max: max, sides: sides}
}

// Hit delegates to the internal list of faces; the record's normal and uv
// come from whichever face is hit first.
func (c *Cuboid) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	return c.sides.Hit(ray, tMin, tMax, random)
}
