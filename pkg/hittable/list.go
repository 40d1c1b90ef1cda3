package hittable

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// List is an ordered collection of hittables that reports the closest hit
// in range across all of its children.
type List struct {
	Objects []Hittable
}

// NewList creates a hittable list from the given children.
func NewList(objects ...Hittable) *List {
	return &List{Objects: objects}
}

// Add appends a child to the list.
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit tracks a shrinking closest_so_far across children; ties are resolved
// in favor of the first child submitted, because the bound tightens on a
// strict inequality.
func (l *List) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, tMin, closestSoFar, random); ok {
			if hitAnything && rec.T >= closestSoFar {
				continue
			}
			core.Assert(rec.T >= tMin && rec.T <= closestSoFar, "hit parameter %v outside [%v, %v]", rec.T, tMin, closestSoFar)
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}
