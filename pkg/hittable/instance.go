package hittable

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// Translate wraps a hittable, displacing it by Offset.
type Translate struct {
	Inner  Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated instance of inner.
func NewTranslate(inner Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit moves the ray into the prototype's local space, intersects, then
// offsets the result back into world space and re-orients the normal
// against the moved ray.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	movedRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Inner.Hit(movedRay, tMin, tMax, random)
	if !ok {
		return material.HitRecord{}, false
	}

	rec.P = rec.P.Add(t.Offset)
	rec.SetFaceNormal(movedRay, rec.Normal)
	return rec, true
}

// RotateY wraps a hittable, rotating it by Angle radians about the Y axis.
type RotateY struct {
	Inner Hittable
	Angle float64
}

// NewRotateY creates a Y-rotated instance of inner; angle is in radians.
func NewRotateY(inner Hittable, angle float64) *RotateY {
	return &RotateY{Inner: inner, Angle: angle}
}

// Hit rotates the ray by -angle into the prototype's local space,
// intersects, then rotates the result by +angle back into world space.
// The normal is re-oriented against the ORIGINAL ray, not the rotated one:
// using the rotated ray here shades the back side incorrectly.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	rotated := core.NewRayAtTime(
		rotateY(ray.Origin, -r.Angle),
		rotateY(ray.Direction, -r.Angle),
		ray.Time,
	)

	rec, ok := r.Inner.Hit(rotated, tMin, tMax, random)
	if !ok {
		return material.HitRecord{}, false
	}

	rec.P = rotateY(rec.P, r.Angle)
	outwardNormal := rotateY(rec.Normal, r.Angle)
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

func rotateY(v core.Vec3, angle float64) core.Vec3 {
	return v.Rotate(core.NewVec3(0, angle, 0))
}
