package hittable

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// XYRect is an axis-aligned rectangle lying in the plane z=K.
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle in the z=k plane.
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// Hit solves for t on the z=K plane and tests the projected point against
// the rectangle's in-plane ranges.
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	if ray.Direction.Z == 0 {
		return material.HitRecord{}, false
	}
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{
		T: t,
		P: ray.At(t),
		U: (x - r.X0) / (r.X1 - r.X0),
		V: (y - r.Y0) / (r.Y1 - r.Y0),
	}
	rec.Material = r.Material
	rec.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return rec, true
}

// XZRect is an axis-aligned rectangle lying in the plane y=K.
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle in the y=k plane.
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit solves for t on the y=K plane and tests the projected point against
// the rectangle's in-plane ranges.
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	if ray.Direction.Y == 0 {
		return material.HitRecord{}, false
	}
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{
		T: t,
		P: ray.At(t),
		U: (x - r.X0) / (r.X1 - r.X0),
		V: (z - r.Z0) / (r.Z1 - r.Z0),
	}
	rec.Material = r.Material
	rec.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return rec, true
}

// YZRect is an axis-aligned rectangle lying in the plane x=K.
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle in the x=k plane.
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit solves for t on the x=K plane and tests the projected point against
// the rectangle's in-plane ranges.
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	if ray.Direction.X == 0 {
		return material.HitRecord{}, false
	}
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{
		T: t,
		P: ray.At(t),
		U: (y - r.Y0) / (r.Y1 - r.Y0),
		V: (z - r.Z0) / (r.Z1 - r.Z0),
	}
	rec.Material = r.Material
	rec.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return rec, true
}
