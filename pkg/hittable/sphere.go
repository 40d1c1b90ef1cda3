package hittable

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// Sphere is a static analytic sphere.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray-sphere quadratic and returns the nearest in-range root.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	return hitSphereAt(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

func hitSphereAt(center core.Point3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(radius)
	u, v := sphereUV(outwardNormal)

	rec := material.HitRecord{T: root, P: point, U: u, V: v, Material: mat}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// sphereUV derives (u,v) from a point on the unit sphere.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
