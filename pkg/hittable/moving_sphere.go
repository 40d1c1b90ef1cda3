package hittable

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly between two positions
// over a shutter interval.
type MovingSphere struct {
	Center0, Center1 core.Point3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a moving sphere.
func NewMovingSphere(center0, center1 core.Point3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// CenterAt linearly interpolates the sphere's center at the given time.
func (m *MovingSphere) CenterAt(time float64) core.Point3 {
	fraction := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(fraction))
}

// Hit evaluates the center at ray.Time and delegates to the sphere quadratic.
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	return hitSphereAt(m.CenterAt(ray.Time), m.Radius, m.Material, ray, tMin, tMax)
}
