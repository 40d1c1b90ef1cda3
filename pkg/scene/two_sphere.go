package scene

import (
	"github.com/few-photons/pathtracer/pkg/camera"
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/hittable"
	"github.com/few-photons/pathtracer/pkg/integrator"
	"github.com/few-photons/pathtracer/pkg/material"
)

// NewTwoSphereScene builds the canonical sky-gradient scene: a Lambertian
// centre sphere flanked by a fuzzed metal sphere and a glass sphere, all
// resting on a large Lambertian ground sphere. It is the renderer's
// simplest end-to-end scenario.
func NewTwoSphereScene() *Scene {
	ground := hittable.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertianColor(core.NewVec3(0.8, 0.8, 0.0)))
	center := hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertianColor(core.NewVec3(0.1, 0.2, 0.5)))
	left := hittable.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3))
	right := hittable.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewDielectric(1.5))

	world := hittable.NewList(ground, center, left, right)

	const aspectRatio = 16.0 / 9.0
	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(0, 0.75, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 3.0,
		Time0:         0,
		Time1:         1,
	})

	return &Scene{
		World:       world,
		Camera:      cam,
		Background:  integrator.SkyGradient,
		AspectRatio: aspectRatio,
	}
}
