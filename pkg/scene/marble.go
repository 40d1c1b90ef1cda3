package scene

import (
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/camera"
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/hittable"
	"github.com/few-photons/pathtracer/pkg/integrator"
	"github.com/few-photons/pathtracer/pkg/material"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// NewMarbleScene builds a ground sphere and a floating sphere sharing a
// Perlin-noise marble texture, the "the next week" noise-texture example.
// seed determines the Perlin permutation tables; it is a scene-construction
// detail and unrelated to the dispatcher's per-pixel sampling seed.
func NewMarbleScene(seed int64) *Scene {
	perlin := texture.NewPerlin(rand.New(rand.NewSource(seed)))
	marble := material.NewLambertian(texture.NewNoiseTexture(perlin, 4))

	ground := hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble)
	sphere := hittable.NewSphere(core.NewVec3(0, 2, 0), 2, marble)

	world := hittable.NewList(ground, sphere)

	const aspectRatio = 16.0 / 9.0
	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   20,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
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
