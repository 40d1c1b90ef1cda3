package scene

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/camera"
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/hittable"
	"github.com/few-photons/pathtracer/pkg/integrator"
	"github.com/few-photons/pathtracer/pkg/loaders"
	"github.com/few-photons/pathtracer/pkg/material"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// NewFinalScene builds the showcase scene exercising every primitive at
// once: a cuboid ground grid of random heights, a moving sphere, glass and
// metal spheres, a glass sphere filled with blue mist plus a whole-scene
// haze, an image-textured sphere, a noise-textured sphere, and a rotated
// cluster of a thousand small spheres, all lit by one overhead light. seed
// drives the grid heights, the sphere cluster and the Perlin tables.
func NewFinalScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	world := hittable.NewList()

	ground := material.NewLambertianColor(core.NewVec3(0.48, 0.83, 0.53))
	const gridSide = 20
	boxes := hittable.NewList()
	for i := 0; i < gridSide; i++ {
		for j := 0; j < gridSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			boxes.Add(hittable.NewCuboid(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	world.Add(boxes)

	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 15)
	world.Add(hittable.NewXZRect(123, 423, 147, 412, 554, light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(hittable.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertianColor(core.NewVec3(0.7, 0.3, 0.1))))

	glass := material.NewDielectric(1.5)
	world.Add(hittable.NewSphere(core.NewVec3(260, 150, 45), 50, glass))
	world.Add(hittable.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	boundary := hittable.NewSphere(core.NewVec3(360, 150, 145), 70, glass)
	world.Add(boundary)
	world.Add(hittable.NewConstantMedium(boundary, texture.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9)), 0.2))
	world.Add(hittable.NewConstantMedium(
		hittable.NewSphere(core.NewVec3(0, 0, 0), 5000, glass),
		texture.NewSolidColor(core.NewVec3(1, 1, 1)),
		0.0001,
	))

	// A UV-debug checkerboard stands in for the earth-map image file of
	// the classic scene, keeping the scene free of external assets.
	uvmap := material.NewLambertian(texture.NewImageTexture(loaders.NewUVDebugImage(256, 256, 16)))
	world.Add(hittable.NewSphere(core.NewVec3(400, 200, 400), 100, uvmap))

	perlin := texture.NewPerlin(random)
	world.Add(hittable.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertian(texture.NewNoiseTexture(perlin, 0.1))))

	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	cluster := hittable.NewList()
	for i := 0; i < 1000; i++ {
		cluster.Add(hittable.NewSphere(core.RandomVec3Range(random, 0, 165), 10, white))
	}
	world.Add(hittable.NewTranslate(
		hittable.NewRotateY(cluster, 15*math.Pi/180),
		core.NewVec3(-100, 270, 395),
	))

	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   40,
		AspectRatio:   1.0,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &Scene{
		World:       world,
		Camera:      cam,
		Background:  integrator.Black,
		AspectRatio: 1.0,
	}
}
