package scene

import (
	"math"

	"github.com/few-photons/pathtracer/pkg/camera"
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/hittable"
	"github.com/few-photons/pathtracer/pkg/integrator"
	"github.com/few-photons/pathtracer/pkg/material"
	"github.com/few-photons/pathtracer/pkg/texture"
)

// cornellBoxSize is the side length of the classic 555x555x555 Cornell box.
const cornellBoxSize = 555.0

// cornellWalls returns the five enclosing rectangles of a standard Cornell
// box (floor, ceiling, back wall, green wall at x=555, red wall at x=0) plus
// its ceiling area light, shared by every Cornell scene variant. Seen from
// cornellCamera the green wall is on the left of the image and the red wall
// on the right.
func cornellWalls() []hittable.Hittable {
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 15)

	s := cornellBoxSize
	return []hittable.Hittable{
		hittable.NewYZRect(0, s, 0, s, s, green),           // x=555 wall
		hittable.NewYZRect(0, s, 0, s, 0, red),             // x=0 wall
		hittable.NewXZRect(213, 343, 227, 332, s-1, light), // ceiling light
		hittable.NewXZRect(0, s, 0, s, 0, white),           // floor
		hittable.NewXZRect(0, s, 0, s, s, white),           // ceiling
		hittable.NewXYRect(0, s, 0, s, s, white),           // back wall
	}
}

func cornellCamera() *camera.Camera {
	return camera.New(camera.Config{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   40,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 800,
		Time0:         0,
		Time1:         1,
	})
}

// NewCornellScene builds the classic Cornell box enclosing a shiny metal
// sphere and a glass sphere under a black background.
func NewCornellScene() *Scene {
	world := hittable.NewList(cornellWalls()...)
	world.Add(hittable.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0)))
	world.Add(hittable.NewSphere(core.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5)))

	return &Scene{
		World:       world,
		Camera:      cornellCamera(),
		Background:  integrator.Black,
		AspectRatio: 1.0,
	}
}

// NewCornellBoxesScene builds the "the next week" variant of the Cornell
// box, with two rotated cuboids in place of the spheres.
func NewCornellBoxesScene() *Scene {
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	world := hittable.NewList(cornellWalls()...)

	tall := hittable.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBox := hittable.NewTranslate(hittable.NewRotateY(tall, 15*math.Pi/180), core.NewVec3(265, 0, 295))

	short := hittable.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortBox := hittable.NewTranslate(hittable.NewRotateY(short, -18*math.Pi/180), core.NewVec3(130, 0, 65))

	world.Add(tallBox)
	world.Add(shortBox)

	return &Scene{
		World:       world,
		Camera:      cornellCamera(),
		Background:  integrator.Black,
		AspectRatio: 1.0,
	}
}

// NewCornellSmokeScene replaces the two Cornell boxes' solid interiors with
// constant-density participating media, the "cornell smoke" example from
// the next-week extension of the book.
func NewCornellSmokeScene() *Scene {
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	world := hittable.NewList(cornellWalls()...)

	tall := hittable.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBox := hittable.NewTranslate(hittable.NewRotateY(tall, 15*math.Pi/180), core.NewVec3(265, 0, 295))

	short := hittable.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortBox := hittable.NewTranslate(hittable.NewRotateY(short, -18*math.Pi/180), core.NewVec3(130, 0, 65))

	smokeDark := hittable.NewConstantMedium(tallBox, texture.NewSolidColor(core.NewVec3(0, 0, 0)), 0.01)
	smokeLight := hittable.NewConstantMedium(shortBox, texture.NewSolidColor(core.NewVec3(1, 1, 1)), 0.01)

	world.Add(smokeDark)
	world.Add(smokeLight)

	return &Scene{
		World:       world,
		Camera:      cornellCamera(),
		Background:  integrator.Black,
		AspectRatio: 1.0,
	}
}
