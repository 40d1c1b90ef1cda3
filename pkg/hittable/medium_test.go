package hittable

import (
	"math/rand"
	"testing"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/texture"
)

func TestConstantMediumZeroDensityNeverScatters(t *testing.T) {
	boundary := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, texture.NewSolidColor(core.NewVec3(1, 1, 1)), 0)

	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	for i := 0; i < 50; i++ {
		if _, ok := medium.Hit(ray, 0.001, 1e9, random); ok {
			t.Fatal("zero-density medium scattered, want never")
		}
	}
}

func TestConstantMediumHighDensityScattersNearEntry(t *testing.T) {
	boundary := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, texture.NewSolidColor(core.NewVec3(1, 1, 1)), 1e6)

	random := rand.New(rand.NewSource(2))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	rec, ok := medium.Hit(ray, 0.001, 1e9, random)
	if !ok {
		t.Fatal("high-density medium missed, want a scatter near the entry crossing")
	}
	if got := rec.P.Z; got < -1.01 || got > -0.9 {
		t.Errorf("scatter point z = %v, want near the entry face at z=-1", got)
	}
}

func TestConstantMediumMissesOutsideBoundary(t *testing.T) {
	boundary := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, texture.NewSolidColor(core.NewVec3(1, 1, 1)), 1.0)

	random := rand.New(rand.NewSource(3))
	ray := core.NewRay(core.NewVec3(10, 10, -5), core.NewVec3(0, 0, 1))

	if _, ok := medium.Hit(ray, 0.001, 1e9, random); ok {
		t.Error("expected a miss for a ray that never enters the boundary")
	}
}
