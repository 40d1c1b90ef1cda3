package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/few-photons/pathtracer/pkg/core"
)

func TestGetRayNoApertureOriginatesFromLookFrom(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   90,
		AspectRatio:   1,
		Aperture:      0,
		FocusDistance: 1,
	})

	random := rand.New(rand.NewSource(1))
	ray := cam.GetRay(0.5, 0.5, random)

	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Origin = %v, want look_from with zero aperture", ray.Origin)
	}
}

func TestGetRayCentersAimAtLookAtDirection(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   40,
		AspectRatio:   1,
		Aperture:      0,
		FocusDistance: 5,
	})

	random := rand.New(rand.NewSource(1))
	ray := cam.GetRay(0.5, 0.5, random)
	want := core.NewVec3(0, 0, -1)
	got := ray.Direction.Normalize()

	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 || math.Abs(got.Z-want.Z) > 1e-6 {
		t.Errorf("center ray direction = %v, want %v", got, want)
	}
}

func TestGetRayTimeWithinShutterInterval(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   40,
		AspectRatio:   1,
		FocusDistance: 1,
		Time0:         0.2,
		Time1:         0.8,
	})

	random := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		ray := cam.GetRay(0.5, 0.5, random)
		if ray.Time < 0.2 || ray.Time > 0.8 {
			t.Fatalf("Time = %v, want within [0.2, 0.8]", ray.Time)
		}
	}
}

func TestGetRayApertureStaysWithinLensRadius(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   40,
		AspectRatio:   1,
		Aperture:      2.0,
		FocusDistance: 1,
	})

	random := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		ray := cam.GetRay(0.5, 0.5, random)
		offset := ray.Origin.Subtract(core.NewVec3(0, 0, 0))
		if offset.Length() > 1.0+1e-9 {
			t.Fatalf("lens offset length = %v, want <= lensRadius 1.0", offset.Length())
		}
	}
}
