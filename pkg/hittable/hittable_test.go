package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/material"
)

func testRandom() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func testMaterial() material.Material {
	return material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphereHitFromOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	rec, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T != 4 {
		t.Errorf("T = %v, want 4", rec.T)
	}
	if !rec.P.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("P = %v, want {0 0 1}", rec.P)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Normal = %v, want {0 0 1}", rec.Normal)
	}
	if !rec.FrontFace {
		t.Error("FrontFace = false, want true for a hit from outside")
	}
	if length := rec.Normal.Length(); math.Abs(length-1) > 0.02 {
		t.Errorf("Normal length = %v, want 1 within 0.02", length)
	}
}

func TestSphereHitFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	rec, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T != 1 {
		t.Errorf("T = %v, want 1", rec.T)
	}
	if !rec.P.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("P = %v, want {0 0 1}", rec.P)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Normal = %v, want oriented inward {0 0 -1}", rec.Normal)
	}
	if rec.FrontFace {
		t.Error("FrontFace = true, want false for a hit from inside")
	}
}

func TestSphereMissOutsideRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, ok := sphere.Hit(ray, 0.001, 3.9, testRandom()); ok {
		t.Error("expected a miss when the nearest root exceeds tMax")
	}
	if _, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), testRandom()); ok {
		t.Error("expected a miss for a ray passing beside the sphere")
	}
}

func TestMovingSphereHitsInterpolatedCenter(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0, 1, 0.5, testMaterial())

	if got := sphere.CenterAt(0.5); !got.Equals(core.NewVec3(0.5, 0, 0)) {
		t.Fatalf("CenterAt(0.5) = %v, want {0.5 0 0}", got)
	}

	ray := core.NewRayAtTime(core.NewVec3(0.5, 0, -5), core.NewVec3(0, 0, 1), 0.5)
	rec, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit at the interpolated center")
	}
	if rec.T != 4.5 {
		t.Errorf("T = %v, want 4.5", rec.T)
	}
	if !rec.P.Equals(core.NewVec3(0.5, 0, -0.5)) {
		t.Errorf("P = %v, want {0.5 0 -0.5}", rec.P)
	}
}

func TestXYRectHit(t *testing.T) {
	rect := NewXYRect(0, 1, 0, 1, 5, testMaterial())
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1))

	rec, ok := rect.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T != 5 {
		t.Errorf("T = %v, want 5", rec.T)
	}
	if rec.U != 0.5 || rec.V != 0.5 {
		t.Errorf("uv = (%v, %v), want (0.5, 0.5)", rec.U, rec.V)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Normal = %v, want oriented against the ray {0 0 -1}", rec.Normal)
	}
	if rec.FrontFace {
		t.Error("FrontFace = true, want false when hitting the back of the plane")
	}
}

func TestXYRectMissOutsideRanges(t *testing.T) {
	rect := NewXYRect(0, 1, 0, 1, 5, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 2, 0), core.NewVec3(0, 0, 1))

	if _, ok := rect.Hit(ray, 0.001, math.Inf(1), testRandom()); ok {
		t.Error("expected a miss for a projected point outside the rectangle")
	}
	parallel := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(1, 0, 0))
	if _, ok := rect.Hit(parallel, 0.001, math.Inf(1), testRandom()); ok {
		t.Error("expected a miss for a ray parallel to the plane")
	}
}

func TestListReturnsClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -10), 0.5, testMaterial())
	list := NewList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, ok := list.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T != 1.5 {
		t.Errorf("T = %v, want 1.5 (the nearer sphere)", rec.T)
	}
}

func TestCuboidHitFrontFace(t *testing.T) {
	box := NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial())
	ray := core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1))

	rec, ok := box.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T != 5 {
		t.Errorf("T = %v, want 5 (the z=0 face)", rec.T)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Normal = %v, want oriented against the ray {0 0 -1}", rec.Normal)
	}
}

func TestTranslateMatchesShiftedRay(t *testing.T) {
	offset := core.NewVec3(3, -2, 7)
	inner := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	translated := NewTranslate(inner, offset)

	ray := core.NewRay(core.NewVec3(3, -2, 12), core.NewVec3(0, 0, -1))
	rec, ok := translated.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit on the translated sphere")
	}

	shifted := core.NewRay(ray.Origin.Subtract(offset), ray.Direction)
	innerRec, ok := inner.Hit(shifted, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit on the prototype with the shifted ray")
	}

	if rec.T != innerRec.T {
		t.Errorf("T = %v, want the prototype's %v", rec.T, innerRec.T)
	}
	if !rec.P.Equals(innerRec.P.Add(offset)) {
		t.Errorf("P = %v, want the prototype's hit offset by +%v", rec.P, offset)
	}
	if !rec.Normal.Equals(innerRec.Normal) {
		t.Errorf("Normal = %v, want unchanged %v", rec.Normal, innerRec.Normal)
	}
}

func TestRotateYMovesSphereAroundAxis(t *testing.T) {
	// A sphere at (1,0,0) rotated +90 degrees about Y appears at (0,0,-1).
	inner := NewSphere(core.NewVec3(1, 0, 0), 0.5, testMaterial())
	rotated := NewRotateY(inner, math.Pi/2)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, ok := rotated.Hit(ray, 0.001, math.Inf(1), testRandom())
	if !ok {
		t.Fatal("expected a hit on the rotated sphere")
	}
	if math.Abs(rec.T-0.5) > 1e-9 {
		t.Errorf("T = %v, want 0.5", rec.T)
	}
	if !rec.P.Equals(core.NewVec3(0, 0, -0.5)) {
		t.Errorf("P = %v, want {0 0 -0.5}", rec.P)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Normal = %v, want {0 0 1}", rec.Normal)
	}
	if !rec.FrontFace {
		t.Error("FrontFace = false, want true against the original ray")
	}
}
