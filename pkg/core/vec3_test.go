package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 2)

	if got := a.Add(b); got != NewVec3(5, 1, 5) {
		t.Errorf("Add() = %v, want {5 1 5}", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 3, 1) {
		t.Errorf("Subtract() = %v, want {-3 3 1}", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply() = %v, want {2 4 6}", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -2, 6) {
		t.Errorf("MultiplyVec() = %v, want {4 -2 6}", got)
	}
}

func TestVec3DotEqualsLengthSquared(t *testing.T) {
	v := NewVec3(2, -3, 5)
	if got, want := v.Dot(v), v.LengthSquared(); got != want {
		t.Errorf("v.Dot(v) = %v, want LengthSquared() = %v", got, want)
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec3{NewVec3(3, 4, 0), NewVec3(1, 1, 1), NewVec3(-2, 5, -7)} {
		length := v.Normalize().Length()
		if math.Abs(length-1.0) > 1e-6 {
			t.Errorf("unit(%v).Length() = %v, want 1", v, length)
		}
	}
}

func TestVec3CrossOrthogonalToOperands(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	cross := a.Cross(b)

	if d := cross.Dot(a); math.Abs(d) > 1e-5 {
		t.Errorf("(a x b).Dot(a) = %v, want ~0", d)
	}
	if d := cross.Dot(b); math.Abs(d) > 1e-5 {
		t.Errorf("(a x b).Dot(b) = %v, want ~0", d)
	}
	if cross != NewVec3(0, 0, 1) {
		t.Errorf("a x b = %v, want {0 0 1}", cross)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !NewVec3(1e-8, -1e-8, 0).NearZero() {
		t.Error("expected near-zero vector to report NearZero() == true")
	}
	if NewVec3(0.1, 0, 0).NearZero() {
		t.Error("expected non-trivial vector to report NearZero() == false")
	}
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	got := v.Clamp(0, 1)
	want := NewVec3(0, 0.5, 1)
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))
	if got := r.At(2); got != NewVec3(1, 2, 5) {
		t.Errorf("At(2) = %v, want {1 2 5}", got)
	}
}

func TestNewRayToPointsAtTarget(t *testing.T) {
	r := NewRayTo(NewVec3(0, 0, 0), NewVec3(0, 0, -5))
	if got := r.Direction; got != NewVec3(0, 0, -1) {
		t.Errorf("NewRayTo direction = %v, want {0 0 -1}", got)
	}
}
