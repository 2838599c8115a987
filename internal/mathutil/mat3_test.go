package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-12

func vecNear(a, b Vec3) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestRotYForward(t *testing.T) {
	// Rotating +Z forward by 90° around Y lands on +X.
	got := RotY(math.Pi / 2).MulVec3(Vec3{0, 0, 1})
	if !vecNear(got, Vec3{1, 0, 0}) {
		t.Fatalf("expected (1,0,0), got %v", got)
	}
}

func TestMat3MulIdentity(t *testing.T) {
	m := EulerXYZ(0.3, -1.1, 2.2)
	if got := Mat3Mul(m, Mat3Identity()); got != m {
		t.Fatalf("identity multiply changed matrix: %v != %v", got, m)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec3{1.5, -2, 0.25}
	rotated := EulerXYZ(0.4, 1.2, -0.7).MulVec3(v)
	if math.Abs(rotated.Length()-v.Length()) > 1e-9 {
		t.Fatalf("rotation changed length: %f vs %f", rotated.Length(), v.Length())
	}
}

func TestNormalize(t *testing.T) {
	if got := (Vec3{3, 0, 4}).Normalize(); math.Abs(got.Length()-1) > eps {
		t.Fatalf("expected unit length, got %f", got.Length())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("zero vector should normalize to itself, got %v", got)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 0.5, 2}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > eps || math.Abs(c.Dot(b)) > eps {
		t.Fatalf("cross product not orthogonal: %v", c)
	}
}
