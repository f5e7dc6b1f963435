package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	d := Vec3{0, 0, 1}
	result := m.TransformDirection(d)

	if result != d {
		t.Errorf("TransformDirection: got %v, want %v", result, d)
	}
}

func TestLookAtKeepsViewDirection(t *testing.T) {
	// Camera at +Z looking at origin: a point in front of the camera
	// lands on the negative view-space Z axis.
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	p := view.TransformPoint(Vec3{0, 0, 0})

	if p.Z >= 0 {
		t.Errorf("point in front of camera should have negative view Z, got %v", p.Z)
	}
	if p.X < -0.001 || p.X > 0.001 || p.Y < -0.001 || p.Y > 0.001 {
		t.Errorf("centered point should stay on the view axis, got %v", p)
	}
}
