package input

import "testing"

func TestTiltFromAccelFlat(t *testing.T) {
	beta, gamma, ok := tiltFromAccel(0, 0, 9.81)
	if !ok {
		t.Fatal("flat sample rejected")
	}
	if beta != 0 || gamma != 0 {
		t.Errorf("flat device tilt = (%v, %v), want (0, 0)", beta, gamma)
	}
}

func TestTiltFromAccelRightTilt(t *testing.T) {
	// Equal x and z gravity components: 45 degrees of left-right tilt.
	_, gamma, ok := tiltFromAccel(6.9, 0, 6.9)
	if !ok {
		t.Fatal("sample rejected")
	}
	if gamma < 44.9 || gamma > 45.1 {
		t.Errorf("gamma = %v, want 45", gamma)
	}
}

func TestTiltFromAccelForwardTilt(t *testing.T) {
	beta, _, ok := tiltFromAccel(0, 6.9, 6.9)
	if !ok {
		t.Fatal("sample rejected")
	}
	if beta < 44.9 || beta > 45.1 {
		t.Errorf("beta = %v, want 45", beta)
	}
}

func TestTiltFromAccelRejectsZeroVector(t *testing.T) {
	if _, _, ok := tiltFromAccel(0, 0, 0); ok {
		t.Error("zero acceleration should be rejected")
	}
}
