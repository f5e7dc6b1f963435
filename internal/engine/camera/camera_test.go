package camera

import (
	"testing"

	"github.com/ashfall/sheen/pkg/math"
)

func TestPositionAtDefaultAngles(t *testing.T) {
	c := NewOrbit()
	c.Pitch = 0
	c.Yaw = 0
	c.Distance = 5

	pos := c.Position()
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("position = %v, want on +Z axis", pos)
	}
	if pos.Z < 4.999 || pos.Z > 5.001 {
		t.Errorf("position.Z = %v, want 5", pos.Z)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := NewOrbit()
	c.HandleDrag(0, 10000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -20000)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := NewOrbit()
	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 400; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestFitFramesSphere(t *testing.T) {
	c := NewOrbit()
	center := math.Vec3{X: 1, Y: 2, Z: 3}
	c.Fit(center, 2)

	if c.Center != center {
		t.Errorf("center = %v, want %v", c.Center, center)
	}
	if c.Distance <= 2 {
		t.Errorf("distance = %v, want beyond sphere radius", c.Distance)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		t.Errorf("bad clip planes near=%v far=%v", c.Near, c.Far)
	}

	// Degenerate radius still produces a usable framing.
	c.Fit(center, 0)
	if c.Distance <= 0 {
		t.Errorf("distance = %v after zero-radius fit", c.Distance)
	}
}

func TestProjectionGuardsZeroHeight(t *testing.T) {
	c := NewOrbit()
	m := c.ProjectionMatrix(800, 0)
	if m[0] == 0 {
		t.Error("projection collapsed with zero height viewport")
	}
}
