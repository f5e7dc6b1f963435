package lighting

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/ashfall/sheen/pkg/math"
)

func TestIntensityClamping(t *testing.T) {
	l := New(0.35)

	tests := []struct {
		write float32
		want  float32
	}{
		{0.2, 0.2},
		{0.35, 0.35},
		{1.5, 0.35},
		{-0.1, 0},
		{math32.NaN(), 0},
		{math32.Inf(1), 0.35},
	}

	for _, tt := range tests {
		l.SetIntensity(tt.write)
		got := l.Intensity()
		if got != tt.want {
			t.Errorf("SetIntensity(%v): read back %v, want %v", tt.write, got, tt.want)
		}
		if got < 0 || got > l.MaxIntensity() {
			t.Errorf("intensity %v observed outside [0, %v]", got, l.MaxIntensity())
		}
	}
}

func TestNewSanitizesCeiling(t *testing.T) {
	for _, bad := range []float32{0, -1, math32.NaN()} {
		l := New(bad)
		if l.MaxIntensity() != DefaultMaxIntensity {
			t.Errorf("New(%v): ceiling %v, want default %v", bad, l.MaxIntensity(), DefaultMaxIntensity)
		}
	}
}

func TestDefaultDirectionIsUnit(t *testing.T) {
	d := DefaultDirection()
	l := d.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("default direction length %v, want ~1", l)
	}
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		t.Errorf("default direction should point up-right-forward, got %v", d)
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	l := New(0.35)
	l.SetDirection(math.Vec3{X: 0, Y: 0, Z: 10})

	got := l.Direction()
	if got != (math.Vec3{Z: 1}) {
		t.Errorf("direction = %v, want normalized +Z", got)
	}
}

func TestSetDirectionRejectsDegenerate(t *testing.T) {
	l := New(0.35)
	before := l.Direction()

	l.SetDirection(math.Vec3{})
	l.SetDirection(math.Vec3{X: math32.NaN()})

	if l.Direction() != before {
		t.Errorf("degenerate writes should keep the previous direction, got %v", l.Direction())
	}
}
