// Package lighting holds the single realtime light state feeding the
// specular shading model.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/ashfall/sheen/pkg/math"
)

// DefaultMaxIntensity is the hard ceiling applied to intensity writes.
const DefaultMaxIntensity = 0.35

// DefaultDirection returns the initial view-space direction from the
// shaded point toward the light: up and to the right, toward the viewer.
func DefaultDirection() math.Vec3 {
	return math.Vec3{X: 0.5, Y: 0.5, Z: 1}.Normalize()
}

// Light is the process-wide specular light state. It is not a
// scene-graph object: its direction lives in view space like a headlamp,
// so it tracks the camera instead of the model. The interaction
// controller rewrites direction and intensity, and the renderer reads
// them once per frame.
type Light struct {
	direction    math.Vec3
	intensity    float32
	maxIntensity float32
}

// New creates a light with the default direction and the given ceiling.
// A non-positive or non-finite ceiling falls back to DefaultMaxIntensity.
func New(maxIntensity float32) *Light {
	if maxIntensity <= 0 || math32.IsNaN(maxIntensity) || math32.IsInf(maxIntensity, 0) {
		maxIntensity = DefaultMaxIntensity
	}
	return &Light{
		direction:    DefaultDirection(),
		maxIntensity: maxIntensity,
	}
}

// SetIntensity writes the intensity, clamped to [0, MaxIntensity].
// NaN is treated as zero; writes are never rejected.
func (l *Light) SetIntensity(v float32) {
	if math32.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > l.maxIntensity {
		v = l.maxIntensity
	}
	l.intensity = v
}

// Intensity returns the clamped intensity.
func (l *Light) Intensity() float32 { return l.intensity }

// MaxIntensity returns the intensity ceiling.
func (l *Light) MaxIntensity() float32 { return l.maxIntensity }

// SetDirection writes the view-space direction, normalized. A zero or
// non-finite vector keeps the previous direction.
func (l *Light) SetDirection(d math.Vec3) {
	if !d.IsFinite() {
		return
	}
	n := d.Normalize()
	if n == (math.Vec3{}) {
		return
	}
	l.direction = n
}

// Direction returns the view-space unit direction toward the light.
func (l *Light) Direction() math.Vec3 { return l.direction }
