// Package camera provides the orbit camera used to frame the model.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/ashfall/sheen/pkg/math"
)

// Orbit orbits around a center point at a fixed distance, controlled by
// mouse drag and scroll.
type Orbit struct {
	Center math.Vec3

	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	FovY float32
	Near float32
	Far  float32
}

// NewOrbit creates an orbit camera with viewer defaults.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        3,
		Pitch:           0.3,
		MinDistance:     0.1,
		MaxDistance:     100,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            math32.Pi / 4,
		Near:            0.05,
		Far:             500,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	offset := math.Vec3{
		X: c.Distance * math32.Cos(c.Pitch) * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * math32.Cos(c.Pitch) * math32.Cos(c.Yaw),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for the current orbit state.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given
// viewport aspect ratio.
func (c *Orbit) ProjectionMatrix(width, height int) math.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// HandleDrag updates the orbit angles from a mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates the distance from a scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Fit frames a bounding sphere so the whole model is in view.
func (c *Orbit) Fit(center math.Vec3, radius float32) {
	if radius <= 0 {
		radius = 1
	}
	c.Center = center
	c.Distance = radius / math32.Tan(c.FovY/2) * 1.5
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	c.MaxDistance = c.Distance * 20
	c.Near = c.Distance * 0.01
	c.Far = c.Distance * 50
}
