// Package model provides static mesh geometry and glTF loading.
package model

import (
	"image"

	"github.com/ashfall/sheen/internal/engine/shading"
	"github.com/ashfall/sheen/pkg/math"
)

// FloatsPerVertex is the interleaved vertex layout size:
// position(3) + normal(3) + tangent(4) + uv(2).
const FloatsPerVertex = 12

// Textures holds the images referenced by the mesh's material, keyed by
// their channel semantics. Any of them may be nil.
type Textures struct {
	BaseColor image.Image
	Normal    image.Image
	// Roughness is sourced from the glTF metallic-roughness texture;
	// its scalar lives in the green channel.
	Roughness image.Image
	// AlphaMask is not part of glTF materials; it arrives via scene
	// config overrides.
	AlphaMask image.Image
}

// Mesh is a static, non-animated triangle mesh with per-vertex
// position, normal, vec4 tangent (w = handedness) and UV.
type Mesh struct {
	Name     string
	Vertices []shading.Vertex
	Indices  []uint32
	Textures Textures
}

// Interleave packs the vertices into the renderer's attribute layout.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Tangent.X, v.Tangent.Y, v.Tangent.Z, v.Tangent.W,
			v.UV.X, v.UV.Y,
		)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		p := v.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}

// Center returns the bounding-box center and the radius of its
// enclosing sphere, used to frame the camera.
func (m *Mesh) Center() (center math.Vec3, radius float32) {
	min, max := m.Bounds()
	center = min.Add(max).Scale(0.5)
	radius = max.Sub(center).Length()
	return center, radius
}
