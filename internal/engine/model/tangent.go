package model

import (
	"github.com/ashfall/sheen/pkg/math"
)

// ComputeTangents fills in vec4 tangents for meshes whose asset carries
// none. Tangent directions are accumulated per triangle from UV deltas,
// Gram-Schmidt orthogonalized against the vertex normal, and the W
// component records handedness so the bitangent can be rebuilt as
// cross(N, T) * W. Triangles with degenerate UV area are skipped.
func ComputeTangents(m *Mesh) {
	tans := make([]math.Vec3, len(m.Vertices))
	bitans := make([]math.Vec3, len(m.Vertices))

	accum := func(i0, i1, i2 uint32) {
		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)

		du1 := v1.UV.X - v0.UV.X
		dv1 := v1.UV.Y - v0.UV.Y
		du2 := v2.UV.X - v0.UV.X
		dv2 := v2.UV.Y - v0.UV.Y

		denom := du1*dv2 - du2*dv1
		if denom == 0 {
			return
		}
		r := 1.0 / denom

		t := e1.Scale(dv2 * r).Sub(e2.Scale(dv1 * r))
		b := e2.Scale(du1 * r).Sub(e1.Scale(du2 * r))

		for _, i := range [3]uint32{i0, i1, i2} {
			tans[i] = tans[i].Add(t)
			bitans[i] = bitans[i].Add(b)
		}
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			accum(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			accum(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		t := tans[i]

		// T = normalize(T - N*(N.T))
		t = t.Sub(n.Scale(n.Dot(t)))
		if t.Length() < 1e-4 {
			t = fallbackTangent(n)
		}
		t = t.Normalize()

		w := float32(1)
		if n.Cross(t).Dot(bitans[i]) < 0 {
			w = -1
		}

		m.Vertices[i].Tangent = math.Vec4{X: t.X, Y: t.Y, Z: t.Z, W: w}
	}
}

// fallbackTangent picks an arbitrary direction perpendicular to n for
// vertices with no usable UV-derived tangent.
func fallbackTangent(n math.Vec3) math.Vec3 {
	axis := math.Vec3{X: 1}
	if n.X > 0.9 || n.X < -0.9 {
		axis = math.Vec3{Y: 1}
	}
	return axis.Sub(n.Scale(n.Dot(axis)))
}

// HasTangents reports whether every vertex carries a non-zero tangent.
func (m *Mesh) HasTangents() bool {
	for _, v := range m.Vertices {
		if v.Tangent.Vec3() == (math.Vec3{}) {
			return false
		}
	}
	return len(m.Vertices) > 0
}
