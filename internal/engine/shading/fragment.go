package shading

import (
	"github.com/chewxy/math32"

	"github.com/ashfall/sheen/pkg/math"
)

// Vertex is the per-vertex input: model-space position and frame plus UV.
// Tangent.W carries handedness (+1 or -1).
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Tangent  math.Vec4
	UV       math.Vec2
}

// Varyings is the vertex-stage output interpolated to the fragment stage:
// view-space position and an orthonormal tangent-bitangent-normal frame.
type Varyings struct {
	ViewPos math.Vec3
	T, B, N math.Vec3
	UV      math.Vec2
}

// TransformVertex computes the view-space position and TBN frame for a
// vertex. The bitangent is inferred as cross(N, T) * Tangent.W.
func TransformVertex(v Vertex, modelView math.Mat4) Varyings {
	n := modelView.TransformDirection(v.Normal).Normalize()
	t := modelView.TransformDirection(v.Tangent.Vec3()).Normalize()
	b := n.Cross(t).Scale(v.Tangent.W)

	return Varyings{
		ViewPos: modelView.TransformPoint(v.Position),
		T:       t,
		B:       b,
		N:       n,
		UV:      v.UV,
	}
}

// Shade computes the RGBA output for one fragment. lightDir is the unit
// view-space direction from the shaded point toward the light. The second
// return value is false when the fragment is discarded by the alpha
// cutout test (no color, no depth).
//
// The output RGB is always base.rgb + specularColor * min(spec, cap);
// when lightIntensity <= 0 the output is bit-identical to the base sample
// regardless of normal, roughness, or mask content.
func (s *Surface) Shade(v Varyings, lightDir math.Vec3, lightIntensity float32) (math.Vec4, bool) {
	base := s.base.Sample(v.UV.X, v.UV.Y)
	alpha := base.W * s.alphaMask.Sample(v.UV.X, v.UV.Y).X

	if alpha < s.alphaCutoff {
		return math.Vec4{}, false
	}

	out := math.Vec4{X: base.X, Y: base.Y, Z: base.Z, W: alpha}
	if lightIntensity <= 0 {
		// Baked-only fast path: no specular math may touch the output.
		return out, true
	}

	n := s.shadingNormal(v)

	roughness := clamp(s.roughness.Sample(v.UV.X, v.UV.Y).X, minRoughness, 1)
	shininess := Shininess(roughness)

	viewDir := v.ViewPos.Negate().Normalize()
	half := lightDir.Add(viewDir).Normalize()

	noh := max0(n.Dot(half))
	nol := max0(n.Dot(lightDir))

	spec := math32.Pow(noh, shininess) * nol * s.specularIntensity * lightIntensity
	if spec > s.specularCap {
		spec = s.specularCap
	}

	tinted := s.specularColor.Scale(spec)
	out.X += tinted.X
	out.Y += tinted.Y
	out.Z += tinted.Z

	return out, true
}

// shadingNormal derives the view-space normal used for the highlight. A
// non-positive normal scale falls back to the geometric normal.
func (s *Surface) shadingNormal(v Varyings) math.Vec3 {
	if s.normalScale <= 0 {
		return v.N.Normalize()
	}

	sample := s.normal.Sample(v.UV.X, v.UV.Y)
	// Range-remap [0,1] -> [-1,1], scale the tangent-plane components.
	tn := math.Vec3{
		X: (sample.X*2 - 1) * s.normalScale,
		Y: (sample.Y*2 - 1) * s.normalScale,
		Z: sample.Z*2 - 1,
	}.Normalize()

	return v.T.Scale(tn.X).
		Add(v.B.Scale(tn.Y)).
		Add(v.N.Scale(tn.Z)).
		Normalize()
}
