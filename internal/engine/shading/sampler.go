// Package shading implements the specular-only surface shading model.
//
// The baked base-color texture is the final appearance; the only runtime
// contribution is an additive, capped specular highlight. There is no
// diffuse or ambient term anywhere in this package.
package shading

import "github.com/ashfall/sheen/pkg/math"

// Sampler supplies an RGBA sample in [0,1] per channel for a UV coordinate.
type Sampler interface {
	Sample(u, v float32) math.Vec4
}

// Constant is a Sampler returning the same value everywhere. Optional
// texture slots resolve to Constant neutrals so the per-fragment code
// never branches on map presence.
type Constant math.Vec4

// Sample returns the constant value.
func (c Constant) Sample(u, v float32) math.Vec4 {
	return math.Vec4(c)
}

// Neutral samples for absent optional maps.
var (
	// flatNormal decodes to (0,0,1): no perturbation.
	flatNormal = Constant{X: 0.5, Y: 0.5, Z: 1, W: 1}
	// midRoughness is the default lobe width when no roughness map is bound.
	midRoughness = Constant{X: 0.6, Y: 0.6, Z: 0.6, W: 1}
	// opaqueMask leaves the base alpha untouched.
	opaqueMask = Constant{X: 1, Y: 1, Z: 1, W: 1}
)
