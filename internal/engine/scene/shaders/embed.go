// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SpecularVertexShader transforms vertices into view space and builds
// the per-fragment tangent frame.
//
//go:embed specular.vert
var SpecularVertexShader string

// SpecularFragmentShader adds a capped Blinn-Phong highlight on top of
// the baked base color.
//
//go:embed specular.frag
var SpecularFragmentShader string
