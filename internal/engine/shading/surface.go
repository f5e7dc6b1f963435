package shading

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/ashfall/sheen/pkg/math"
)

// Default parameter values, used by DefaultConfig and as fallbacks for
// non-finite inputs.
const (
	DefaultAlphaCutoff       = 0.5
	DefaultSpecularIntensity = 0.15
	DefaultSpecularCap       = 0.12
	DefaultNormalScale       = 1.0
	DefaultRoughness         = 0.6

	// Shininess exponent range mapped from roughness.
	ShininessSmooth = 256.0
	ShininessRough  = 8.0

	minRoughness = 0.04
)

// ErrNoBaseColor is returned when a surface is built without its
// required base-color sampler.
var ErrNoBaseColor = errors.New("shading: base color sampler is required")

// Config describes a surface before resolution. Optional samplers may be
// nil; they resolve to neutral constants. Scalar fields are taken
// literally (zero is a meaningful value for several of them), so start
// from DefaultConfig when the standard defaults are wanted.
type Config struct {
	BaseColor Sampler // required; RGB baked color, A source alpha
	Normal    Sampler // optional; tangent-space normal, specular only
	Roughness Sampler // optional; first channel, clamped to [0.04, 1]
	AlphaMask Sampler // optional; first channel multiplies base alpha

	AlphaCutoff       float32
	SpecularColor     math.Vec3 // zero value means white
	SpecularIntensity float32
	SpecularCap       float32
	NormalScale       float32 // <= 0 disables normal mapping
}

// DefaultConfig returns a Config carrying the standard scalar
// parameters. The base-color sampler must still be supplied.
func DefaultConfig() Config {
	return Config{
		AlphaCutoff:       DefaultAlphaCutoff,
		SpecularIntensity: DefaultSpecularIntensity,
		SpecularCap:       DefaultSpecularCap,
		NormalScale:       DefaultNormalScale,
	}
}

// Surface is a resolved per-draw shading configuration. Every sampler is
// non-nil and every scalar is finite and in range after NewSurface.
type Surface struct {
	base      Sampler
	normal    Sampler
	roughness Sampler
	alphaMask Sampler

	alphaCutoff       float32
	specularColor     math.Vec3
	specularIntensity float32
	specularCap       float32
	normalScale       float32
}

// NewSurface resolves a Config into a Surface. Absent optional samplers
// become neutral constants; non-finite or out-of-range scalars are
// sanitized rather than rejected.
func NewSurface(cfg Config) (*Surface, error) {
	if cfg.BaseColor == nil {
		return nil, ErrNoBaseColor
	}

	s := &Surface{
		base:      cfg.BaseColor,
		normal:    cfg.Normal,
		roughness: cfg.Roughness,
		alphaMask: cfg.AlphaMask,

		alphaCutoff:       clamp(finiteOr(cfg.AlphaCutoff, DefaultAlphaCutoff), 0, 1),
		specularColor:     cfg.SpecularColor,
		specularIntensity: max0(finiteOr(cfg.SpecularIntensity, DefaultSpecularIntensity)),
		specularCap:       max0(finiteOr(cfg.SpecularCap, DefaultSpecularCap)),
		normalScale:       finiteOr(cfg.NormalScale, DefaultNormalScale),
	}

	if s.normal == nil {
		s.normal = flatNormal
	}
	if s.roughness == nil {
		s.roughness = midRoughness
	}
	if s.alphaMask == nil {
		s.alphaMask = opaqueMask
	}
	if s.specularColor == (math.Vec3{}) {
		s.specularColor = math.Vec3{X: 1, Y: 1, Z: 1}
	}

	return s, nil
}

// AlphaCutoff returns the resolved cutout threshold.
func (s *Surface) AlphaCutoff() float32 { return s.alphaCutoff }

// SpecularCap returns the resolved specular ceiling.
func (s *Surface) SpecularCap() float32 { return s.specularCap }

// SpecularIntensity returns the resolved specular multiplier.
func (s *Surface) SpecularIntensity() float32 { return s.specularIntensity }

// SpecularColor returns the resolved highlight tint.
func (s *Surface) SpecularColor() math.Vec3 { return s.specularColor }

// NormalScale returns the resolved tangent-plane scale.
func (s *Surface) NormalScale() float32 { return s.normalScale }

// Shininess maps a roughness value to a Blinn-Phong exponent by linear
// interpolation: rough surfaces get a lower exponent, i.e. a broader,
// dimmer highlight.
func Shininess(roughness float32) float32 {
	r := clamp(roughness, minRoughness, 1)
	return ShininessSmooth + (ShininessRough-ShininessSmooth)*r
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max0(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func finiteOr(v, fallback float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return fallback
	}
	return v
}
