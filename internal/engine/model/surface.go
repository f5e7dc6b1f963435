package model

import (
	"github.com/ashfall/sheen/internal/engine/shading"
	"github.com/ashfall/sheen/internal/engine/texture"
)

// SurfaceConfig builds a CPU shading configuration from the mesh's
// material images, starting from the given scalar parameters. Maps the
// mesh lacks stay nil and resolve to neutral constants downstream.
// Roughness reads the green channel per the glTF metallic-roughness
// layout; the alpha mask reads red.
func (m *Mesh) SurfaceConfig(base shading.Config) shading.Config {
	cfg := base
	if m.Textures.BaseColor != nil {
		cfg.BaseColor = texture.NewSampler(m.Textures.BaseColor)
	}
	if m.Textures.Normal != nil {
		cfg.Normal = texture.NewSampler(m.Textures.Normal)
	}
	if m.Textures.Roughness != nil {
		cfg.Roughness = texture.NewChannelSampler(m.Textures.Roughness, texture.ChannelG)
	}
	if m.Textures.AlphaMask != nil {
		cfg.AlphaMask = texture.NewChannelSampler(m.Textures.AlphaMask, texture.ChannelR)
	}
	return cfg
}
