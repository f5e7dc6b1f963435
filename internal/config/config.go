// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Input    InputConfig    `yaml:"input"`
	Shading  ShadingConfig  `yaml:"shading"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// InputConfig holds light-direction controller settings.
type InputConfig struct {
	// Smoothing in [0,1]; 0 snaps the light direction to its target.
	Smoothing float32 `yaml:"smoothing"`
	// MaxTiltDegrees maps device tilt to the full [-1,1] input range.
	MaxTiltDegrees float32 `yaml:"max_tilt_degrees"`
	// OrientationOnStart requests device-orientation input at startup.
	OrientationOnStart bool `yaml:"orientation_on_start"`
	// SpringSmoothing uses critically damped spring smoothing instead of
	// plain interpolation.
	SpringSmoothing bool `yaml:"spring_smoothing"`
}

// ShadingConfig holds specular highlight settings.
type ShadingConfig struct {
	SpecularIntensity float32 `yaml:"specular_intensity"`
	SpecularCap       float32 `yaml:"specular_cap"`
	NormalScale       float32 `yaml:"normal_scale"`
	AlphaCutoff       float32 `yaml:"alpha_cutoff"`
	LightMaxIntensity float32 `yaml:"light_max_intensity"`
}

// SceneConfig holds asset paths for the displayed mesh.
type SceneConfig struct {
	Mesh      string `yaml:"mesh"`
	BaseColor string `yaml:"base_color"` // optional; glTF material wins when empty
	Normal    string `yaml:"normal"`
	Roughness string `yaml:"roughness"`
	AlphaMask string `yaml:"alpha_mask"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Input: InputConfig{
			Smoothing:          0,
			MaxTiltDegrees:     35,
			OrientationOnStart: false,
			SpringSmoothing:    false,
		},
		Shading: ShadingConfig{
			SpecularIntensity: 0.15,
			SpecularCap:       0.12,
			NormalScale:       1.0,
			AlphaCutoff:       0.5,
			LightMaxIntensity: 0.35,
		},
		Scene: SceneConfig{
			Mesh: "assets/model.glb",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
