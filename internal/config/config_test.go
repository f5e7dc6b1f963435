package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Input.Smoothing != 0 {
		t.Errorf("expected smoothing 0, got %f", cfg.Input.Smoothing)
	}
	if cfg.Input.MaxTiltDegrees != 35 {
		t.Errorf("expected max tilt 35, got %f", cfg.Input.MaxTiltDegrees)
	}
	if cfg.Input.OrientationOnStart {
		t.Error("expected orientation_on_start to be false by default")
	}

	if cfg.Shading.SpecularIntensity != 0.15 {
		t.Errorf("expected specular intensity 0.15, got %f", cfg.Shading.SpecularIntensity)
	}
	if cfg.Shading.SpecularCap != 0.12 {
		t.Errorf("expected specular cap 0.12, got %f", cfg.Shading.SpecularCap)
	}
	if cfg.Shading.NormalScale != 1.0 {
		t.Errorf("expected normal scale 1.0, got %f", cfg.Shading.NormalScale)
	}
	if cfg.Shading.AlphaCutoff != 0.5 {
		t.Errorf("expected alpha cutoff 0.5, got %f", cfg.Shading.AlphaCutoff)
	}
	if cfg.Shading.LightMaxIntensity != 0.35 {
		t.Errorf("expected light max intensity 0.35, got %f", cfg.Shading.LightMaxIntensity)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sheen.yaml")

	content := `
graphics:
  width: 1920
  height: 1080
input:
  smoothing: 0.25
  max_tilt_degrees: 45
shading:
  specular_cap: 0.2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Input.Smoothing != 0.25 {
		t.Errorf("expected smoothing 0.25, got %f", cfg.Input.Smoothing)
	}
	if cfg.Input.MaxTiltDegrees != 45 {
		t.Errorf("expected max tilt 45, got %f", cfg.Input.MaxTiltDegrees)
	}
	if cfg.Shading.SpecularCap != 0.2 {
		t.Errorf("expected specular cap 0.2, got %f", cfg.Shading.SpecularCap)
	}

	// Values not present in the file keep their defaults.
	if cfg.Shading.SpecularIntensity != 0.15 {
		t.Errorf("expected default specular intensity, got %f", cfg.Shading.SpecularIntensity)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sub", "sheen.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Input.SpringSmoothing = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after roundtrip, got %d", loaded.Graphics.Width)
	}
	if !loaded.Input.SpringSmoothing {
		t.Error("expected spring_smoothing true after roundtrip")
	}
}
