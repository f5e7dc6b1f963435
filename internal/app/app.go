// Package app wires the window, input, and scene session into the
// viewer's main loop.
package app

import (
	"fmt"
	"image"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/ashfall/sheen/internal/assets"
	"github.com/ashfall/sheen/internal/config"
	"github.com/ashfall/sheen/internal/engine/debug"
	"github.com/ashfall/sheen/internal/engine/input"
	"github.com/ashfall/sheen/internal/engine/interaction"
	"github.com/ashfall/sheen/internal/engine/model"
	"github.com/ashfall/sheen/internal/engine/scene"
	"github.com/ashfall/sheen/internal/engine/shading"
	"github.com/ashfall/sheen/internal/engine/texture"
	"github.com/ashfall/sheen/internal/engine/window"
	"github.com/ashfall/sheen/internal/logger"
)

// intensityStep is how far the bracket keys move the light intensity.
const intensityStep = 0.05

// App is the viewer application instance.
type App struct {
	cfg     config.Config
	running bool

	window     *window.Window
	input      *input.Input
	session    *scene.Session
	assets     *assets.Source
	screenshot *debug.ScreenshotCapture

	dragging bool
}

// New creates the window, GL state, and scene session, then loads the
// configured model.
func New(cfg config.Config) (*App, error) {
	logger.Log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "sheen",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// GL function pointers need the context from window.New.
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	shadingCfg := shading.DefaultConfig()
	shadingCfg.SpecularIntensity = cfg.Shading.SpecularIntensity
	shadingCfg.SpecularCap = cfg.Shading.SpecularCap
	shadingCfg.NormalScale = cfg.Shading.NormalScale
	shadingCfg.AlphaCutoff = cfg.Shading.AlphaCutoff

	interactionCfg := interaction.Config{
		Smoothing:      cfg.Input.Smoothing,
		MaxTiltDegrees: cfg.Input.MaxTiltDegrees,
		Spring:         cfg.Input.SpringSmoothing,
	}

	a.session, err = scene.NewSession(shadingCfg, interactionCfg,
		cfg.Shading.LightMaxIntensity, &input.Accelerometer{})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating session: %w", err)
	}

	// Start with the light fully on; the bracket keys adjust it.
	a.session.Light.SetIntensity(a.session.Light.MaxIntensity())

	w, h := a.window.Size()
	a.session.Controller.SetViewport(w, h)

	a.input = input.New()
	a.assets = assets.NewSource()
	a.screenshot = debug.NewScreenshotCapture("screenshots", "sheen")

	if err := a.loadScene(); err != nil {
		// A viewer with no model is still a valid session; the user
		// may have pointed the config at a missing file.
		logger.Log.Warn("scene load failed", zap.Error(err))
	}

	if cfg.Input.OrientationOnStart {
		a.requestOrientation()
	}

	logger.Log.Info("viewer initialized")
	return a, nil
}

// loadScene loads the configured mesh and applies any map overrides.
func (a *App) loadScene() error {
	path, err := a.assets.Resolve(a.cfg.Scene.Mesh)
	if err != nil {
		return err
	}

	mesh, err := model.Load(path)
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	a.applyOverride(a.cfg.Scene.BaseColor, "base color", &mesh.Textures.BaseColor)
	a.applyOverride(a.cfg.Scene.Normal, "normal", &mesh.Textures.Normal)
	a.applyOverride(a.cfg.Scene.Roughness, "roughness", &mesh.Textures.Roughness)
	a.applyOverride(a.cfg.Scene.AlphaMask, "alpha mask", &mesh.Textures.AlphaMask)

	return a.session.SetMesh(mesh)
}

func (a *App) applyOverride(path, kind string, dst *image.Image) {
	if path == "" {
		return
	}
	data, err := a.assets.Load(path)
	if err != nil {
		logger.Log.Warn("texture override missing",
			zap.String("kind", kind), zap.String("path", path))
		return
	}
	img, err := texture.Decode(data)
	if err != nil {
		logger.Log.Warn("texture override undecodable",
			zap.String("kind", kind), zap.String("path", path), zap.Error(err))
		return
	}
	*dst = img
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		w, h := a.window.DrawableSize()
		a.session.Frame(w, h)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.session.Controller.SetViewport(event.Width, event.Height)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.session.Camera.HandleDrag(float32(event.RelX), float32(event.RelY))
			} else {
				a.session.Controller.HandlePointer(event.MouseX, event.MouseY)
			}

		case input.EventMouseWheel:
			a.session.Camera.HandleZoom(event.Wheel)

		case input.EventSensorTilt:
			a.session.Controller.HandleOrientation(event.Beta, event.Gamma)

		case input.EventKeyDown:
			a.handleKey(event.Key)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_O:
		if a.session.Controller.OrientationEnabled() {
			a.session.Controller.DisableOrientation()
			logger.Log.Info("orientation control disabled")
		} else {
			a.requestOrientation()
		}

	case sdl.SCANCODE_LEFTBRACKET:
		a.session.Light.SetIntensity(a.session.Light.Intensity() - intensityStep)

	case sdl.SCANCODE_RIGHTBRACKET:
		a.session.Light.SetIntensity(a.session.Light.Intensity() + intensityStep)

	case sdl.SCANCODE_F12:
		w, h := a.window.DrawableSize()
		path, err := a.screenshot.Capture(w, h)
		if err != nil {
			logger.Log.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Log.Info("screenshot saved", zap.String("path", path))
		}
	}
}

// requestOrientation kicks off the async tilt-permission request and
// logs its outcome when it lands.
func (a *App) requestOrientation() {
	done := a.session.Controller.EnableOrientation()
	go func() {
		if err := <-done; err != nil {
			logger.Log.Warn("orientation request denied", zap.Error(err))
			return
		}
		logger.Log.Info("orientation control enabled")
	}()
}

// Close releases the session and window.
func (a *App) Close() {
	logger.Log.Info("closing viewer")

	if a.session != nil {
		a.session.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
