package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/ashfall/sheen/internal/engine/camera"
	"github.com/ashfall/sheen/internal/engine/interaction"
	"github.com/ashfall/sheen/internal/engine/lighting"
	"github.com/ashfall/sheen/internal/engine/model"
	"github.com/ashfall/sheen/internal/engine/shading"
	"github.com/ashfall/sheen/internal/logger"
)

// Session owns everything one viewed model needs: camera, light,
// interaction controller, and the GPU-side renderer. It is the single
// mutation point for the frame loop.
type Session struct {
	Camera     *camera.Orbit
	Light      *lighting.Light
	Controller *interaction.Controller

	renderer *MeshRenderer
	mesh     *model.Mesh
	closed   bool
}

// NewSession compiles the render pipeline and wires camera, light, and
// interaction controller together. The orientation provider may be nil
// when the host has no tilt source.
func NewSession(shadingCfg shading.Config, interactionCfg interaction.Config,
	lightMaxIntensity float32, provider interaction.OrientationProvider) (*Session, error) {

	renderer, err := NewMeshRenderer(shadingCfg)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)

	return &Session{
		Camera:     camera.NewOrbit(),
		Light:      lighting.New(lightMaxIntensity),
		Controller: interaction.New(interactionCfg, provider),
		renderer:   renderer,
	}, nil
}

// SetMesh uploads a mesh and frames the camera around it.
func (s *Session) SetMesh(m *model.Mesh) error {
	if err := s.renderer.Upload(m); err != nil {
		return err
	}
	s.mesh = m

	center, radius := m.Center()
	s.Camera.Fit(center, radius)
	logger.Log.Info("mesh uploaded",
		zap.String("name", m.Name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.Float32("radius", radius),
	)
	return nil
}

// Mesh returns the currently uploaded mesh, or nil.
func (s *Session) Mesh() *model.Mesh { return s.mesh }

// Frame advances the interaction state and draws the model. Ordering
// matters: the controller settles first, then the light takes its
// direction, then uniforms are read for the draw.
func (s *Session) Frame(width, height int) {
	if s.closed {
		return
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.08, 0.08, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.Controller.Update()
	s.Light.SetDirection(s.Controller.Direction())

	if s.mesh == nil {
		return
	}

	// The model sits at the origin untransformed, so the view matrix
	// doubles as the model-view.
	modelView := s.Camera.ViewMatrix()
	proj := s.Camera.ProjectionMatrix(width, height)

	s.renderer.Draw(modelView, proj, s.Light.Direction(), s.Light.Intensity())
}

// Close disposes the controller and releases GL resources. Safe to call
// more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Controller.Dispose()
	s.renderer.Delete()
}
