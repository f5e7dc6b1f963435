// Package interaction derives the realtime light direction from pointer
// and device-orientation input.
package interaction

import (
	"errors"

	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"

	"github.com/ashfall/sheen/pkg/math"
)

// DefaultMaxTiltDegrees maps device tilt to the full [-1,1] input range.
const DefaultMaxTiltDegrees = 35

var (
	// ErrDisposed is returned when enabling orientation input on a
	// disposed controller.
	ErrDisposed = errors.New("interaction: controller disposed")
	// ErrNoOrientationSource is returned when no orientation provider
	// was supplied.
	ErrNoOrientationSource = errors.New("interaction: no orientation source available")
	// ErrRequestPending is returned when an enable request is already
	// in flight.
	ErrRequestPending = errors.New("interaction: orientation request already pending")
)

// OrientationProvider grants access to device-orientation samples.
// Start blocks until the host grants or denies the sensor (it runs off
// the owner goroutine); Stop releases it and must be safe to call in any
// state. Samples themselves arrive through Controller.HandleOrientation.
type OrientationProvider interface {
	Start() error
	Stop()
}

// Config holds controller tuning. Out-of-range values are sanitized, not
// rejected.
type Config struct {
	// Smoothing in [0,1]: 0 snaps to the target each update, larger
	// values interpolate toward it.
	Smoothing float32
	// MaxTiltDegrees is the tilt angle mapping to full deflection.
	MaxTiltDegrees float32
	// Spring switches smoothing to a critically damped spring instead
	// of plain interpolation.
	Spring bool
	// SpringFPS is the frame rate the spring integrates at (default 60).
	SpringFPS int
}

type enableResult struct {
	err  error
	done chan error
}

// Controller owns the interaction state. All mutation happens on the
// goroutine calling Update and the Handle* methods; the one asynchronous
// operation (the orientation request) hands its result back to that
// goroutine through a channel drained by Update.
type Controller struct {
	smoothing float32
	maxTilt   float32
	provider  OrientationProvider

	direction math.Vec3
	target    math.Vec3
	// Pre-normalization target components (z fixed at 1), kept so the
	// spring can track a stable space.
	targetX, targetY float32

	pointerX, pointerY   int
	viewportW, viewportH int

	beta, gamma float32
	sampleValid bool

	orientationEnabled bool
	requestPending     bool
	results            chan enableResult
	disposed           bool

	spring     harmonica.Spring
	useSpring  bool
	posX, posY float64
	velX, velY float64
}

// New creates a controller. provider may be nil, in which case enabling
// orientation input always fails and pointer mode stays active.
func New(cfg Config, provider OrientationProvider) *Controller {
	smoothing := cfg.Smoothing
	if math32.IsNaN(smoothing) || smoothing < 0 {
		smoothing = 0
	}
	if smoothing > 1 {
		smoothing = 1
	}

	maxTilt := cfg.MaxTiltDegrees
	if math32.IsNaN(maxTilt) || maxTilt <= 0 {
		maxTilt = DefaultMaxTiltDegrees
	}

	fps := cfg.SpringFPS
	if fps <= 0 {
		fps = 60
	}

	c := &Controller{
		smoothing: smoothing,
		maxTilt:   maxTilt,
		provider:  provider,
		direction: math.Vec3{Z: 1},
		target:    math.Vec3{Z: 1},
		results:   make(chan enableResult, 1),
		useSpring: cfg.Spring,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), 5.0, 1.0),
	}
	return c
}

// SetViewport records the viewport size used to normalize pointer
// coordinates. Called on resize; the next Update recomputes the target
// without requiring a new pointer event.
func (c *Controller) SetViewport(width, height int) {
	if c.disposed {
		return
	}
	c.viewportW = width
	c.viewportH = height
}

// HandlePointer records a pointer position in client coordinates and,
// while pointer input is the active source, retargets immediately.
func (c *Controller) HandlePointer(x, y int) {
	if c.disposed {
		return
	}
	c.pointerX = x
	c.pointerY = y
	if !c.orientationActive() {
		c.retargetFromPointer()
	}
}

// HandleOrientation records a device-orientation sample (beta = front/back
// tilt, gamma = left/right, both in degrees). Samples retarget only once
// orientation mode is enabled; until then pointer input keeps driving.
func (c *Controller) HandleOrientation(beta, gamma float32) {
	if c.disposed {
		return
	}
	if math32.IsNaN(beta) || math32.IsNaN(gamma) {
		return
	}
	c.beta = beta
	c.gamma = gamma
	c.sampleValid = true
	if c.orientationActive() {
		c.retargetFromTilt()
	}
}

// EnableOrientation asynchronously requests device-orientation input.
// The returned channel receives exactly one result once a subsequent
// Update has applied it. On denial the controller stays in pointer mode.
func (c *Controller) EnableOrientation() <-chan error {
	done := make(chan error, 1)
	switch {
	case c.disposed:
		done <- ErrDisposed
	case c.provider == nil:
		done <- ErrNoOrientationSource
	case c.orientationEnabled:
		done <- nil
	case c.requestPending:
		done <- ErrRequestPending
	default:
		c.requestPending = true
		go func() {
			err := c.provider.Start()
			c.results <- enableResult{err: err, done: done}
		}()
	}
	return done
}

// DisableOrientation reverts to pointer input immediately.
func (c *Controller) DisableOrientation() {
	if c.disposed {
		return
	}
	if c.orientationEnabled {
		c.orientationEnabled = false
		c.provider.Stop()
	}
	c.retargetFromPointer()
}

// OrientationEnabled reports whether orientation input currently
// overrides pointer input.
func (c *Controller) OrientationEnabled() bool {
	return c.orientationEnabled
}

// Update advances the controller one frame: applies any resolved
// orientation request, recomputes the target from the authoritative
// source, and smooths the direction toward it. The direction is
// unit-length afterward.
func (c *Controller) Update() {
	c.drainEnableResult()
	if c.disposed {
		return
	}

	if c.orientationActive() {
		c.retargetFromTilt()
	} else {
		c.retargetFromPointer()
	}

	if c.useSpring {
		c.posX, c.velX = c.spring.Update(c.posX, c.velX, float64(c.targetX))
		c.posY, c.velY = c.spring.Update(c.posY, c.velY, float64(c.targetY))
		c.direction = math.Vec3{X: float32(c.posX), Y: float32(c.posY), Z: 1}.Normalize()
		return
	}

	if c.smoothing == 0 {
		c.direction = c.target
		c.posX, c.posY = float64(c.targetX), float64(c.targetY)
		return
	}

	// Interpolating between unit vectors shortens them; renormalize.
	c.direction = c.direction.Lerp(c.target, c.smoothing).Normalize()
}

// Direction returns the current smoothed unit direction.
func (c *Controller) Direction() math.Vec3 { return c.direction }

// TargetDirection returns the latest unsmoothed goal direction.
func (c *Controller) TargetDirection() math.Vec3 { return c.target }

// Dispose releases the orientation source. The controller is inert
// afterward: late request grants are discarded by Update, and all input
// handlers become no-ops.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.orientationEnabled = false
	if c.provider != nil {
		c.provider.Stop()
	}
}

func (c *Controller) orientationActive() bool {
	return c.orientationEnabled && c.sampleValid
}

func (c *Controller) drainEnableResult() {
	select {
	case r := <-c.results:
		c.requestPending = false
		switch {
		case c.disposed:
			// Stale result: never mutate state, shut a granted sensor
			// back down.
			if r.err == nil {
				c.provider.Stop()
			}
			r.done <- ErrDisposed
		case r.err != nil:
			r.done <- r.err
		default:
			c.orientationEnabled = true
			r.done <- nil
		}
	default:
	}
}

func (c *Controller) retargetFromPointer() {
	var nx, ny float32
	if c.viewportW > 0 && c.viewportH > 0 {
		// [-1,1] per axis, screen-down mapping to negative Y.
		nx = 2*float32(c.pointerX)/float32(c.viewportW) - 1
		ny = -(2*float32(c.pointerY)/float32(c.viewportH) - 1)
	}
	c.setTarget(nx, ny)
}

func (c *Controller) retargetFromTilt() {
	x := clampUnit(c.gamma / c.maxTilt)
	y := clampUnit(c.beta / c.maxTilt)
	c.setTarget(x, y)
}

func (c *Controller) setTarget(x, y float32) {
	c.targetX = x
	c.targetY = y
	c.target = math.Vec3{X: x, Y: y, Z: 1}.Normalize()
}

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
