package input

import (
	"errors"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// ErrNoAccelerometer is returned by Accelerometer.Start when the host
// exposes no accelerometer device.
var ErrNoAccelerometer = errors.New("input: no accelerometer available")

// Accelerometer opens the first SDL accelerometer so its samples flow
// through the event queue as EventSensorTilt. It satisfies the
// interaction package's orientation provider contract: Start either
// grants access or reports why it cannot.
type Accelerometer struct {
	mu     sync.Mutex
	sensor *sdl.Sensor
}

// Start opens the accelerometer. Safe to call again after Stop.
func (a *Accelerometer) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sensor != nil {
		return nil
	}
	for i := 0; i < sdl.NumSensors(); i++ {
		if sdl.SensorGetDeviceType(i) != sdl.SENSOR_ACCEL {
			continue
		}
		s := sdl.SensorOpen(i)
		if s == nil {
			continue
		}
		a.sensor = s
		return nil
	}
	return ErrNoAccelerometer
}

// Stop closes the sensor and stops tilt delivery.
func (a *Accelerometer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sensor != nil {
		a.sensor.Close()
		a.sensor = nil
	}
}
