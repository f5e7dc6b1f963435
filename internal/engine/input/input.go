// Package input handles SDL2 input events.
package input

import (
	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies processed input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventSensorTilt
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	RelX   int
	RelY   int
	Wheel  float32
	Button uint8
	// Beta and Gamma are device tilt angles in degrees, front-back
	// and left-right respectively.
	Beta  float32
	Gamma float32
}

// Input polls SDL and converts raw events to viewer events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them. Returns true if the
// application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				RelX:   int(e.XRel),
				RelY:   int(e.YRel),
				Button: uint8(e.State),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = EventMouseUp
			}
			i.events = append(i.events, Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:  EventMouseWheel,
				Wheel: float32(e.Y),
			})

		case *sdl.SensorEvent:
			beta, gamma, ok := tiltFromAccel(e.Data[0], e.Data[1], e.Data[2])
			if ok {
				i.events = append(i.events, Event{
					Type:  EventSensorTilt,
					Beta:  beta,
					Gamma: gamma,
				})
			}
		}
	}

	return false
}

// tiltFromAccel derives front-back (beta) and left-right (gamma) tilt
// in degrees from a gravity-inclusive accelerometer sample. A device
// lying flat reads roughly (0, 0, g) and maps to (0, 0).
func tiltFromAccel(ax, ay, az float32) (beta, gamma float32, ok bool) {
	if ax == 0 && ay == 0 && az == 0 {
		return 0, 0, false
	}
	const radToDeg = 180 / math32.Pi
	beta = math32.Atan2(ay, az) * radToDeg
	gamma = math32.Atan2(ax, az) * radToDeg
	if math32.IsNaN(beta) || math32.IsNaN(gamma) {
		return 0, 0, false
	}
	return beta, gamma, true
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether a key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
