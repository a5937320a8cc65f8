// Package input translates SDL2 events into application events and
// normalized gesture.PointerEvents.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Jamieson-H7/visualizations/internal/gesture"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// touchMouseID is SDL_TOUCH_MOUSEID, the device id of mouse events SDL
// synthesizes from touch input.
const touchMouseID = 0xFFFFFFFF

// EventType is the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventExpose
	EventFocusLost
	EventKeyDown
	EventText
	EventPointer
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     sdl.Keycode
	Mod     sdl.Keymod
	Repeat  bool
	Text    string // Typed text (EventText)
	Width   int // Window size in screen coordinates (EventResize)
	Height  int
	Pointer gesture.PointerEvent
}

// Input converts SDL events. Touch contacts are tracked across calls.
type Input struct {
	events []Event
	touch  gesture.Tracker

	// deviceType classifies touch devices; trackpads report indirect.
	deviceType func(sdl.TouchID) sdl.TouchDeviceType
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:     make([]Event, 0, 16),
		deviceType: sdl.GetTouchDeviceType,
	}
}

// Wait blocks up to timeout for the first event, then drains the queue.
// winW and winH are the window size in screen coordinates, used to scale
// normalized finger positions.
func (i *Input) Wait(timeout time.Duration, winW, winH int) []Event {
	i.events = i.events[:0]

	first := sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	for ev := first; ev != nil; ev = sdl.PollEvent() {
		if out, ok := i.Translate(ev, float32(winW), float32(winH)); ok {
			i.events = append(i.events, out)
		}
	}
	return i.events
}

// Translate converts one SDL event. It reports false for events the
// application does not consume.
func (i *Input) Translate(event sdl.Event, winW, winH float32) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return Event{Type: EventExpose}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return Event{Type: EventFocusLost, Pointer: i.touch.Reset()}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{
				Type:   EventKeyDown,
				Key:    e.Keysym.Sym,
				Mod:    sdl.Keymod(e.Keysym.Mod),
				Repeat: e.Repeat != 0,
			}, true
		}

	case *sdl.TextInputEvent:
		if text := e.GetText(); text != "" {
			return Event{Type: EventText, Text: text}, true
		}

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID {
			return Event{}, false
		}
		return pointer(gesture.PointerEvent{
			Kind:   gesture.PointerMove,
			Source: gesture.SourceMouse,
			Pos:    math.Vec2{X: float32(e.X), Y: float32(e.Y)},
		}), true

	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID {
			return Event{}, false
		}
		b := mouseButton(e.Button)
		if b == gesture.ButtonNone {
			return Event{}, false
		}
		kind := gesture.PointerDown
		if e.Type == sdl.MOUSEBUTTONUP {
			kind = gesture.PointerUp
		}
		return pointer(gesture.PointerEvent{
			Kind:   kind,
			Source: gesture.SourceMouse,
			Button: b,
			Pos:    math.Vec2{X: float32(e.X), Y: float32(e.Y)},
		}), true

	case *sdl.MouseWheelEvent:
		if e.Which == touchMouseID || e.Y == 0 {
			return Event{}, false
		}
		// SDL reports positive Y away from the user; the gesture layer
		// expects positive delta toward the user, in lines.
		delta := -float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		return pointer(gesture.PointerEvent{
			Kind:       gesture.Wheel,
			Source:     gesture.SourceMouse,
			WheelDelta: delta,
			WheelMode:  gesture.WheelLine,
		}), true

	case *sdl.TouchFingerEvent:
		if !i.direct(e.TouchID) {
			return Event{}, false
		}
		id := int64(e.FingerID)
		x, y := e.X*winW, e.Y*winH
		switch e.Type {
		case sdl.FINGERDOWN:
			return pointer(i.touch.Down(id, x, y)), true
		case sdl.FINGERMOTION:
			return pointer(i.touch.Move(id, x, y)), true
		case sdl.FINGERUP:
			return pointer(i.touch.Up(id, x, y)), true
		}

	case *sdl.MultiGestureEvent:
		// Trackpad pinch. Touchscreen pinches go through finger events.
		if i.direct(e.TouchID) || e.DDist == 0 {
			return Event{}, false
		}
		return pointer(gesture.PointerEvent{
			Kind:   gesture.Scale,
			Source: gesture.SourceMouse,
			Scale:  1 + e.DDist,
		}), true
	}

	return Event{}, false
}

// direct reports whether touches from id map onto the screen.
func (i *Input) direct(id sdl.TouchID) bool {
	if i.deviceType == nil {
		return true
	}
	return i.deviceType(id) == sdl.TOUCH_DEVICE_DIRECT
}

func pointer(ev gesture.PointerEvent) Event {
	return Event{Type: EventPointer, Pointer: ev}
}

func mouseButton(b uint8) gesture.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return gesture.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return gesture.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return gesture.ButtonRight
	default:
		return gesture.ButtonNone
	}
}
