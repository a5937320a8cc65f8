// Package gesture turns normalized pointer input into camera and handle
// manipulation.
//
// Mouse and touch adapters both produce PointerEvent values; Router is the
// single consumer. A touch sequence and a mouse drag run through the same
// state machine, so there is no synthetic re-dispatch between the two.
package gesture

import "github.com/Jamieson-H7/visualizations/pkg/math"

// EventKind is the kind of a PointerEvent.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	// Wheel carries a scroll delta in WheelDelta and WheelMode.
	Wheel
	// Scale carries a trackpad pinch ratio in Scale.
	Scale
)

// Source identifies the device family an event came from.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

// Button is a mouse button. Touch events use ButtonNone.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// WheelMode is the unit of a wheel delta.
type WheelMode int

const (
	WheelPixel WheelMode = iota
	WheelLine
	WheelPage
)

// Wheel delta multipliers converting each mode to pixels.
const (
	LinePixels = 16
	PagePixels = 120
)

// Contact is one active touch point in window coordinates.
type Contact struct {
	ID  int64
	Pos math.Vec2
}

// PointerEvent is the normalized input record consumed by Router.
type PointerEvent struct {
	Kind   EventKind
	Source Source

	// Button is the mouse button that changed state (down/up only).
	Button Button

	// Pos is the mouse position, or the position of the contact that changed.
	Pos math.Vec2

	// Contacts lists every touch point still active after the event. For
	// PointerUp the lifted contact is no longer present.
	Contacts []Contact

	WheelDelta float32
	WheelMode  WheelMode

	// Scale is the trackpad pinch ratio; above 1 means fingers spread.
	Scale float32
}

// NormalizedWheel returns the wheel delta in pixels.
func (e PointerEvent) NormalizedWheel() float32 {
	switch e.WheelMode {
	case WheelLine:
		return e.WheelDelta * LinePixels
	case WheelPage:
		return e.WheelDelta * PagePixels
	default:
		return e.WheelDelta
	}
}
