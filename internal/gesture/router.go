package gesture

import (
	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/engine/picking"
	"github.com/Jamieson-H7/visualizations/internal/engine/scene"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Tuning constants.
const (
	OrbitSpeed    = 0.01
	PinchExponent = 0.15
	WheelSpeed    = 0.05
)

// State is the router's drag session state.
type State int

const (
	Idle State = iota
	OrbitDrag
	PinchZoom
	HandleDrag
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case OrbitDrag:
		return "orbit"
	case PinchZoom:
		return "pinch"
	case HandleDrag:
		return "handle"
	default:
		return "unknown"
	}
}

// Camera is the part of the orbit camera the router drives.
type Camera interface {
	SetOrbit(deltaAzimuth, deltaElevation float32)
	SetZoom(zoom float32)
	SetZoomFactor(multiplier float32)
	CurrentZoom() float32
	ZoomInverted() bool
}

// Vectors is the editable vector store.
type Vectors interface {
	Vector(i int) (scene.Vector, bool)
	SetVector(i int, v math.Vec3) error
}

// HitTester finds the draggable handle under a screen position.
type HitTester interface {
	HitTest(x, y float32) (int, bool)
}

// View supplies the current viewport size in window coordinates and the
// matching view-projection matrix.
type View interface {
	ViewportSize() (w, h float32)
	ViewProjection() math.Mat4
}

// Options are the user's input preferences.
type Options struct {
	InvertHorizontal bool
	InvertVertical   bool
}

// Router is the gesture state machine. At most one drag session is active.
type Router struct {
	Options

	camera  Camera
	vectors Vectors
	handles HitTester
	view    View
	redraw  func()
	log     *zap.Logger

	state  State
	source Source
	button Button
	last   math.Vec2

	pinchDistance float32
	pinchZoom     float32

	handleIndex   int
	handleContact int64
	handleStart   math.Vec2
	handleValue   math.Vec3
}

// NewRouter creates a router. handles, view and redraw may be nil; handle
// dragging is then unavailable and redraw requests are dropped.
func NewRouter(camera Camera, vectors Vectors, handles HitTester, view View, redraw func(), log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		camera:  camera,
		vectors: vectors,
		handles: handles,
		view:    view,
		redraw:  redraw,
		log:     log,
	}
}

// State returns the current session state.
func (r *Router) State() State {
	return r.state
}

// DraggedHandle returns the vector index being dragged, if any.
func (r *Router) DraggedHandle() (int, bool) {
	if r.state != HandleDrag {
		return 0, false
	}
	return r.handleIndex, true
}

// Handle routes one event.
func (r *Router) Handle(ev PointerEvent) {
	switch ev.Kind {
	case Wheel:
		r.wheel(ev)
	case Scale:
		r.scale(ev)
	default:
		if ev.Source == SourceTouch {
			r.touch(ev)
		} else {
			r.mouse(ev)
		}
	}
}

// Cancel ends any session without applying further changes.
func (r *Router) Cancel() {
	r.transition(Idle)
}

func (r *Router) mouse(ev PointerEvent) {
	if r.state != Idle && r.source != SourceMouse {
		return
	}
	switch ev.Kind {
	case PointerDown:
		if r.state != Idle {
			return
		}
		switch ev.Button {
		case ButtonLeft:
			if r.beginHandle(SourceMouse, ev.Pos, 0) {
				break
			}
			r.beginOrbit(SourceMouse, ButtonLeft, ev.Pos)
		case ButtonMiddle, ButtonRight:
			r.beginOrbit(SourceMouse, ev.Button, ev.Pos)
		}
	case PointerMove:
		switch r.state {
		case OrbitDrag:
			r.orbit(ev.Pos, r.button != ButtonRight)
		case HandleDrag:
			r.dragHandle(ev.Pos)
		}
	case PointerUp:
		if r.state != Idle && ev.Button == r.button {
			r.transition(Idle)
		}
	}
}

func (r *Router) touch(ev PointerEvent) {
	if r.state != Idle && r.source != SourceTouch {
		return
	}
	n := len(ev.Contacts)
	if n == 0 {
		if r.state != Idle {
			r.transition(Idle)
		}
		return
	}

	switch ev.Kind {
	case PointerDown:
		switch {
		case r.state == HandleDrag:
			// Sticky: extra fingers never reach the camera.
		case n == 1 && r.state == Idle:
			c := ev.Contacts[0]
			if !r.beginHandle(SourceTouch, c.Pos, c.ID) {
				r.beginOrbit(SourceTouch, ButtonNone, c.Pos)
			}
		case n >= 2:
			r.beginPinch(ev.Contacts[0].Pos, ev.Contacts[1].Pos)
		}
	case PointerMove:
		switch r.state {
		case OrbitDrag:
			r.orbit(ev.Contacts[0].Pos, true)
		case PinchZoom:
			if n >= 2 {
				r.pinch(ev.Contacts[0].Pos.Distance(ev.Contacts[1].Pos))
			}
		case HandleDrag:
			for _, c := range ev.Contacts {
				if c.ID == r.handleContact {
					r.dragHandle(c.Pos)
					break
				}
			}
		}
	}
}

func (r *Router) beginOrbit(src Source, b Button, pos math.Vec2) {
	r.source = src
	r.button = b
	r.last = pos
	r.transition(OrbitDrag)
}

// beginPinch enters PinchZoom. Coincident contacts leave the baseline
// unset until the first move with a non-zero spread.
func (r *Router) beginPinch(a, b math.Vec2) {
	r.source = SourceTouch
	r.pinchDistance = a.Distance(b)
	r.pinchZoom = r.camera.CurrentZoom()
	r.transition(PinchZoom)
}

// beginHandle starts a handle drag if pos is over a handle whose vector
// still exists.
func (r *Router) beginHandle(src Source, pos math.Vec2, contact int64) bool {
	if r.handles == nil || r.view == nil || r.vectors == nil {
		return false
	}
	idx, ok := r.handles.HitTest(pos.X, pos.Y)
	if !ok {
		return false
	}
	v, ok := r.vectors.Vector(idx)
	if !ok {
		return false
	}
	r.source = src
	r.button = ButtonNone
	if src == SourceMouse {
		r.button = ButtonLeft
	}
	r.handleIndex = idx
	r.handleContact = contact
	r.handleStart = pos
	r.handleValue = v.Value
	r.transition(HandleDrag)
	return true
}

func (r *Router) orbit(pos math.Vec2, horizontal bool) {
	d := pos.Sub(r.last)
	r.last = pos
	if d.X == 0 && d.Y == 0 {
		return
	}
	h, v := float32(1), float32(1)
	if r.InvertHorizontal {
		h = -1
	}
	if r.InvertVertical {
		v = -1
	}
	dAz := h * d.X * OrbitSpeed
	if !horizontal {
		dAz = 0
	}
	r.camera.SetOrbit(dAz, v*d.Y*OrbitSpeed)
	r.requestRedraw()
}

// pinch sets the zoom from the session's starting zoom rather than
// compounding per move, so the result depends only on the finger spread.
func (r *Router) pinch(distance float32) {
	if distance <= 0 {
		return
	}
	if r.pinchDistance <= 0 {
		r.pinchDistance = distance
		r.pinchZoom = r.camera.CurrentZoom()
		return
	}
	scale := r.pinchDistance / distance
	if r.camera.ZoomInverted() {
		scale = 1 / scale
	}
	r.camera.SetZoom(r.pinchZoom * math.Pow(scale, PinchExponent))
	r.requestRedraw()
}

func (r *Router) dragHandle(pos math.Vec2) {
	w, h := r.view.ViewportSize()
	d := pos.Sub(r.handleStart)
	p, ok := picking.UnprojectScreenDelta(r.handleValue, d.X, d.Y, r.view.ViewProjection(), w, h)
	if !ok {
		return
	}
	if err := r.vectors.SetVector(r.handleIndex, p); err != nil {
		r.log.Warn("handle drag target vanished", zap.Int("vector", r.handleIndex), zap.Error(err))
		r.transition(Idle)
		return
	}
	r.requestRedraw()
}

func (r *Router) wheel(ev PointerEvent) {
	if r.state == HandleDrag {
		return
	}
	delta := ev.NormalizedWheel()
	if delta == 0 {
		return
	}
	r.camera.SetZoomFactor(math.Exp(-delta * WheelSpeed))
	r.requestRedraw()
}

func (r *Router) scale(ev PointerEvent) {
	if r.state == HandleDrag || ev.Scale <= 0 {
		return
	}
	r.camera.SetZoomFactor(1 / ev.Scale)
	r.requestRedraw()
}

func (r *Router) transition(to State) {
	if r.state == to && to != PinchZoom {
		return
	}
	r.log.Debug("gesture", zap.Stringer("from", r.state), zap.Stringer("to", to))
	r.state = to
	if to == Idle {
		r.source = SourceMouse
		r.button = ButtonNone
		r.last = math.Vec2{}
		r.pinchDistance, r.pinchZoom = 0, 0
		r.handleIndex, r.handleContact = 0, 0
		r.handleStart, r.handleValue = math.Vec2{}, math.Vec3{}
	}
}

func (r *Router) requestRedraw() {
	if r.redraw != nil {
		r.redraw()
	}
}
