package picking

import (
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// HitRadius is the pixel tolerance for grabbing a handle.
const HitRadius = 9

// Handle is a draggable screen-space marker bound to a vector's tip.
type Handle struct {
	Index int // vector index in the scene
	Pos   math.Vec2
	Color [3]float32
}

// Handles is the per-frame handle registry. It is cleared and refilled on
// every redraw, so positions are never stale; the backing array is reused
// between frames.
type Handles struct {
	items  []Handle
	radius float32
}

// NewHandles creates an empty registry with the given hit radius in pixels.
// A non-positive radius selects HitRadius.
func NewHandles(radius float32) *Handles {
	if radius <= 0 {
		radius = HitRadius
	}
	return &Handles{radius: radius}
}

// Reset drops every handle from the previous frame.
func (h *Handles) Reset() {
	h.items = h.items[:0]
}

// Add registers a handle for the vector at index.
func (h *Handles) Add(index int, x, y float32, color [3]float32) {
	h.items = append(h.items, Handle{Index: index, Pos: math.Vec2{X: x, Y: y}, Color: color})
}

// All returns the handles registered this frame.
func (h *Handles) All() []Handle {
	return h.items
}

// Len returns the number of handles registered this frame.
func (h *Handles) Len() int {
	return len(h.items)
}

// Radius returns the hit radius in pixels.
func (h *Handles) Radius() float32 {
	return h.radius
}

// HitTest returns the vector index of the handle nearest to (x, y) within
// the hit radius. Later handles win ties, matching draw order.
func (h *Handles) HitTest(x, y float32) (int, bool) {
	p := math.Vec2{X: x, Y: y}
	best := -1
	bestDist := h.radius
	for i := range h.items {
		d := h.items[i].Pos.Distance(p)
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return h.items[best].Index, true
}
