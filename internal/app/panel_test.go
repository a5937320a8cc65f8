package app

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Jamieson-H7/visualizations/internal/engine/input"
	"github.com/Jamieson-H7/visualizations/internal/engine/ui2d"
	"github.com/Jamieson-H7/visualizations/internal/gesture"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Panel geometry for the default scene of one vector and three rows.
const (
	checkboxSize = 18
	firstRowTop  = PanelY + ui2d.TitleHeight + ui2d.Padding + ui2d.Spacing + ui2d.RowHeight + ui2d.Spacing
	rowStep      = ui2d.RowHeight + ui2d.Spacing
	// Left edge of the first vector field: checkbox, swatch, "V1".
	vectorFieldLeft = PanelX + ui2d.Padding + 2*(checkboxSize+ui2d.Spacing) + 24 + ui2d.Spacing
	// Left edge of the first matrix field: swatch, "R1".
	matrixFieldLeft = PanelX + ui2d.Padding + checkboxSize + ui2d.Spacing + 24 + ui2d.Spacing
	// Matrix rows follow the vector rows, "+ VECTOR", a separator and the label.
	matrixRowTop = firstRowTop + 2*rowStep + ui2d.Spacing + ui2d.Spacing + rowStep
)

func vectorRowY(i int) float32 {
	return float32(firstRowTop + i*rowStep + ui2d.RowHeight/2)
}

func vectorFieldX(axis int) float32 {
	return float32(vectorFieldLeft + axis*(FieldWidth+ui2d.Spacing) + FieldWidth/2)
}

func pointer(c *Controller, kind gesture.EventKind, x, y float32) {
	c.HandleEvent(input.Event{Type: input.EventPointer, Pointer: gesture.PointerEvent{
		Kind:   kind,
		Source: gesture.SourceMouse,
		Button: gesture.ButtonLeft,
		Pos:    math.Vec2{X: x, Y: y},
	}})
}

// click presses and releases at (x, y), then redraws.
func click(c *Controller, x, y float32) {
	pointer(c, gesture.PointerDown, x, y)
	pointer(c, gesture.PointerUp, x, y)
	c.BuildFrame(&Frame{})
}

func key(c *Controller, k sdl.Keycode) bool {
	return c.HandleEvent(input.Event{Type: input.EventKeyDown, Key: k})
}

func typeText(c *Controller, text string) {
	c.HandleEvent(input.Event{Type: input.EventText, Text: text})
}

func TestPanelEditsVectorComponent(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})
	camBefore := c.Camera.State

	click(c, vectorFieldX(0), vectorRowY(0))
	if !c.UI.Focused() {
		t.Fatal("clicking the x field should focus it")
	}
	if c.Router.State() != gesture.Idle || c.Camera.State != camBefore {
		t.Error("a click on the panel must not reach the camera")
	}

	// "0.6" -> "" -> "2.5"; Backspace edits the field instead of removing a vector.
	for i := 0; i < 3; i++ {
		key(c, sdl.K_BACKSPACE)
	}
	typeText(c, "2.5")
	c.BuildFrame(&Frame{})

	v, _ := c.Scene.Vector(0)
	if v.Value.X != 2.5 || v.Value.Y != 0.6 {
		t.Errorf("vector = %+v, want x 2.5", v.Value)
	}
	if c.Scene.Len() != 1 {
		t.Errorf("vectors = %d, Backspace should not reach the shortcut", c.Scene.Len())
	}

	typeText(c, "abc")
	c.BuildFrame(&Frame{})
	if v, _ := c.Scene.Vector(0); v.Value.X != 0 {
		t.Errorf("non-numeric text stored %f, want 0", v.Value.X)
	}

	if key(c, sdl.K_ESCAPE) {
		t.Error("Escape in a field should not quit")
	}
	c.BuildFrame(&Frame{})
	if c.UI.Focused() {
		t.Fatal("Escape should drop focus")
	}

	key(c, sdl.K_n)
	if c.Scene.Len() != 2 {
		t.Error("shortcuts should work again after the field loses focus")
	}
}

func TestPanelEditsMatrixEntry(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})

	x := float32(matrixFieldLeft + 2*(FieldWidth+ui2d.Spacing) + FieldWidth/2)
	y := float32(matrixRowTop + rowStep + ui2d.RowHeight/2)
	click(c, x, y)

	for i := 0; i < 8; i++ {
		key(c, sdl.K_BACKSPACE)
	}
	typeText(c, "-3")
	key(c, sdl.K_RETURN)
	c.BuildFrame(&Frame{})

	if got := c.Scene.Rows()[1]; got != (math.Vec3{X: 0, Y: 0.5, Z: -3}) {
		t.Errorf("row 2 = %+v, want (0, 0.5, -3)", got)
	}
	if c.UI.Focused() {
		t.Error("Enter should drop focus")
	}
}

func TestPanelVectorToggles(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})
	y := vectorRowY(0)

	click(c, PanelX+ui2d.Padding+checkboxSize/2, y)
	if v, _ := c.Scene.Vector(0); v.Visible {
		t.Error("visible checkbox did not hide the vector")
	}
	if c.Handles.Len() != 0 {
		t.Error("a hidden vector should have no handle")
	}

	transformedX := float32(vectorFieldLeft + 3*(FieldWidth+ui2d.Spacing) + checkboxSize/2)
	click(c, transformedX, y)
	if v, _ := c.Scene.Vector(0); v.ShowTransformed {
		t.Error("T checkbox did not hide the transformed vector")
	}
}

func TestPanelRemoveVector(t *testing.T) {
	c := newTestController(t)
	key(c, sdl.K_n)
	c.BuildFrame(&Frame{})

	// Past the T checkbox and its label.
	removeX := float32(vectorFieldLeft + 3*(FieldWidth+ui2d.Spacing) + checkboxSize + ui2d.Spacing + 12 + ui2d.Padding + 14)
	click(c, removeX, vectorRowY(0))
	if c.Scene.Len() != 1 {
		t.Fatalf("vectors = %d after remove, want 1", c.Scene.Len())
	}

	click(c, removeX, vectorRowY(0))
	if c.Scene.Len() != 1 {
		t.Error("the last vector must not be removed")
	}
}

func TestPanelCapturesDrag(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})
	camBefore := c.Camera.State

	pointer(c, gesture.PointerDown, 200, 20)
	pointer(c, gesture.PointerMove, 700, 500)
	pointer(c, gesture.PointerUp, 700, 500)
	if c.Camera.State != camBefore {
		t.Error("a drag starting on the panel must not orbit")
	}

	c.Config().View.ShowPanel = false
	c.BuildFrame(&Frame{})
	if c.UI.Contains(200, 20) && c.panelPointer(gesture.PointerEvent{Kind: gesture.PointerDown, Button: gesture.ButtonLeft, Pos: math.Vec2{X: 200, Y: 20}}) {
		t.Error("a hidden panel must not capture the pointer")
	}
	pointer(c, gesture.PointerUp, 200, 20)

	pointer(c, gesture.PointerDown, 200, 20)
	pointer(c, gesture.PointerMove, 220, 20)
	if !approx(c.Camera.Azimuth, camBefore.Azimuth+0.2) {
		t.Errorf("azimuth = %f, want orbit with the panel hidden", c.Camera.Azimuth)
	}
}

func TestPanelTouchTap(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})

	var tr gesture.Tracker
	x, y := float32(PanelX+ui2d.Padding+checkboxSize/2), vectorRowY(0)
	for _, ev := range []gesture.PointerEvent{tr.Down(7, x, y), tr.Up(7, x, y)} {
		c.HandleEvent(input.Event{Type: input.EventPointer, Pointer: ev})
	}
	c.BuildFrame(&Frame{})

	if v, _ := c.Scene.Vector(0); v.Visible {
		t.Error("a tap on the checkbox should toggle it")
	}
	if c.Router.State() != gesture.Idle {
		t.Errorf("router state = %v, want idle", c.Router.State())
	}
}

func TestPanelFocusLost(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})
	click(c, vectorFieldX(1), vectorRowY(0))
	pointer(c, gesture.PointerDown, 200, 20)

	c.HandleEvent(input.Event{Type: input.EventFocusLost})
	if c.UI.Focused() || c.panelCapture || c.UI.Input().MouseLeftDown {
		t.Error("focus loss should release the panel")
	}
}

func TestPanelDrawing(t *testing.T) {
	c := newTestController(t)
	f := &Frame{}
	c.BuildFrame(f)
	if len(f.Panel.Triangles) == 0 {
		t.Fatal("panel drew nothing")
	}
	if !c.UI.Contains(PanelX+1, PanelY+1) || c.UI.Contains(PanelX+PanelWidth+1, PanelY+1) {
		t.Error("panel bounds are wrong")
	}

	c.Config().View.ShowPanel = false
	c.BuildFrame(f)
	if len(f.Panel.Triangles) != 0 {
		t.Errorf("hidden panel drew %d vertices", len(f.Panel.Triangles))
	}

	// The debug readout is drawn on the canvas even without the panel.
	c.Config().View.DebugMode = true
	c.BuildFrame(f)
	if len(f.Panel.Triangles) == 0 {
		t.Error("debug readout drew nothing")
	}
}

func TestFormatComponent(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0.6, "0.6"},
		{-3, "-3"},
		{1.0 / 3, "0.3333"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatComponent(tt.in); got != tt.want {
			t.Errorf("formatComponent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
