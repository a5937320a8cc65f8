package app

import (
	"errors"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Jamieson-H7/visualizations/internal/config"
	"github.com/Jamieson-H7/visualizations/internal/engine/input"
	"github.com/Jamieson-H7/visualizations/internal/engine/picking"
	"github.com/Jamieson-H7/visualizations/internal/gesture"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	cfg := config.Default()
	cfg.Graphics.Width, cfg.Graphics.Height = 800, 600
	c := NewController(cfg, nil)
	c.save = func(*config.Config) (string, error) {
		t.Fatal("unexpected save")
		return "", nil
	}
	return c
}

func TestControllerFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Azimuth = 0.25
	cfg.Input.InvertZoom = true
	cfg.Input.InvertVertical = true
	cfg.Scene.Vectors = []config.VectorConfig{
		{Value: [3]float32{1, 2, 3}, Visible: true},
		{Value: [3]float32{0, 0, 1}},
	}
	cfg.Scene.Rows = [][3]float32{{1, 0, 0}}

	c := NewController(cfg, nil)
	if c.Camera.Azimuth != 0.25 || !c.Camera.InvertZoom {
		t.Errorf("camera not configured: %+v", c.Camera.State)
	}
	if !c.Router.InvertVertical || c.Router.InvertHorizontal {
		t.Errorf("router options = %+v", c.Router.Options)
	}
	if c.Scene.Len() != 2 || len(c.Scene.Rows()) != 1 {
		t.Fatalf("scene = %d vectors, %d rows", c.Scene.Len(), len(c.Scene.Rows()))
	}
	if v, _ := c.Scene.Vector(1); v.Visible || v.Value.Z != 1 {
		t.Errorf("vector 2 = %+v", v)
	}
	if !c.Dirty() {
		t.Error("a new controller should need a first frame")
	}
}

func TestBuildFrameClearsDirtyAndPlacesHandles(t *testing.T) {
	c := newTestController(t)
	c.Scene.AddVector(math.Vec3{X: -0.5, Y: 0.2})
	c.Scene.SetVisible(1, true)

	var f Frame
	c.BuildFrame(&f)
	if c.Dirty() {
		t.Error("frame should clear the dirty flag")
	}
	if c.Handles.Len() != 2 {
		t.Fatalf("handles = %d, want 2", c.Handles.Len())
	}
	for _, h := range c.Handles.All() {
		v, _ := c.Scene.Vector(h.Index)
		x, y, _ := picking.ProjectToScreen(v.Value, c.ViewProjection(), 800, 600)
		if h.Pos.X != x || h.Pos.Y != y {
			t.Errorf("handle %d at %v, want (%f, %f)", h.Index, h.Pos, x, y)
		}
	}
	if len(f.Overlay.Triangles) == 0 {
		t.Error("handles should be drawn in the overlay")
	}
	if len(f.Grid.Lines) == 0 || len(f.Scene.Lines) == 0 {
		t.Error("grid and scene should not be empty")
	}

	// Hidden vectors get no handle; tips off clears them all.
	c.Scene.SetVisible(1, false)
	c.BuildFrame(&f)
	if c.Handles.Len() != 1 {
		t.Errorf("handles = %d after hiding, want 1", c.Handles.Len())
	}
	c.HandleKey(sdl.K_t, 0, false)
	c.BuildFrame(&f)
	if c.Handles.Len() != 0 || len(f.Overlay.Triangles) != 0 {
		t.Error("disabling tips should remove every handle")
	}
}

func TestBuildFrameToggles(t *testing.T) {
	c := newTestController(t)
	cfg := c.Config()
	cfg.View.ShowAxes = false
	cfg.View.ShowArrow3D = false
	cfg.View.ShowComponents = false
	cfg.View.ShowMatrixVectors = false
	cfg.View.GridExtent = 0

	var f Frame
	c.BuildFrame(&f)
	// One vector and its image, each as a plain line.
	if len(f.Scene.Lines) != 4 || len(f.Grid.Lines) != 0 {
		t.Fatalf("scene %d grid %d vertices", len(f.Scene.Lines), len(f.Grid.Lines))
	}
	if got := f.Scene.Lines[3]; got.X != 0.3 || got.Y != 0.3 || got.Z != 0.3 {
		t.Errorf("transformed tip = %+v, want 0.5 * (0.6, 0.6, 0.6)", got)
	}

	cfg.View.ShowAxes = true
	cfg.View.ShowComponents = true
	cfg.View.ShowMatrixVectors = true
	c.BuildFrame(&f)
	// axes 6 + vectors 4 + components 2*4 + matrix rows 3*2
	if want := 6 + 4 + 8 + 6; len(f.Scene.Lines) != want {
		t.Errorf("scene vertices = %d, want %d", len(f.Scene.Lines), want)
	}
}

func TestThemePalette(t *testing.T) {
	c := newTestController(t)
	var f Frame

	c.Config().View.Theme = config.ThemeLight
	c.BuildFrame(&f)
	light := f.Palette.Background

	c.HandleKey(sdl.K_l, 0, false) // light -> auto
	c.BuildFrame(&f)
	if f.Palette.Background == light {
		t.Error("auto theme should render dark")
	}
	if c.Config().View.Theme != config.ThemeAuto {
		t.Errorf("theme = %s, want auto", c.Config().View.Theme)
	}
}

func TestKeyToggles(t *testing.T) {
	tests := []struct {
		key sdl.Keycode
		get func(*Controller) bool
	}{
		{sdl.K_a, func(c *Controller) bool { return c.Config().View.ShowAxes }},
		{sdl.K_r, func(c *Controller) bool { return c.Config().View.ShowArrow3D }},
		{sdl.K_c, func(c *Controller) bool { return c.Config().View.ShowComponents }},
		{sdl.K_m, func(c *Controller) bool { return c.Config().View.ShowMatrixVectors }},
		{sdl.K_t, func(c *Controller) bool { return c.Config().View.ShowDraggableTips }},
		{sdl.K_d, func(c *Controller) bool { return c.Config().View.DebugMode }},
		{sdl.K_p, func(c *Controller) bool { return c.Config().View.ShowPanel }},
		{sdl.K_h, func(c *Controller) bool { return c.Router.InvertHorizontal }},
		{sdl.K_v, func(c *Controller) bool { return c.Router.InvertVertical }},
		{sdl.K_z, func(c *Controller) bool { return c.Camera.InvertZoom }},
	}
	for _, tt := range tests {
		c := newTestController(t)
		c.BuildFrame(&Frame{})
		before := tt.get(c)
		if quit := c.HandleKey(tt.key, 0, false); quit {
			t.Fatalf("key %d requested quit", tt.key)
		}
		if tt.get(c) == before {
			t.Errorf("key %d did not toggle", tt.key)
		}
		if !c.Dirty() {
			t.Errorf("key %d did not schedule a redraw", tt.key)
		}
		// Key repeat does not toggle again.
		c.HandleKey(tt.key, 0, true)
		if tt.get(c) == before {
			t.Errorf("key %d toggled back on repeat", tt.key)
		}
	}
}

func TestKeyInvertSyncsConfig(t *testing.T) {
	c := newTestController(t)
	c.HandleKey(sdl.K_z, 0, false)
	if !c.Config().Input.InvertZoom || !c.Camera.ZoomInverted() {
		t.Error("invert zoom should update config and camera together")
	}
}

func TestKeyGridExtent(t *testing.T) {
	c := newTestController(t)
	start := c.Config().View.GridExtent

	c.HandleKey(sdl.K_RIGHTBRACKET, 0, true)
	if c.Config().View.GridExtent != start+GridExtentStep {
		t.Errorf("grid extent = %d, want %d", c.Config().View.GridExtent, start+GridExtentStep)
	}

	c.Config().View.GridExtent = 10
	c.HandleKey(sdl.K_LEFTBRACKET, 0, false)
	if c.Config().View.GridExtent != 0 {
		t.Errorf("grid extent = %d, want clamp at 0", c.Config().View.GridExtent)
	}

	c.Config().View.GridExtent = config.MaxGridExtent
	c.HandleKey(sdl.K_RIGHTBRACKET, 0, false)
	if c.Config().View.GridExtent != config.MaxGridExtent {
		t.Errorf("grid extent = %d, want clamp at max", c.Config().View.GridExtent)
	}

	c.Config().View.GridExtent = 1000
	c.HandleKey(sdl.K_LEFTBRACKET, sdl.KMOD_LSHIFT, false)
	if want := 1000 - GridExtentStep*GridExtentShift; c.Config().View.GridExtent != want {
		t.Errorf("shifted grid extent = %d, want %d", c.Config().View.GridExtent, want)
	}
}

func TestKeySceneEdits(t *testing.T) {
	c := newTestController(t)

	c.HandleKey(sdl.K_n, 0, false)
	if c.Scene.Len() != 2 {
		t.Fatalf("vectors = %d after N, want 2", c.Scene.Len())
	}
	c.HandleKey(sdl.K_BACKSPACE, 0, false)
	c.HandleKey(sdl.K_BACKSPACE, 0, false)
	if c.Scene.Len() != 1 {
		t.Errorf("vectors = %d, the floor is 1", c.Scene.Len())
	}

	c.HandleKey(sdl.K_k, 0, false)
	if len(c.Scene.Rows()) != 4 {
		t.Fatalf("rows = %d after K, want 4", len(c.Scene.Rows()))
	}
	for i := 0; i < 5; i++ {
		c.HandleKey(sdl.K_j, 0, false)
	}
	if len(c.Scene.Rows()) != 1 {
		t.Errorf("rows = %d, the floor is 1", len(c.Scene.Rows()))
	}
}

func TestKeyResetCamera(t *testing.T) {
	c := newTestController(t)
	initial := c.Camera.State
	c.Camera.SetOrbit(1, 0.3)
	c.Camera.SetZoom(4)

	c.HandleKey(sdl.K_HOME, 0, false)
	if c.Camera.State != initial {
		t.Errorf("camera = %+v, want %+v", c.Camera.State, initial)
	}
}

func TestKeySave(t *testing.T) {
	c := newTestController(t)
	saved := 0
	c.save = func(cfg *config.Config) (string, error) {
		saved++
		if cfg != c.Config() {
			t.Error("save received a different config")
		}
		return "/tmp/config.yaml", nil
	}
	c.HandleKey(sdl.K_F5, 0, false)

	c.save = func(*config.Config) (string, error) {
		saved++
		return "", errors.New("read-only")
	}
	c.HandleKey(sdl.K_F5, 0, false)

	if saved != 2 {
		t.Errorf("save called %d times, want 2", saved)
	}
}

func TestKeyScreenshotRequest(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})

	if c.TakeScreenshot() {
		t.Fatal("no screenshot requested yet")
	}
	c.HandleKey(sdl.K_F12, 0, true)
	if c.TakeScreenshot() {
		t.Error("held F12 should not request a screenshot")
	}

	c.HandleKey(sdl.K_F12, 0, false)
	if !c.Dirty() {
		t.Error("screenshot request should schedule a redraw")
	}
	if !c.TakeScreenshot() {
		t.Error("screenshot should be pending")
	}
	if c.TakeScreenshot() {
		t.Error("request should clear after it is taken")
	}
}

func TestEscapeQuits(t *testing.T) {
	c := newTestController(t)
	if !c.HandleKey(sdl.K_ESCAPE, 0, false) {
		t.Error("escape should quit")
	}
	if !c.HandleEvent(input.Event{Type: input.EventQuit}) {
		t.Error("quit event should quit")
	}
}

func TestHandleEventResize(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})

	c.HandleEvent(input.Event{Type: input.EventResize, Width: 1000, Height: 500})
	if w, h := c.ViewportSize(); w != 1000 || h != 500 {
		t.Errorf("viewport = %fx%f", w, h)
	}
	if !c.Dirty() {
		t.Error("resize should schedule a redraw")
	}

	c.BuildFrame(&Frame{})
	c.HandleEvent(input.Event{Type: input.EventResize, Width: 0, Height: 500})
	if c.Dirty() {
		t.Error("empty viewport should be ignored")
	}
}

func TestPointerDragsHandleEndToEnd(t *testing.T) {
	c := newTestController(t)
	// At 800x600 the default tip sits under the panel.
	c.Config().View.ShowPanel = false
	c.BuildFrame(&Frame{})
	h := c.Handles.All()[0]
	before, _ := c.Scene.Vector(0)
	camBefore := c.Camera.State

	press := gesture.PointerEvent{Kind: gesture.PointerDown, Source: gesture.SourceMouse, Button: gesture.ButtonLeft, Pos: h.Pos}
	move := gesture.PointerEvent{Kind: gesture.PointerMove, Source: gesture.SourceMouse, Pos: h.Pos.Add(math.Vec2{X: 30})}
	release := gesture.PointerEvent{Kind: gesture.PointerUp, Source: gesture.SourceMouse, Button: gesture.ButtonLeft, Pos: move.Pos}

	for _, p := range []gesture.PointerEvent{press, move, release} {
		c.HandleEvent(input.Event{Type: input.EventPointer, Pointer: p})
	}

	after, _ := c.Scene.Vector(0)
	if after.Value == before.Value {
		t.Error("dragging the tip did not move the vector")
	}
	if c.Camera.State != camBefore {
		t.Error("dragging a tip must not orbit")
	}
	if !c.Dirty() {
		t.Error("drag should schedule a redraw")
	}
}

func TestPointerOrbitsOffHandle(t *testing.T) {
	c := newTestController(t)
	c.BuildFrame(&Frame{})

	press := gesture.PointerEvent{Kind: gesture.PointerDown, Source: gesture.SourceMouse, Button: gesture.ButtonLeft, Pos: math.Vec2{X: 5, Y: 5}}
	move := gesture.PointerEvent{Kind: gesture.PointerMove, Source: gesture.SourceMouse, Pos: math.Vec2{X: 25, Y: 5}}
	c.HandleEvent(input.Event{Type: input.EventPointer, Pointer: press})
	c.HandleEvent(input.Event{Type: input.EventPointer, Pointer: move})

	if !approx(c.Camera.Azimuth, 0.2) {
		t.Errorf("azimuth = %f, want 0.2", c.Camera.Azimuth)
	}
}

func TestIsDark(t *testing.T) {
	if !IsDark(config.ThemeDark) || !IsDark(config.ThemeAuto) || IsDark(config.ThemeLight) {
		t.Error("unexpected theme resolution")
	}
}

func approx(a, b float32) bool {
	return math.Abs(a-b) < 1e-5
}
