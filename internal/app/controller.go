package app

import (
	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/config"
	"github.com/Jamieson-H7/visualizations/internal/engine/camera"
	"github.com/Jamieson-H7/visualizations/internal/engine/input"
	"github.com/Jamieson-H7/visualizations/internal/engine/picking"
	"github.com/Jamieson-H7/visualizations/internal/engine/scene"
	"github.com/Jamieson-H7/visualizations/internal/engine/ui2d"
	"github.com/Jamieson-H7/visualizations/internal/gesture"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Controller owns the camera, scene and gesture router and decides when a
// redraw is due. It does no GL work, so it runs headless in tests.
type Controller struct {
	cfg *config.Config

	Camera  *camera.OrbitCamera
	Scene   *scene.State
	Handles *picking.Handles
	Router  *gesture.Router
	UI      *ui2d.Context

	width, height float32 // window size in screen coordinates
	dirty         bool
	screenshot    bool

	// Pointer capture by the editor panel.
	panelCapture bool
	panelSource  gesture.Source
	panelButton  gesture.Button
	panelHover   bool

	log *zap.Logger

	// save persists cfg; replaced in tests.
	save func(*config.Config) (string, error)
}

// NewController builds the interaction state from cfg.
func NewController(cfg *config.Config, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		cfg:     cfg,
		Handles: picking.NewHandles(picking.HitRadius),
		UI:      ui2d.NewContext(),
		width:   float32(cfg.Graphics.Width),
		height:  float32(cfg.Graphics.Height),
		dirty:   true,
		log:     log,
		save:    (*config.Config).Save,
	}

	c.Camera = camera.NewOrbitCamera(camera.State{
		Azimuth:   cfg.Camera.Azimuth,
		Elevation: cfg.Camera.Elevation,
		Zoom:      cfg.Camera.Zoom,
	}, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	c.Camera.InvertZoom = cfg.Input.InvertZoom

	c.Scene = scene.New(sceneVectors(cfg.Scene), sceneRows(cfg.Scene))
	c.Scene.OnChange(c.MarkDirty)

	c.Router = gesture.NewRouter(c.Camera, c.Scene, c.Handles, c, c.MarkDirty, log.Named("gesture"))
	c.Router.Options = gesture.Options{
		InvertHorizontal: cfg.Input.InvertHorizontal,
		InvertVertical:   cfg.Input.InvertVertical,
	}
	return c
}

func sceneVectors(sc config.SceneConfig) []scene.Vector {
	out := make([]scene.Vector, 0, len(sc.Vectors))
	for _, v := range sc.Vectors {
		out = append(out, scene.Vector{
			Value:           math.Vec3{X: v.Value[0], Y: v.Value[1], Z: v.Value[2]},
			Visible:         v.Visible,
			ShowTransformed: v.ShowTransformed,
		})
	}
	return out
}

func sceneRows(sc config.SceneConfig) []math.Vec3 {
	out := make([]math.Vec3, 0, len(sc.Rows))
	for _, r := range sc.Rows {
		out = append(out, math.Vec3{X: r[0], Y: r[1], Z: r[2]})
	}
	return out
}

// Config returns the live configuration, including toggles changed at runtime.
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// ViewportSize implements gesture.View.
func (c *Controller) ViewportSize() (float32, float32) {
	return c.width, c.height
}

// ViewProjection implements gesture.View.
func (c *Controller) ViewProjection() math.Mat4 {
	aspect := float32(1)
	if c.height > 0 {
		aspect = c.width / c.height
	}
	return c.Camera.ViewProjection(aspect)
}

// SetViewport records a new window size and schedules a redraw.
func (c *Controller) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.width, c.height = float32(w), float32(h)
	c.MarkDirty()
}

// MarkDirty schedules a redraw.
func (c *Controller) MarkDirty() {
	c.dirty = true
}

// Dirty reports whether a redraw is pending.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// HandleEvent applies one input event and reports whether to quit.
func (c *Controller) HandleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventQuit:
		return true
	case input.EventResize:
		c.SetViewport(ev.Width, ev.Height)
	case input.EventExpose:
		c.MarkDirty()
	case input.EventFocusLost:
		c.Router.Cancel()
		c.releasePanel()
		c.MarkDirty()
	case input.EventPointer:
		if c.panelPointer(ev.Pointer) {
			return false
		}
		c.Router.Handle(ev.Pointer)
	case input.EventText:
		c.panelText(ev.Text)
	case input.EventKeyDown:
		if c.UI.Focused() {
			c.panelKey(ev)
			return false
		}
		return c.HandleKey(ev.Key, ev.Mod, ev.Repeat)
	}
	return false
}

// TakeScreenshot reports and clears a pending capture request.
func (c *Controller) TakeScreenshot() bool {
	req := c.screenshot
	c.screenshot = false
	return req
}
