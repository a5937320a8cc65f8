package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/config"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// GridExtentStep is the change applied by the [ and ] keys; Shift
// multiplies it by GridExtentShift.
const (
	GridExtentStep  = 50
	GridExtentShift = 10
)

// HandleKey applies a keyboard shortcut and reports whether to quit.
// Held keys repeat only for the grid extent.
func (c *Controller) HandleKey(key sdl.Keycode, mod sdl.Keymod, repeat bool) bool {
	view := &c.cfg.View

	step := GridExtentStep
	if mod&sdl.KMOD_SHIFT != 0 {
		step *= GridExtentShift
	}
	switch key {
	case sdl.K_LEFTBRACKET:
		c.setGridExtent(view.GridExtent - step)
		return false
	case sdl.K_RIGHTBRACKET:
		c.setGridExtent(view.GridExtent + step)
		return false
	}
	if repeat {
		return false
	}

	switch key {
	case sdl.K_ESCAPE:
		return true
	case sdl.K_a:
		c.toggle("show_axes", &view.ShowAxes)
	case sdl.K_r:
		c.toggle("show_arrow_3d", &view.ShowArrow3D)
	case sdl.K_c:
		c.toggle("show_components", &view.ShowComponents)
	case sdl.K_m:
		c.toggle("show_matrix_vectors", &view.ShowMatrixVectors)
	case sdl.K_t:
		c.toggle("show_draggable_tips", &view.ShowDraggableTips)
	case sdl.K_d:
		c.toggle("debug_mode", &view.DebugMode)
	case sdl.K_p:
		c.toggle("show_panel", &view.ShowPanel)
	case sdl.K_h:
		c.toggleInvertHorizontal()
	case sdl.K_v:
		c.toggleInvertVertical()
	case sdl.K_z:
		c.toggleInvertZoom()
	case sdl.K_l:
		view.Theme = view.Theme.Next()
		c.log.Info("theme", zap.String("theme", string(view.Theme)))
		c.MarkDirty()
	case sdl.K_n:
		i := c.Scene.AddVector(math.Vec3{})
		c.log.Info("vector added", zap.Int("vector", i+1))
	case sdl.K_BACKSPACE:
		if !c.Scene.RemoveVector(c.Scene.Len() - 1) {
			c.log.Info("the last vector cannot be removed")
		}
	case sdl.K_k:
		i := c.Scene.AddTransformRow()
		c.log.Info("transform row added", zap.Int("row", i+1))
	case sdl.K_j:
		if !c.Scene.RemoveTransformRow(len(c.Scene.Rows()) - 1) {
			c.log.Info("the last transform row cannot be removed")
		}
	case sdl.K_HOME:
		c.Router.Cancel()
		c.Camera.Reset()
		c.MarkDirty()
	case sdl.K_F12:
		c.screenshot = true
		c.MarkDirty()
	case sdl.K_F5:
		path, err := c.save(c.cfg)
		if err != nil {
			c.log.Error("failed to save config", zap.Error(err))
		} else {
			c.log.Info("config saved", zap.String("path", path))
		}
	}
	return false
}

func (c *Controller) toggle(name string, flag *bool) {
	*flag = !*flag
	c.log.Info("toggle", zap.String("setting", name), zap.Bool("enabled", *flag))
	c.MarkDirty()
}

func (c *Controller) toggleInvertHorizontal() {
	c.toggle("invert_horizontal", &c.cfg.Input.InvertHorizontal)
	c.Router.InvertHorizontal = c.cfg.Input.InvertHorizontal
}

func (c *Controller) toggleInvertVertical() {
	c.toggle("invert_vertical", &c.cfg.Input.InvertVertical)
	c.Router.InvertVertical = c.cfg.Input.InvertVertical
}

func (c *Controller) toggleInvertZoom() {
	c.toggle("invert_zoom", &c.cfg.Input.InvertZoom)
	c.Camera.InvertZoom = c.cfg.Input.InvertZoom
}

func (c *Controller) setGridExtent(extent int) {
	extent = math.Clamp(extent, 0, config.MaxGridExtent)
	if extent == c.cfg.View.GridExtent {
		return
	}
	c.cfg.View.GridExtent = extent
	c.log.Debug("grid extent", zap.Int("extent", extent))
	c.MarkDirty()
}
