package app

import (
	"github.com/Jamieson-H7/visualizations/internal/config"
	"github.com/Jamieson-H7/visualizations/internal/engine/geometry"
	"github.com/Jamieson-H7/visualizations/internal/engine/picking"
	"github.com/Jamieson-H7/visualizations/internal/engine/renderer"
	"github.com/Jamieson-H7/visualizations/internal/engine/scene"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// componentLighten is how far component guides are blended toward white.
const componentLighten = 0.5

// Frame is everything one redraw submits, rebuilt from scratch each time.
type Frame struct {
	Palette renderer.Palette

	// World-space passes, drawn with ViewProj.
	ViewProj math.Mat4
	Grid     geometry.Batch
	Scene    geometry.Batch

	// Screen-space pass in window coordinates, drawn with Screen.
	Screen  math.Mat4
	Overlay geometry.Batch
	// Panel is drawn last, over the handles.
	Panel geometry.Batch
}

// BuildFrame fills f for the current state, repopulates the handle arena
// and clears the dirty flag. The editor panel runs first and may change
// the scene or toggles.
func (c *Controller) BuildFrame(f *Frame) {
	f.Panel.Reset()
	c.drawPanel(f)

	view := c.cfg.View

	f.Palette = renderer.PaletteFor(IsDark(view.Theme))
	f.ViewProj = c.ViewProjection()
	f.Screen = math.Ortho(0, c.width, c.height, 0, -1, 1)
	f.Grid.Reset()
	f.Scene.Reset()
	f.Overlay.Reset()

	f.Grid.Grid(view.GridExtent, f.Palette.Grid)
	if view.ShowAxes {
		f.Scene.Axes()
	}

	rows := c.Scene.Rows()
	for i, v := range c.Scene.Vectors() {
		color := geometry.Color(scene.VectorColor(i))
		tcolor := geometry.Color(scene.TransformedColor(i))
		if v.Visible {
			f.Scene.Vector(v.Value, color, view.ShowArrow3D)
		}
		var out math.Vec3
		if v.ShowTransformed {
			out = scene.ApplyRows(rows, v.Value.Slice())
			f.Scene.Vector(out, tcolor, view.ShowArrow3D)
		}
		if view.ShowComponents {
			f.Scene.Components(v.Value, geometry.Color(scene.VectorColor(i).Lighten(componentLighten)))
			if v.ShowTransformed {
				f.Scene.Components(out, geometry.Color(scene.TransformedColor(i).Lighten(componentLighten)))
			}
		}
	}

	if view.ShowMatrixVectors {
		purple := geometry.Color(scene.MatrixRowColor)
		for _, r := range rows {
			f.Scene.Line(math.Vec3{}, r, purple)
		}
	}

	c.placeHandles(f)
	c.dirty = false
}

// placeHandles re-projects every visible vector tip. Handles from the
// previous frame are discarded first; tips that fail to project get none.
func (c *Controller) placeHandles(f *Frame) {
	c.Handles.Reset()
	if !c.cfg.View.ShowDraggableTips {
		return
	}
	for i, v := range c.Scene.Vectors() {
		if !v.Visible {
			continue
		}
		x, y, ok := picking.ProjectToScreen(v.Value, f.ViewProj, c.width, c.height)
		if !ok {
			continue
		}
		color := scene.VectorColor(i)
		c.Handles.Add(i, x, y, color)
		f.Overlay.Disc(x, y, c.Handles.Radius(), geometry.Color(color), f.Palette.HandleBorder)
	}
}

// IsDark resolves a theme to dark or light. SDL2 exposes no system colour
// scheme, so auto follows the dark default.
func IsDark(theme config.Theme) bool {
	return theme != config.ThemeLight
}
