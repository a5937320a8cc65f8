package app

import (
	"fmt"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/engine/input"
	"github.com/Jamieson-H7/visualizations/internal/engine/scene"
	"github.com/Jamieson-H7/visualizations/internal/engine/ui2d"
	"github.com/Jamieson-H7/visualizations/internal/gesture"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Panel layout in window coordinates.
const (
	PanelX     = 8
	PanelY     = 8
	PanelWidth = 470
	FieldWidth = 84

	panelID = "editor"
)

var axisNames = [3]string{"x", "y", "z"}

// formatComponent renders a vector or matrix entry for its text field.
func formatComponent(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 4, 32)
}

func uiColor(c scene.Color) ui2d.Color {
	return ui2d.Color{R: c[0], G: c[1], B: c[2]}
}

// drawPanel runs the vector and matrix editor into f.Panel. It runs before
// the scene geometry is built, so edits show in the same frame.
func (c *Controller) drawPanel(f *Frame) {
	ui := c.UI
	style := ui2d.StyleFor(IsDark(c.cfg.View.Theme))
	ui.Begin(&f.Panel, style)
	defer ui.End()

	if c.cfg.View.DebugMode {
		c.drawDebug(style)
	}
	if !c.cfg.View.ShowPanel {
		return
	}

	ui.BeginWindow(panelID, PanelX, PanelY, PanelWidth, "VECTOR SPACE")
	c.vectorRows(style)
	ui.Separator()
	c.matrixRows(style)
	ui.Separator()
	c.viewToggles()
	ui.EndWindow()
}

func (c *Controller) vectorRows(style ui2d.Style) {
	ui := c.UI
	ui.Row(ui2d.RowHeight)
	ui.LabelColored("VECTORS", style.TextDim)

	for i := 0; i < c.Scene.Len(); i++ {
		v, _ := c.Scene.Vector(i)
		ui.Row(ui2d.RowHeight)

		if show := ui.Checkbox(fmt.Sprintf("v%d_visible", i), "", v.Visible); show != v.Visible {
			c.logSceneError(c.Scene.SetVisible(i, show))
		}
		ui.Swatch(uiColor(scene.VectorColor(i)))
		ui.Label(fmt.Sprintf("V%d", i+1))
		for axis := range axisNames {
			id := fmt.Sprintf("v%d_%s", i, axisNames[axis])
			if text, changed := ui.TextInput(id, FieldWidth, formatComponent(v.Value.Component(axis))); changed {
				c.logSceneError(c.Scene.SetVectorComponentText(i, axis, text))
			}
		}
		if show := ui.Checkbox(fmt.Sprintf("v%d_transformed", i), "T", v.ShowTransformed); show != v.ShowTransformed {
			c.logSceneError(c.Scene.SetShowTransformed(i, show))
		}
		if ui.Button(fmt.Sprintf("v%d_remove", i), 0, "X") {
			c.removeVector(i)
			return
		}
	}

	ui.Row(ui2d.RowHeight)
	if ui.Button("add_vector", 0, "+ VECTOR") {
		i := c.Scene.AddVector(math.Vec3{})
		c.log.Info("vector added", zap.Int("vector", i+1))
	}
}

func (c *Controller) matrixRows(style ui2d.Style) {
	ui := c.UI
	ui.Row(ui2d.RowHeight)
	ui.LabelColored("MATRIX", style.TextDim)

	rows := c.Scene.Rows()
	for r := 0; r < len(rows); r++ {
		row := rows[r]
		ui.Row(ui2d.RowHeight)
		ui.Swatch(uiColor(scene.MatrixRowColor))
		ui.Label(fmt.Sprintf("R%d", r+1))
		for axis := range axisNames {
			id := fmt.Sprintf("r%d_%s", r, axisNames[axis])
			if text, changed := ui.TextInput(id, FieldWidth, formatComponent(row.Component(axis))); changed {
				c.logSceneError(c.Scene.SetTransformComponentText(r, axis, text))
			}
		}
		if ui.Button(fmt.Sprintf("r%d_remove", r), 0, "X") {
			c.removeRow(r)
			return
		}
	}

	ui.Row(ui2d.RowHeight)
	if ui.Button("add_row", 0, "+ ROW") {
		i := c.Scene.AddTransformRow()
		c.log.Info("transform row added", zap.Int("row", i+1))
	}
}

func (c *Controller) viewToggles() {
	ui := c.UI
	view := &c.cfg.View
	in := &c.cfg.Input

	ui.Row(ui2d.RowHeight)
	c.checkbox("axes", "AXES", "show_axes", &view.ShowAxes)
	c.checkbox("arrows", "3D ARROWS", "show_arrow_3d", &view.ShowArrow3D)
	c.checkbox("components", "COMPONENTS", "show_components", &view.ShowComponents)

	ui.Row(ui2d.RowHeight)
	c.checkbox("matrix", "MATRIX ROWS", "show_matrix_vectors", &view.ShowMatrixVectors)
	c.checkbox("tips", "TIPS", "show_draggable_tips", &view.ShowDraggableTips)
	c.checkbox("debug", "DEBUG", "debug_mode", &view.DebugMode)

	ui.Row(ui2d.RowHeight)
	if ui.Checkbox("invert_h", "INVERT H", in.InvertHorizontal) != in.InvertHorizontal {
		c.toggleInvertHorizontal()
	}
	if ui.Checkbox("invert_v", "INVERT V", in.InvertVertical) != in.InvertVertical {
		c.toggleInvertVertical()
	}
	if ui.Checkbox("invert_zoom", "INVERT ZOOM", in.InvertZoom) != in.InvertZoom {
		c.toggleInvertZoom()
	}
}

func (c *Controller) checkbox(id, label, setting string, flag *bool) {
	if c.UI.Checkbox(id, label, *flag) != *flag {
		c.toggle(setting, flag)
	}
}

// drawDebug writes the vector readout along the bottom of the canvas.
func (c *Controller) drawDebug(style ui2d.Style) {
	lines := c.Scene.DebugLines()
	lineH := float32(ui2d.CellHeight * ui2d.TextScale)
	y := c.height - ui2d.Padding - float32(len(lines))*lineH
	for _, l := range lines {
		c.UI.Text(ui2d.Padding, y, l, style.Text)
		y += lineH
	}
}

func (c *Controller) removeVector(i int) {
	if !c.Scene.RemoveVector(i) {
		c.log.Info("the last vector cannot be removed")
		return
	}
	c.log.Info("vector removed", zap.Int("vector", i+1))
}

func (c *Controller) removeRow(i int) {
	if !c.Scene.RemoveTransformRow(i) {
		c.log.Info("the last transform row cannot be removed")
		return
	}
	c.log.Info("transform row removed", zap.Int("row", i+1))
}

func (c *Controller) logSceneError(err error) {
	if err != nil {
		c.log.Warn("scene edit rejected", zap.Error(err))
	}
}

// panelPointer feeds pointer input to the panel and reports whether the
// panel consumed it. A press that starts on the panel captures the pointer
// until release, so it never reaches the gesture router.
func (c *Controller) panelPointer(ev gesture.PointerEvent) bool {
	if ev.Kind == gesture.Wheel || ev.Kind == gesture.Scale {
		return false
	}
	if ev.Source == gesture.SourceTouch {
		return c.panelTouch(ev)
	}

	in := c.UI.Input()
	x, y := ev.Pos.X, ev.Pos.Y
	over := c.cfg.View.ShowPanel && c.UI.Contains(x, y)

	switch ev.Kind {
	case gesture.PointerMove:
		in.MouseMove(x, y)
		if over || c.panelHover || c.panelCapture {
			c.MarkDirty()
		}
		c.panelHover = over
		return c.panelCapture

	case gesture.PointerDown:
		if c.panelCapture {
			return true
		}
		if ev.Button == gesture.ButtonLeft && (over || c.UI.Focused()) {
			in.MouseButton(x, y, true)
			c.MarkDirty()
		}
		if over && c.Router.State() == gesture.Idle {
			c.panelCapture = true
			c.panelSource = gesture.SourceMouse
			c.panelButton = ev.Button
			return true
		}

	case gesture.PointerUp:
		if ev.Button == gesture.ButtonLeft && in.MouseLeftDown {
			in.MouseButton(x, y, false)
			c.MarkDirty()
		}
		if c.panelCapture && c.panelSource == gesture.SourceMouse && ev.Button == c.panelButton {
			c.panelCapture = false
			return true
		}
	}
	return false
}

// panelTouch maps a single finger on the panel to the left button.
func (c *Controller) panelTouch(ev gesture.PointerEvent) bool {
	in := c.UI.Input()
	x, y := ev.Pos.X, ev.Pos.Y

	if c.panelCapture {
		if c.panelSource != gesture.SourceTouch {
			return false
		}
		switch {
		case len(ev.Contacts) == 0:
			in.MouseButton(x, y, false)
			c.panelCapture = false
		case ev.Kind == gesture.PointerMove:
			in.MouseMove(x, y)
		}
		c.MarkDirty()
		return true
	}

	if ev.Kind != gesture.PointerDown {
		return false
	}
	over := c.cfg.View.ShowPanel && c.UI.Contains(x, y)
	if over && len(ev.Contacts) == 1 && c.Router.State() == gesture.Idle {
		in.MouseButton(x, y, true)
		c.panelCapture = true
		c.panelSource = gesture.SourceTouch
		c.MarkDirty()
		return true
	}
	if c.UI.Focused() {
		c.UI.Blur()
		c.MarkDirty()
	}
	return false
}

// panelKey sends editing keys to the focused field. Shortcuts are off while
// a field has focus.
func (c *Controller) panelKey(ev input.Event) {
	in := c.UI.Input()
	switch ev.Key {
	case sdl.K_BACKSPACE:
		in.KeyBackspace++
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		in.KeyEnter = true
	case sdl.K_ESCAPE:
		in.KeyEscape = true
	default:
		return
	}
	c.MarkDirty()
}

// panelText appends typed text to the focused field.
func (c *Controller) panelText(text string) {
	if !c.UI.Focused() {
		return
	}
	c.UI.Input().TextInput += text
	c.MarkDirty()
}

// releasePanel drops capture and focus, for example on window focus loss.
func (c *Controller) releasePanel() {
	in := c.UI.Input()
	if in.MouseLeftDown {
		in.MouseButton(in.MouseX, in.MouseY, false)
	}
	c.panelCapture = false
	c.UI.Blur()
}
