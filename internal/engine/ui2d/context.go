package ui2d

import (
	"unicode/utf8"

	"github.com/Jamieson-H7/visualizations/internal/engine/geometry"
)

// Layout constants, in window coordinates.
const (
	TextScale   = 2
	RowHeight   = 24
	Padding     = 8
	Spacing     = 4
	TitleHeight = 24
	boxSize     = 18
)

// Context is the immediate-mode UI state carried across frames: pointer
// input, the widget being pressed and the focused text field.
type Context struct {
	canvas *Canvas
	input  InputState
	style  Style

	activeWidget string

	// press records a press at the start of the frame, before widgets
	// consume it.
	press bool

	// Focused text field and its edit buffer.
	focused     string
	buffer      string
	seenFocused bool

	windows map[string]*WindowState

	// Current window being drawn
	currentWindow *WindowState
	panelStart    int

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID   string
	X, Y float32
	W, H float32
}

// NewContext creates a UI context.
func NewContext() *Context {
	return &Context{
		style:   DarkStyle,
		windows: make(map[string]*WindowState),
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return &c.input
}

// Begin starts a frame drawing into b.
func (c *Context) Begin(b *geometry.Batch, style Style) {
	c.canvas = NewCanvas(b)
	c.style = style
	c.seenFocused = false
	c.press = c.input.MouseLeftPressed
}

// End finishes the frame. A focused field that was not drawn loses focus.
func (c *Context) End() {
	if c.focused != "" && !c.seenFocused {
		c.Blur()
	}
	if c.input.MouseLeftReleased {
		c.activeWidget = ""
	}
	c.input.EndFrame()
}

// Focused reports whether a text field has keyboard focus.
func (c *Context) Focused() bool {
	return c.focused != ""
}

// Blur drops keyboard focus.
func (c *Context) Blur() {
	c.focused = ""
	c.buffer = ""
}

// Contains reports whether (x, y) lies inside any window drawn last frame.
func (c *Context) Contains(x, y float32) bool {
	for _, ws := range c.windows {
		if (Rect{ws.X, ws.Y, ws.W, ws.H}).Contains(x, y) {
			return true
		}
	}
	return false
}

// Text draws free text on the canvas, outside any window.
func (c *Context) Text(x, y float32, text string, color Color) {
	c.canvas.DrawText(x, y, text, TextScale, color)
}

// BeginWindow starts a window at (x, y). Its height grows to fit the
// widgets drawn before EndWindow.
func (c *Context) BeginWindow(id string, x, y, w float32, title string) {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id}
		c.windows[id] = ws
	}
	ws.X, ws.Y, ws.W = x, y, w
	c.currentWindow = ws

	c.panelStart = c.canvas.DrawPanel(ws.X, ws.Y, ws.W, ws.H, c.style.PanelBg, c.style.PanelBorder)
	c.canvas.DrawRect(ws.X+1, ws.Y+1, ws.W-2, TitleHeight-1, c.style.ButtonNormal)
	_, textH := MeasureText(title, TextScale)
	c.canvas.DrawText(ws.X+Padding, ws.Y+(TitleHeight-textH)/2, title, TextScale, c.style.Text)

	c.cursorX = ws.X + Padding
	c.cursorY = ws.Y + TitleHeight + Padding
	c.rowH = 0
}

// EndWindow ends the current window and fixes its height.
func (c *Context) EndWindow() {
	ws := c.currentWindow
	if ws == nil {
		return
	}
	ws.H = c.cursorY + c.rowH + Padding - ws.Y
	c.canvas.ResizePanel(c.panelStart, ws.X, ws.Y, ws.W, ws.H, c.style.PanelBg, c.style.PanelBorder)
	c.currentWindow = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + Padding
	c.cursorY += c.rowH + Spacing
	c.rowH = height
}

func (c *Context) widgetID(id string) string {
	return c.currentWindow.ID + "_" + id
}

func (c *Context) rowHeight() float32 {
	if c.rowH == 0 {
		return RowHeight
	}
	return c.rowH
}

func (c *Context) hovered(r Rect) bool {
	return r.Contains(c.input.MouseX, c.input.MouseY)
}

// Button draws a button and returns true if clicked. Clicks fire on press.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.currentWindow == nil {
		return false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowHeight()
	if width == 0 {
		textW, _ := MeasureText(label, TextScale)
		width = textW + 2*Padding
	}

	fullID := c.widgetID(id)
	rect := Rect{x, y, width, h}
	hovered := c.hovered(rect)
	clicked := false
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		clicked = true
		// Consume the press so only one widget gets it
		c.input.MouseLeftPressed = false
	}

	color := c.style.ButtonNormal
	if c.activeWidget == fullID {
		color = c.style.ButtonActive
	} else if hovered {
		color = c.style.ButtonHover
	}
	c.canvas.DrawRect(x, y, width, h, color)
	c.canvas.DrawRectOutline(x, y, width, h, 1, c.style.PanelBorder)

	textW, textH := MeasureText(label, TextScale)
	c.canvas.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, TextScale, c.style.Text)

	c.cursorX += width + Spacing
	return clicked
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, c.style.Text)
}

// LabelColored draws a text label with a specific color, vertically
// centred in the row.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentWindow == nil {
		return
	}
	w, h := MeasureText(text, TextScale)
	c.canvas.DrawText(c.cursorX, c.cursorY+(c.rowHeight()-h)/2, text, TextScale, color)
	c.cursorX += w + Spacing
}

// Swatch draws a small filled square, such as a vector's palette color.
func (c *Context) Swatch(color Color) {
	if c.currentWindow == nil {
		return
	}
	y := c.cursorY + (c.rowHeight()-boxSize)/2
	c.canvas.DrawRect(c.cursorX, y, boxSize, boxSize, color)
	c.cursorX += boxSize + Spacing
}

// TextInput draws a single-line text field. While focused it shows and
// returns its edit buffer instead of value; changed reports an edit this
// frame. Enter, Escape or a press elsewhere drops focus.
func (c *Context) TextInput(id string, width float32, value string) (text string, changed bool) {
	if c.currentWindow == nil {
		return value, false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowHeight()
	fullID := c.widgetID(id)
	rect := Rect{x, y, width, h}
	hovered := c.hovered(rect)

	switch {
	case hovered && c.input.MouseLeftPressed && c.focused != fullID:
		c.focused = fullID
		c.buffer = value
	case c.press && !hovered && c.focused == fullID:
		c.Blur()
	}

	focused := c.focused == fullID
	text = value
	if focused {
		c.seenFocused = true
		for n := c.input.KeyBackspace; n > 0 && c.buffer != ""; n-- {
			_, size := utf8.DecodeLastRuneInString(c.buffer)
			c.buffer = c.buffer[:len(c.buffer)-size]
			changed = true
		}
		if c.input.TextInput != "" {
			c.buffer += c.input.TextInput
			changed = true
		}
		text = c.buffer
		if c.input.KeyEnter || c.input.KeyEscape {
			c.Blur()
			focused = false
		}
	}

	c.canvas.DrawRect(x, y, width, h, c.style.InputBg)
	border := c.style.InputBorder
	if focused {
		border = c.style.Highlight
	}
	c.canvas.DrawRectOutline(x, y, width, h, 1, border)

	shown := fitText(text, width-8)
	textW, textH := MeasureText(shown, TextScale)
	c.canvas.DrawText(x+4, y+(h-textH)/2, shown, TextScale, c.style.Text)
	if focused {
		c.canvas.DrawRect(x+4+textW, y+4, 2, h-8, c.style.Text)
	}

	c.cursorX += width + Spacing
	return text, changed
}

// fitText keeps the tail of text that fits in width, so the caret end of
// a long edit stays visible.
func fitText(text string, width float32) string {
	maxRunes := int(width / (CellWidth * TextScale))
	if maxRunes <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(text)
	for n > maxRunes {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		n--
	}
	return text
}

// Checkbox draws a checkbox and returns its new state. It toggles on
// release over the box after a press on it.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.currentWindow == nil {
		return checked
	}

	x := c.cursorX
	y := c.cursorY + (c.rowHeight()-boxSize)/2
	fullID := c.widgetID(id)
	rect := Rect{x, y, boxSize, boxSize}
	hovered := c.hovered(rect)

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		c.input.MouseLeftPressed = false
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			checked = !checked
		}
		c.activeWidget = ""
	}

	bg := c.style.InputBg
	if hovered {
		bg = c.style.ButtonHover
	}
	c.canvas.DrawRect(x, y, boxSize, boxSize, bg)
	c.canvas.DrawRectOutline(x, y, boxSize, boxSize, 1, c.style.PanelBorder)
	if checked {
		const inner = 4
		c.canvas.DrawRect(x+inner, y+inner, boxSize-inner*2, boxSize-inner*2, c.style.Highlight)
	}

	c.cursorX += boxSize + Spacing
	if label != "" {
		textW, textH := MeasureText(label, TextScale)
		c.canvas.DrawText(c.cursorX, y+(boxSize-textH)/2, label, TextScale, c.style.Text)
		c.cursorX += textW + Padding
	}
	return checked
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + Spacing
	c.rowH = 0
	x := c.currentWindow.X + Padding
	c.canvas.DrawRect(x, c.cursorY, c.currentWindow.W-2*Padding, 1, c.style.PanelBorder)
	c.cursorY += Spacing
	c.cursorX = x
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
