package ui2d

// InputState holds the input the widgets read during one frame. Events are
// accumulated between frames; EndFrame clears the edges.
type InputState struct {
	MouseX float32
	MouseY float32

	MouseLeftDown bool

	// Edges since the last frame. Both may be set when a click arrives
	// between two frames.
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// Text typed since the last frame.
	TextInput string

	// Key presses since the last frame; Backspace counts repeats.
	KeyBackspace int
	KeyEnter     bool
	KeyEscape    bool
}

// MouseMove records the pointer position.
func (i *InputState) MouseMove(x, y float32) {
	i.MouseX = x
	i.MouseY = y
}

// MouseButton records a left button transition at (x, y).
func (i *InputState) MouseButton(x, y float32, down bool) {
	i.MouseMove(x, y)
	if down && !i.MouseLeftDown {
		i.MouseLeftPressed = true
	}
	if !down && i.MouseLeftDown {
		i.MouseLeftReleased = true
	}
	i.MouseLeftDown = down
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.MouseLeftPressed = false
	i.MouseLeftReleased = false
	i.TextInput = ""
	i.KeyBackspace = 0
	i.KeyEnter = false
	i.KeyEscape = false
}
