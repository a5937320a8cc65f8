// Package renderer draws geometry batches with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Jamieson-H7/visualizations/internal/engine/geometry"
	"github.com/Jamieson-H7/visualizations/internal/engine/shader"
	"github.com/Jamieson-H7/visualizations/internal/logger"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // Drawable width in pixels
	Height int
	MSAA   bool
}

// Renderer streams vertex batches through a single line/triangle program.
type Renderer struct {
	config  Config
	program *shader.Program

	vao uint32
	vbo uint32

	// capacity of vbo in vertices
	capacity int
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}

	var err error
	r.program, err = shader.NewLineProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create line program: %w", err)
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, geometry.VertexStride, nil)
	gl.EnableVertexAttribArray(0)

	// Color (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, geometry.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("line buffers created", zap.Uint32("vao", r.vao), zap.Uint32("vbo", r.vbo))
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Begin clears the frame to the background colour.
func (r *Renderer) Begin(background geometry.Color) {
	gl.ClearColor(background[0], background[1], background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Pass describes how a batch is drawn.
type Pass struct {
	MVP   math.Mat4
	Alpha float32
	// Overlay disables depth testing, for screen-space geometry.
	Overlay bool
}

// Draw uploads and draws a batch: triangles first, then lines.
func (r *Renderer) Draw(b *geometry.Batch, pass Pass) {
	if len(b.Lines) == 0 && len(b.Triangles) == 0 {
		return
	}

	alpha := pass.Alpha
	if alpha <= 0 {
		alpha = 1
	}
	if alpha < 1 {
		gl.Enable(gl.BLEND)
		defer gl.Disable(gl.BLEND)
	}
	if pass.Overlay {
		gl.Disable(gl.DEPTH_TEST)
		defer gl.Enable(gl.DEPTH_TEST)
	}

	r.program.Use()
	r.program.SetMat4("uMVP", pass.MVP)
	r.program.SetFloat("uAlpha", alpha)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.drawArrays(gl.TRIANGLES, b.Triangles)
	r.drawArrays(gl.LINES, b.Lines)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// drawArrays streams verts into the shared buffer, orphaning it first.
func (r *Renderer) drawArrays(mode uint32, verts []geometry.Vertex) {
	if len(verts) == 0 {
		return
	}
	if len(verts) > r.capacity {
		r.capacity = growCapacity(r.capacity, len(verts))
	}
	gl.BufferData(gl.ARRAY_BUFFER, r.capacity*geometry.VertexStride, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*geometry.VertexStride, unsafe.Pointer(&verts[0]))
	gl.DrawArrays(mode, 0, int32(len(verts)))
}

// growCapacity doubles from a floor of 1024 until need fits.
func growCapacity(current, need int) int {
	c := max(current, 1024)
	for c < need {
		c *= 2
	}
	return c
}
