// Package ui2d is a small immediate-mode widget layer drawn with the same
// coloured-triangle batches as the scene overlay.
package ui2d

import (
	"github.com/Jamieson-H7/visualizations/internal/engine/geometry"
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// panelQuads is the number of quads DrawPanel emits: background and
// four border edges.
const panelQuads = 5

// minPanel keeps every border quad non-empty.
const minPanel = 3

// Canvas appends screen-space quads to a batch. Later quads cover
// earlier ones, since the overlay pass draws without depth testing.
type Canvas struct {
	batch *geometry.Batch
}

// NewCanvas returns a canvas drawing into b.
func NewCanvas(b *geometry.Batch) *Canvas {
	return &Canvas{batch: b}
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, width, height float32, color Color) {
	if c.batch == nil || width <= 0 || height <= 0 {
		return
	}
	col := color.vertex()
	p0 := math.Vec3{X: x, Y: y}
	p1 := math.Vec3{X: x + width, Y: y}
	p2 := math.Vec3{X: x + width, Y: y + height}
	p3 := math.Vec3{X: x, Y: y + height}
	c.batch.Triangle(p0, p1, p2, col)
	c.batch.Triangle(p0, p2, p3, col)
}

// DrawRectOutline draws a rectangle outline.
func (c *Canvas) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	c.DrawRect(x, y, width, thickness, color)
	c.DrawRect(x, y+height-thickness, width, thickness, color)
	c.DrawRect(x, y+thickness, thickness, height-thickness*2, color)
	c.DrawRect(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawPanel draws a panel with border and returns the index of its first
// vertex, for ResizePanel.
func (c *Canvas) DrawPanel(x, y, width, height float32, bg, border Color) int {
	if c.batch == nil {
		return -1
	}
	start := len(c.batch.Triangles)
	// Degenerate sizes still reserve every quad so ResizePanel can
	// overwrite them in place.
	c.panelQuads(x, y, max(width, minPanel), max(height, minPanel), bg, border)
	return start
}

// ResizePanel rewrites a panel emitted by DrawPanel with a new size.
func (c *Canvas) ResizePanel(start int, x, y, width, height float32, bg, border Color) {
	n := panelQuads * 6
	if c.batch == nil || start < 0 || start+n > len(c.batch.Triangles) {
		return
	}
	tmp := NewCanvas(&geometry.Batch{Triangles: make([]geometry.Vertex, 0, n)})
	tmp.panelQuads(x, y, max(width, minPanel), max(height, minPanel), bg, border)
	copy(c.batch.Triangles[start:start+n], tmp.batch.Triangles)
}

func (c *Canvas) panelQuads(x, y, width, height float32, bg, border Color) {
	c.DrawRect(x, y, width, height, bg)
	c.DrawRectOutline(x, y, width, height, 1, border)
}

// DrawText draws text with its top-left corner at (x, y). Each run of lit
// glyph pixels in a row becomes one quad.
func (c *Canvas) DrawText(x, y float32, text string, scale float32, color Color) {
	startX := x
	for _, r := range text {
		if r == '\n' {
			x = startX
			y += CellHeight * scale
			continue
		}
		g := glyphFor(r)
		for row, bits := range g {
			py := y + float32(row)*scale
			col := 0
			for col < GlyphWidth {
				if bits&(1<<(GlyphWidth-1-col)) == 0 {
					col++
					continue
				}
				run := col
				for run < GlyphWidth && bits&(1<<(GlyphWidth-1-run)) != 0 {
					run++
				}
				c.DrawRect(x+float32(col)*scale, py, float32(run-col)*scale, scale, color)
				col = run
			}
		}
		x += CellWidth * scale
	}
}
