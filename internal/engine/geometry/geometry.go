// Package geometry builds the line and triangle vertex lists the renderer
// draws: grid, axes, vectors as lines or wireframe arrows, component guides
// and screen-space handle discs.
package geometry

import (
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Vertex is a position and colour, laid out as six packed float32s.
type Vertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// VertexStride is the size of Vertex in bytes.
const VertexStride = 6 * 4

// Color is an RGB triple.
type Color [3]float32

func vertex(p math.Vec3, c Color) Vertex {
	return Vertex{p.X, p.Y, p.Z, c[0], c[1], c[2]}
}

// Batch collects vertices for one draw pass. Lines holds pairs of
// endpoints, Triangles holds triples.
type Batch struct {
	Lines     []Vertex
	Triangles []Vertex
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Lines = b.Lines[:0]
	b.Triangles = b.Triangles[:0]
}

// Line appends one segment.
func (b *Batch) Line(from, to math.Vec3, c Color) {
	b.Lines = append(b.Lines, vertex(from, c), vertex(to, c))
}

// Triangle appends one filled triangle.
func (b *Batch) Triangle(p0, p1, p2 math.Vec3, c Color) {
	b.Triangles = append(b.Triangles, vertex(p0, c), vertex(p1, c), vertex(p2, c))
}
