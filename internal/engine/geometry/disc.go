package geometry

import (
	gomath "math"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

const discSegments = 20

// Disc adds a filled circle in screen space (z = 0) centred on (x, y),
// followed by an outline ring of the given border colour.
func (b *Batch) Disc(x, y, radius float32, fill, border Color) {
	if radius <= 0 {
		return
	}
	center := math.Vec3{X: x, Y: y}
	point := func(i int) math.Vec3 {
		theta := float32(i) / discSegments * 2 * gomath.Pi
		return math.Vec3{X: x + radius*math.Cos(theta), Y: y + radius*math.Sin(theta)}
	}
	for i := 0; i < discSegments; i++ {
		p0, p1 := point(i), point(i+1)
		b.Triangle(center, p0, p1, fill)
		b.Line(p0, p1, border)
	}
}
