package geometry

import (
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Grid layout constants.
const (
	GridStep       = 0.2
	GridMajorEvery = 5
)

// GridColors are the minor and major line colours.
type GridColors struct {
	Minor, Major Color
}

// Grid adds a square grid on the y=0 plane with extent lines on each side
// of the origin, GridStep apart. Every GridMajorEvery-th line is drawn a
// second time in the major colour so it sits on top.
func (b *Batch) Grid(extent int, colors GridColors) {
	if extent <= 0 {
		return
	}
	edge := float32(extent) * GridStep
	for i := -extent; i <= extent; i++ {
		at := float32(i) * GridStep
		b.gridCross(at, edge, colors.Minor)
		if i%GridMajorEvery == 0 {
			b.gridCross(at, edge, colors.Major)
		}
	}
}

func (b *Batch) gridCross(at, edge float32, c Color) {
	b.Line(math.Vec3{X: -edge, Z: at}, math.Vec3{X: edge, Z: at}, c)
	b.Line(math.Vec3{X: at, Z: -edge}, math.Vec3{X: at, Z: edge}, c)
}

// Axis colours.
var (
	AxisX = Color{1, 0, 0}
	AxisY = Color{0, 1, 0}
	AxisZ = Color{0, 0, 1}
)

// Axes adds unit-length X, Y and Z axes from the origin.
func (b *Batch) Axes() {
	var o math.Vec3
	b.Line(o, math.Vec3{X: 1}, AxisX)
	b.Line(o, math.Vec3{Y: 1}, AxisY)
	b.Line(o, math.Vec3{Z: 1}, AxisZ)
}

// Components adds the guide from the origin to v's footprint on the
// ground plane and from there up to v.
func (b *Batch) Components(v math.Vec3, c Color) {
	foot := math.Vec3{X: v.X, Z: v.Z}
	b.Line(math.Vec3{}, foot, c)
	b.Line(foot, v, c)
}
