package geometry

import (
	gomath "math"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Arrow proportions.
const (
	ArrowSegments    = 24
	ArrowShaftRadius = 0.018
	ArrowHeadLength  = 0.08
	ArrowConeScale   = 2.2
	minShaftLength   = 0.01
)

// Arrow adds a wireframe arrow from the origin to tip: a cylinder shaft in
// shaft colour and a wider cone head in head colour. Arrows shorter than
// math.Epsilon are skipped. Both radius and head length shrink with short
// vectors so small arrows keep their shape.
func (b *Batch) Arrow(tip math.Vec3, shaft, head Color) {
	length := tip.Length()
	if length < math.Epsilon {
		return
	}
	dir := tip.Scale(1 / length)

	radius := min(ArrowShaftRadius*length, ArrowShaftRadius)
	headLen := min(ArrowHeadLength*length, ArrowHeadLength)
	shaftLen := max(length-headLen, minShaftLength)

	side, up := basis(dir)
	top := dir.Scale(shaftLen)
	coneRadius := radius * ArrowConeScale

	ring := func(center math.Vec3, r float32, i int) math.Vec3 {
		theta := float32(i) / ArrowSegments * 2 * gomath.Pi
		offset := side.Scale(math.Cos(theta)).Add(up.Scale(math.Sin(theta)))
		return center.Add(offset.Scale(r))
	}

	var origin math.Vec3
	for i := 0; i < ArrowSegments; i++ {
		b0, b1 := ring(origin, radius, i), ring(origin, radius, i+1)
		t0, t1 := ring(top, radius, i), ring(top, radius, i+1)
		b.Line(b0, b1, shaft)
		b.Line(t0, t1, shaft)
		b.Line(b0, t0, shaft)
	}
	for i := 0; i < ArrowSegments; i++ {
		c0, c1 := ring(top, coneRadius, i), ring(top, coneRadius, i+1)
		b.Line(c0, c1, head)
		b.Line(c0, tip, head)
	}
}

// basis returns two unit vectors perpendicular to dir and to each other.
func basis(dir math.Vec3) (side, up math.Vec3) {
	ref := math.Vec3{Y: 1}
	if math.Abs(dir.Y) > 0.99 {
		ref = math.Vec3{X: 1}
	}
	side = dir.Cross(ref).Normalize()
	if side.Length() < math.Epsilon {
		side = math.Vec3{X: 1}
	}
	up = dir.Cross(side).Normalize()
	if up.Length() < math.Epsilon {
		up = math.Vec3{Y: 1}
	}
	return side, up
}

// Vector adds v either as a wireframe arrow or as a plain line.
func (b *Batch) Vector(v math.Vec3, c Color, arrow bool) {
	if arrow {
		b.Arrow(v, c, Color{c[0] * 0.7, c[1] * 0.7, c[2] * 0.7})
		return
	}
	b.Line(math.Vec3{}, v, c)
}
