// Package picking maps between world space and screen pixels and keeps
// the per-frame registry of draggable handles.
package picking

import (
	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// ProjectToScreen projects a world point to pixel coordinates (origin at
// the top-left, y down). ok is false when the clip-space w is zero; the
// caller must skip the point for this frame.
func ProjectToScreen(p math.Vec3, viewProj math.Mat4, viewportW, viewportH float32) (x, y float32, ok bool) {
	clip := viewProj.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] == 0 {
		return 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	x = (ndcX*0.5 + 0.5) * viewportW
	y = (ndcY*-0.5 + 0.5) * viewportH
	return x, y, true
}

// depthNDC returns the normalized-device depth of p.
func depthNDC(p math.Vec3, viewProj math.Mat4) (float32, bool) {
	clip := viewProj.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] == 0 {
		return 0, false
	}
	return clip[2] / clip[3], true
}

// UnprojectScreenDelta moves p by (dx, dy) pixels on screen and returns the
// world point under the new screen position at p's own depth, so the point
// slides on the plane parallel to the screen through its starting position.
// ok is false when p cannot be projected, viewProj is not invertible or the
// unprojected point lies at infinity.
func UnprojectScreenDelta(p math.Vec3, dx, dy float32, viewProj math.Mat4, viewportW, viewportH float32) (math.Vec3, bool) {
	if viewportW <= 0 || viewportH <= 0 {
		return math.Vec3{}, false
	}
	sx, sy, ok := ProjectToScreen(p, viewProj, viewportW, viewportH)
	if !ok {
		return math.Vec3{}, false
	}
	ndcZ, ok := depthNDC(p, viewProj)
	if !ok {
		return math.Vec3{}, false
	}

	ndcX := (sx+dx)/viewportW*2 - 1
	ndcY := -((sy+dy)/viewportH*2 - 1)

	inv, ok := viewProj.Invert()
	if !ok {
		return math.Vec3{}, false
	}
	return UnprojectNDC(math.Vec3{X: ndcX, Y: ndcY, Z: ndcZ}, inv)
}

// UnprojectNDC maps a normalized-device point back to world space with the
// inverse view-projection matrix.
func UnprojectNDC(ndc math.Vec3, invViewProj math.Mat4) (math.Vec3, bool) {
	w := invViewProj.MulVec4(math.Vec4{ndc.X, ndc.Y, ndc.Z, 1})
	if w[3] == 0 {
		return math.Vec3{}, false
	}
	return math.Vec3{X: w[0] / w[3], Y: w[1] / w[3], Z: w[2] / w[3]}, true
}
