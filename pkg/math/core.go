// Package math provides the vector and matrix types shared by the camera,
// projection and rendering code. Matrices are column-major (OpenGL layout).
package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used for degeneracy checks: coincident points
// in LookAt and singular matrices in Invert.
const Epsilon = 1e-6

func Sin(a float32) float32 {
	return float32(gomath.Sin(float64(a)))
}

func Cos(a float32) float32 {
	return float32(gomath.Cos(float64(a)))
}

func Tan(a float32) float32 {
	return float32(gomath.Tan(float64(a)))
}

func Sqrt(a float32) float32 {
	return float32(gomath.Sqrt(float64(a)))
}

func Exp(a float32) float32 {
	return float32(gomath.Exp(float64(a)))
}

func Pow(a, b float32) float32 {
	return float32(gomath.Pow(float64(a), float64(b)))
}

// Hypot returns sqrt(x*x + y*y) without undue overflow.
func Hypot(x, y float32) float32 {
	return float32(gomath.Hypot(float64(x), float64(y)))
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float32) bool {
	return !gomath.IsNaN(float64(f)) && !gomath.IsInf(float64(f), 0)
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the closed range [low, high].
func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
