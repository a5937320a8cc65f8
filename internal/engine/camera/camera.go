// Package camera provides the orbit camera used by the visualizer.
package camera

import (
	gomath "math"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Limits and projection constants for the orbit camera.
const (
	DefaultMinZoom = 0.01
	DefaultMaxZoom = 10

	// Radius is the fixed distance from the camera to the origin.
	Radius = 3

	FieldOfView = float32(gomath.Pi / 3)
	Near        = 0.1
	Far         = 100

	// ElevationLimit keeps the camera just short of the poles so the
	// look-at basis never flips.
	ElevationLimit = float32(gomath.Pi/2 - 0.01)
)

// State is the mutable part of the camera.
type State struct {
	Azimuth   float32 // radians, unbounded
	Elevation float32 // radians, clamped to ±ElevationLimit
	Zoom      float32 // uniform world scale, clamped to [MinZoom, MaxZoom]
}

// OrbitCamera sits on a sphere of fixed radius around the origin.
// Zoom scales the world instead of moving the camera, so the depth range
// and perspective foreshortening stay the same at every magnification.
type OrbitCamera struct {
	State

	MinZoom float32
	MaxZoom float32

	// InvertZoom flips every multiplier passed to SetZoomFactor.
	InvertZoom bool

	initial State
}

// NewOrbitCamera creates a camera starting at the given state.
// The state is clamped into range and remembered for Reset.
func NewOrbitCamera(initial State, minZoom, maxZoom float32) *OrbitCamera {
	if minZoom <= 0 || maxZoom < minZoom {
		minZoom, maxZoom = DefaultMinZoom, DefaultMaxZoom
	}
	c := &OrbitCamera{
		MinZoom: minZoom,
		MaxZoom: maxZoom,
	}
	if initial.Zoom == 0 {
		initial.Zoom = 1
	}
	c.State = initial
	c.Elevation = math.Clamp(c.Elevation, -ElevationLimit, ElevationLimit)
	c.Zoom = math.Clamp(c.Zoom, c.MinZoom, c.MaxZoom)
	c.initial = c.State
	return c
}

// SetOrbit rotates the camera around the origin.
func (c *OrbitCamera) SetOrbit(deltaAzimuth, deltaElevation float32) {
	c.Azimuth += deltaAzimuth
	c.Elevation = math.Clamp(c.Elevation+deltaElevation, -ElevationLimit, ElevationLimit)
}

// SetZoomFactor multiplies the zoom by multiplier, honouring InvertZoom.
// Non-positive or non-finite multipliers are ignored.
func (c *OrbitCamera) SetZoomFactor(multiplier float32) {
	if multiplier <= 0 || !math.IsFinite(multiplier) {
		return
	}
	if c.InvertZoom {
		multiplier = 1 / multiplier
	}
	c.SetZoom(c.Zoom * multiplier)
}

// SetZoom sets the zoom directly, clamped to the camera's limits.
func (c *OrbitCamera) SetZoom(zoom float32) {
	if !math.IsFinite(zoom) {
		return
	}
	c.Zoom = math.Clamp(zoom, c.MinZoom, c.MaxZoom)
}

// CurrentZoom returns the zoom value.
func (c *OrbitCamera) CurrentZoom() float32 {
	return c.Zoom
}

// ZoomInverted reports whether zoom multipliers are being inverted.
func (c *OrbitCamera) ZoomInverted() bool {
	return c.InvertZoom
}

// Reset restores the state the camera was created with.
func (c *OrbitCamera) Reset() {
	c.State = c.initial
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	ce := math.Cos(c.Elevation)
	return math.Vec3{
		X: Radius * ce * math.Sin(c.Azimuth),
		Y: Radius * math.Sin(c.Elevation),
		Z: -Radius * ce * math.Cos(c.Azimuth),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
}

// ViewProjection returns perspective * view * scale(zoom) for the given
// viewport aspect ratio. It is recomputed on every call.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	if aspect <= 0 || !math.IsFinite(aspect) {
		aspect = 1
	}
	proj := math.Perspective(FieldOfView, aspect, Near, Far)
	return proj.Mul(c.ViewMatrix()).Mul(math.UniformScale(c.Zoom))
}
