package camera

import (
	gomath "math"
	"testing"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

func newTestCamera() *OrbitCamera {
	return NewOrbitCamera(State{Zoom: 1}, DefaultMinZoom, DefaultMaxZoom)
}

func TestElevationClamp(t *testing.T) {
	c := newTestCamera()
	deltas := []float32{0.5, 1, 2, 5, -0.2, -10, -3, 100, -100, 0.01, 1.56}
	for i, d := range deltas {
		c.SetOrbit(0, d)
		if c.Elevation < -ElevationLimit || c.Elevation > ElevationLimit {
			t.Fatalf("step %d: elevation %f outside ±%f", i, c.Elevation, ElevationLimit)
		}
	}

	c.SetOrbit(0, 10)
	if c.Elevation != ElevationLimit {
		t.Errorf("elevation = %f, want upper limit %f", c.Elevation, ElevationLimit)
	}
	c.SetOrbit(0, -10)
	if c.Elevation != -ElevationLimit {
		t.Errorf("elevation = %f, want lower limit %f", c.Elevation, -ElevationLimit)
	}
}

func TestAzimuthUnbounded(t *testing.T) {
	c := newTestCamera()
	c.SetOrbit(10, 0)
	c.SetOrbit(10, 0)
	if c.Azimuth != 20 {
		t.Errorf("azimuth = %f, want 20", c.Azimuth)
	}
}

func TestZoomClamp(t *testing.T) {
	c := newTestCamera()
	multipliers := []float32{2, 2, 2, 2, 2, 0.001, 0.5, 1000, 1e-6, 3}
	for i, m := range multipliers {
		c.SetZoomFactor(m)
		if c.Zoom < DefaultMinZoom || c.Zoom > DefaultMaxZoom {
			t.Fatalf("step %d: zoom %v outside [%v, %v]", i, c.Zoom, DefaultMinZoom, DefaultMaxZoom)
		}
	}
}

func TestZoomFactorIgnoresInvalid(t *testing.T) {
	c := newTestCamera()
	for _, m := range []float32{0, -2, float32(gomath.NaN()), float32(gomath.Inf(1))} {
		c.SetZoomFactor(m)
	}
	if c.Zoom != 1 {
		t.Errorf("zoom = %f, want unchanged 1", c.Zoom)
	}
}

func TestInvertZoom(t *testing.T) {
	c := newTestCamera()
	c.InvertZoom = true
	c.SetZoomFactor(2)
	if c.Zoom != 0.5 {
		t.Errorf("inverted zoom = %f, want 0.5", c.Zoom)
	}
}

func TestPositionOnSphere(t *testing.T) {
	c := newTestCamera()
	c.SetOrbit(1.2, 0.7)
	if r := c.Position().Length(); gomath.Abs(float64(r-Radius)) > 1e-5 {
		t.Errorf("|position| = %f, want %d", r, Radius)
	}

	c.Reset()
	if p := c.Position(); p != (math.Vec3{X: 0, Y: 0, Z: -Radius}) {
		t.Errorf("position at rest = %v, want (0, 0, -3)", p)
	}
}

func TestViewProjectionCentersOrigin(t *testing.T) {
	c := newTestCamera()
	c.SetOrbit(0.4, 0.3)
	vp := c.ViewProjection(16.0 / 9.0)
	ndc := vp.TransformPoint(math.Vec3{})
	if gomath.Abs(float64(ndc.X)) > 1e-5 || gomath.Abs(float64(ndc.Y)) > 1e-5 {
		t.Errorf("origin projects to %v, want screen centre", ndc)
	}
}

func TestZoomScalesWorld(t *testing.T) {
	c := newTestCamera()
	p := math.Vec3{X: 0.3}
	before := c.ViewProjection(1).TransformPoint(p)
	c.SetZoom(2)
	after := c.ViewProjection(1).TransformPoint(p)
	if gomath.Abs(float64(after.X)) <= gomath.Abs(float64(before.X)) {
		t.Errorf("zooming in should push (0.3,0,0) away from centre: before %f after %f", before.X, after.X)
	}
}

func TestNewOrbitCameraClampsInitial(t *testing.T) {
	c := NewOrbitCamera(State{Elevation: 5, Zoom: 50}, 0.1, 4)
	if c.Elevation != ElevationLimit {
		t.Errorf("elevation = %f, want %f", c.Elevation, ElevationLimit)
	}
	if c.Zoom != 4 {
		t.Errorf("zoom = %f, want 4", c.Zoom)
	}
}
