package math

import (
	"testing"
)

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Components(t *testing.T) {
	v := Vec3{1, 2, 3}
	for axis, want := range []float32{1, 2, 3} {
		if got := v.Component(axis); got != want {
			t.Errorf("Component(%d) = %v, want %v", axis, got, want)
		}
	}
	if got := v.Component(3); got != 0 {
		t.Errorf("Component(3) = %v, want 0", got)
	}
	if got := v.WithComponent(1, 9); got != (Vec3{1, 9, 3}) {
		t.Errorf("WithComponent(1, 9) = %v", got)
	}
	if got := v.WithComponent(7, 9); got != v {
		t.Errorf("WithComponent(7, 9) = %v, want unchanged", got)
	}
}
