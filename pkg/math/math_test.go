package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing zero vector should return zero vector")
	}
}

func TestVec3Round(t *testing.T) {
	tests := []struct {
		v       Vec3
		x, y, z int
	}{
		{Vec3{0.4, 0.6, 1.2}, 0, 1, 1},
		{Vec3{-0.4, -0.6, -1.2}, 0, -1, -1},
		// Positions exactly on a cube boundary resolve to the even cell.
		{Vec3{0.5, 1.5, -0.5}, 0, 2, 0},
		{Vec3{15.9, 255.2, -16.5}, 16, 255, -16},
	}
	for _, tt := range tests {
		x, y, z := tt.v.Round()
		if x != tt.x || y != tt.y || z != tt.z {
			t.Errorf("%v.Round() = (%d,%d,%d), want (%d,%d,%d)", tt.v, x, y, z, tt.x, tt.y, tt.z)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{31, 16, 1},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 15},
		{16, 16, 0},
		{-1, 16, 15},
		{-16, 16, 0},
		{-17, 16, 15},
	}
	for _, tt := range tests {
		if got := FloorMod(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorDivModConsistent(t *testing.T) {
	for a := -40; a <= 40; a++ {
		q := FloorDiv(a, 16)
		m := FloorMod(a, 16)
		if q*16+m != a {
			t.Errorf("FloorDiv/FloorMod inconsistent for %d: q=%d m=%d", a, q, m)
		}
		if m < 0 || m >= 16 {
			t.Errorf("FloorMod(%d, 16) = %d out of range", a, m)
		}
	}
}

func TestPerspectiveLookAt(t *testing.T) {
	// A point straight ahead of the eye must land on the view axis.
	view := LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	p := view.TransformPoint(Vec3{0, 0, 0})
	if p.X != 0 || p.Y != 0 {
		t.Errorf("center not on view axis: %v", p)
	}
	if p.Z >= 0 {
		t.Errorf("center should be in front of camera (negative Z), got %v", p.Z)
	}

	proj := Perspective(1.0, 16.0/9.0, 0.1, 100)
	if proj[11] != -1 {
		t.Errorf("perspective w-column = %v, want -1", proj[11])
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Scale(2, 2, 2))
	p := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{3, 4, 5}
	if p != want {
		t.Errorf("Translate*Scale point = %v, want %v", p, want)
	}

	id := Identity()
	if id.Mul(m) != m || m.Mul(id) != m {
		t.Error("identity multiplication should be a no-op")
	}
}
