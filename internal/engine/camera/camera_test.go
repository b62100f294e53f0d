package camera

import (
	"testing"

	"github.com/Faultbox/voxelheim/pkg/math"
)

func TestFrontAtRest(t *testing.T) {
	c := New(math.Vec3{}, 0.002, 10)
	f := c.Front()
	if f.X != 0 || f.Y != 0 || f.Z != -1 {
		t.Errorf("Front() at yaw=pitch=0 = %v, want (0,0,-1)", f)
	}
}

func TestFrontIsUnit(t *testing.T) {
	c := New(math.Vec3{}, 0.002, 10)
	c.HandleMouse(300, -120)
	l := c.Front().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Front().Length() = %v, want ~1", l)
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(math.Vec3{}, 0.01, 10)
	c.HandleMouse(0, -1e6)
	if c.Pitch > c.MaxPitch {
		t.Errorf("pitch %v exceeds max %v", c.Pitch, c.MaxPitch)
	}
	c.HandleMouse(0, 1e6)
	if c.Pitch < c.MinPitch {
		t.Errorf("pitch %v below min %v", c.Pitch, c.MinPitch)
	}
}

func TestMoveForward(t *testing.T) {
	c := New(math.Vec3{}, 0.002, 10)
	c.Move(1, 0, 0, 0.5)
	want := math.Vec3{Z: -5}
	if c.Position.Distance(want) > 1e-5 {
		t.Errorf("position after forward move = %v, want %v", c.Position, want)
	}
}
