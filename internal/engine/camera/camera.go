// Package camera provides the first-person fly camera for the client.
package camera

import (
	gomath "math"

	"github.com/Faultbox/voxelheim/pkg/math"
)

// FlyCamera is a free-flying first-person camera. Yaw and Pitch are in
// radians; yaw 0 looks down -Z.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32

	Sensitivity float32
	Speed       float32

	// Pitch clamp keeps the view matrix away from the up-vector singularity.
	MinPitch float32
	MaxPitch float32
}

// New creates a fly camera at the given position.
func New(position math.Vec3, sensitivity, speed float32) *FlyCamera {
	return &FlyCamera{
		Position:    position,
		Sensitivity: sensitivity,
		Speed:       speed,
		MinPitch:    -1.55,
		MaxPitch:    1.55,
	}
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 {
	cosP := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: cosP * float32(gomath.Sin(float64(c.Yaw))),
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -cosP * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// Right returns the unit right direction on the horizontal plane.
func (c *FlyCamera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Z: float32(gomath.Sin(float64(c.Yaw))),
	}
}

// HandleMouse applies a relative mouse motion to yaw and pitch.
func (c *FlyCamera) HandleMouse(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.Sensitivity
	c.Pitch -= deltaY * c.Sensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Move translates the camera along its own axes. forward/right/up are
// -1, 0 or +1 from key state; dt is the frame time in seconds.
func (c *FlyCamera) Move(forward, right, up float32, dt float32) {
	step := c.Speed * dt
	c.Position = c.Position.
		Add(c.Front().Scale(forward * step)).
		Add(c.Right().Scale(right * step)).
		Add(math.Vec3{Y: up * step})
}

// ViewMatrix returns the view matrix for the current pose.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front()), math.Vec3{Y: 1})
}

// ProjectionMatrix returns a perspective projection for the given viewport.
func (c *FlyCamera) ProjectionMatrix(fovDegrees float32, width, height int) math.Mat4 {
	aspect := float32(width) / float32(height)
	fov := fovDegrees * gomath.Pi / 180
	return math.Perspective(fov, aspect, 0.1, 1000)
}
