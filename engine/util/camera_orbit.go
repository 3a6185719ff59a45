package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	DefaultCameraDistance = float32(2.5)
	MinCameraDistance     = float32(0.5)
)

// OrbitCamera circles a look target at a given distance. Yaw and pitch are
// angles around the target in radians, the eye position is derived from them
// every update.
type OrbitCamera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	yaw      float32
	pitch    float32
	distance float32

	aspect float32
	fov    float32
	near   float32
	far    float32
}

func NewOrbitCamera(windowWidth, windowHeight int) (*OrbitCamera, error) {
	c := &OrbitCamera{
		target:   mgl32.Vec3{0, 0, 0},
		yaw:      mgl32.DegToRad(-90),
		pitch:    mgl32.DegToRad(15),
		distance: DefaultCameraDistance,
		fov:      45,
		near:     0.1,
		far:      100,
	}
	if err := c.SetViewport(windowWidth, windowHeight); err != nil {
		return nil, err
	}
	c.updatePosition()
	return c, nil
}

// SetViewport changes the projection aspect ratio. The caller owning the
// window decides when to call this, usually from the resize callback.
func (c *OrbitCamera) SetViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid viewport %dx%d, aspect ratio must be positive", width, height)
	}
	c.aspect = float32(width) / float32(height)
	return nil
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

func (c *OrbitCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *OrbitCamera) GetTarget() mgl32.Vec3 {
	return c.target
}

func (c *OrbitCamera) GetDistance() float32 {
	return c.distance
}

// updatePosition places the eye on the orbit sphere described by yaw, pitch
// and distance around the target.
func (c *OrbitCamera) updatePosition() {
	horDist := c.distance * Cos(c.pitch)
	vertDist := c.distance * Sin(c.pitch)

	c.position = mgl32.Vec3{
		c.target.X() - horDist*Sin(c.yaw),
		c.target.Y() + vertDist,
		c.target.Z() - horDist*Cos(c.yaw),
	}
}

func (c *OrbitCamera) DebugString() string {
	return fmt.Sprintf("CameraPos: %v\nLookTarget: %v\nYaw: %0.2f\nPitch: %0.2f\nCamDist: %0.2f\n", c.position, c.target, c.yaw, c.pitch, c.distance)
}
