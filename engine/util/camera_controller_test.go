package util

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRig(t *testing.T) (*OrbitCamera, *CameraController) {
	t.Helper()
	camera, err := NewOrbitCamera(800, 600)
	require.NoError(t, err)
	return camera, NewCameraController()
}

func TestControllerMovesTargetAwayFromCamera(t *testing.T) {
	camera, controller := newTestRig(t)
	toTarget := camera.GetTarget().Sub(camera.GetPosition())

	controller.HandleKey(glfw.KeyW, true)
	controller.UpdateCamera(camera, 0.5)

	moved := camera.GetTarget()
	assert.Greater(t, moved.Len(), float32(0))
	// forward movement stays on the horizontal plane
	assert.InDelta(t, 0, moved.Y(), 1e-5)
	// and heads in the direction the camera is facing
	assert.Greater(t, moved.X()*toTarget.X()+moved.Z()*toTarget.Z(), float32(0))
	// the eye keeps its orbit distance
	assert.InDelta(t, camera.GetDistance(), camera.GetPosition().Sub(moved).Len(), 1e-4)
}

func TestControllerStrafeMatchesScreenRight(t *testing.T) {
	camera, controller := newTestRig(t)
	view := camera.GetViewMatrix()

	controller.HandleKey(glfw.KeyD, true)
	controller.UpdateCamera(camera, 0.5)

	// in the old view space the target must have moved towards positive x
	movedInView := mgl32.TransformCoordinate(camera.GetTarget(), view)
	assert.Greater(t, movedInView.X(), float32(0))
}

func TestControllerKeyReleaseStopsMovement(t *testing.T) {
	camera, controller := newTestRig(t)

	controller.HandleKey(glfw.KeySpace, true)
	controller.UpdateCamera(camera, 0.5)
	risen := camera.GetTarget().Y()
	assert.Greater(t, risen, float32(0))

	controller.HandleKey(glfw.KeySpace, false)
	controller.UpdateCamera(camera, 0.5)
	assert.Equal(t, risen, camera.GetTarget().Y())
}

func TestControllerZoomClampsAtMinimumDistance(t *testing.T) {
	camera, controller := newTestRig(t)

	for i := 0; i < 10; i++ {
		controller.MouseWheel(100)
		controller.UpdateCamera(camera, 0.1)
	}

	assert.Equal(t, MinCameraDistance, camera.GetDistance())
	assert.InDelta(t, MinCameraDistance, camera.GetPosition().Sub(camera.GetTarget()).Len(), 1e-5)
}

func TestControllerZoomOutGrowsDistance(t *testing.T) {
	camera, controller := newTestRig(t)

	controller.MouseWheel(-3)
	controller.UpdateCamera(camera, 0.1)

	assert.Greater(t, camera.GetDistance(), DefaultCameraDistance)
}

func TestControllerPitchStaysInSafeRange(t *testing.T) {
	camera, controller := newTestRig(t)

	for i := 0; i < 50; i++ {
		controller.MouseMove(0, 150)
		controller.UpdateCamera(camera, 0.1)
	}
	assert.Equal(t, safePitch, camera.pitch)

	for i := 0; i < 50; i++ {
		controller.MouseMove(0, -150)
		controller.UpdateCamera(camera, 0.1)
	}
	assert.Equal(t, -safePitch, camera.pitch)
}

func TestControllerMouseInputIsOneShot(t *testing.T) {
	camera, controller := newTestRig(t)

	controller.MouseMove(50, 0)
	controller.UpdateCamera(camera, 0.1)
	yawAfterMove := camera.yaw

	controller.UpdateCamera(camera, 0.1)
	assert.Equal(t, yawAfterMove, camera.yaw)
}

func TestControllerIgnoresCursorWarps(t *testing.T) {
	_, controller := newTestRig(t)

	controller.MouseMove(500, 10)
	assert.Equal(t, float32(0), controller.horizontal)
	assert.Equal(t, float32(0), controller.vertical)
}

func TestControllerResetClearsHeldKeys(t *testing.T) {
	camera, controller := newTestRig(t)

	controller.HandleKey(glfw.KeyW, true)
	controller.MouseWheel(5)
	controller.Reset()
	controller.UpdateCamera(camera, 0.5)

	assert.Equal(t, mgl32.Vec3{}, camera.GetTarget())
	assert.Equal(t, DefaultCameraDistance, camera.GetDistance())
}
