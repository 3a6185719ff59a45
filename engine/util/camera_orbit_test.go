package util

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrbitCameraDefaults(t *testing.T) {
	camera, err := NewOrbitCamera(800, 600)
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{}, camera.GetTarget())
	assert.Equal(t, DefaultCameraDistance, camera.GetDistance())
	assert.InDelta(t, DefaultCameraDistance, camera.GetPosition().Sub(camera.GetTarget()).Len(), 1e-5)
	// yaw -90 degrees puts the eye on the positive x side of the target
	assert.Greater(t, camera.GetPosition().X(), float32(0))
	assert.Greater(t, camera.GetPosition().Y(), float32(0))
	assert.InDelta(t, 0, camera.GetPosition().Z(), 1e-5)
}

func TestNewOrbitCameraRejectsDegenerateViewport(t *testing.T) {
	_, err := NewOrbitCamera(0, 600)
	assert.Error(t, err)
	_, err = NewOrbitCamera(800, 0)
	assert.Error(t, err)
	_, err = NewOrbitCamera(-800, 600)
	assert.Error(t, err)
}

func TestSetViewportKeepsLastGoodAspect(t *testing.T) {
	camera, err := NewOrbitCamera(800, 600)
	require.NoError(t, err)
	before := camera.GetProjectionMatrix()

	assert.Error(t, camera.SetViewport(800, 0))
	assert.Equal(t, before, camera.GetProjectionMatrix())

	require.NoError(t, camera.SetViewport(1600, 600))
	assert.NotEqual(t, before, camera.GetProjectionMatrix())
}

func TestViewMatrixCentersTheTarget(t *testing.T) {
	camera, err := NewOrbitCamera(800, 600)
	require.NoError(t, err)

	viewSpace := mgl32.TransformCoordinate(camera.GetTarget(), camera.GetViewMatrix())
	assert.InDelta(t, 0, viewSpace.X(), 1e-5)
	assert.InDelta(t, 0, viewSpace.Y(), 1e-5)
	assert.InDelta(t, -camera.GetDistance(), viewSpace.Z(), 1e-5)
}

func TestOrbitCameraMatricesStayFinite(t *testing.T) {
	camera, err := NewOrbitCamera(800, 600)
	require.NoError(t, err)

	for yaw := float32(-2 * math.Pi); yaw <= 2*math.Pi; yaw += 0.5 {
		for pitch := -safePitch; pitch <= safePitch; pitch += 0.3 {
			for _, distance := range []float32{MinCameraDistance, 2.5, 100} {
				camera.yaw = yaw
				camera.pitch = pitch
				camera.distance = distance
				camera.updatePosition()

				matrix := camera.GetProjectionViewMatrix()
				for i, value := range matrix {
					f := float64(value)
					assert.False(t, math.IsNaN(f) || math.IsInf(f, 0),
						"entry %d is %v at yaw %v pitch %v distance %v", i, value, yaw, pitch, distance)
				}
			}
		}
	}
}

func TestOrbitPositionFollowsTarget(t *testing.T) {
	camera, err := NewOrbitCamera(800, 600)
	require.NoError(t, err)

	offset := camera.GetPosition().Sub(camera.GetTarget())
	camera.target = mgl32.Vec3{10, -3, 7}
	camera.updatePosition()

	moved := camera.GetPosition().Sub(camera.GetTarget())
	assert.InDelta(t, offset.X(), moved.X(), 1e-5)
	assert.InDelta(t, offset.Y(), moved.Y(), 1e-5)
	assert.InDelta(t, offset.Z(), moved.Z(), 1e-5)
}
