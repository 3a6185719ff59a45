package util

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cameraSpeed       = float32(2.0)
	scrollSensitivity = float32(0.5)
	safePitch         = float32(1.57)
)

// CameraController collects input forces between frames and applies them to
// an OrbitCamera once per frame. Mouse input is consumed on apply, key input
// persists until the key is released.
type CameraController struct {
	forward    float32
	backward   float32
	left       float32
	right      float32
	up         float32
	down       float32
	horizontal float32
	vertical   float32
	zoom       float32

	sensitivity float32
}

func NewCameraController() *CameraController {
	return &CameraController{sensitivity: 150}
}

// Reset clears all pending input, eg. when the window loses the cursor.
func (c *CameraController) Reset() {
	c.forward = 0
	c.backward = 0
	c.left = 0
	c.right = 0
	c.up = 0
	c.down = 0
	c.horizontal = 0
	c.vertical = 0
	c.zoom = 0
}

func (c *CameraController) HandleKey(key glfw.Key, pressed bool) {
	force := float32(0)
	if pressed {
		force = 1
	}
	switch key {
	case glfw.KeyW, glfw.KeyUp:
		c.forward = force
	case glfw.KeyA, glfw.KeyLeft:
		c.left = force
	case glfw.KeyS, glfw.KeyDown:
		c.backward = force
	case glfw.KeyD, glfw.KeyRight:
		c.right = force
	case glfw.KeySpace:
		c.up = force
	case glfw.KeyLeftShift:
		c.down = force
	}
}

func (c *CameraController) MouseMove(dx, dy float64) {
	if mgl32.Abs(float32(dx)) > 200 || mgl32.Abs(float32(dy)) > 200 {
		// cursor warp, eg. after grabbing the mouse
		return
	}
	c.horizontal = float32(dx)
	c.vertical = float32(dy)
}

func (c *CameraController) MouseWheel(yoff float64) {
	// one scroll line is worth roughly ten pixels
	c.zoom = float32(yoff) * 10 * scrollSensitivity
}

// UpdateCamera moves the look target, zooms and rotates the orbit. Zoom and
// rotation inputs are one-shot and reset after they are applied.
func (c *CameraController) UpdateCamera(camera *OrbitCamera, elapsed float64) {
	modifier := cameraSpeed * float32(elapsed)
	worldUp := mgl32.Vec3{0, 1, 0}

	towardsTarget := camera.target.Sub(camera.position)
	length := towardsTarget.Len()
	right := towardsTarget.Normalize().Cross(worldUp)
	forward := worldUp.Cross(right)

	zoomDelta := -(c.zoom * length * 0.75) * modifier
	if camera.distance+zoomDelta > MinCameraDistance {
		camera.distance += zoomDelta
	} else {
		camera.distance = MinCameraDistance
	}

	camera.target = camera.target.Add(forward.Mul((c.forward - c.backward) * modifier))
	camera.target = camera.target.Add(right.Mul((c.right - c.left) * modifier))
	camera.target = camera.target.Add(worldUp.Mul((c.up - c.down) * modifier))

	camera.yaw += ToRadian(c.horizontal) * c.sensitivity * modifier
	camera.pitch += ToRadian(c.vertical) * c.sensitivity * modifier
	if camera.pitch < -safePitch {
		camera.pitch = -safePitch
	} else if camera.pitch > safePitch {
		camera.pitch = safePitch
	}

	camera.updatePosition()

	c.zoom = 0
	c.horizontal = 0
	c.vertical = 0
}
