package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/glhf"
	"github.com/pkg/errors"
)

// CameraBind owns the uniform buffer behind the camera block. Every pipeline that
// consumes the block reads it from CameraBlockBinding, so a single upload per frame
// serves all draws of that frame.
type CameraBind struct {
	buffer  *glhf.UniformBuffer
	scratch [CameraBlockSize / glhf.SizeOfFloat32]glhf.GlFloat
}

// NewCameraBind allocates the camera uniform buffer and attaches it to the camera
// binding point, where it stays for the lifetime of the program.
func NewCameraBind() (*CameraBind, error) {
	buffer, err := glhf.NewUniformBuffer(CameraBlockSize)
	if err != nil {
		return nil, errors.Wrap(err, "camera uniform buffer")
	}
	buffer.BindBase(CameraBlockBinding)
	return &CameraBind{buffer: buffer}, nil
}

// Upload replaces the matrix in the uniform buffer. It has to be sequenced before
// the draws that should see it; Drawer.BeginFrame takes care of that ordering for
// a whole frame.
func (c *CameraBind) Upload(matrix mgl32.Mat4) {
	for i, value := range matrix {
		c.scratch[i] = glhf.GlFloat(value)
	}
	c.buffer.SetData(0, c.scratch[:])
}
