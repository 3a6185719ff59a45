package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// UniformBuffer is a fixed-size GPU buffer backing a std140 uniform block. Shaders
// reach it through the binding point passed to BindBase, which has to match the one
// their uniform block was assigned with Shader.SetUniformBlock.
type UniformBuffer struct {
	ubo  binder
	size int
}

// NewUniformBuffer allocates a uniform buffer of the given size in bytes.
func NewUniformBuffer(size int) (*UniformBuffer, error) {
	ub := &UniformBuffer{
		ubo: binder{
			restoreLoc: gl.UNIFORM_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.UNIFORM_BUFFER, obj)
			},
		},
		size: size,
	}

	gl.GenBuffers(1, &ub.ubo.obj)
	defer ub.ubo.bind().restore()

	emptyData := make([]byte, size)
	gl.BufferData(gl.UNIFORM_BUFFER, len(emptyData), gl.Ptr(emptyData), gl.DYNAMIC_DRAW)
	if err := checkAlloc("uniform buffer"); err != nil {
		return nil, err
	}

	runtime.SetFinalizer(ub, (*UniformBuffer).delete)

	return ub, nil
}

func (ub *UniformBuffer) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteBuffers(1, &ub.ubo.obj)
	})
}

// Size returns the size of the buffer in bytes.
func (ub *UniformBuffer) Size() int {
	return ub.size
}

// BindBase attaches the whole buffer to the given uniform buffer binding point.
func (ub *UniformBuffer) BindBase(binding uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ub.ubo.obj)
}

// SetData overwrites the buffer starting at the given byte offset. The write must stay
// inside the allocation.
func (ub *UniformBuffer) SetData(offset int, data []GlFloat) {
	if len(data) == 0 {
		return
	}
	if offset+len(data)*4 > ub.size {
		panic("set uniform buffer data: write exceeds buffer size")
	}
	ub.ubo.bind()
	gl.BufferSubData(gl.UNIFORM_BUFFER, offset, len(data)*4, gl.Ptr(data))
	ub.ubo.restore()
}
