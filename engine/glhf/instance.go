package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// InstanceBuffer holds attribute data that advances once per drawn instance instead of
// once per vertex. One buffer typically carries the model matrices of a whole group of
// drawables and is paired with a mesh at draw time via VertexSlice.DrawInstanced.
type InstanceBuffer struct {
	vbo    binder
	format AttrFormat
	stride int
	count  int
	cap    int
}

// NewInstanceBuffer allocates a buffer for cap instances of the given attribute format.
func NewInstanceBuffer(format AttrFormat, cap int) (*InstanceBuffer, error) {
	if format.Size() == 0 {
		panic("failed to make instance buffer: empty attribute format")
	}
	if cap < 1 {
		cap = 1
	}
	ib := &InstanceBuffer{
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		format: format,
		stride: format.Size(),
		cap:    cap,
	}

	gl.GenBuffers(1, &ib.vbo.obj)
	defer ib.vbo.bind().restore()

	emptyData := make([]byte, cap*ib.stride)
	gl.BufferData(gl.ARRAY_BUFFER, len(emptyData), gl.Ptr(emptyData), gl.DYNAMIC_DRAW)
	if err := checkAlloc("instance buffer"); err != nil {
		return nil, err
	}

	runtime.SetFinalizer(ib, (*InstanceBuffer).delete)

	return ib, nil
}

func (ib *InstanceBuffer) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteBuffers(1, &ib.vbo.obj)
	})
}

// InstanceFormat returns the per-instance attribute format of this buffer. Do not change it.
func (ib *InstanceBuffer) InstanceFormat() AttrFormat {
	return ib.format
}

// Len returns the number of instances a draw from this buffer produces.
func (ib *InstanceBuffer) Len() int {
	return ib.count
}

// Cap returns the number of instances the underlying allocation can hold.
func (ib *InstanceBuffer) Cap() int {
	return ib.cap
}

// Begin binds the underlying buffer. Calling this method is necessary before setting its data.
func (ib *InstanceBuffer) Begin() {
	ib.vbo.bind()
}

// End unbinds the underlying buffer. Call this method when you're done with it.
func (ib *InstanceBuffer) End() {
	ib.vbo.restore()
}

// instanceStrideCount returns how many whole instances a flattened float stream
// covers, or an error if it ends mid record.
func instanceStrideCount(floats, stride int) (int, error) {
	if floats*4%stride != 0 {
		return 0, errors.Errorf("set instance data: %d floats do not divide into records of %d bytes", floats, stride)
	}
	return floats * 4 / stride, nil
}

// SetData replaces the contents of the buffer with the given flattened instance data.
// Growing past the current capacity reallocates the GPU buffer. Anything shorter only
// lowers the instance count and leaves the allocation untouched, so a draw can never
// pick up a stale tail of a partially rewritten buffer.
func (ib *InstanceBuffer) SetData(data []GlFloat) error {
	count, err := instanceStrideCount(len(data), ib.stride)
	if err != nil {
		return err
	}
	if count > ib.cap {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
		if err := checkAlloc("instance buffer"); err != nil {
			return err
		}
		ib.cap = count
	} else if len(data) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	}
	ib.count = count
	return nil
}
