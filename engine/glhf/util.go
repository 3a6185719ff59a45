package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init initializes OpenGL by loading function pointers from the active OpenGL context.
//
// It must be called under the presence of an active OpenGL context, e.g., always after calling
// window.MakeContextCurrent(). Also, always call this function when switching contexts.
func Init() {
	err := gl.Init()
	if err != nil {
		panic(errors.Wrap(err, "failed to initialize OpenGL"))
	}
}

// Clear clears the current framebuffer or window with the given color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// checkAlloc returns an error if the last buffer allocation failed. OpenGL reports
// exhausted GPU memory through the error queue, so this has to be polled right after
// the BufferData call that may have failed.
func checkAlloc(what string) error {
	glError := gl.GetError()
	if glError == gl.OUT_OF_MEMORY {
		return errors.Errorf("out of GPU memory allocating %s", what)
	}
	if glError != gl.NO_ERROR {
		return errors.Errorf("failed to allocate %s: GL error %d", what, glError)
	}
	return nil
}

type binder struct {
	restoreLoc uint32
	bindFunc   func(uint32)

	obj uint32

	prev []uint32
}

func (b *binder) bind() *binder {
	var prev int32
	gl.GetIntegerv(b.restoreLoc, &prev)
	b.prev = append(b.prev, uint32(prev))

	if b.prev[len(b.prev)-1] != b.obj {
		b.bindFunc(b.obj)
	}
	return b
}

func (b *binder) restore() *binder {
	if b.prev[len(b.prev)-1] != b.obj {
		b.bindFunc(b.prev[len(b.prev)-1])
	}
	b.prev = b.prev[:len(b.prev)-1]
	return b
}
