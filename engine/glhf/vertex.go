package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

type GlFloat float32

// VertexSlice points to a portion of (or possibly whole) vertex array. It is used as a pointer,
// contrary to Go's builtin slices. This is, so that append can be 'in-place'. That's for the good,
// because Begin/End-ing a VertexSlice would become super confusing, if append returned a new
// VertexSlice.
//
// It also implements all basic slice-like operations: appending, sub-slicing, etc.
//
// Note that you need to Begin a VertexSlice before getting or updating it's elements or drawing it.
// After you're done with it, you need to End it.
type VertexSlice[V any] struct {
	va                   *vertexArray[V]
	startIndex, endIndex int
}

// MakeIndexedVertexSlice allocates a new indexed vertex array with the specified capacity
// and returns a VertexSlice that points to it's first len elements.
//
// Note, that a vertex array is specialized for a specific shader and can't be used with another
// shader.
func MakeIndexedVertexSlice(shader *Shader, len, cap int, indices []uint32) (*VertexSlice[GlFloat], error) {
	if len > cap {
		panic("failed to make vertex slice: len > cap")
	}
	if shader.VertexFormat().Size() == 0 {
		panic("failed to make vertex slice: shader has an empty vertex format")
	}
	va, err := newIndexedVertexArray[GlFloat](shader, cap, indices)
	if err != nil {
		return nil, err
	}
	return &VertexSlice[GlFloat]{
		va:         va,
		startIndex: 0,
		endIndex:   len,
	}, nil
}

// VertexFormat returns the format of vertex attributes inside the underlying vertex array of this
// VertexSlice.
func (vs *VertexSlice[V]) VertexFormat() AttrFormat {
	return vs.va.format
}

// Stride returns the number of float32 elements occupied by one vertex.
func (vs *VertexSlice[V]) Stride() int {
	return vs.va.stride / 4
}

// Len returns the length of the VertexSlice (number of vertices).
func (vs *VertexSlice[V]) Len() int {
	return vs.endIndex - vs.startIndex
}

// Cap returns the capacity of an underlying vertex array.
func (vs *VertexSlice[V]) Cap() int {
	return vs.va.cap - vs.startIndex
}

// Slice returns a sub-slice of this VertexSlice covering the range [startIndex, endIndex) (relative to this
// VertexSlice).
//
// Note, that the returned VertexSlice shares an underlying vertex array with the original
// VertexSlice. Modifying the contents of one modifies corresponding contents of the other.
func (vs *VertexSlice[V]) Slice(i, j int) *VertexSlice[V] {
	if i < 0 || j < i || j > vs.va.cap {
		panic("failed to slice vertex slice: index out of range")
	}
	return &VertexSlice[V]{
		va:         vs.va,
		startIndex: vs.startIndex + i,
		endIndex:   vs.startIndex + j,
	}
}

// SetVertexData sets the contents of the VertexSlice.
//
// The data is a slice of float32's, where each vertex attribute occupies a certain number of
// elements. Namely, Float occupies 1, Vec2 occupies 2, Vec3 occupies 3 and Vec4 occupies 4. The
// attributes in the data slice must be in the same order as in the vertex format of this Vertex
// Slice.
//
// If the length of vertices does not match the length of the VertexSlice, this method panics.
func (vs *VertexSlice[V]) SetVertexData(data []V) {
	if len(data)/vs.Stride() != vs.Len() {
		panic("set vertex data: wrong length of vertices")
	}
	vs.va.setVertexDataWithOffset(vs.startIndex, vs.endIndex, data)
}

// VertexData returns the contents of the VertexSlice.
//
// The data is in the same format as with SetVertexData.
func (vs *VertexSlice[V]) VertexData() []V {
	return vs.va.vertexData(vs.startIndex, vs.endIndex)
}

// Draw draws the content of the VertexSlice, one vertex per index in the index buffer.
func (vs *VertexSlice[V]) Draw() {
	vs.va.draw()
}

// DrawInstanced draws the content of the VertexSlice once per instance held by the
// InstanceBuffer. The shader this slice was created for must declare an instance format
// matching the buffer's layout.
func (vs *VertexSlice[V]) DrawInstanced(instances *InstanceBuffer) {
	vs.va.drawInstanced(instances)
}

// Begin binds the underlying vertex array. Calling this method is necessary before using the VertexSlice.
func (vs *VertexSlice[V]) Begin() {
	vs.va.begin()
}

// End unbinds the underlying vertex array. Call this method when you're done with VertexSlice.
func (vs *VertexSlice[V]) End() {
	vs.va.end()
}

type vertexArray[V any] struct {
	vao, vbo      binder
	cap           int
	format        AttrFormat
	stride        int
	offset        []int
	shader        *Shader
	indices       []uint32
	ibo           binder
	primitiveType uint32
}

const vertexArrayMinCap = 4

func newIndexedVertexArray[V any](shader *Shader, cap int, indices []uint32) (*vertexArray[V], error) {
	if cap < vertexArrayMinCap {
		cap = vertexArrayMinCap
	}
	if len(indices) == 0 {
		return nil, errors.New("failed to create vertex array: no indices")
	}

	va := &vertexArray[V]{
		primitiveType: gl.TRIANGLES,
		vao: binder{
			restoreLoc: gl.VERTEX_ARRAY_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindVertexArray(obj)
			},
		},
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		ibo: binder{
			restoreLoc: gl.ELEMENT_ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, obj)
			},
		},
		indices: indices,
		cap:     cap,
		format:  shader.VertexFormat(),
		stride:  shader.VertexFormat().Size(),
		offset:  make([]int, len(shader.VertexFormat())),
		shader:  shader,
	}

	offset := 0
	for i, attr := range va.format {
		switch attr.Type {
		case Int, UInt, Float, Vec2, Vec3, Vec4:
		default:
			panic(errors.New("failed to create vertex array: invalid vertex attribute type"))
		}
		va.offset[i] = offset
		offset += attr.Type.Size()
	}

	gl.GenBuffers(1, &va.ibo.obj)
	va.ibo.bind()
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	if err := checkAlloc("index buffer"); err != nil {
		va.ibo.restore()
		return nil, err
	}
	va.ibo.restore()

	gl.GenVertexArrays(1, &va.vao.obj)

	va.vao.bind()

	gl.GenBuffers(1, &va.vbo.obj)
	defer va.vbo.bind().restore()

	emptyData := make([]byte, cap*va.stride)
	gl.BufferData(gl.ARRAY_BUFFER, len(emptyData), gl.Ptr(emptyData), gl.STATIC_DRAW)
	if err := checkAlloc("vertex buffer"); err != nil {
		va.vao.restore()
		return nil, err
	}

	va.setAttributesForArray()

	va.vao.restore()

	runtime.SetFinalizer(va, (*vertexArray[V]).delete)

	return va, nil
}

func (va *vertexArray[V]) setAttributesForArray() {
	for i, attr := range va.format {
		loc := gl.GetAttribLocation(va.shader.program.obj, gl.Str(attr.Name+"\x00"))

		var size int32
		glType := uint32(gl.FLOAT)
		isFloat := true
		switch attr.Type {
		case Int:
			size = 1
			glType = gl.INT
			isFloat = false
		case UInt:
			size = 1
			glType = gl.UNSIGNED_INT
			isFloat = false
		case Float:
			size = 1
		case Vec2:
			size = 2
		case Vec3:
			size = 3
		case Vec4:
			size = 4
		}

		if isFloat {
			gl.VertexAttribPointerWithOffset(
				uint32(loc),
				size,
				glType,
				false,
				int32(va.stride),
				uintptr(va.offset[i]),
			)
		} else {
			gl.VertexAttribIPointerWithOffset(
				uint32(loc),
				size,
				glType,
				int32(va.stride),
				uintptr(va.offset[i]),
			)
		}
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

// setInstanceAttributes points the shader's per-instance attributes at the given
// InstanceBuffer. The pointers are recorded in the currently bound VAO, so this runs on
// every instanced draw to allow pairing one mesh with different instance buffers.
// A Mat4 attribute occupies four consecutive locations, one vec4 column each, all
// advancing once per instance.
func (va *vertexArray[V]) setInstanceAttributes(instances *InstanceBuffer) {
	offset := 0
	for i, attr := range va.shader.InstanceFormat() {
		loc := va.shader.instanceLoc[i]

		if attr.Type == Mat4 {
			startLocation := uint32(loc)
			for part := uint32(0); part < 4; part++ {
				gl.VertexAttribPointerWithOffset(startLocation+part, 4, gl.FLOAT, false, int32(instances.stride), uintptr(offset)+uintptr(part*4*SizeOfFloat32))
				gl.VertexAttribDivisor(startLocation+part, 1)
				gl.EnableVertexAttribArray(startLocation + part)
			}
		} else {
			var size int32
			switch attr.Type {
			case Float:
				size = 1
			case Vec2:
				size = 2
			case Vec3:
				size = 3
			case Vec4:
				size = 4
			default:
				panic(errors.New("failed to set instance attributes: invalid instance attribute type"))
			}
			gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, int32(instances.stride), uintptr(offset))
			gl.VertexAttribDivisor(uint32(loc), 1)
			gl.EnableVertexAttribArray(uint32(loc))
		}
		offset += attr.Type.Size()
	}
}

func (va *vertexArray[V]) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &va.vao.obj)
		gl.DeleteBuffers(1, &va.vbo.obj)
		gl.DeleteBuffers(1, &va.ibo.obj)
	})
}

func (va *vertexArray[V]) begin() {
	va.vao.bind()
	va.vbo.bind()
	va.ibo.bind()
}

func (va *vertexArray[V]) end() {
	va.ibo.restore()
	va.vbo.restore()
	va.vao.restore()
}

func (va *vertexArray[V]) draw() {
	gl.DrawElements(va.primitiveType, int32(len(va.indices)), gl.UNSIGNED_INT, gl.Ptr(nil))
}

func (va *vertexArray[V]) drawInstanced(instances *InstanceBuffer) {
	if instances.Len() == 0 {
		return
	}
	instances.vbo.bind()
	va.setInstanceAttributes(instances)
	gl.DrawElementsInstanced(va.primitiveType, int32(len(va.indices)), gl.UNSIGNED_INT, gl.Ptr(nil), int32(instances.Len()))
	instances.vbo.restore()
}

func (va *vertexArray[V]) setVertexDataWithOffset(i, j int, data []V) {
	if j-i == 0 {
		// avoid setting 0 bytes of buffer data
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, i*va.stride, len(data)*4, gl.Ptr(data))
}

func (va *vertexArray[V]) vertexData(i, j int) []V {
	if j-i == 0 {
		// avoid getting 0 bytes of buffer data
		return nil
	}
	data := make([]V, (j-i)*va.stride/4)
	gl.GetBufferSubData(gl.ARRAY_BUFFER, i*va.stride, len(data)*4, gl.Ptr(data))
	return data
}
