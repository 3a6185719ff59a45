package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Shader is an OpenGL shader program.
type Shader struct {
	program     binder
	vertexFmt   AttrFormat
	instanceFmt AttrFormat
	uniformFmt  AttrFormat
	uniformLoc  []int32
	instanceLoc []int32
}

// NewShader creates a new shader program from the specified vertex shader and fragment shader
// sources.
//
// Note that vertexShader and fragmentShader parameters must contain the source code, they're
// not filenames.
func NewShader(vertexFmt, uniformFmt AttrFormat, vertexShader, fragmentShader string) (*Shader, error) {
	return NewInstancedShader(vertexFmt, nil, uniformFmt, vertexShader, fragmentShader)
}

// NewInstancedShader creates a shader program that additionally consumes per-instance
// attributes. The instance format describes attributes advanced once per instance
// instead of once per vertex; their data comes from an InstanceBuffer supplied at draw
// time.
func NewInstancedShader(vertexFmt, instanceFmt, uniformFmt AttrFormat, vertexShader, fragmentShader string) (*Shader, error) {
	shader := &Shader{
		program: binder{
			restoreLoc: gl.CURRENT_PROGRAM,
			bindFunc: func(obj uint32) {
				gl.UseProgram(obj)
			},
		},
		vertexFmt:   vertexFmt,
		instanceFmt: instanceFmt,
		uniformFmt:  uniformFmt,
		uniformLoc:  make([]int32, len(uniformFmt)),
		instanceLoc: make([]int32, len(instanceFmt)),
	}

	var vshader, fshader uint32

	// vertex shader
	{
		vshader = gl.CreateShader(gl.VERTEX_SHADER)
		src, free := gl.Strs(vertexShader)
		defer free()
		length := int32(len(vertexShader))
		gl.ShaderSource(vshader, 1, src, &length)
		gl.CompileShader(vshader)

		var success int32
		gl.GetShaderiv(vshader, gl.COMPILE_STATUS, &success)
		if success == gl.FALSE {
			var logLen int32
			gl.GetShaderiv(vshader, gl.INFO_LOG_LENGTH, &logLen)

			infoLog := make([]byte, logLen)
			gl.GetShaderInfoLog(vshader, logLen, nil, &infoLog[0])
			return nil, errors.Errorf("error compiling vertex shader: %s", string(infoLog))
		}

		defer gl.DeleteShader(vshader)
	}

	// fragment shader
	{
		fshader = gl.CreateShader(gl.FRAGMENT_SHADER)
		src, free := gl.Strs(fragmentShader)
		defer free()
		length := int32(len(fragmentShader))
		gl.ShaderSource(fshader, 1, src, &length)
		gl.CompileShader(fshader)

		var success int32
		gl.GetShaderiv(fshader, gl.COMPILE_STATUS, &success)
		if success == gl.FALSE {
			var logLen int32
			gl.GetShaderiv(fshader, gl.INFO_LOG_LENGTH, &logLen)

			infoLog := make([]byte, logLen)
			gl.GetShaderInfoLog(fshader, logLen, nil, &infoLog[0])
			return nil, errors.Errorf("error compiling fragment shader: %s", string(infoLog))
		}

		defer gl.DeleteShader(fshader)
	}

	// shader program
	{
		shader.program.obj = gl.CreateProgram()
		gl.AttachShader(shader.program.obj, vshader)
		gl.AttachShader(shader.program.obj, fshader)
		gl.LinkProgram(shader.program.obj)

		var success int32
		gl.GetProgramiv(shader.program.obj, gl.LINK_STATUS, &success)
		if success == gl.FALSE {
			var logLen int32
			gl.GetProgramiv(shader.program.obj, gl.INFO_LOG_LENGTH, &logLen)

			infoLog := make([]byte, logLen)
			gl.GetProgramInfoLog(shader.program.obj, logLen, nil, &infoLog[0])
			return nil, errors.Errorf("error linking shader program: %s", string(infoLog))
		}
	}

	// uniforms
	for i, uniform := range uniformFmt {
		loc := gl.GetUniformLocation(shader.program.obj, gl.Str(uniform.Name+"\x00"))
		shader.uniformLoc[i] = loc
	}

	for i, attr := range instanceFmt {
		loc := gl.GetAttribLocation(shader.program.obj, gl.Str(attr.Name+"\x00"))
		shader.instanceLoc[i] = loc
	}

	runtime.SetFinalizer(shader, (*Shader).delete)

	return shader, nil
}

func (s *Shader) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(s.program.obj)
	})
}

// ID returns the OpenGL ID of this Shader.
func (s *Shader) ID() uint32 {
	return s.program.obj
}

// VertexFormat returns the vertex attribute format of this Shader. Do not change it.
func (s *Shader) VertexFormat() AttrFormat {
	return s.vertexFmt
}

// InstanceFormat returns the per-instance attribute format of this Shader. Do not change it.
func (s *Shader) InstanceFormat() AttrFormat {
	return s.instanceFmt
}

// UniformFormat returns the uniform attribute format of this Shader. Do not change it.
func (s *Shader) UniformFormat() AttrFormat {
	return s.uniformFmt
}

// AttribLocation returns the location of the named attribute in the linked program, or
// -1 if the program has no active attribute of that name.
func (s *Shader) AttribLocation(name string) int32 {
	return gl.GetAttribLocation(s.program.obj, gl.Str(name+"\x00"))
}

// SetUniformBlock assigns the named uniform block to the given buffer binding point.
// It fails if the program has no such block or if the block's std140 layout does not
// span exactly size bytes, so host and shader disagreements about the block layout
// surface here instead of as garbage reads during a draw.
func (s *Shader) SetUniformBlock(name string, binding uint32, size int) error {
	index := gl.GetUniformBlockIndex(s.program.obj, gl.Str(name+"\x00"))
	if index == gl.INVALID_INDEX {
		return errors.Errorf("uniform block %q not found in shader program", name)
	}
	var blockSize int32
	gl.GetActiveUniformBlockiv(s.program.obj, index, gl.UNIFORM_BLOCK_DATA_SIZE, &blockSize)
	if int(blockSize) != size {
		return errors.Errorf("uniform block %q spans %d bytes, expected %d", name, blockSize, size)
	}
	gl.UniformBlockBinding(s.program.obj, index, binding)
	return nil
}

// SetUniformAttr sets the value of a uniform attribute of this Shader. The attribute is
// specified by the index in the Shader's uniform format.
//
// If the uniform attribute does not exist in the Shader, this method returns false.
//
// Supported types are: int32, uint32, float32, mgl32.Vec2, mgl32.Vec3, mgl32.Vec4, mgl32.Mat4.
func (s *Shader) SetUniformAttr(uniform int, value interface{}) (ok bool) {
	if s.uniformLoc[uniform] < 0 {
		return false
	}
	switch s.uniformFmt[uniform].Type {
	case Int:
		value := value.(int32)
		gl.Uniform1iv(s.uniformLoc[uniform], 1, &value)
	case UInt:
		value := value.(uint32)
		gl.Uniform1uiv(s.uniformLoc[uniform], 1, &value)
	case Float:
		value := value.(float32)
		gl.Uniform1fv(s.uniformLoc[uniform], 1, &value)
	case Vec2:
		value := value.(mgl32.Vec2)
		gl.Uniform2fv(s.uniformLoc[uniform], 1, &value[0])
	case Vec3:
		value := value.(mgl32.Vec3)
		gl.Uniform3fv(s.uniformLoc[uniform], 1, &value[0])
	case Vec4:
		value := value.(mgl32.Vec4)
		gl.Uniform4fv(s.uniformLoc[uniform], 1, &value[0])
	case Mat4:
		value := value.(mgl32.Mat4)
		gl.UniformMatrix4fv(s.uniformLoc[uniform], 1, false, &value[0])
	default:
		panic("set uniform attr: invalid attribute type")
	}
	return true
}

// Begin binds the Shader program. This method should be called before using the Shader.
func (s *Shader) Begin() {
	s.program.bind()
}

// End unbinds the Shader program. This method should be called after using the Shader.
func (s *Shader) End() {
	s.program.restore()
}
