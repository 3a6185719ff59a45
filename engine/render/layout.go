package render

import "github.com/memmaker/cubeworld/engine/glhf"

// The buffer layouts below are the contract between the Go side and the GLSL in
// shader/. The Go structs, the AttrFormat declarations and the shader sources all
// have to agree on them; BuildPipelines checks the linked programs against these
// constants once at startup so that no draw call has to.

const (
	// CameraBlockName is the uniform block that carries the combined
	// projection*view matrix. All pipelines that consume a camera declare it
	// with this exact name.
	CameraBlockName = "CameraBlock"

	// CameraBlockBinding is the uniform buffer binding point the camera buffer
	// lives at for the whole lifetime of the program.
	CameraBlockBinding = 0

	// CameraBlockSize is the byte size of the camera block: one tightly packed
	// 4x4 float matrix.
	CameraBlockSize = 16 * glhf.SizeOfFloat32
)

const (
	// VertexStride is the byte size of one Vertex in the vertex buffer:
	// position (3 floats) directly followed by color (3 floats).
	VertexStride = 6 * glhf.SizeOfFloat32

	// InstanceStride is the byte size of one instance record: a 4x4 float
	// model matrix, stored as four consecutive vec4 attributes.
	InstanceStride = 16 * glhf.SizeOfFloat32

	floatsPerVertex   = VertexStride / glhf.SizeOfFloat32
	floatsPerInstance = InstanceStride / glhf.SizeOfFloat32
)

// Attribute locations as declared in the vertex shaders. The vertex attributes sit
// on locations 0 and 1, the instance matrix occupies the four consecutive locations
// starting at locModel.
const (
	locPosition = 0
	locColor    = 1
	locModel    = 2
)
