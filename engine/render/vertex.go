package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/glhf"
	"github.com/pkg/errors"
)

// Vertex is one corner of a colored triangle, laid out exactly like the vertex
// buffer stores it: position first, color right behind it.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Mesh is indexed triangle geometry on the CPU side. MeshStore.UploadMesh copies it
// into GPU buffers; afterwards the Mesh can be discarded or reused.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// IsEmpty reports whether the mesh contains no triangles at all. Empty meshes are
// legal to build but cannot be uploaded.
func (m Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) == 0
}

// flattenVertices packs vertices into the raw float stream of the vertex buffer.
// The field order matches the attribute offsets of the vertex layout, so the bytes
// that reach the GPU are exactly the bytes of the input fields.
func flattenVertices(vertices []Vertex) []glhf.GlFloat {
	data := make([]glhf.GlFloat, 0, len(vertices)*floatsPerVertex)
	for _, v := range vertices {
		data = append(data,
			glhf.GlFloat(v.Position.X()), glhf.GlFloat(v.Position.Y()), glhf.GlFloat(v.Position.Z()),
			glhf.GlFloat(v.Color.X()), glhf.GlFloat(v.Color.Y()), glhf.GlFloat(v.Color.Z()),
		)
	}
	return data
}

// unflattenVertices is the exact inverse of flattenVertices.
func unflattenVertices(data []glhf.GlFloat) ([]Vertex, error) {
	if len(data)%floatsPerVertex != 0 {
		return nil, errors.Errorf("vertex data of %d floats does not divide into %d-float vertices", len(data), floatsPerVertex)
	}
	vertices := make([]Vertex, 0, len(data)/floatsPerVertex)
	for i := 0; i < len(data); i += floatsPerVertex {
		vertices = append(vertices, Vertex{
			Position: mgl32.Vec3{float32(data[i]), float32(data[i+1]), float32(data[i+2])},
			Color:    mgl32.Vec3{float32(data[i+3]), float32(data[i+4]), float32(data[i+5])},
		})
	}
	return vertices, nil
}
