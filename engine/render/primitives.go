package render

import "github.com/go-gl/mathgl/mgl32"

// NewPyramidMesh returns the five vertex debug pyramid: a white tip over a colored
// square base, wound clockwise.
func NewPyramidMesh() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{0, 0, 0}, Color: mgl32.Vec3{1, 1, 1}},    // tip
			{Position: mgl32.Vec3{-5, -5, -5}, Color: mgl32.Vec3{0, 1, 0}}, // near left
			{Position: mgl32.Vec3{-5, -5, 5}, Color: mgl32.Vec3{0, 0, 1}},  // far left
			{Position: mgl32.Vec3{5, -5, -5}, Color: mgl32.Vec3{1, 1, 0}},  // near right
			{Position: mgl32.Vec3{5, -5, 5}, Color: mgl32.Vec3{1, 0, 0}},   // far right
		},
		Indices: []uint32{
			0, 3, 1,
			0, 2, 4,
			0, 1, 2,
			0, 4, 3,
			1, 3, 2,
			3, 4, 2,
		},
	}
}

// NewCubeMesh returns a single block sized cube assembled from its six quads, all
// painted the given color. It is the stand-in model for figures without one.
func NewCubeMesh(color mgl32.Vec3) Mesh {
	var vertices []Vertex
	var indices []uint32
	for _, dir := range Directions {
		quad := Quad{Direction: dir}
		vertices, indices = quad.AppendTo(vertices, indices, color)
	}
	return Mesh{Vertices: vertices, Indices: indices}
}
