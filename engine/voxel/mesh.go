package voxel

import "github.com/memmaker/cubeworld/engine/render"

// BuildTerrainMesh emits the faces of every opaque block in the chunk as one
// colored triangle mesh with world space positions. A chunk of air yields an
// empty mesh.
//
// Pure CPU work, safe to run on worker goroutines.
func BuildTerrainMesh(coord ChunkCoord, blocks []Block) render.Mesh {
	var vertices []render.Vertex
	var indices []uint32

	for i, block := range blocks {
		if !block.Opaque() {
			continue
		}
		pos := coord.ToGlobal(BlockCoordFromIndex(int32(i))).ToVec3()
		color := block.Color()
		for _, direction := range render.Directions {
			quad := render.Quad{Direction: direction, Position: pos}
			vertices, indices = quad.AppendTo(vertices, indices, color)
		}
	}

	return render.Mesh{Vertices: vertices, Indices: indices}
}
