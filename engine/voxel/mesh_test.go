package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
	"github.com/stretchr/testify/assert"
)

func TestBuildTerrainMeshEmptyChunk(t *testing.T) {
	chunk := NewLogicChunk()
	mesh := BuildTerrainMesh(ChunkCoord{0, 0, 0}, chunk.CopyBlocks())
	assert.True(t, mesh.IsEmpty())
}

func TestBuildTerrainMeshSingleBlock(t *testing.T) {
	chunk := NewLogicChunk()
	chunk.SetBlock(BlockCoord{0, 0, 0}, Grass)

	mesh := BuildTerrainMesh(ChunkCoord{0, 0, 0}, chunk.CopyBlocks())

	assert.Equal(t, 24, len(mesh.Vertices))
	assert.Equal(t, 36, len(mesh.Indices))

	half := float32(0.5) * render.BlockScale
	for _, vertex := range mesh.Vertices {
		assert.Equal(t, Grass.Color(), vertex.Color)
		assert.InDelta(t, half, abs32(vertex.Position.X()), 1e-6)
		assert.InDelta(t, half, abs32(vertex.Position.Y()), 1e-6)
		assert.InDelta(t, half, abs32(vertex.Position.Z()), 1e-6)
	}
}

func TestBuildTerrainMeshLastBlockIsOffset(t *testing.T) {
	chunk := NewLogicChunk()
	last := BlockCoord{CHUNK_SIZE - 1, CHUNK_SIZE - 1, CHUNK_SIZE - 1}
	chunk.SetBlock(last, Stone)

	mesh := BuildTerrainMesh(ChunkCoord{0, 0, 0}, chunk.CopyBlocks())

	assert.Equal(t, 24, len(mesh.Vertices))
	center := mgl32.Vec3{}
	for _, vertex := range mesh.Vertices {
		center = center.Add(vertex.Position)
	}
	center = center.Mul(1.0 / float32(len(mesh.Vertices)))
	want := float32(CHUNK_SIZE-1) * render.BlockScale
	assert.InDelta(t, want, center.X(), 1e-5)
	assert.InDelta(t, want, center.Y(), 1e-5)
	assert.InDelta(t, want, center.Z(), 1e-5)
}

func TestBuildTerrainMeshChunkOffset(t *testing.T) {
	chunk := NewLogicChunk()
	chunk.SetBlock(BlockCoord{0, 0, 0}, Dirt)

	mesh := BuildTerrainMesh(ChunkCoord{1, 0, 0}, chunk.CopyBlocks())

	center := mgl32.Vec3{}
	for _, vertex := range mesh.Vertices {
		center = center.Add(vertex.Position)
	}
	center = center.Mul(1.0 / float32(len(mesh.Vertices)))
	assert.InDelta(t, float32(CHUNK_SIZE)*render.BlockScale, center.X(), 1e-5)
	assert.InDelta(t, 0, center.Y(), 1e-5)
	assert.InDelta(t, 0, center.Z(), 1e-5)
}

func TestBuildTerrainMeshFullChunk(t *testing.T) {
	blocks := fullChunkBlocks()

	mesh := BuildTerrainMesh(ChunkCoord{0, 0, 0}, blocks)

	assert.Equal(t, int(CHUNK_SIZE_CUBED)*24, len(mesh.Vertices))
	assert.Equal(t, int(CHUNK_SIZE_CUBED)*36, len(mesh.Indices))
	for _, index := range mesh.Indices {
		assert.Less(t, int(index), len(mesh.Vertices))
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func fullChunkBlocks() []Block {
	blocks := make([]Block, CHUNK_SIZE_CUBED)
	for i := range blocks {
		blocks[i] = Stone
	}
	return blocks
}

func cornerChunkBlocks() []Block {
	blocks := make([]Block, CHUNK_SIZE_CUBED)
	corners := []int32{
		0,
		CHUNK_SIZE - 1,
		CHUNK_SIZE_SQUARED - CHUNK_SIZE,
		CHUNK_SIZE_SQUARED - 1,
		CHUNK_SIZE_CUBED - CHUNK_SIZE_SQUARED + CHUNK_SIZE - 1,
		CHUNK_SIZE_CUBED - CHUNK_SIZE_SQUARED,
		CHUNK_SIZE_CUBED - CHUNK_SIZE,
		CHUNK_SIZE_CUBED - 1,
	}
	for _, index := range corners {
		blocks[index] = Stone
	}
	return blocks
}

// execute with: go test -bench=. -test.benchmem -test.benchtime=10s
func BenchmarkBuildTerrainMeshEmpty(b *testing.B) {
	blocks := make([]Block, CHUNK_SIZE_CUBED)
	for i := 0; i < b.N; i++ {
		BuildTerrainMesh(ChunkCoord{0, 0, 0}, blocks)
	}
}

func BenchmarkBuildTerrainMeshFirstBlock(b *testing.B) {
	blocks := make([]Block, CHUNK_SIZE_CUBED)
	blocks[0] = Stone
	for i := 0; i < b.N; i++ {
		BuildTerrainMesh(ChunkCoord{0, 0, 0}, blocks)
	}
}

func BenchmarkBuildTerrainMeshLastBlock(b *testing.B) {
	blocks := make([]Block, CHUNK_SIZE_CUBED)
	blocks[CHUNK_SIZE_CUBED-1] = Stone
	for i := 0; i < b.N; i++ {
		BuildTerrainMesh(ChunkCoord{0, 0, 0}, blocks)
	}
}

func BenchmarkBuildTerrainMeshCorners(b *testing.B) {
	blocks := cornerChunkBlocks()
	for i := 0; i < b.N; i++ {
		BuildTerrainMesh(ChunkCoord{0, 0, 0}, blocks)
	}
}

func BenchmarkBuildTerrainMeshFull(b *testing.B) {
	blocks := fullChunkBlocks()
	for i := 0; i < b.N; i++ {
		BuildTerrainMesh(ChunkCoord{0, 0, 0}, blocks)
	}
}
