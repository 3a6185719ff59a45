package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestGenerateChunkSurfaceStrata(t *testing.T) {
	chunk := GenerateChunk(ChunkCoord{0, 0, 0})
	for x := int32(0); x < CHUNK_SIZE; x++ {
		for z := int32(0); z < CHUNK_SIZE; z++ {
			assert.Equal(t, Grass, chunk.BlockAt(BlockCoord{x, 0, z}))
			for y := int32(1); y < CHUNK_SIZE; y++ {
				assert.Equal(t, Air, chunk.BlockAt(BlockCoord{x, y, z}))
			}
		}
	}
}

func TestGenerateChunkUndergroundStrata(t *testing.T) {
	// chunk -1 spans global y -16..-1: stone up to -11, dirt from -10 on
	chunk := GenerateChunk(ChunkCoord{0, -1, 0})
	for y := int32(0); y < CHUNK_SIZE; y++ {
		globalY := -CHUNK_SIZE + y
		want := Dirt
		if globalY <= -11 {
			want = Stone
		}
		assert.Equal(t, want, chunk.BlockAt(BlockCoord{3, y, 7}), "global y %d", globalY)
	}
}

func TestGenerateChunkSkyIsAir(t *testing.T) {
	chunk := GenerateChunk(ChunkCoord{2, 5, -3})
	for i := int32(0); i < CHUNK_SIZE_CUBED; i++ {
		assert.Equal(t, Air, chunk.blocks[i])
	}
}

func TestChunkDirtyTracking(t *testing.T) {
	chunk := NewLogicChunk()
	assert.True(t, chunk.IsDirty())

	chunk.ClearDirty()
	assert.False(t, chunk.IsDirty())

	chunk.SetBlock(BlockCoord{1, 2, 3}, Stone)
	assert.True(t, chunk.IsDirty())
	assert.Equal(t, Stone, chunk.BlockAt(BlockCoord{1, 2, 3}))
}

func TestCopyBlocksIsASnapshot(t *testing.T) {
	chunk := NewLogicChunk()
	chunk.SetBlock(BlockCoord{0, 0, 0}, Grass)

	snapshot := chunk.CopyBlocks()
	chunk.SetBlock(BlockCoord{0, 0, 0}, Stone)

	assert.Equal(t, Grass, snapshot[0])
	assert.Equal(t, Stone, chunk.BlockAt(BlockCoord{0, 0, 0}))
}

func TestBlockProperties(t *testing.T) {
	assert.False(t, Air.Opaque())
	for _, block := range []Block{Stone, Grass, Sand, Dirt} {
		assert.True(t, block.Opaque(), block.String())
		assert.NotEqual(t, mgl32.Vec3{}, block.Color(), block.String())
	}
	assert.Equal(t, mgl32.Vec3{}, Air.Color())
}
