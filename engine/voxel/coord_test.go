package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBlockCoordFromIndex(t *testing.T) {
	assert.Equal(t, BlockCoord{0, 0, 0}, BlockCoordFromIndex(0))
	assert.Equal(t, BlockCoord{1, 2, 3}, BlockCoordFromIndex(291))
	assert.Equal(t, BlockCoord{3, 2, 1}, BlockCoordFromIndex(801))
	assert.Equal(t, BlockCoord{15, 15, 15}, BlockCoordFromIndex(CHUNK_SIZE_CUBED-1))
}

func TestBlockCoordFlattenRoundTrip(t *testing.T) {
	for index := int32(0); index < CHUNK_SIZE_CUBED; index++ {
		assert.Equal(t, index, BlockCoordFromIndex(index).Flatten())
	}
}

func TestChunkCoordToGlobal(t *testing.T) {
	assert.Equal(t, GlobalCoord{5, 5, 5}, ChunkCoord{0, 0, 0}.ToGlobal(BlockCoord{5, 5, 5}))
	assert.Equal(t, GlobalCoord{31, 127, 256}, ChunkCoord{1, 7, 16}.ToGlobal(BlockCoord{15, 15, 0}))
	assert.Equal(t, GlobalCoord{-1, -17, -16}, ChunkCoord{-1, -2, -1}.ToGlobal(BlockCoord{15, 15, 0}))
}

func TestGlobalCoordToChunk(t *testing.T) {
	assert.Equal(t, ChunkCoord{0, 0, 0}, GlobalCoord{0, 0, 0}.ToChunk())
	assert.Equal(t, ChunkCoord{1, 7, 16}, GlobalCoord{31, 127, 256}.ToChunk())
	// floor division, not truncation: block -1 belongs to chunk -1
	assert.Equal(t, ChunkCoord{-1, -2, -1}, GlobalCoord{-1, -17, -16}.ToChunk())
}

func TestGlobalCoordToBlock(t *testing.T) {
	assert.Equal(t, BlockCoord{15, 15, 0}, GlobalCoord{31, 127, 256}.ToBlock())
	assert.Equal(t, BlockCoord{15, 15, 0}, GlobalCoord{-1, -17, -16}.ToBlock())
}

func TestGlobalCoordChunkRoundTrip(t *testing.T) {
	positions := []GlobalCoord{
		{0, 0, 0}, {15, 15, 15}, {16, 0, -1}, {-1, -16, -17}, {31, 127, 256},
	}
	for _, pos := range positions {
		chunk := pos.ToChunk()
		block := pos.ToBlock()
		assert.Equal(t, pos, chunk.ToGlobal(block), "position %v", pos)
	}
}

func TestGlobalCoordFromWorld(t *testing.T) {
	// world units are grid units scaled by the block scale
	assert.Equal(t, GlobalCoord{0, 2, -1}, GlobalCoordFromWorld(mgl32.Vec3{0.05, 0.21, -0.01}))
	assert.Equal(t, GlobalCoord{0, 0, 0}, GlobalCoordFromWorld(mgl32.Vec3{0, 0, 0}))
	assert.Equal(t, GlobalCoord{-10, 10, 15}, GlobalCoordFromWorld(mgl32.Vec3{-1, 1, 1.5}))
}

func TestChunkCoordWithinDistance(t *testing.T) {
	center := ChunkCoord{0, 0, 0}
	assert.True(t, ChunkCoord{2, -2, 1}.WithinDistance(center, 2))
	assert.True(t, center.WithinDistance(center, 0))
	assert.False(t, ChunkCoord{3, 0, 0}.WithinDistance(center, 2))
	assert.False(t, ChunkCoord{0, 0, -3}.WithinDistance(center, 2))
}
