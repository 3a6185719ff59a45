package voxel

import (
	"path/filepath"
	"testing"

	"github.com/memmaker/cubeworld/engine/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunkManagerClampsDrawDistance(t *testing.T) {
	assert.Equal(t, MIN_DRAW_DISTANCE, NewChunkManager(nil, 0).DrawDistance())
	assert.Equal(t, MAX_DRAW_DISTANCE, NewChunkManager(nil, 1000).DrawDistance())
	assert.Equal(t, int32(5), NewChunkManager(nil, 5).DrawDistance())
}

func TestIntegrateDropsSupersededResults(t *testing.T) {
	manager := NewChunkManager(nil, 2)
	coord := ChunkCoord{0, 0, 0}

	// no inFlight entry means a world load or unload happened in between
	manager.integrate(builtChunk{coord: coord, chunk: NewLogicChunk(), mesh: render.Mesh{}})

	assert.Equal(t, 0, manager.ChunkCount())
	assert.Equal(t, 0, manager.MeshCount())
}

func TestIntegrateKeepsChunksOfAir(t *testing.T) {
	manager := NewChunkManager(nil, 2)
	coord := ChunkCoord{0, 3, 0}
	manager.inFlight[coord] = true

	chunk := GenerateChunk(coord)
	chunk.ClearDirty()
	manager.integrate(builtChunk{coord: coord, chunk: chunk, mesh: render.Mesh{}})

	assert.Equal(t, 1, manager.ChunkCount())
	assert.Equal(t, 0, manager.MeshCount())
	assert.False(t, manager.inFlight[coord])
}

func TestCollectBuiltDrainsTheChannel(t *testing.T) {
	manager := NewChunkManager(nil, 2)
	coord := ChunkCoord{1, 3, 1}
	manager.inFlight[coord] = true
	manager.built <- builtChunk{coord: coord, chunk: NewLogicChunk(), mesh: render.Mesh{}}

	manager.collectBuilt()

	assert.Equal(t, 1, manager.ChunkCount())
	assert.Empty(t, manager.built)
}

func TestBlockAccessRequiresALoadedChunk(t *testing.T) {
	manager := NewChunkManager(nil, 2)

	_, ok := manager.BlockAt(GlobalCoord{0, 0, 0})
	assert.False(t, ok)

	err := manager.SetBlock(GlobalCoord{0, 0, 0}, Stone)
	assert.ErrorContains(t, err, "no chunk loaded")
}

func TestSetBlockMarksTheChunkDirty(t *testing.T) {
	manager := NewChunkManager(nil, 2)
	coord := ChunkCoord{0, 0, 0}
	chunk := GenerateChunk(coord)
	chunk.ClearDirty()
	manager.chunks[coord] = chunk

	require.NoError(t, manager.SetBlock(GlobalCoord{1, 2, 3}, Sand))

	assert.True(t, chunk.IsDirty())
	block, ok := manager.BlockAt(GlobalCoord{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, Sand, block)
}

func TestSaveAndLoadWorld(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "world.nbt")

	saved := NewChunkManager(nil, 2)
	coord := ChunkCoord{0, -1, 0}
	saved.chunks[coord] = GenerateChunk(coord)
	saved.chunks[ChunkCoord{0, 0, 0}] = GenerateChunk(ChunkCoord{0, 0, 0})
	require.NoError(t, saved.SetBlock(GlobalCoord{4, -2, 4}, Sand))
	require.NoError(t, saved.SaveWorld(filename))

	loaded := NewChunkManager(nil, 2)
	loaded.inFlight[ChunkCoord{9, 9, 9}] = true
	require.NoError(t, loaded.LoadWorld(filename))

	assert.Equal(t, 2, loaded.ChunkCount())
	block, ok := loaded.BlockAt(GlobalCoord{4, -2, 4})
	require.True(t, ok)
	assert.Equal(t, Sand, block)
	// pending worker results belong to the old world now
	assert.Empty(t, loaded.inFlight)
}

func TestLoadWorldMissingFile(t *testing.T) {
	manager := NewChunkManager(nil, 2)
	err := manager.LoadWorld(filepath.Join(t.TempDir(), "missing.nbt"))
	assert.Error(t, err)
}
