package voxel

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldFileRoundTrip(t *testing.T) {
	chunks := map[ChunkCoord]*LogicChunk{
		{0, 0, 0}:  GenerateChunk(ChunkCoord{0, 0, 0}),
		{0, -1, 0}: GenerateChunk(ChunkCoord{0, -1, 0}),
		{-2, 1, 3}: GenerateChunk(ChunkCoord{-2, 1, 3}),
	}
	chunks[ChunkCoord{0, 0, 0}].SetBlock(BlockCoord{5, 5, 5}, Sand)

	var buffer bytes.Buffer
	require.NoError(t, encodeWorld(chunks, &buffer))

	decoded, err := decodeWorld(&buffer)
	require.NoError(t, err)
	require.Equal(t, len(chunks), len(decoded))

	for coord, chunk := range chunks {
		loaded, exists := decoded[coord]
		require.True(t, exists, "missing chunk %v", coord)
		assert.Equal(t, chunk.blocks, loaded.blocks, "chunk %v", coord)
	}
	assert.Equal(t, Sand, decoded[ChunkCoord{0, 0, 0}].BlockAt(BlockCoord{5, 5, 5}))
}

func TestWorldFileLoadedChunksNeedMeshing(t *testing.T) {
	chunks := map[ChunkCoord]*LogicChunk{
		{0, 0, 0}: GenerateChunk(ChunkCoord{0, 0, 0}),
	}

	var buffer bytes.Buffer
	require.NoError(t, encodeWorld(chunks, &buffer))

	decoded, err := decodeWorld(&buffer)
	require.NoError(t, err)
	assert.True(t, decoded[ChunkCoord{0, 0, 0}].IsDirty())
}

func TestWorldFileRejectsUnknownVersion(t *testing.T) {
	var buffer bytes.Buffer
	gzipWriter := gzip.NewWriter(&buffer)
	encoder := nbt.NewEncoder(gzipWriter)
	require.NoError(t, encoder.Encode(worldFile{Version: 99}, ""))
	require.NoError(t, gzipWriter.Close())

	_, err := decodeWorld(&buffer)
	assert.ErrorContains(t, err, "version")
}

func TestWorldFileRejectsTruncatedBlocks(t *testing.T) {
	var buffer bytes.Buffer
	gzipWriter := gzip.NewWriter(&buffer)
	encoder := nbt.NewEncoder(gzipWriter)
	data := worldFile{
		Version: worldFileVersion,
		Chunks: []chunkEntry{
			{X: 0, Y: 0, Z: 0, Blocks: make([]byte, 10)},
		},
	}
	require.NoError(t, encoder.Encode(data, ""))
	require.NoError(t, gzipWriter.Close())

	_, err := decodeWorld(&buffer)
	assert.Error(t, err)
}

func TestWorldFileRejectsGarbage(t *testing.T) {
	_, err := decodeWorld(bytes.NewReader([]byte("not a world file")))
	assert.Error(t, err)
}
