package voxel

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/memmaker/cubeworld/engine/util"
	"github.com/pkg/errors"
)

const worldFileVersion int32 = 1

// worldFile is the on-disk shape of a saved world: one blocks array per chunk,
// NBT encoded and gzip compressed.
type worldFile struct {
	Version int32        `nbt:"version"`
	Chunks  []chunkEntry `nbt:"chunks"`
}

type chunkEntry struct {
	X      int32  `nbt:"x"`
	Y      int32  `nbt:"y"`
	Z      int32  `nbt:"z"`
	Blocks []byte `nbt:"blocks"`
}

func encodeWorld(chunks map[ChunkCoord]*LogicChunk, writer io.Writer) error {
	data := worldFile{Version: worldFileVersion}
	for coord, chunk := range chunks {
		entry := chunkEntry{
			X:      coord.X,
			Y:      coord.Y,
			Z:      coord.Z,
			Blocks: make([]byte, CHUNK_SIZE_CUBED),
		}
		for i := int32(0); i < CHUNK_SIZE_CUBED; i++ {
			entry.Blocks[i] = byte(chunk.blocks[i])
		}
		data.Chunks = append(data.Chunks, entry)
	}

	gzipWriter := gzip.NewWriter(writer)
	if err := nbt.NewEncoder(gzipWriter).Encode(data, ""); err != nil {
		return err
	}
	return gzipWriter.Close()
}

func decodeWorld(reader io.Reader) (map[ChunkCoord]*LogicChunk, error) {
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return nil, err
	}

	var data worldFile
	if _, err := nbt.NewDecoder(gzipReader).Decode(&data); err != nil {
		return nil, err
	}
	if data.Version != worldFileVersion {
		return nil, errors.Errorf("unsupported world file version %d", data.Version)
	}

	chunks := make(map[ChunkCoord]*LogicChunk, len(data.Chunks))
	for _, entry := range data.Chunks {
		if len(entry.Blocks) != int(CHUNK_SIZE_CUBED) {
			return nil, errors.Errorf("chunk %d,%d,%d holds %d blocks, expected %d", entry.X, entry.Y, entry.Z, len(entry.Blocks), CHUNK_SIZE_CUBED)
		}
		chunk := NewLogicChunk()
		for i, raw := range entry.Blocks {
			chunk.blocks[i] = Block(raw)
		}
		chunks[ChunkCoord{X: entry.X, Y: entry.Y, Z: entry.Z}] = chunk
	}
	return chunks, nil
}

// SaveWorld writes the blocks of every loaded chunk to the given file.
func (m *ChunkManager) SaveWorld(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save world")
	}
	defer file.Close()

	if err := encodeWorld(m.chunks, file); err != nil {
		return errors.Wrap(err, "save world")
	}
	util.LogVoxelInfo(fmt.Sprintf("saved %d chunks to %s", len(m.chunks), filename))
	return nil
}

// LoadWorld replaces the loaded chunk set with the contents of the given file.
// The chunks arrive dirty, so the following Maintain calls rebuild their meshes
// within the usual budgets.
//
// Must run on the render thread: the meshes of the previous world are freed
// here.
func (m *ChunkManager) LoadWorld(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "load world")
	}
	defer file.Close()

	chunks, err := decodeWorld(file)
	if err != nil {
		return errors.Wrap(err, "load world")
	}

	for coord, handle := range m.terrain {
		if err := m.store.FreeMesh(handle); err != nil {
			util.LogVoxelError(err.Error())
		}
		delete(m.terrain, coord)
	}
	m.chunks = chunks
	// results of workers still running belong to the old world
	m.inFlight = make(map[ChunkCoord]bool)

	util.LogVoxelInfo(fmt.Sprintf("loaded %d chunks from %s", len(chunks), filename))
	return nil
}
