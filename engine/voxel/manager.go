package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
	"github.com/memmaker/cubeworld/engine/util"
	"github.com/pkg/errors"
)

// builtChunk is what a worker goroutine hands back: the finished mesh and, for
// freshly generated chunks, the chunk itself.
type builtChunk struct {
	coord ChunkCoord
	chunk *LogicChunk
	mesh  render.Mesh
}

// ChunkManager keeps the set of loaded chunks around a moving center and owns
// their terrain meshes. Chunk generation and meshing run on worker goroutines
// and come back over a channel; GPU buffers are only ever touched inside
// Maintain, Draw, LoadWorld and SetBlock callers' render thread.
type ChunkManager struct {
	drawDistance int32

	chunks   map[ChunkCoord]*LogicChunk
	terrain  map[ChunkCoord]render.MeshHandle
	inFlight map[ChunkCoord]bool
	built    chan builtChunk

	store *render.MeshStore
}

// NewChunkManager starts with an empty world. The draw distance is clamped into
// [MIN_DRAW_DISTANCE, MAX_DRAW_DISTANCE].
func NewChunkManager(store *render.MeshStore, drawDistance int32) *ChunkManager {
	if drawDistance < MIN_DRAW_DISTANCE {
		drawDistance = MIN_DRAW_DISTANCE
	}
	if drawDistance > MAX_DRAW_DISTANCE {
		drawDistance = MAX_DRAW_DISTANCE
	}
	return &ChunkManager{
		drawDistance: drawDistance,
		chunks:       make(map[ChunkCoord]*LogicChunk),
		terrain:      make(map[ChunkCoord]render.MeshHandle),
		inFlight:     make(map[ChunkCoord]bool),
		built:        make(chan builtChunk, 64),
		store:        store,
	}
}

func (m *ChunkManager) DrawDistance() int32 {
	return m.drawDistance
}

func (m *ChunkManager) ChunkCount() int {
	return len(m.chunks)
}

func (m *ChunkManager) MeshCount() int {
	return len(m.terrain)
}

// Maintain does one frame's worth of chunk work around the given world space
// center: it integrates finished worker results, queues dirty chunks for
// remeshing, starts loading missing chunks and unloads distant ones. Every stage
// is budgeted so a frame never stalls on the world.
//
// Must run on the render thread.
func (m *ChunkManager) Maintain(center mgl32.Vec3) {
	m.collectBuilt()
	m.remeshDirty()
	m.loadAround(center)
	m.unloadDistant(center)
}

func (m *ChunkManager) collectBuilt() {
	for i := 0; i < MESH_BUILDS_PER_FRAME; i++ {
		select {
		case result := <-m.built:
			m.integrate(result)
		default:
			return
		}
	}
}

func (m *ChunkManager) integrate(result builtChunk) {
	if !m.inFlight[result.coord] {
		// superseded by a world load or an unload while the worker ran
		return
	}
	delete(m.inFlight, result.coord)
	if result.chunk != nil {
		m.chunks[result.coord] = result.chunk
	}

	if old, ok := m.terrain[result.coord]; ok {
		if err := m.store.FreeMesh(old); err != nil {
			util.LogVoxelError(err.Error())
		}
		delete(m.terrain, result.coord)
	}
	if result.mesh.IsEmpty() {
		// a chunk of air draws nothing
		return
	}

	handle, err := m.store.UploadMesh(render.PipelineTerrain, result.mesh)
	if err != nil {
		util.LogVoxelError(fmt.Sprintf("terrain upload for chunk %v: %s", result.coord, err))
		if chunk, ok := m.chunks[result.coord]; ok {
			// retry on a later frame
			chunk.SetDirty()
		}
		return
	}
	m.terrain[result.coord] = handle
}

func (m *ChunkManager) remeshDirty() {
	spawned := 0
	for coord, chunk := range m.chunks {
		if spawned >= MESH_BUILDS_PER_FRAME {
			return
		}
		if !chunk.IsDirty() || m.inFlight[coord] {
			continue
		}
		chunk.ClearDirty()
		m.inFlight[coord] = true
		blocks := chunk.CopyBlocks()
		go func(coord ChunkCoord, blocks []Block) {
			m.built <- builtChunk{coord: coord, mesh: BuildTerrainMesh(coord, blocks)}
		}(coord, blocks)
		spawned++
	}
}

func (m *ChunkManager) loadAround(center mgl32.Vec3) {
	area := NewLoadArea(GlobalCoordFromWorld(center).ToChunk(), m.drawDistance)
	loads := 0
	for loads < MAX_CHUNK_LOADS_PER_FRAME {
		coord, ok := area.Next()
		if !ok {
			return
		}
		if _, loaded := m.chunks[coord]; loaded || m.inFlight[coord] {
			continue
		}
		m.inFlight[coord] = true
		go func(coord ChunkCoord) {
			chunk := GenerateChunk(coord)
			mesh := BuildTerrainMesh(coord, chunk.blocks[:])
			chunk.ClearDirty()
			m.built <- builtChunk{coord: coord, chunk: chunk, mesh: mesh}
		}(coord)
		loads++
	}
}

func (m *ChunkManager) unloadDistant(center mgl32.Vec3) {
	centerChunk := GlobalCoordFromWorld(center).ToChunk()
	unloads := 0
	for coord := range m.chunks {
		if unloads >= MAX_CHUNK_UNLOADS_PER_FRAME {
			return
		}
		// one chunk of margin so chunks on the edge do not flicker in and out
		if coord.WithinDistance(centerChunk, m.drawDistance+1) {
			continue
		}
		m.unload(coord)
		unloads++
	}
}

func (m *ChunkManager) unload(coord ChunkCoord) {
	delete(m.chunks, coord)
	delete(m.inFlight, coord)
	if handle, ok := m.terrain[coord]; ok {
		if err := m.store.FreeMesh(handle); err != nil {
			util.LogVoxelError(err.Error())
		}
		delete(m.terrain, coord)
	}
}

// Draw issues one terrain draw per chunk that has a mesh.
func (m *ChunkManager) Draw(drawer *render.Drawer) {
	for coord, handle := range m.terrain {
		if err := drawer.DrawTerrain(handle); err != nil {
			util.LogGlError(fmt.Sprintf("terrain draw for chunk %v: %s", coord, err))
		}
	}
}

// BlockAt reads a block anywhere in the loaded world.
func (m *ChunkManager) BlockAt(pos GlobalCoord) (Block, bool) {
	chunk, ok := m.chunks[pos.ToChunk()]
	if !ok {
		return Air, false
	}
	return chunk.BlockAt(pos.ToBlock()), true
}

// SetBlock edits a block anywhere in the loaded world and queues the owning
// chunk for remeshing.
func (m *ChunkManager) SetBlock(pos GlobalCoord, block Block) error {
	chunk, ok := m.chunks[pos.ToChunk()]
	if !ok {
		return errors.Errorf("no chunk loaded at %v", pos.ToChunk())
	}
	chunk.SetBlock(pos.ToBlock(), block)
	return nil
}
