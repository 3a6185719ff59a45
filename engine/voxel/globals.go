package voxel

// Chunk dimensions in blocks.
const (
	CHUNK_SIZE         int32 = 16
	CHUNK_SIZE_SQUARED int32 = CHUNK_SIZE * CHUNK_SIZE
	CHUNK_SIZE_CUBED   int32 = CHUNK_SIZE * CHUNK_SIZE * CHUNK_SIZE
)

// Per frame budgets for ChunkManager.Maintain. Loading, meshing and unloading all
// happen in small slices so one frame never stalls on chunk work.
const (
	MESH_BUILDS_PER_FRAME       = 4
	MAX_CHUNK_LOADS_PER_FRAME   = 2
	MAX_CHUNK_UNLOADS_PER_FRAME = 4
)

// Bounds for the draw distance, measured in chunks around the center.
const (
	MIN_DRAW_DISTANCE int32 = 2
	MAX_DRAW_DISTANCE int32 = 256
)

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
