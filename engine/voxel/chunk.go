package voxel

// LogicChunk holds the simulation side of one chunk: its blocks and whether the
// terrain mesh still matches them.
type LogicChunk struct {
	blocks [CHUNK_SIZE_CUBED]Block
	dirty  bool
}

// NewLogicChunk returns an all air chunk that is queued for meshing.
func NewLogicChunk() *LogicChunk {
	return &LogicChunk{dirty: true}
}

func (c *LogicChunk) BlockAt(coord BlockCoord) Block {
	return c.blocks[coord.Flatten()]
}

// SetBlock replaces a block and marks the chunk for remeshing.
func (c *LogicChunk) SetBlock(coord BlockCoord, block Block) {
	c.blocks[coord.Flatten()] = block
	c.dirty = true
}

func (c *LogicChunk) IsDirty() bool {
	return c.dirty
}

func (c *LogicChunk) SetDirty() {
	c.dirty = true
}

func (c *LogicChunk) ClearDirty() {
	c.dirty = false
}

// CopyBlocks snapshots the block array so a mesh worker can read it while the
// chunk keeps taking edits.
func (c *LogicChunk) CopyBlocks() []Block {
	blocks := c.blocks
	return blocks[:]
}

// GenerateChunk fills a fresh chunk with the world's default strata: a grass
// surface at height zero, dirt in the ten layers below it, stone further down and
// air above.
func GenerateChunk(coord ChunkCoord) *LogicChunk {
	chunk := NewLogicChunk()
	for i := int32(0); i < CHUNK_SIZE_CUBED; i++ {
		pos := coord.ToGlobal(BlockCoordFromIndex(i))
		switch {
		case pos.Y == 0:
			chunk.blocks[i] = Grass
		case pos.Y >= -10 && pos.Y <= -1:
			chunk.blocks[i] = Dirt
		case pos.Y <= -11:
			chunk.blocks[i] = Stone
		default:
			chunk.blocks[i] = Air
		}
	}
	return chunk
}
