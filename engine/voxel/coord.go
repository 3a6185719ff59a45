package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
)

// ChunkCoord addresses a chunk on the world grid.
type ChunkCoord struct {
	X, Y, Z int32
}

// ToGlobal resolves a block inside this chunk to its global grid position.
func (c ChunkCoord) ToGlobal(block BlockCoord) GlobalCoord {
	return GlobalCoord{
		X: c.X*CHUNK_SIZE + block.X,
		Y: c.Y*CHUNK_SIZE + block.Y,
		Z: c.Z*CHUNK_SIZE + block.Z,
	}
}

// WithinDistance reports whether the coordinate lies in the cube of the given
// half edge length around other.
func (c ChunkCoord) WithinDistance(other ChunkCoord, distance int32) bool {
	return Abs(c.X-other.X) <= distance && Abs(c.Y-other.Y) <= distance && Abs(c.Z-other.Z) <= distance
}

// BlockCoord addresses a block inside one chunk, every axis in [0, CHUNK_SIZE).
type BlockCoord struct {
	X, Y, Z int32
}

// Flatten returns the block's index into a chunk's block array: x-major, then y,
// then z.
func (b BlockCoord) Flatten() int32 {
	return b.X*CHUNK_SIZE_SQUARED + b.Y*CHUNK_SIZE + b.Z
}

// BlockCoordFromIndex is the inverse of Flatten.
func BlockCoordFromIndex(index int32) BlockCoord {
	return BlockCoord{
		X: index / CHUNK_SIZE_SQUARED,
		Y: index % CHUNK_SIZE_SQUARED / CHUNK_SIZE,
		Z: index % CHUNK_SIZE,
	}
}

// GlobalCoord addresses a block on the global grid, spanning chunk borders.
type GlobalCoord struct {
	X, Y, Z int32
}

// GlobalCoordFromWorld maps a world space position onto the block grid.
func GlobalCoordFromWorld(pos mgl32.Vec3) GlobalCoord {
	return GlobalCoord{
		X: int32(math.Floor(float64(pos.X() / render.BlockScale))),
		Y: int32(math.Floor(float64(pos.Y() / render.BlockScale))),
		Z: int32(math.Floor(float64(pos.Z() / render.BlockScale))),
	}
}

// ToChunk returns the chunk owning this block. Floor division keeps negative
// coordinates on the correct side of the origin.
func (g GlobalCoord) ToChunk() ChunkCoord {
	return ChunkCoord{
		X: floorDiv(g.X, CHUNK_SIZE),
		Y: floorDiv(g.Y, CHUNK_SIZE),
		Z: floorDiv(g.Z, CHUNK_SIZE),
	}
}

// ToBlock returns the block's position inside its owning chunk.
func (g GlobalCoord) ToBlock() BlockCoord {
	return BlockCoord{
		X: floorMod(g.X, CHUNK_SIZE),
		Y: floorMod(g.Y, CHUNK_SIZE),
		Z: floorMod(g.Z, CHUNK_SIZE),
	}
}

// ToVec3 returns the grid position as a float vector, still in grid units.
func (g GlobalCoord) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(g.X), float32(g.Y), float32(g.Z)}
}

func floorDiv(a, b int32) int32 {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient--
	}
	return quotient
}

func floorMod(a, b int32) int32 {
	remainder := a % b
	if remainder != 0 && (remainder < 0) != (b < 0) {
		remainder += b
	}
	return remainder
}
