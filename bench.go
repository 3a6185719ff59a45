package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
	"github.com/memmaker/cubeworld/engine/util"
	"github.com/memmaker/cubeworld/engine/voxel"
	"golang.org/x/term"
)

const benchRounds = 50

var (
	benchMesh   render.Mesh
	benchMatrix mgl32.Mat4
)

// runBench times the chunk mesher against characteristic block layouts and
// the camera matrix math. It needs no window and no GPU.
func runBench() {
	interactive := isTerminal(os.Stdout)
	if interactive {
		fmt.Printf("cubeworld v%s mesh benchmark, %d rounds per scenario\n", version, benchRounds)
		if order, err := util.HostByteOrder(); err == nil {
			fmt.Printf("native byte order: %s\n\n", order)
		}
	}

	timer := util.NewTimer()

	scenarios := []struct {
		name   string
		blocks []voxel.Block
	}{
		{"mesh empty", emptyChunk()},
		{"mesh first block", singleBlockChunk(0)},
		{"mesh last block", singleBlockChunk(voxel.CHUNK_SIZE_CUBED - 1)},
		{"mesh corners", cornersChunk()},
		{"mesh full", fullChunk()},
	}

	for _, scenario := range scenarios {
		for round := 0; round < benchRounds; round++ {
			stop := timer.Start(scenario.name)
			benchMesh = voxel.BuildTerrainMesh(voxel.ChunkCoord{}, scenario.blocks)
			stop()
		}
		if interactive {
			fmt.Printf("%s: %d vertices, %d indices\n", scenario.name, len(benchMesh.Vertices), len(benchMesh.Indices))
		}
	}

	camera, err := util.NewOrbitCamera(800, 600)
	if err != nil {
		panic(err)
	}
	for round := 0; round < benchRounds; round++ {
		stop := timer.Start("camera matrix")
		benchMatrix = camera.GetProjectionViewMatrix()
		stop()
	}

	fmt.Println()
	fmt.Println(timer.String())
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func emptyChunk() []voxel.Block {
	return make([]voxel.Block, voxel.CHUNK_SIZE_CUBED)
}

func singleBlockChunk(index int32) []voxel.Block {
	blocks := emptyChunk()
	blocks[index] = voxel.Stone
	return blocks
}

func cornersChunk() []voxel.Block {
	blocks := emptyChunk()
	for _, index := range []int32{
		0,
		voxel.CHUNK_SIZE - 1,
		voxel.CHUNK_SIZE_SQUARED - voxel.CHUNK_SIZE,
		voxel.CHUNK_SIZE_SQUARED - 1,
		voxel.CHUNK_SIZE_CUBED - voxel.CHUNK_SIZE_SQUARED + voxel.CHUNK_SIZE - 1,
		voxel.CHUNK_SIZE_CUBED - voxel.CHUNK_SIZE_SQUARED,
		voxel.CHUNK_SIZE_CUBED - voxel.CHUNK_SIZE,
		voxel.CHUNK_SIZE_CUBED - 1,
	} {
		blocks[index] = voxel.Stone
	}
	return blocks
}

func fullChunk() []voxel.Block {
	blocks := make([]voxel.Block, voxel.CHUNK_SIZE_CUBED)
	for i := range blocks {
		blocks[i] = voxel.Stone
	}
	return blocks
}
