package main

import (
	"flag"
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/memmaker/cubeworld/client"
	"github.com/memmaker/cubeworld/engine/util"
)

const version = "0.1.0"

func main() {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 600, "window height in pixels")
	distance := flag.Int("distance", 2, "draw distance in chunks")
	worldFile := flag.String("world", "world.nbt", "world save file, loaded on start and written on F5")
	figureFile := flag.String("figure", "", "glTF model shown at the camera target instead of the cube")
	triangle := flag.Bool("triangle", false, "start with the test triangle visible")
	bench := flag.Bool("bench", false, "time the mesh builder and camera math, then exit")
	flag.Parse()

	if *bench {
		runBench()
		return
	}

	util.LogSystemInfo(fmt.Sprintf("starting cubeworld v%s", version))

	settings := client.Settings{
		Title:            fmt.Sprintf("CubeWorld v%s", version),
		Width:            *width,
		Height:           *height,
		DrawDistance:     int32(*distance),
		WorldFile:        *worldFile,
		FigureFile:       *figureFile,
		ShowTestTriangle: *triangle,
	}
	mainthread.Run(func() {
		runGame(settings)
	})
}

// runGame executes on a plain goroutine while mainthread.Run parks the real
// main thread. Everything that touches GL must go through mainthread.Call.
func runGame(settings client.Settings) {
	var cubeGame *client.CubeGame
	mainthread.Call(func() {
		cubeGame = client.NewCubeGame(settings)
	})
	cubeGame.Run()
}
