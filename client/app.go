package client

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
	"github.com/memmaker/cubeworld/engine/util"
	"github.com/memmaker/cubeworld/engine/voxel"
)

type Settings struct {
	Title            string
	Width            int
	Height           int
	DrawDistance     int32
	WorldFile        string
	FigureFile       string
	ShowTestTriangle bool
}

type CubeGame struct {
	*util.GlApplication
	lastMousePosX float64
	lastMousePosY float64
	settings      Settings
	camera        *util.OrbitCamera
	cameraBind    *render.CameraBind
	pipelines     *render.Pipelines
	store         *render.MeshStore
	drawer        *render.Drawer
	world         *voxel.ChunkManager
	scene         *Scene
	timer         *util.Timer
	cursorGrabbed bool
}

// NewCubeGame needs a current GL context on the calling thread. Pipeline or
// layout problems are defects in the build, so they end the program here
// instead of surfacing per frame.
func NewCubeGame(settings Settings) *CubeGame {
	window, terminateFunc := util.InitOpenGL(settings.Title, settings.Width, settings.Height)
	glApp := &util.GlApplication{
		WindowWidth:   settings.Width,
		WindowHeight:  settings.Height,
		Window:        window,
		TerminateFunc: terminateFunc,
		ClearColor:    mgl32.Vec4{0.458, 0.909, 1.0, 1.0},
	}
	window.SetKeyCallback(glApp.KeyCallback)
	window.SetCursorPosCallback(glApp.MousePosCallback)
	window.SetMouseButtonCallback(glApp.MouseButtonCallback)
	window.SetScrollCallback(glApp.ScrollCallback)
	window.SetFramebufferSizeCallback(glApp.FramebufferSizeCallback)

	pipelines, err := render.BuildPipelines()
	if err != nil {
		panic(err)
	}
	cameraBind, err := render.NewCameraBind()
	if err != nil {
		panic(err)
	}
	camera, err := util.NewOrbitCamera(settings.Width, settings.Height)
	if err != nil {
		panic(err)
	}

	store := render.NewMeshStore(pipelines)
	world := voxel.NewChunkManager(store, settings.DrawDistance)

	myApp := &CubeGame{
		GlApplication: glApp,
		settings:      settings,
		camera:        camera,
		cameraBind:    cameraBind,
		pipelines:     pipelines,
		store:         store,
		drawer:        render.NewDrawer(pipelines, store, cameraBind),
		world:         world,
		scene:         NewScene(store, camera, settings),
		timer:         util.NewTimer(),
	}
	myApp.DrawFunc = myApp.Draw
	myApp.UpdateFunc = myApp.Update
	myApp.KeyHandler = myApp.handleKeyEvents
	myApp.MousePosHandler = myApp.handleMousePosEvents
	myApp.ScrollHandler = myApp.handleScrollEvents
	myApp.ResizeHandler = myApp.handleResize

	if settings.WorldFile != "" {
		if _, statErr := os.Stat(settings.WorldFile); statErr == nil {
			if loadErr := world.LoadWorld(settings.WorldFile); loadErr != nil {
				util.LogIOError(fmt.Sprintf("starting with a fresh world: %s", loadErr))
			}
		}
	}

	myApp.captureMouse()

	return myApp
}

func (a *CubeGame) Update(elapsed float64) {
	stop := a.timer.Start("update")
	a.scene.Tick(elapsed)
	a.world.Maintain(a.camera.GetTarget())
	stop()
}

func (a *CubeGame) Draw(elapsed float64) {
	stop := a.timer.Start("draw")
	a.drawer.BeginFrame(a.camera.GetProjectionViewMatrix())
	a.world.Draw(a.drawer)
	a.scene.Draw(a.drawer)
	stop()
}
