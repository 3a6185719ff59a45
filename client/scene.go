package client

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
	"github.com/memmaker/cubeworld/engine/util"
)

// Scene holds the objects that exist besides the terrain: the pyramid
// landmark, the figure that marks the camera target and the test triangle
// overlay.
type Scene struct {
	store      *render.MeshStore
	camera     *util.OrbitCamera
	controller *util.CameraController

	pyramid        render.MeshHandle
	figure         render.MeshHandle
	figureInstance render.InstanceHandle
	figurePose     render.Instance

	showTestTriangle bool
}

func NewScene(store *render.MeshStore, camera *util.OrbitCamera, settings Settings) *Scene {
	pyramid, err := store.UploadMesh(render.PipelineTerrain, render.NewPyramidMesh())
	if err != nil {
		panic(err)
	}

	figureMesh := render.NewCubeMesh(mgl32.Vec3{})
	if settings.FigureFile != "" {
		loaded, loadErr := util.LoadGLTFMesh(settings.FigureFile, mgl32.Vec3{})
		if loadErr != nil {
			util.LogIOError(fmt.Sprintf("using the cube figure: %s", loadErr))
		} else {
			figureMesh = loaded
		}
	}
	figure, err := store.UploadMesh(render.PipelineFigure, figureMesh)
	if err != nil {
		panic(err)
	}

	figurePose := render.NewInstance(camera.GetTarget(), mgl32.QuatIdent())
	figureInstance, err := store.UploadInstances([]mgl32.Mat4{figurePose.ModelMatrix()})
	if err != nil {
		panic(err)
	}

	return &Scene{
		store:            store,
		camera:           camera,
		controller:       util.NewCameraController(),
		pyramid:          pyramid,
		figure:           figure,
		figureInstance:   figureInstance,
		figurePose:       figurePose,
		showTestTriangle: settings.ShowTestTriangle,
	}
}

// Tick applies the collected input to the camera and keeps the figure on the
// camera target.
func (s *Scene) Tick(elapsed float64) {
	s.controller.UpdateCamera(s.camera, elapsed)

	s.figurePose.Position = s.camera.GetTarget()
	if err := s.store.UpdateInstances(s.figureInstance, []mgl32.Mat4{s.figurePose.ModelMatrix()}); err != nil {
		util.LogGlError(fmt.Sprintf("figure instance update: %s", err))
	}
}

func (s *Scene) Draw(drawer *render.Drawer) {
	if err := drawer.DrawTerrain(s.pyramid); err != nil {
		util.LogGlError(fmt.Sprintf("pyramid draw: %s", err))
	}
	if err := drawer.DrawFigure(s.figure, s.figureInstance); err != nil {
		util.LogGlError(fmt.Sprintf("figure draw: %s", err))
	}
	if s.showTestTriangle {
		if err := drawer.DrawScreenTriangle(); err != nil {
			util.LogGlError(fmt.Sprintf("test triangle draw: %s", err))
		}
	}
}

func (s *Scene) ToggleTestTriangle() {
	s.showTestTriangle = !s.showTestTriangle
}
