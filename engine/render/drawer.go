package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Drawer issues the draw calls of a frame. Everything here must run on the render
// thread; the draws of a frame see exactly the camera matrix uploaded by the
// BeginFrame call before them.
type Drawer struct {
	pipelines *Pipelines
	store     *MeshStore
	camera    *CameraBind
}

func NewDrawer(pipelines *Pipelines, store *MeshStore, camera *CameraBind) *Drawer {
	return &Drawer{pipelines: pipelines, store: store, camera: camera}
}

// BeginFrame uploads the camera matrix all draws of this frame will use. The GL
// command queue orders the buffer write before the draws that follow it.
func (d *Drawer) BeginFrame(camera mgl32.Mat4) {
	d.camera.Upload(camera)
}

// Draw dispatches one draw call on the given pipeline variant. The terrain
// variant takes a mesh and NoInstances, the figure variant takes a mesh plus an
// instance buffer and covers all its instances in the one call, the screen
// variant takes neither. Handles that do not fit the variant are reported as
// errors without touching the GPU.
func (d *Drawer) Draw(kind PipelineKind, mesh MeshHandle, instances InstanceHandle) error {
	switch kind {
	case PipelineTerrain:
		return d.drawTerrain(mesh, instances)
	case PipelineFigure:
		return d.drawFigure(mesh, instances)
	case PipelineScreen:
		return d.drawScreen(mesh, instances)
	}
	return errors.Errorf("unknown pipeline kind %d", kind)
}

// DrawTerrain draws one terrain mesh.
func (d *Drawer) DrawTerrain(mesh MeshHandle) error {
	return d.Draw(PipelineTerrain, mesh, NoInstances)
}

// DrawFigure draws every instance of a figure mesh in a single call.
func (d *Drawer) DrawFigure(mesh MeshHandle, instances InstanceHandle) error {
	return d.Draw(PipelineFigure, mesh, instances)
}

// DrawScreenTriangle draws the fixed test triangle.
func (d *Drawer) DrawScreenTriangle() error {
	return d.Draw(PipelineScreen, 0, NoInstances)
}

func (d *Drawer) drawTerrain(mesh MeshHandle, instances InstanceHandle) error {
	if instances != NoInstances {
		return errors.New("terrain draws take no instance buffer")
	}
	slot, err := d.store.lookupMesh(mesh)
	if err != nil {
		return err
	}
	if slot.kind != PipelineTerrain {
		return errors.Errorf("mesh %d belongs to the %s pipeline, not %s", mesh, slot.kind, PipelineTerrain)
	}
	shader := d.pipelines.Terrain.shader
	shader.Begin()
	slot.vertices.Begin()
	slot.vertices.Draw()
	slot.vertices.End()
	shader.End()
	return nil
}

func (d *Drawer) drawFigure(mesh MeshHandle, instances InstanceHandle) error {
	slot, err := d.store.lookupMesh(mesh)
	if err != nil {
		return err
	}
	if slot.kind != PipelineFigure {
		return errors.Errorf("mesh %d belongs to the %s pipeline, not %s", mesh, slot.kind, PipelineFigure)
	}
	instanceData, err := d.store.lookupInstances(instances)
	if err != nil {
		return err
	}
	shader := d.pipelines.Figure.shader
	shader.Begin()
	slot.vertices.Begin()
	slot.vertices.DrawInstanced(instanceData.buffer)
	slot.vertices.End()
	shader.End()
	return nil
}

func (d *Drawer) drawScreen(mesh MeshHandle, instances InstanceHandle) error {
	if mesh != 0 || instances != NoInstances {
		return errors.New("screen draws take no buffers")
	}
	pipeline := d.pipelines.Screen
	pipeline.shader.Begin()
	pipeline.drawTriangle()
	pipeline.shader.End()
	return nil
}
