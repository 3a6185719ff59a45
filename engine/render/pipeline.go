package render

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/glhf"
	"github.com/pkg/errors"
)

// PipelineKind selects one of the three draw pipeline variants. Each variant owns
// its own shader program and buffer layout; they are built together by
// BuildPipelines and dispatched explicitly in Drawer.Draw.
type PipelineKind int

const (
	// PipelineTerrain draws indexed meshes whose vertices already sit in world
	// space, one draw call per mesh.
	PipelineTerrain PipelineKind = iota
	// PipelineFigure draws an indexed mesh once per instance, each instance
	// carrying its own model matrix.
	PipelineFigure
	// PipelineScreen draws a fixed test triangle without consuming any buffers;
	// the vertex stage derives positions from the vertex index alone.
	PipelineScreen
)

func (k PipelineKind) String() string {
	switch k {
	case PipelineTerrain:
		return "terrain"
	case PipelineFigure:
		return "figure"
	case PipelineScreen:
		return "screen"
	}
	return "invalid"
}

// Pipeline pairs a pipeline kind with its linked shader program.
type Pipeline struct {
	kind   PipelineKind
	shader *glhf.Shader
	vao    uint32 // only the screen pipeline owns one, mesh draws use mesh VAOs
}

func (p *Pipeline) Kind() PipelineKind { return p.kind }

func (p *Pipeline) Shader() *glhf.Shader { return p.shader }

// Pipelines holds the three built pipeline variants.
type Pipelines struct {
	Terrain *Pipeline
	Figure  *Pipeline
	Screen  *Pipeline
}

func (p *Pipelines) byKind(kind PipelineKind) (*Pipeline, error) {
	switch kind {
	case PipelineTerrain:
		return p.Terrain, nil
	case PipelineFigure:
		return p.Figure, nil
	case PipelineScreen:
		return p.Screen, nil
	}
	return nil, errors.Errorf("unknown pipeline kind %d", kind)
}

// BuildPipelines compiles, links and validates the three pipeline variants. Any
// mismatch between the Go side layouts and the linked programs surfaces here,
// once, at startup; draw calls afterwards trust the layout without rechecking.
//
// Must run on the render thread.
func BuildPipelines() (*Pipelines, error) {
	terrain, err := buildTerrainPipeline()
	if err != nil {
		return nil, errors.Wrap(err, "terrain pipeline")
	}
	figure, err := buildFigurePipeline()
	if err != nil {
		return nil, errors.Wrap(err, "figure pipeline")
	}
	screen, err := buildScreenPipeline()
	if err != nil {
		return nil, errors.Wrap(err, "screen pipeline")
	}
	return &Pipelines{Terrain: terrain, Figure: figure, Screen: screen}, nil
}

func buildTerrainPipeline() (*Pipeline, error) {
	shader, err := loadTerrainShader()
	if err != nil {
		return nil, err
	}
	if err := validateVertexLayout(shader); err != nil {
		return nil, err
	}
	if err := shader.SetUniformBlock(CameraBlockName, CameraBlockBinding, CameraBlockSize); err != nil {
		return nil, err
	}
	return &Pipeline{kind: PipelineTerrain, shader: shader}, nil
}

func buildFigurePipeline() (*Pipeline, error) {
	shader, err := loadFigureShader()
	if err != nil {
		return nil, err
	}
	if err := validateVertexLayout(shader); err != nil {
		return nil, err
	}
	if size := shader.InstanceFormat().Size(); size != InstanceStride {
		return nil, errors.Errorf("instance format spans %d bytes, expected %d", size, InstanceStride)
	}
	if loc := shader.AttribLocation("model"); loc != locModel {
		return nil, errors.Errorf("attribute %q bound at location %d, expected %d", "model", loc, locModel)
	}
	if err := shader.SetUniformBlock(CameraBlockName, CameraBlockBinding, CameraBlockSize); err != nil {
		return nil, err
	}
	return &Pipeline{kind: PipelineFigure, shader: shader}, nil
}

func buildScreenPipeline() (*Pipeline, error) {
	shader, err := loadScreenShader()
	if err != nil {
		return nil, err
	}
	pipeline := &Pipeline{kind: PipelineScreen, shader: shader}
	// Core profile requires a bound VAO even for draws that read no buffers.
	gl.GenVertexArrays(1, &pipeline.vao)
	runtime.SetFinalizer(pipeline, (*Pipeline).delete)
	return pipeline, nil
}

func (p *Pipeline) delete() {
	vao := p.vao
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &vao)
	})
}

// validateVertexLayout checks the linked program against the vertex layout shared
// by the mesh drawing pipelines.
func validateVertexLayout(shader *glhf.Shader) error {
	if size := shader.VertexFormat().Size(); size != VertexStride {
		return errors.Errorf("vertex format spans %d bytes, expected %d", size, VertexStride)
	}
	wanted := []struct {
		name     string
		location int32
	}{
		{"position", locPosition},
		{"color", locColor},
	}
	for _, attr := range wanted {
		if loc := shader.AttribLocation(attr.name); loc != attr.location {
			return errors.Errorf("attribute %q bound at location %d, expected %d", attr.name, loc, attr.location)
		}
	}
	return nil
}

// drawTriangle issues the screen pipeline's buffer free draw of three vertices.
func (p *Pipeline) drawTriangle() {
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// ScreenTriangleVertex mirrors the vertex expansion in shader/screen.vert: the
// clip space position the screen pipeline derives for a vertex index. It exists so
// the triangle's coverage can be checked without a GPU.
func ScreenTriangleVertex(index int) mgl32.Vec4 {
	x := float32(1-index) * 0.5
	y := float32((index&1)*2-1) * 0.5
	return mgl32.Vec4{x, y, 0, 1}
}
