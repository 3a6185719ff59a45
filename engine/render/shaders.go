package render

import (
	_ "embed"

	"github.com/memmaker/cubeworld/engine/glhf"
)

var (
	//go:embed shader/terrain.vert
	terrainVertexShaderSource string

	//go:embed shader/terrain.frag
	terrainFragmentShaderSource string

	//go:embed shader/figure.vert
	figureVertexShaderSource string

	//go:embed shader/figure.frag
	figureFragmentShaderSource string

	//go:embed shader/screen.vert
	screenVertexShaderSource string

	//go:embed shader/screen.frag
	screenFragmentShaderSource string
)

// vertexFormat is the vertex layout shared by the terrain and figure pipelines:
// position at location 0, color at location 1.
var vertexFormat = glhf.AttrFormat{
	{Name: "position", Type: glhf.Vec3},
	{Name: "color", Type: glhf.Vec3},
}

// instanceFormat is the per instance layout of the figure pipeline: one model
// matrix, advancing once per instance instead of once per vertex.
var instanceFormat = glhf.AttrFormat{
	{Name: "model", Type: glhf.Mat4},
}

func loadTerrainShader() (*glhf.Shader, error) {
	return glhf.NewShader(vertexFormat, nil, terrainVertexShaderSource, terrainFragmentShaderSource)
}

func loadFigureShader() (*glhf.Shader, error) {
	return glhf.NewInstancedShader(vertexFormat, instanceFormat, nil, figureVertexShaderSource, figureFragmentShaderSource)
}

func loadScreenShader() (*glhf.Shader, error) {
	return glhf.NewShader(nil, nil, screenVertexShaderSource, screenFragmentShaderSource)
}
