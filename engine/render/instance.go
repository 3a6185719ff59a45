package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/glhf"
)

// Instance places one drawable copy of a mesh in the world.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewInstance(position mgl32.Vec3, rotation mgl32.Quat) Instance {
	return Instance{Position: position, Rotation: rotation}
}

// ModelMatrix folds position and rotation into the single matrix the instance
// buffer stores.
func (i Instance) ModelMatrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(i.Position.X(), i.Position.Y(), i.Position.Z())
	return translation.Mul4(i.Rotation.Mat4())
}

// flattenMatrices packs model matrices into the raw float stream of the instance
// buffer: sixteen floats per instance, in mgl32 memory order, which the shader
// consumes as four consecutive vec4 columns.
func flattenMatrices(matrices []mgl32.Mat4) []glhf.GlFloat {
	data := make([]glhf.GlFloat, 0, len(matrices)*floatsPerInstance)
	for _, matrix := range matrices {
		for _, value := range matrix {
			data = append(data, glhf.GlFloat(value))
		}
	}
	return data
}
