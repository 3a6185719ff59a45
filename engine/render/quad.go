package render

import "github.com/go-gl/mathgl/mgl32"

// Direction enumerates the six axis-aligned faces of a block. Front faces -z,
// back faces +z, left faces -x and up faces +y.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
	Front
	Back
)

// Directions lists all six directions in the order block faces are emitted.
var Directions = [6]Direction{Down, Up, Left, Right, Front, Back}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "invalid"
}

// BlockScale converts block grid units into world units.
const BlockScale = 0.1

const halfSize = 0.5

// Corners of a unit block centered on the origin.
var (
	leftUpFront    = mgl32.Vec3{-halfSize, halfSize, -halfSize}
	leftUpBack     = mgl32.Vec3{-halfSize, halfSize, halfSize}
	leftDownFront  = mgl32.Vec3{-halfSize, -halfSize, -halfSize}
	leftDownBack   = mgl32.Vec3{-halfSize, -halfSize, halfSize}
	rightUpFront   = mgl32.Vec3{halfSize, halfSize, -halfSize}
	rightUpBack    = mgl32.Vec3{halfSize, halfSize, halfSize}
	rightDownFront = mgl32.Vec3{halfSize, -halfSize, -halfSize}
	rightDownBack  = mgl32.Vec3{halfSize, -halfSize, halfSize}
)

// Quad is one face of a block sitting at a grid position.
type Quad struct {
	Direction Direction
	Position  mgl32.Vec3
}

// Corners returns the four vertex positions of the quad, wound clockwise when seen
// from outside the block. Two triangles [0 1 2] and [0 2 3] cover it.
func (q Quad) Corners() [4]mgl32.Vec3 {
	pos := q.Position
	switch q.Direction {
	case Down:
		return [4]mgl32.Vec3{
			rightDownFront.Add(pos),
			rightDownBack.Add(pos),
			leftDownBack.Add(pos),
			leftDownFront.Add(pos),
		}
	case Up:
		return [4]mgl32.Vec3{
			rightUpBack.Add(pos),
			rightUpFront.Add(pos),
			leftUpFront.Add(pos),
			leftUpBack.Add(pos),
		}
	case Left:
		return [4]mgl32.Vec3{
			leftUpFront.Add(pos),
			leftDownFront.Add(pos),
			leftDownBack.Add(pos),
			leftUpBack.Add(pos),
		}
	case Right:
		return [4]mgl32.Vec3{
			rightUpBack.Add(pos),
			rightDownBack.Add(pos),
			rightDownFront.Add(pos),
			rightUpFront.Add(pos),
		}
	case Front:
		return [4]mgl32.Vec3{
			rightUpFront.Add(pos),
			rightDownFront.Add(pos),
			leftDownFront.Add(pos),
			leftUpFront.Add(pos),
		}
	case Back:
		return [4]mgl32.Vec3{
			leftUpBack.Add(pos),
			leftDownBack.Add(pos),
			rightDownBack.Add(pos),
			rightUpBack.Add(pos),
		}
	}
	panic("quad corners: invalid direction")
}

// AppendTo emits the quad into a vertex and index stream as two triangles sharing
// the usual [0 1 2][0 2 3] pattern. Positions are scaled from grid to world units.
func (q Quad) AppendTo(vertices []Vertex, indices []uint32, color mgl32.Vec3) ([]Vertex, []uint32) {
	base := uint32(len(vertices))
	for _, corner := range q.Corners() {
		vertices = append(vertices, Vertex{
			Position: corner.Mul(BlockScale),
			Color:    color,
		})
	}
	indices = append(indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	return vertices, indices
}
