package voxel

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Block is a single voxel cell, identified by its type alone.
type Block uint8

const (
	Air Block = iota
	Stone
	Grass
	Sand
	Dirt
)

// Opaque reports whether the block hides what is behind it and therefore gets
// faces in the terrain mesh.
func (b Block) Opaque() bool {
	return b != Air
}

func (b Block) String() string {
	switch b {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Dirt:
		return "dirt"
	}
	return "unknown"
}

// Color returns the render color of the block's faces.
func (b Block) Color() mgl32.Vec3 {
	switch b {
	case Stone:
		return colorToVec3(colornames.Gray)
	case Grass:
		return colorToVec3(colornames.Forestgreen)
	case Sand:
		return colorToVec3(colornames.Sandybrown)
	case Dirt:
		return colorToVec3(colornames.Saddlebrown)
	}
	return mgl32.Vec3{}
}

func colorToVec3(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}
