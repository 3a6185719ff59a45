package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/render"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFMesh flattens every triangle primitive of the document into a
// single colored mesh. Primitives without a COLOR_0 attribute get the
// fallback color.
func LoadGLTFMesh(filename string, fallbackColor mgl32.Vec3) (render.Mesh, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return render.Mesh{}, errors.Wrap(err, "open gltf")
	}

	var mesh render.Mesh
	for _, docMesh := range doc.Meshes {
		for _, primitive := range docMesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				LogIOError(fmt.Sprintf("skipping non-triangle primitive in mesh %q of %s", docMesh.Name, filename))
				continue
			}
			if err = appendPrimitive(&mesh, doc, primitive, fallbackColor); err != nil {
				return render.Mesh{}, errors.Wrapf(err, "mesh %q of %s", docMesh.Name, filename)
			}
		}
	}
	if mesh.IsEmpty() {
		return render.Mesh{}, errors.Errorf("%s contains no triangle geometry", filename)
	}
	return mesh, nil
}

func appendPrimitive(mesh *render.Mesh, doc *gltf.Document, primitive *gltf.Primitive, fallbackColor mgl32.Vec3) error {
	indexOfPositions, ok := primitive.Attributes["POSITION"]
	if !ok {
		return errors.New("primitive has no POSITION attribute")
	}
	if primitive.Indices == nil {
		return errors.New("primitive has no index buffer")
	}

	var vertBuffer [][3]float32
	vertBuffer, err := modeler.ReadPosition(doc, doc.Accessors[indexOfPositions], vertBuffer)
	if err != nil {
		return err
	}

	var indicesBuffer []uint32
	indicesBuffer, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], indicesBuffer)
	if err != nil {
		return err
	}

	colors := make([]mgl32.Vec3, len(vertBuffer))
	if indexOfColors, hasColors := primitive.Attributes["COLOR_0"]; hasColors {
		var colorBuffer [][4]uint8
		colorBuffer, err = modeler.ReadColor(doc, doc.Accessors[indexOfColors], colorBuffer)
		if err != nil {
			return err
		}
		for i := range colorBuffer {
			colors[i] = mgl32.Vec3{
				float32(colorBuffer[i][0]) / 255.0,
				float32(colorBuffer[i][1]) / 255.0,
				float32(colorBuffer[i][2]) / 255.0,
			}
		}
	} else {
		for i := range colors {
			colors[i] = fallbackColor
		}
	}

	base := uint32(len(mesh.Vertices))
	for i := range vertBuffer {
		mesh.Vertices = append(mesh.Vertices, render.Vertex{
			Position: mgl32.Vec3{vertBuffer[i][0], vertBuffer[i][1], vertBuffer[i][2]},
			Color:    colors[i],
		})
	}
	for _, index := range indicesBuffer {
		if int(index) >= len(vertBuffer) {
			return errors.Errorf("index %d out of range for %d vertices", index, len(vertBuffer))
		}
		mesh.Indices = append(mesh.Indices, base+index)
	}
	return nil
}
