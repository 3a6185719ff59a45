package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubeworld/engine/glhf"
	"github.com/pkg/errors"
)

// MeshHandle refers to a mesh owned by a MeshStore. The zero value is never a
// valid handle.
type MeshHandle uint32

// InstanceHandle refers to an instance buffer owned by a MeshStore. The zero
// value is NoInstances.
type InstanceHandle uint32

// NoInstances is the instance handle passed by draws that take no instance
// buffer.
const NoInstances InstanceHandle = 0

// handleTable hands out small integer handles with slot reuse. Handle 0 stays
// reserved, so a slot index is always handle-1.
type handleTable struct {
	live []bool
	free []uint32
}

func (t *handleTable) alloc() uint32 {
	if n := len(t.free); n > 0 {
		index := t.free[n-1]
		t.free = t.free[:n-1]
		t.live[index] = true
		return index + 1
	}
	t.live = append(t.live, true)
	return uint32(len(t.live))
}

func (t *handleTable) release(handle uint32) bool {
	index, ok := t.lookup(handle)
	if !ok {
		return false
	}
	t.live[index] = false
	t.free = append(t.free, uint32(index))
	return true
}

func (t *handleTable) lookup(handle uint32) (int, bool) {
	if handle == 0 || int(handle) > len(t.live) {
		return 0, false
	}
	if !t.live[handle-1] {
		return 0, false
	}
	return int(handle - 1), true
}

type meshSlot struct {
	vertices *glhf.VertexSlice[glhf.GlFloat]
	kind     PipelineKind
}

type instanceSlot struct {
	buffer *glhf.InstanceBuffer
}

// MeshStore owns every vertex, index and instance buffer of the scene and hands
// out opaque handles to them. Slots of freed handles are reused by later uploads;
// the GPU buffers behind them are released by their finalizers once nothing
// references them anymore.
//
// All methods that touch GPU buffers must run on the render thread.
type MeshStore struct {
	pipelines     *Pipelines
	meshTable     handleTable
	meshes        []meshSlot
	instanceTable handleTable
	instances     []instanceSlot
}

func NewMeshStore(pipelines *Pipelines) *MeshStore {
	return &MeshStore{pipelines: pipelines}
}

// UploadMesh copies the mesh into fresh GPU buffers laid out for the given
// pipeline variant and returns a handle to them. The mesh itself can be discarded
// afterwards.
func (s *MeshStore) UploadMesh(kind PipelineKind, mesh Mesh) (MeshHandle, error) {
	if kind == PipelineScreen {
		return 0, errors.New("screen pipeline consumes no meshes")
	}
	pipeline, err := s.pipelines.byKind(kind)
	if err != nil {
		return 0, err
	}
	if mesh.IsEmpty() {
		return 0, errors.New("cannot upload an empty mesh")
	}
	for _, index := range mesh.Indices {
		if int(index) >= len(mesh.Vertices) {
			return 0, errors.Errorf("mesh index %d out of range for %d vertices", index, len(mesh.Vertices))
		}
	}

	slice, err := glhf.MakeIndexedVertexSlice(pipeline.shader, len(mesh.Vertices), len(mesh.Vertices), mesh.Indices)
	if err != nil {
		return 0, errors.Wrap(err, "upload mesh")
	}
	slice.Begin()
	slice.SetVertexData(flattenVertices(mesh.Vertices))
	slice.End()

	handle := s.meshTable.alloc()
	index := int(handle - 1)
	if index == len(s.meshes) {
		s.meshes = append(s.meshes, meshSlot{})
	}
	s.meshes[index] = meshSlot{vertices: slice, kind: kind}
	return MeshHandle(handle), nil
}

// UploadInstances creates an instance buffer holding the given model matrices. An
// empty slice is legal and yields a buffer whose draws cover zero instances.
func (s *MeshStore) UploadInstances(matrices []mgl32.Mat4) (InstanceHandle, error) {
	capacity := len(matrices)
	if capacity == 0 {
		capacity = 1
	}
	buffer, err := glhf.NewInstanceBuffer(instanceFormat, capacity)
	if err != nil {
		return 0, errors.Wrap(err, "upload instances")
	}
	buffer.Begin()
	err = buffer.SetData(flattenMatrices(matrices))
	buffer.End()
	if err != nil {
		return 0, errors.Wrap(err, "upload instances")
	}

	handle := s.instanceTable.alloc()
	index := int(handle - 1)
	if index == len(s.instances) {
		s.instances = append(s.instances, instanceSlot{})
	}
	s.instances[index] = instanceSlot{buffer: buffer}
	return InstanceHandle(handle), nil
}

// UpdateInstances rewrites the matrices of an existing instance buffer. Growing
// past the buffer's capacity reallocates it; anything shorter only lowers the
// number of instances drawn and keeps the allocation.
func (s *MeshStore) UpdateInstances(handle InstanceHandle, matrices []mgl32.Mat4) error {
	slot, err := s.lookupInstances(handle)
	if err != nil {
		return err
	}
	slot.buffer.Begin()
	defer slot.buffer.End()
	return slot.buffer.SetData(flattenMatrices(matrices))
}

// InstanceCount reports how many instances a draw with this handle would cover.
func (s *MeshStore) InstanceCount(handle InstanceHandle) (int, error) {
	slot, err := s.lookupInstances(handle)
	if err != nil {
		return 0, err
	}
	return slot.buffer.Len(), nil
}

// FreeMesh retires a mesh handle. Draws with a freed handle fail; the slot is
// reused by a later upload.
func (s *MeshStore) FreeMesh(handle MeshHandle) error {
	index, ok := s.meshTable.lookup(uint32(handle))
	if !ok {
		return errors.Errorf("free of invalid mesh handle %d", handle)
	}
	s.meshes[index] = meshSlot{}
	s.meshTable.release(uint32(handle))
	return nil
}

// FreeInstances retires an instance handle.
func (s *MeshStore) FreeInstances(handle InstanceHandle) error {
	index, ok := s.instanceTable.lookup(uint32(handle))
	if !ok {
		return errors.Errorf("free of invalid instance handle %d", handle)
	}
	s.instances[index] = instanceSlot{}
	s.instanceTable.release(uint32(handle))
	return nil
}

func (s *MeshStore) lookupMesh(handle MeshHandle) (*meshSlot, error) {
	index, ok := s.meshTable.lookup(uint32(handle))
	if !ok {
		return nil, errors.Errorf("invalid mesh handle %d", handle)
	}
	return &s.meshes[index], nil
}

func (s *MeshStore) lookupInstances(handle InstanceHandle) (*instanceSlot, error) {
	index, ok := s.instanceTable.lookup(uint32(handle))
	if !ok {
		return nil, errors.Errorf("invalid instance handle %d", handle)
	}
	return &s.instances[index], nil
}
