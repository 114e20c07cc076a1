package vulkan

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/google/uuid"
	"github.com/spaghettifunk/prism/engine/core"
)

// Vertex is the interleaved layout consumed by the mesh pipeline.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// VertexStride is the byte distance between consecutive vertices.
const VertexStride = uint32(unsafe.Sizeof(Vertex{}))

// VertexAttributes describes the two vec3 attributes of Vertex in binding
// order: position at location 0, color at location 1.
func VertexAttributes() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Position)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
	}
}

// BuildVertices interleaves flat xyz position triples with colors derived
// from the positions, so meshes without authored colors still shade
// distinguishably.
func BuildVertices(positionsXYZ []float32) []Vertex {
	vertices := make([]Vertex, len(positionsXYZ)/3)
	for i := range vertices {
		p := [3]float32{positionsXYZ[i*3], positionsXYZ[i*3+1], positionsXYZ[i*3+2]}
		vertices[i] = Vertex{
			Position: p,
			Color:    deriveColor(p),
		}
	}
	return vertices
}

// deriveColor maps a position component from roughly [-1, 1] into [0, 1].
func deriveColor(p [3]float32) [3]float32 {
	var c [3]float32
	for i := 0; i < 3; i++ {
		v := p[i]*0.5 + 0.5
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		c[i] = v
	}
	return c
}

// QuadVertices returns the fallback unit quad used when no model asset is
// available. Two counter-clockwise triangles facing the default camera.
func QuadVertices() ([]Vertex, []uint32) {
	positions := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.5, 0.5, 0.0,
		-0.5, 0.5, 0.0,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return BuildVertices(positions), indices
}

// VulkanMesh owns device-local vertex and index buffers for one drawable.
type VulkanMesh struct {
	ID          uuid.UUID
	VertexCount uint32
	IndexCount  uint32

	VertexBuffer *VulkanBuffer
	IndexBuffer  *VulkanBuffer
}

// NewMesh uploads the vertex data, and index data when present, into
// device-local buffers through the staging path. An index-less mesh is
// drawn non-indexed.
func NewMesh(context *VulkanContext, vertices []Vertex, indices []uint32) (*VulkanMesh, error) {
	if len(vertices) == 0 {
		return nil, core.ResourceError("mesh requires at least one vertex")
	}

	mesh := &VulkanMesh{
		ID:          uuid.New(),
		VertexCount: uint32(len(vertices)),
		IndexCount:  uint32(len(indices)),
	}

	vertexBuffer, err := BufferCreateDeviceLocal(
		context,
		vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit),
		verticesAsBytes(vertices))
	if err != nil {
		return nil, err
	}
	mesh.VertexBuffer = vertexBuffer

	if len(indices) > 0 {
		indexBuffer, err := BufferCreateDeviceLocal(
			context,
			vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit),
			indicesAsBytes(indices))
		if err != nil {
			mesh.VertexBuffer.Destroy(context)
			return nil, err
		}
		mesh.IndexBuffer = indexBuffer
	}

	core.LogDebug("mesh %s uploaded (%d vertices, %d indices)", mesh.ID, mesh.VertexCount, mesh.IndexCount)
	return mesh, nil
}

// Draw binds the mesh buffers and issues the draw call on an open
// command buffer.
func (vm *VulkanMesh) Draw(commandBuffer *VulkanCommandBuffer) {
	vk.CmdBindVertexBuffers(commandBuffer.Handle, 0, 1, []vk.Buffer{vm.VertexBuffer.Handle}, []vk.DeviceSize{0})
	if vm.IndexBuffer != nil {
		vk.CmdBindIndexBuffer(commandBuffer.Handle, vm.IndexBuffer.Handle, 0, vk.IndexTypeUint32)
		vk.CmdDrawIndexed(commandBuffer.Handle, vm.IndexCount, 1, 0, 0, 0)
	} else {
		vk.CmdDraw(commandBuffer.Handle, vm.VertexCount, 1, 0, 0)
	}
}

func (vm *VulkanMesh) Destroy(context *VulkanContext) {
	if vm.IndexBuffer != nil {
		vm.IndexBuffer.Destroy(context)
		vm.IndexBuffer = nil
	}
	if vm.VertexBuffer != nil {
		vm.VertexBuffer.Destroy(context)
		vm.VertexBuffer = nil
	}
}

func verticesAsBytes(vertices []Vertex) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*int(VertexStride))
}

func indicesAsBytes(indices []uint32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), len(indices)*4)
}
