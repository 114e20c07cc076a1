package vulkan

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
)

type VulkanBuffer struct {
	Handle    vk.Buffer
	Memory    vk.DeviceMemory
	TotalSize vk.DeviceSize
	Usage     vk.BufferUsageFlags
}

// NewVulkanBuffer creates a buffer, allocates backing memory of the
// requested property class and binds the two together.
func NewVulkanBuffer(context *VulkanContext, size vk.DeviceSize, usage vk.BufferUsageFlags, memoryFlags vk.MemoryPropertyFlags) (*VulkanBuffer, error) {
	if size == 0 {
		return nil, core.ResourceError("buffer size must be greater than zero")
	}

	outBuffer := &VulkanBuffer{
		TotalSize: size,
		Usage:     usage,
	}

	bufferCreateInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       usage,
		SharingMode: vk.SharingModeExclusive,
	}

	var pBuffer vk.Buffer
	if res := vk.CreateBuffer(context.Device.LogicalDevice, &bufferCreateInfo, context.Allocator, &pBuffer); res != vk.Success {
		err := core.NewVkError("vkCreateBuffer", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}
	outBuffer.Handle = pBuffer

	var memoryRequirements vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(context.Device.LogicalDevice, outBuffer.Handle, &memoryRequirements)
	memoryRequirements.Deref()

	memoryType := context.FindMemoryIndex(memoryRequirements.MemoryTypeBits, uint32(memoryFlags))
	if memoryType < 0 {
		outBuffer.Destroy(context)
		err := core.ResourceError("required memory type not found for buffer")
		core.LogError(err.Error())
		return nil, err
	}

	allocateInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  memoryRequirements.Size,
		MemoryTypeIndex: uint32(memoryType),
	}
	var pMemory vk.DeviceMemory
	if res := vk.AllocateMemory(context.Device.LogicalDevice, &allocateInfo, context.Allocator, &pMemory); res != vk.Success {
		outBuffer.Destroy(context)
		err := core.NewVkError("vkAllocateMemory", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}
	outBuffer.Memory = pMemory

	if res := vk.BindBufferMemory(context.Device.LogicalDevice, outBuffer.Handle, outBuffer.Memory, 0); res != vk.Success {
		outBuffer.Destroy(context)
		err := core.NewVkError("vkBindBufferMemory", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}

	return outBuffer, nil
}

func (vb *VulkanBuffer) Destroy(context *VulkanContext) {
	if vb.Memory != vk.NullDeviceMemory {
		vk.FreeMemory(context.Device.LogicalDevice, vb.Memory, context.Allocator)
		vb.Memory = vk.NullDeviceMemory
	}
	if vb.Handle != vk.NullBuffer {
		vk.DestroyBuffer(context.Device.LogicalDevice, vb.Handle, context.Allocator)
		vb.Handle = vk.NullBuffer
	}
	vb.TotalSize = 0
	vb.Usage = 0
}

// Upload maps the given range of a host-visible buffer and copies data
// into it. The range is validated before touching the device.
func (vb *VulkanBuffer) Upload(context *VulkanContext, offset vk.DeviceSize, data []byte) error {
	if len(data) == 0 {
		return core.ResourceError("buffer upload requires data")
	}
	if offset+vk.DeviceSize(len(data)) > vb.TotalSize {
		return core.ResourceError("buffer upload range [%d, %d) exceeds buffer size %d",
			offset, offset+vk.DeviceSize(len(data)), vb.TotalSize)
	}

	var pData unsafe.Pointer
	if res := vk.MapMemory(context.Device.LogicalDevice, vb.Memory, offset, vk.DeviceSize(len(data)), 0, &pData); res != vk.Success {
		err := core.NewVkError("vkMapMemory", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return err
	}
	vk.Memcopy(pData, data)
	vk.UnmapMemory(context.Device.LogicalDevice, vb.Memory)

	return nil
}

// CopyTo records and submits a one-shot transfer from this buffer into
// dest, blocking until the copy completes.
func (vb *VulkanBuffer) CopyTo(context *VulkanContext, pool vk.CommandPool, queue vk.Queue, dest *VulkanBuffer, size vk.DeviceSize) error {
	cb, err := AllocateAndBeginSingleUse(context, pool)
	if err != nil {
		return err
	}

	copyRegion := vk.BufferCopy{
		SrcOffset: 0,
		DstOffset: 0,
		Size:      size,
	}
	vk.CmdCopyBuffer(cb.Handle, vb.Handle, dest.Handle, 1, []vk.BufferCopy{copyRegion})

	return cb.EndSingleUse(context, pool, queue)
}

// BufferCreateDeviceLocal builds a device-local buffer filled with data by
// staging through a host-visible scratch buffer. Used for vertex and index
// data that never changes after load.
func BufferCreateDeviceLocal(context *VulkanContext, usage vk.BufferUsageFlags, data []byte) (*VulkanBuffer, error) {
	if len(data) == 0 {
		return nil, core.ResourceError("device-local buffer requires data")
	}
	size := vk.DeviceSize(len(data))

	staging, err := NewVulkanBuffer(
		context,
		size,
		vk.BufferUsageFlags(vk.BufferUsageTransferSrcBit),
		vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit)|vk.MemoryPropertyFlags(vk.MemoryPropertyHostCoherentBit))
	if err != nil {
		return nil, err
	}
	defer staging.Destroy(context)

	if err := staging.Upload(context, 0, data); err != nil {
		return nil, err
	}

	deviceLocal, err := NewVulkanBuffer(
		context,
		size,
		usage|vk.BufferUsageFlags(vk.BufferUsageTransferDstBit),
		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit))
	if err != nil {
		return nil, err
	}

	if err := staging.CopyTo(context, context.Device.UploadCommandPool, context.Device.GraphicsQueue, deviceLocal, size); err != nil {
		deviceLocal.Destroy(context)
		return nil, err
	}

	return deviceLocal, nil
}
