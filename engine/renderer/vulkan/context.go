package vulkan

import (
	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
)

type VulkanContext struct {
	// The framebuffer's current width.
	FramebufferWidth uint32
	// The framebuffer's current height.
	FramebufferHeight uint32
	// Current generation of framebuffer size. If it does not match
	// FramebufferSizeLastGeneration, the swapchain must be recreated.
	FramebufferSizeGeneration uint64
	// The generation of the framebuffer when the swapchain was last created.
	FramebufferSizeLastGeneration uint64

	Instance  vk.Instance
	Allocator *vk.AllocationCallbacks
	Surface   vk.Surface

	debugCallback vk.DebugReportCallback

	Device *VulkanDevice

	Swapchain      *VulkanSwapchain
	MainRenderpass *VulkanRenderpass

	GraphicsCommandBuffers []*VulkanCommandBuffer

	ImageAvailableSemaphores []vk.Semaphore
	QueueCompleteSemaphores  []vk.Semaphore

	InFlightFences []*VulkanFence

	ImageIndex   uint32
	CurrentFrame uint32

	RecreatingSwapchain bool
}

// FindMemoryIndex returns the index of the first memory type matching both
// the type filter and the requested property flags, or -1 when none does.
func (vc *VulkanContext) FindMemoryIndex(typeFilter, propertyFlags uint32) int32 {
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(vc.Device.PhysicalDevice, &memoryProperties)
	memoryProperties.Deref()

	flags := make([]uint32, memoryProperties.MemoryTypeCount)
	for i := uint32(0); i < memoryProperties.MemoryTypeCount; i++ {
		memoryProperties.MemoryTypes[i].Deref()
		flags[i] = uint32(memoryProperties.MemoryTypes[i].PropertyFlags)
	}

	index := selectMemoryType(flags, typeFilter, propertyFlags)
	if index < 0 {
		core.LogWarn("unable to find suitable memory type (filter 0x%x, flags 0x%x)", typeFilter, propertyFlags)
	}
	return index
}

// selectMemoryType scans the per-type property flags for the first entry
// whose bit is set in typeFilter and whose flags cover propertyFlags.
func selectMemoryType(typeFlags []uint32, typeFilter, propertyFlags uint32) int32 {
	for i := range typeFlags {
		if (typeFilter&(1<<uint32(i))) != 0 && (typeFlags[i]&propertyFlags) == propertyFlags {
			return int32(i)
		}
	}
	return -1
}
