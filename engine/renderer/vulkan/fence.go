package vulkan

import (
	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
)

type VulkanFence struct {
	Handle vk.Fence
}

// NewFence creates a fence, optionally in the signaled state. In-flight
// fences start signaled so the first frame does not wait forever.
func NewFence(context *VulkanContext, createSignaled bool) (*VulkanFence, error) {
	fenceCreateInfo := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
	}
	if createSignaled {
		fenceCreateInfo.Flags = vk.FenceCreateFlags(vk.FenceCreateSignaledBit)
	}

	var pFence vk.Fence
	if res := vk.CreateFence(context.Device.LogicalDevice, &fenceCreateInfo, context.Allocator, &pFence); res != vk.Success {
		err := core.NewVkError("vkCreateFence", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}
	return &VulkanFence{Handle: pFence}, nil
}

func (vf *VulkanFence) FenceDestroy(context *VulkanContext) {
	if vf.Handle != vk.NullFence {
		vk.DestroyFence(context.Device.LogicalDevice, vf.Handle, context.Allocator)
		vf.Handle = vk.NullFence
	}
}

func (vf *VulkanFence) FenceWait(context *VulkanContext, timeoutNs uint64) error {
	result := vk.WaitForFences(context.Device.LogicalDevice, 1, []vk.Fence{vf.Handle}, vk.True, timeoutNs)
	switch result {
	case vk.Success:
		return nil
	case vk.Timeout:
		return core.NewVkError("vkWaitForFences", int32(result), "timed out")
	default:
		return core.NewVkError("vkWaitForFences", int32(result), VulkanResultString(result))
	}
}

func (vf *VulkanFence) FenceReset(context *VulkanContext) error {
	if res := vk.ResetFences(context.Device.LogicalDevice, 1, []vk.Fence{vf.Handle}); res != vk.Success {
		err := core.NewVkError("vkResetFences", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return err
	}
	return nil
}
