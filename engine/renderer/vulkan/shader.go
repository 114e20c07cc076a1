package vulkan

import (
	"os"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
)

// VulkanShaderStage holds one compiled shader module together with the
// pipeline stage info that references it.
type VulkanShaderStage struct {
	Handle                vk.ShaderModule
	ShaderStageCreateInfo vk.PipelineShaderStageCreateInfo
}

// LoadShaderModule reads a SPIR-V binary from disk, validates it and wraps
// it in a shader module for the given stage.
func LoadShaderModule(context *VulkanContext, path string, stageFlag vk.ShaderStageFlagBits) (*VulkanShaderStage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := core.ResourceError("unable to read shader module %s: %s", path, err)
		core.LogError(e.Error())
		return nil, e
	}

	words, err := spirvWords(data)
	if err != nil {
		e := core.ResourceError("shader module %s: %s", path, err)
		core.LogError(e.Error())
		return nil, e
	}

	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(data)),
		PCode:    words,
	}

	stage := &VulkanShaderStage{}
	if res := vk.CreateShaderModule(context.Device.LogicalDevice, &createInfo, context.Allocator, &stage.Handle); res != vk.Success {
		e := core.NewVkError("vkCreateShaderModule", int32(res), VulkanResultString(res))
		core.LogError(e.Error())
		return nil, e
	}

	stage.ShaderStageCreateInfo = vk.PipelineShaderStageCreateInfo{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  stageFlag,
		Module: stage.Handle,
		PName:  VulkanSafeString("main"),
	}

	core.LogDebug("shader module loaded: %s (%d bytes)", path, len(data))
	return stage, nil
}

func (vss *VulkanShaderStage) Destroy(context *VulkanContext) {
	if vss.Handle != vk.NullShaderModule {
		vk.DestroyShaderModule(context.Device.LogicalDevice, vss.Handle, context.Allocator)
		vss.Handle = vk.NullShaderModule
	}
}

// spirvWords validates a SPIR-V payload and reinterprets it as the 32-bit
// word stream Vulkan consumes. Host byte order matches what the offline
// compiler emitted on the same machine.
func spirvWords(data []byte) ([]uint32, error) {
	if len(data) == 0 {
		return nil, core.ResourceError("SPIR-V binary is empty")
	}
	if len(data)%4 != 0 {
		return nil, core.ResourceError("SPIR-V binary size %d is not a multiple of 4", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = uint32(data[i*4]) |
			uint32(data[i*4+1])<<8 |
			uint32(data[i*4+2])<<16 |
			uint32(data[i*4+3])<<24
	}
	return words, nil
}
