package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
)

func TestRenderpassDependencyCoversColorAndDepthWrites(t *testing.T) {
	dep := renderpassDependency()

	assert.Equal(t, uint32(vk.SubpassExternal), dep.SrcSubpass)
	assert.Equal(t, uint32(0), dep.DstSubpass)

	colorStage := vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)
	depthStage := vk.PipelineStageFlags(vk.PipelineStageEarlyFragmentTestsBit)

	// The depth attachment is reused across frames in flight, so both the
	// color and depth stages must appear on both sides of the barrier.
	assert.NotZero(t, dep.SrcStageMask&colorStage)
	assert.NotZero(t, dep.SrcStageMask&depthStage)
	assert.NotZero(t, dep.DstStageMask&colorStage)
	assert.NotZero(t, dep.DstStageMask&depthStage)

	assert.NotZero(t, dep.DstAccessMask&vk.AccessFlags(vk.AccessColorAttachmentWriteBit))
	assert.NotZero(t, dep.DstAccessMask&vk.AccessFlags(vk.AccessDepthStencilAttachmentWriteBit))
}
