package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
)

func TestVulkanSafeStringAppendsTerminator(t *testing.T) {
	assert.Equal(t, "prism\x00", VulkanSafeString("prism"))
	assert.Equal(t, "prism\x00", VulkanSafeString("prism\x00"))
	assert.Equal(t, "\x00", VulkanSafeString(""))
}

func TestVulkanSafeStringsLeavesInputAlone(t *testing.T) {
	in := []string{"a", "b"}
	out := VulkanSafeStrings(in)

	assert.Equal(t, []string{"a", "b"}, in)
	assert.Equal(t, []string{"a\x00", "b\x00"}, out)
}

func TestFindFirstZeroInByteArray(t *testing.T) {
	assert.Equal(t, 3, FindFirstZeroInByteArray([]byte{'a', 'b', 'c', 0, 'x'}))
	assert.Equal(t, 0, FindFirstZeroInByteArray([]byte{0}))
	assert.Equal(t, 2, FindFirstZeroInByteArray([]byte{'a', 'b'}))
}

func TestMathClamp(t *testing.T) {
	assert.Equal(t, uint32(5), MathClamp(5, 1, 10))
	assert.Equal(t, uint32(1), MathClamp(0, 1, 10))
	assert.Equal(t, uint32(10), MathClamp(20, 1, 10))
}

func TestVulkanResultIsSuccess(t *testing.T) {
	assert.True(t, VulkanResultIsSuccess(vk.Success))
	assert.True(t, VulkanResultIsSuccess(vk.Suboptimal))
	assert.False(t, VulkanResultIsSuccess(vk.ErrorOutOfDate))
	assert.False(t, VulkanResultIsSuccess(vk.ErrorDeviceLost))
}

func TestVulkanResultString(t *testing.T) {
	assert.Equal(t, "VK_SUCCESS", VulkanResultString(vk.Success))
	assert.Equal(t, "VK_ERROR_OUT_OF_DATE_KHR", VulkanResultString(vk.ErrorOutOfDate))
}

func TestSelectMemoryType(t *testing.T) {
	hostVisible := uint32(vk.MemoryPropertyHostVisibleBit) | uint32(vk.MemoryPropertyHostCoherentBit)
	deviceLocal := uint32(vk.MemoryPropertyDeviceLocalBit)
	typeFlags := []uint32{deviceLocal, hostVisible, deviceLocal | hostVisible}

	// Only type 1 and 2 carry host-visible memory.
	assert.Equal(t, int32(1), selectMemoryType(typeFlags, 0b111, hostVisible))
	// The type filter can exclude an otherwise matching type.
	assert.Equal(t, int32(2), selectMemoryType(typeFlags, 0b100, hostVisible))
	// First match wins for device-local.
	assert.Equal(t, int32(0), selectMemoryType(typeFlags, 0b111, deviceLocal))
	// No matching type.
	assert.Equal(t, int32(-1), selectMemoryType(typeFlags, 0b001, hostVisible))
}

func TestNextFrameIndexWraps(t *testing.T) {
	assert.Equal(t, uint32(1), nextFrameIndex(0, 2))
	assert.Equal(t, uint32(0), nextFrameIndex(1, 2))
	assert.Equal(t, uint32(2), nextFrameIndex(1, 3))
}

func TestFormatHasStencil(t *testing.T) {
	assert.False(t, FormatHasStencil(vk.FormatD32Sfloat))
	assert.True(t, FormatHasStencil(vk.FormatD32SfloatS8Uint))
	assert.True(t, FormatHasStencil(vk.FormatD24UnormS8Uint))
	assert.False(t, FormatHasStencil(vk.FormatB8g8r8a8Srgb))
}
