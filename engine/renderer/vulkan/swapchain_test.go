package vulkan

import (
	"errors"
	"math"
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseSurfaceFormatPrefersSRGB(t *testing.T) {
	formats := []vk.SurfaceFormat{
		{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}

	chosen, err := chooseSurfaceFormat(formats)
	require.NoError(t, err)
	assert.Equal(t, vk.FormatB8g8r8a8Srgb, chosen.Format)
	assert.Equal(t, vk.ColorSpaceSrgbNonlinear, chosen.ColorSpace)
}

func TestChooseSurfaceFormatFallsBackToFirst(t *testing.T) {
	formats := []vk.SurfaceFormat{
		{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		{Format: vk.FormatR5g6b5UnormPack16, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}

	chosen, err := chooseSurfaceFormat(formats)
	require.NoError(t, err)
	assert.Equal(t, vk.FormatR8g8b8a8Unorm, chosen.Format)
}

func TestChooseSurfaceFormatEmptyListIsFatal(t *testing.T) {
	// A refreshed support query during swapchain recreation can come back
	// with no formats at all; that must surface as an error, not a panic.
	_, err := chooseSurfaceFormat(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConfig))

	_, err = chooseSurfaceFormat([]vk.SurfaceFormat{})
	assert.Error(t, err)
}

func TestChoosePresentModePrefersMailbox(t *testing.T) {
	modes := []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox, vk.PresentModeImmediate}
	assert.Equal(t, vk.PresentModeMailbox, choosePresentMode(modes))
}

func TestChoosePresentModeFallsBackToFifo(t *testing.T) {
	modes := []vk.PresentMode{vk.PresentModeImmediate, vk.PresentModeFifoRelaxed}
	assert.Equal(t, vk.PresentModeFifo, choosePresentMode(modes))
}

func TestChooseExtentUsesSurfacePinnedExtent(t *testing.T) {
	current := vk.Extent2D{Width: 800, Height: 600}
	min := vk.Extent2D{Width: 1, Height: 1}
	max := vk.Extent2D{Width: 4096, Height: 4096}

	extent := chooseExtent(current, min, max, 1920, 1080)
	assert.Equal(t, uint32(800), extent.Width)
	assert.Equal(t, uint32(600), extent.Height)
}

func TestChooseExtentClampsFramebufferSize(t *testing.T) {
	current := vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}
	min := vk.Extent2D{Width: 64, Height: 64}
	max := vk.Extent2D{Width: 1024, Height: 1024}

	extent := chooseExtent(current, min, max, 4000, 16)
	assert.Equal(t, uint32(1024), extent.Width)
	assert.Equal(t, uint32(64), extent.Height)
}

func TestChooseExtentNeverZero(t *testing.T) {
	current := vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}
	min := vk.Extent2D{Width: 1, Height: 1}
	max := vk.Extent2D{Width: 4096, Height: 4096}

	extent := chooseExtent(current, min, max, 0, 0)
	assert.Equal(t, uint32(1), extent.Width)
	assert.Equal(t, uint32(1), extent.Height)
}

func TestChooseImageCountRequestsHeadroom(t *testing.T) {
	assert.Equal(t, uint32(3), chooseImageCount(2, 8))
}

func TestChooseImageCountRespectsMaximum(t *testing.T) {
	assert.Equal(t, uint32(2), chooseImageCount(2, 2))
}

func TestChooseImageCountUnboundedMaximum(t *testing.T) {
	// Zero means the surface imposes no upper bound.
	assert.Equal(t, uint32(4), chooseImageCount(3, 0))
}
