package vulkan

import (
	"math"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
)

type VulkanSwapchain struct {
	ImageFormat       vk.SurfaceFormat
	MaxFramesInFlight uint32
	Handle            vk.Swapchain
	Extent            vk.Extent2D
	ImageCount        uint32
	Images            []vk.Image
	Views             []vk.ImageView

	DepthAttachment *VulkanImage

	// framebuffers used for on-screen rendering.
	Framebuffers []*VulkanFramebuffer
}

type VulkanSwapchainSupportInfo struct {
	Capabilities     vk.SurfaceCapabilities
	FormatCount      uint32
	Formats          []vk.SurfaceFormat
	PresentModeCount uint32
	PresentModes     []vk.PresentMode
}

func SwapchainCreate(context *VulkanContext, width uint32, height uint32) (*VulkanSwapchain, error) {
	return createSwapchain(context, width, height, vk.NullSwapchain)
}

// SwapchainRecreate tears down the swapchain's dependent resources and
// builds a replacement, handing the old handle to the driver so in-flight
// presentation can finish.
func (vs *VulkanSwapchain) SwapchainRecreate(context *VulkanContext, width uint32, height uint32) (*VulkanSwapchain, error) {
	oldHandle := vs.Handle
	vs.destroySwapchain(context, true)
	sc, err := createSwapchain(context, width, height, oldHandle)
	if oldHandle != vk.NullSwapchain {
		vk.DestroySwapchain(context.Device.LogicalDevice, oldHandle, context.Allocator)
	}
	return sc, err
}

func (vs *VulkanSwapchain) SwapchainDestroy(context *VulkanContext) {
	vs.destroySwapchain(context, false)
}

// SwapchainAcquireNextImageIndex asks the presentation engine for the next
// image, signaling the given semaphore once it is usable. The raw result is
// returned so the frame loop can decide between recreation (out of date),
// rendering anyway (suboptimal) and failing.
func (vs *VulkanSwapchain) SwapchainAcquireNextImageIndex(context *VulkanContext, timeoutNs uint64, imageAvailableSemaphore vk.Semaphore, fence vk.Fence) (uint32, vk.Result) {
	var imageIndex uint32
	result := vk.AcquireNextImage(context.Device.LogicalDevice, vs.Handle, timeoutNs, imageAvailableSemaphore, fence, &imageIndex)
	return imageIndex, result
}

// SwapchainPresent returns the image to the swapchain for presentation
// after renderCompleteSemaphore signals.
func (vs *VulkanSwapchain) SwapchainPresent(context *VulkanContext, presentQueue vk.Queue, renderCompleteSemaphore vk.Semaphore, presentImageIndex uint32) vk.Result {
	presentInfo := vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{renderCompleteSemaphore},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{vs.Handle},
		PImageIndices:      []uint32{presentImageIndex},
		PResults:           nil,
	}

	return vk.QueuePresent(presentQueue, &presentInfo)
}

// chooseSurfaceFormat prefers BGRA8 sRGB with a non-linear sRGB colorspace
// and otherwise settles for whatever the surface lists first. An empty list
// is fatal: the surface support query can legally come back empty after the
// surface is lost, and there is nothing to render into then.
func chooseSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, error) {
	if len(formats) == 0 {
		return vk.SurfaceFormat{}, core.ConfigError("surface reports no formats")
	}
	for _, format := range formats {
		if format.Format == vk.FormatB8g8r8a8Srgb && format.ColorSpace == vk.ColorSpaceSrgbNonlinear {
			return format, nil
		}
	}
	return formats[0], nil
}

// choosePresentMode prefers mailbox and falls back to FIFO, the only mode
// every Vulkan implementation provides.
func choosePresentMode(modes []vk.PresentMode) vk.PresentMode {
	for _, mode := range modes {
		if mode == vk.PresentModeMailbox {
			return mode
		}
	}
	return vk.PresentModeFifo
}

// chooseExtent resolves the swapchain extent. When the surface pins the
// extent (width != MaxUint32) that wins; otherwise the framebuffer size is
// clamped into the supported range, never below 1x1.
func chooseExtent(currentExtent, minExtent, maxExtent vk.Extent2D, framebufferWidth, framebufferHeight uint32) vk.Extent2D {
	if currentExtent.Width != math.MaxUint32 {
		return currentExtent
	}
	if framebufferWidth == 0 {
		framebufferWidth = 1
	}
	if framebufferHeight == 0 {
		framebufferHeight = 1
	}
	return vk.Extent2D{
		Width:  MathClamp(framebufferWidth, minExtent.Width, maxExtent.Width),
		Height: MathClamp(framebufferHeight, minExtent.Height, maxExtent.Height),
	}
}

// chooseImageCount requests one image over the minimum for headroom,
// respecting the maximum when the surface bounds it (0 means unbounded).
func chooseImageCount(minImageCount, maxImageCount uint32) uint32 {
	imageCount := minImageCount + 1
	if maxImageCount > 0 && imageCount > maxImageCount {
		imageCount = maxImageCount
	}
	return imageCount
}

func createSwapchain(context *VulkanContext, width, height uint32, oldSwapchain vk.Swapchain) (*VulkanSwapchain, error) {
	support := &context.Device.SwapchainSupport

	imageFormat, err := chooseSurfaceFormat(support.Formats)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	swapchain := &VulkanSwapchain{
		MaxFramesInFlight: 2,
		ImageFormat:       imageFormat,
	}

	presentMode := choosePresentMode(support.PresentModes)
	swapchainExtent := chooseExtent(
		support.Capabilities.CurrentExtent,
		support.Capabilities.MinImageExtent,
		support.Capabilities.MaxImageExtent,
		width, height)
	imageCount := chooseImageCount(support.Capabilities.MinImageCount, support.Capabilities.MaxImageCount)

	swapchainCreateInfo := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          context.Surface,
		MinImageCount:    imageCount,
		ImageFormat:      swapchain.ImageFormat.Format,
		ImageColorSpace:  swapchain.ImageFormat.ColorSpace,
		ImageExtent:      swapchainExtent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
	}

	// Images must be shareable when graphics and present live on
	// different queue families.
	if context.Device.GraphicsQueueIndex != context.Device.PresentQueueIndex {
		queueFamilyIndices := []uint32{
			uint32(context.Device.GraphicsQueueIndex),
			uint32(context.Device.PresentQueueIndex),
		}
		swapchainCreateInfo.ImageSharingMode = vk.SharingModeConcurrent
		swapchainCreateInfo.QueueFamilyIndexCount = 2
		swapchainCreateInfo.PQueueFamilyIndices = queueFamilyIndices
	} else {
		swapchainCreateInfo.ImageSharingMode = vk.SharingModeExclusive
		swapchainCreateInfo.QueueFamilyIndexCount = 0
		swapchainCreateInfo.PQueueFamilyIndices = nil
	}

	swapchainCreateInfo.PreTransform = support.Capabilities.CurrentTransform
	swapchainCreateInfo.CompositeAlpha = vk.CompositeAlphaOpaqueBit
	swapchainCreateInfo.PresentMode = presentMode
	swapchainCreateInfo.Clipped = vk.True
	swapchainCreateInfo.OldSwapchain = oldSwapchain

	var swapchainHandle vk.Swapchain
	if res := vk.CreateSwapchain(context.Device.LogicalDevice, &swapchainCreateInfo, context.Allocator, &swapchainHandle); res != vk.Success {
		err := core.NewVkError("vkCreateSwapchainKHR", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}
	swapchain.Handle = swapchainHandle
	swapchain.Extent = swapchainExtent

	swapchain.ImageCount = 0
	if res := vk.GetSwapchainImages(context.Device.LogicalDevice, swapchain.Handle, &swapchain.ImageCount, nil); res != vk.Success {
		err := core.NewVkError("vkGetSwapchainImagesKHR", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}
	swapchain.Images = make([]vk.Image, swapchain.ImageCount)
	swapchain.Views = make([]vk.ImageView, swapchain.ImageCount)
	if res := vk.GetSwapchainImages(context.Device.LogicalDevice, swapchain.Handle, &swapchain.ImageCount, swapchain.Images); res != vk.Success {
		err := core.NewVkError("vkGetSwapchainImagesKHR", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return nil, err
	}

	for i := 0; i < int(swapchain.ImageCount); i++ {
		viewInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    swapchain.Images[i],
			ViewType: vk.ImageViewType2d,
			Format:   swapchain.ImageFormat.Format,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}

		if res := vk.CreateImageView(context.Device.LogicalDevice, &viewInfo, context.Allocator, &swapchain.Views[i]); res != vk.Success {
			err := core.NewVkError("vkCreateImageView", int32(res), VulkanResultString(res))
			core.LogError(err.Error())
			return nil, err
		}
	}

	// Depth resources.
	if !DeviceDetectDepthFormat(context.Device) {
		context.Device.DepthFormat = vk.FormatUndefined
		err := core.ConfigError("failed to find a supported depth format")
		core.LogError(err.Error())
		return nil, err
	}

	depthAspect := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	if FormatHasStencil(context.Device.DepthFormat) {
		depthAspect |= vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	}

	depthAttachment, err := ImageCreate(
		context,
		swapchainExtent.Width,
		swapchainExtent.Height,
		context.Device.DepthFormat,
		vk.ImageTilingOptimal,
		vk.ImageUsageFlags(vk.ImageUsageDepthStencilAttachmentBit),
		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
		depthAspect)
	if err != nil {
		return nil, err
	}
	swapchain.DepthAttachment = depthAttachment

	core.LogInfo("Swapchain created successfully (%dx%d, %d images).", swapchainExtent.Width, swapchainExtent.Height, swapchain.ImageCount)

	return swapchain, nil
}

func (vs *VulkanSwapchain) destroySwapchain(context *VulkanContext, keepHandle bool) {
	vk.DeviceWaitIdle(context.Device.LogicalDevice)
	if vs.DepthAttachment != nil {
		vs.DepthAttachment.ImageDestroy(context)
		vs.DepthAttachment = nil
	}

	// Only destroy the views, not the images, since those are owned by the
	// swapchain and go away with it.
	for i := 0; i < int(vs.ImageCount); i++ {
		vk.DestroyImageView(context.Device.LogicalDevice, vs.Views[i], context.Allocator)
	}
	vs.Views = nil
	vs.Images = nil

	if !keepHandle && vs.Handle != vk.NullSwapchain {
		vk.DestroySwapchain(context.Device.LogicalDevice, vs.Handle, context.Allocator)
	}
	vs.Handle = vk.NullSwapchain
}
