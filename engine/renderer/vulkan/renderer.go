package vulkan

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/prism/engine/core"
	emath "github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/platform"
)

// Background clear color, a dark blue.
const (
	clearR float32 = 0.05
	clearG float32 = 0.05
	clearB float32 = 0.10
	clearA float32 = 1.0
)

type RendererConfig struct {
	ApplicationName    string
	VertexShaderPath   string
	FragmentShaderPath string
	// EnableValidation turns on the Khronos validation layer.
	EnableValidation bool
	// EnableDebugReport routes driver diagnostics into the process log.
	EnableDebugReport bool
}

type VulkanRenderer struct {
	platform    *platform.Platform
	config      RendererConfig
	FrameNumber uint64
	context     *VulkanContext
	pipeline    *VulkanPipeline

	initialized bool
}

func New(p *platform.Platform, config RendererConfig) *VulkanRenderer {
	return &VulkanRenderer{
		platform: p,
		config:   config,
		context: &VulkanContext{
			Allocator: nil,
			Device:    &VulkanDevice{GraphicsQueueIndex: -1, PresentQueueIndex: -1},
		},
	}
}

// Initialize brings up the whole Vulkan stack: instance, optional debug
// reporting, surface, device, swapchain, render pass, framebuffers,
// command buffers, per-frame sync objects and the mesh pipeline.
func (vr *VulkanRenderer) Initialize(appWidth, appHeight uint32) error {
	procAddr := glfw.GetVulkanGetInstanceProcAddress()
	if procAddr == nil {
		err := core.ConfigError("no Vulkan loader found (GetInstanceProcAddress is nil)")
		core.LogError(err.Error())
		return err
	}
	vk.SetGetInstanceProcAddr(procAddr)

	if err := vk.Init(); err != nil {
		core.LogError("failed to initialize vk: %s", err)
		return err
	}

	vr.context.FramebufferWidth = appWidth
	vr.context.FramebufferHeight = appHeight

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         uint32(vk.MakeVersion(1, 0, 0)),
		ApplicationVersion: uint32(vk.MakeVersion(1, 0, 0)),
		PApplicationName:   VulkanSafeString(vr.config.ApplicationName),
		PEngineName:        VulkanSafeString("Prism Engine"),
	}

	createInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}

	requiredExtensions := []string{"VK_KHR_surface"}
	requiredExtensions = append(requiredExtensions, vr.platform.GetRequiredExtensionNames()...)

	if runtime.GOOS == "darwin" {
		requiredExtensions = append(requiredExtensions,
			"VK_KHR_portability_enumeration",
			"VK_KHR_get_physical_device_properties2",
		)
		createInfo.Flags |= 1 // VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR
	}

	if vr.config.EnableDebugReport {
		requiredExtensions = append(requiredExtensions, vk.ExtDebugReportExtensionName)
	}
	core.LogDebug("Required extensions:")
	for i := range requiredExtensions {
		core.LogDebug("  %s", requiredExtensions[i])
	}

	createInfo.EnabledExtensionCount = uint32(len(requiredExtensions))
	createInfo.PpEnabledExtensionNames = VulkanSafeStrings(requiredExtensions)

	requiredValidationLayerNames := []string{}
	if vr.config.EnableValidation {
		core.LogInfo("Validation layers enabled. Enumerating...")
		requiredValidationLayerNames = []string{"VK_LAYER_KHRONOS_validation"}

		var availableLayerCount uint32
		if res := vk.EnumerateInstanceLayerProperties(&availableLayerCount, nil); res != vk.Success {
			return core.NewVkError("vkEnumerateInstanceLayerProperties", int32(res), VulkanResultString(res))
		}
		availableLayers := make([]vk.LayerProperties, availableLayerCount)
		if res := vk.EnumerateInstanceLayerProperties(&availableLayerCount, availableLayers); res != vk.Success {
			return core.NewVkError("vkEnumerateInstanceLayerProperties", int32(res), VulkanResultString(res))
		}

		for i := range requiredValidationLayerNames {
			found := false
			for j := range availableLayers {
				availableLayers[j].Deref()
				end := FindFirstZeroInByteArray(availableLayers[j].LayerName[:])
				if requiredValidationLayerNames[i] == string(availableLayers[j].LayerName[:end]) {
					found = true
					break
				}
			}
			if !found {
				err := core.ConfigError("required validation layer is missing: %s", requiredValidationLayerNames[i])
				core.LogError(err.Error())
				return err
			}
		}
		core.LogInfo("All required validation layers are present.")
	}

	createInfo.EnabledLayerCount = uint32(len(requiredValidationLayerNames))
	createInfo.PpEnabledLayerNames = VulkanSafeStrings(requiredValidationLayerNames)

	if res := vk.CreateInstance(&createInfo, vr.context.Allocator, &vr.context.Instance); res != vk.Success {
		err := core.NewVkError("vkCreateInstance", int32(res), VulkanResultString(res))
		core.LogError(err.Error())
		return err
	}
	if err := vk.InitInstance(vr.context.Instance); err != nil {
		core.LogError(err.Error())
		return err
	}
	core.LogInfo("Vulkan Instance created.")

	if vr.config.EnableDebugReport {
		core.LogDebug("Creating Vulkan debugger...")
		debugCreateInfo := vk.DebugReportCallbackCreateInfo{
			SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
			Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit),
			PfnCallback: dbgCallbackFunc,
		}

		var dbg vk.DebugReportCallback
		if res := vk.CreateDebugReportCallback(vr.context.Instance, &debugCreateInfo, nil, &dbg); res != vk.Success {
			err := core.NewVkError("vkCreateDebugReportCallbackEXT", int32(res), VulkanResultString(res))
			core.LogError(err.Error())
			return err
		}
		vr.context.debugCallback = dbg
		core.LogDebug("Vulkan debugger created.")
	}

	core.LogDebug("Creating Vulkan surface...")
	surface, err := vr.platform.Window.CreateWindowSurface(vr.context.Instance, nil)
	if err != nil {
		e := core.ConfigError("vulkan surface creation failed: %s", err)
		core.LogError(e.Error())
		return e
	}
	vr.context.Surface = vk.SurfaceFromPointer(surface)
	core.LogDebug("Vulkan surface created.")

	if err := DeviceCreate(vr.context); err != nil {
		core.LogError("failed to create device")
		return err
	}

	sc, err := SwapchainCreate(vr.context, vr.context.FramebufferWidth, vr.context.FramebufferHeight)
	if err != nil {
		return err
	}
	vr.context.Swapchain = sc
	vr.context.CurrentFrame = 0

	rp, err := RenderpassCreate(
		vr.context,
		0, 0, float32(vr.context.Swapchain.Extent.Width), float32(vr.context.Swapchain.Extent.Height),
		clearR, clearG, clearB, clearA,
		1.0,
		0)
	if err != nil {
		return err
	}
	vr.context.MainRenderpass = rp

	vr.context.Swapchain.Framebuffers = make([]*VulkanFramebuffer, vr.context.Swapchain.ImageCount)
	if err := vr.regenerateFramebuffers(vr.context.Swapchain, vr.context.MainRenderpass); err != nil {
		return err
	}

	if err := vr.createCommandBuffers(); err != nil {
		return err
	}

	maxFrames := int(vr.context.Swapchain.MaxFramesInFlight)
	vr.context.ImageAvailableSemaphores = make([]vk.Semaphore, maxFrames)
	vr.context.QueueCompleteSemaphores = make([]vk.Semaphore, maxFrames)
	vr.context.InFlightFences = make([]*VulkanFence, maxFrames)

	for i := 0; i < maxFrames; i++ {
		semaphoreCreateInfo := vk.SemaphoreCreateInfo{
			SType: vk.StructureTypeSemaphoreCreateInfo,
		}

		if res := vk.CreateSemaphore(vr.context.Device.LogicalDevice, &semaphoreCreateInfo, vr.context.Allocator, &vr.context.ImageAvailableSemaphores[i]); res != vk.Success {
			err := core.NewVkError("vkCreateSemaphore", int32(res), VulkanResultString(res))
			core.LogError(err.Error())
			return err
		}
		if res := vk.CreateSemaphore(vr.context.Device.LogicalDevice, &semaphoreCreateInfo, vr.context.Allocator, &vr.context.QueueCompleteSemaphores[i]); res != vk.Success {
			err := core.NewVkError("vkCreateSemaphore", int32(res), VulkanResultString(res))
			core.LogError(err.Error())
			return err
		}

		// The fence starts signaled so the first wait on it falls through.
		f, err := NewFence(vr.context, true)
		if err != nil {
			return err
		}
		vr.context.InFlightFences[i] = f
	}

	pipeline, err := vr.createPipeline()
	if err != nil {
		return err
	}
	vr.pipeline = pipeline

	vr.initialized = true
	core.LogInfo("Vulkan renderer initialized successfully.")

	return nil
}

// Shutdown destroys everything Initialize built, in reverse order. Safe to
// call more than once and after a partial Initialize.
func (vr *VulkanRenderer) Shutdown() {
	if vr.context.Device.LogicalDevice != nil {
		vk.DeviceWaitIdle(vr.context.Device.LogicalDevice)
	}

	if vr.pipeline != nil {
		vr.pipeline.Destroy(vr.context)
		vr.pipeline = nil
	}

	for i := range vr.context.InFlightFences {
		if vr.context.InFlightFences[i] != nil {
			vr.context.InFlightFences[i].FenceDestroy(vr.context)
		}
	}
	vr.context.InFlightFences = nil
	for i := range vr.context.ImageAvailableSemaphores {
		if vr.context.ImageAvailableSemaphores[i] != vk.NullSemaphore {
			vk.DestroySemaphore(vr.context.Device.LogicalDevice, vr.context.ImageAvailableSemaphores[i], vr.context.Allocator)
		}
	}
	vr.context.ImageAvailableSemaphores = nil
	for i := range vr.context.QueueCompleteSemaphores {
		if vr.context.QueueCompleteSemaphores[i] != vk.NullSemaphore {
			vk.DestroySemaphore(vr.context.Device.LogicalDevice, vr.context.QueueCompleteSemaphores[i], vr.context.Allocator)
		}
	}
	vr.context.QueueCompleteSemaphores = nil

	for i := range vr.context.GraphicsCommandBuffers {
		if vr.context.GraphicsCommandBuffers[i] != nil && vr.context.GraphicsCommandBuffers[i].Handle != nil {
			vr.context.GraphicsCommandBuffers[i].Free(vr.context, vr.context.Device.GraphicsCommandPool)
		}
	}
	vr.context.GraphicsCommandBuffers = nil

	if vr.context.Swapchain != nil {
		for i := range vr.context.Swapchain.Framebuffers {
			if vr.context.Swapchain.Framebuffers[i] != nil {
				vr.context.Swapchain.Framebuffers[i].Destroy(vr.context)
			}
		}
	}

	if vr.context.MainRenderpass != nil {
		vr.context.MainRenderpass.RenderpassDestroy(vr.context)
		vr.context.MainRenderpass = nil
	}

	if vr.context.Swapchain != nil {
		vr.context.Swapchain.SwapchainDestroy(vr.context)
		vr.context.Swapchain = nil
	}

	core.LogDebug("Destroying Vulkan device...")
	DeviceDestroy(vr.context)

	core.LogDebug("Destroying Vulkan surface...")
	if vr.context.Surface != vk.NullSurface {
		vk.DestroySurface(vr.context.Instance, vr.context.Surface, vr.context.Allocator)
		vr.context.Surface = vk.NullSurface
	}

	if vr.context.debugCallback != vk.NullDebugReportCallback {
		core.LogDebug("Destroying Vulkan debugger...")
		vk.DestroyDebugReportCallback(vr.context.Instance, vr.context.debugCallback, vr.context.Allocator)
		vr.context.debugCallback = vk.NullDebugReportCallback
	}

	if vr.context.Instance != nil {
		core.LogDebug("Destroying Vulkan instance...")
		vk.DestroyInstance(vr.context.Instance, vr.context.Allocator)
		vr.context.Instance = nil
	}

	vr.initialized = false
}

// Resized records the new framebuffer size. The swapchain catches up at
// the start of the next frame.
func (vr *VulkanRenderer) Resized(width, height uint32) {
	vr.context.FramebufferSizeGeneration++

	core.LogDebug("renderer resized: w/h/gen: %d/%d/%d", width, height, vr.context.FramebufferSizeGeneration)
}

// Context exposes the underlying context for resource uploads.
func (vr *VulkanRenderer) Context() *VulkanContext {
	return vr.context
}

// DrawFrame renders one frame with the given model-view-projection
// transform. It returns true when an image was presented; false means the
// frame was skipped, usually because the swapchain had to be recreated.
func (vr *VulkanRenderer) DrawFrame(mvp emath.Mat4, mesh *VulkanMesh) (bool, error) {
	if !vr.initialized {
		return false, core.ConfigError("renderer is not initialized")
	}
	device := vr.context.Device

	if vr.context.RecreatingSwapchain {
		if result := vk.DeviceWaitIdle(device.LogicalDevice); !VulkanResultIsSuccess(result) {
			return false, core.NewVkError("vkDeviceWaitIdle", int32(result), VulkanResultString(result))
		}
		return false, nil
	}

	// A resize happened since the swapchain was created; rebuild it before
	// acquiring anything.
	if vr.context.FramebufferSizeGeneration != vr.context.FramebufferSizeLastGeneration {
		if result := vk.DeviceWaitIdle(device.LogicalDevice); !VulkanResultIsSuccess(result) {
			return false, core.NewVkError("vkDeviceWaitIdle", int32(result), VulkanResultString(result))
		}
		if err := vr.recreateSwapchain(); err != nil {
			return false, err
		}
		return false, nil
	}

	// Wait until the GPU is done with the resources of this ring slot.
	currentFence := vr.context.InFlightFences[vr.context.CurrentFrame]
	if err := currentFence.FenceWait(vr.context, math.MaxUint64); err != nil {
		return false, err
	}

	imageIndex, acquireResult := vr.context.Swapchain.SwapchainAcquireNextImageIndex(
		vr.context,
		math.MaxUint64,
		vr.context.ImageAvailableSemaphores[vr.context.CurrentFrame],
		vk.NullFence)
	switch {
	case acquireResult == vk.ErrorOutOfDate:
		// Nothing was submitted, so the ring slot stays put.
		if err := vr.recreateSwapchain(); err != nil {
			return false, err
		}
		return false, nil
	case acquireResult != vk.Success && acquireResult != vk.Suboptimal:
		return false, core.NewVkError("vkAcquireNextImageKHR", int32(acquireResult), VulkanResultString(acquireResult))
	}
	vr.context.ImageIndex = imageIndex

	if err := currentFence.FenceReset(vr.context); err != nil {
		return false, err
	}

	commandBuffer := vr.context.GraphicsCommandBuffers[vr.context.ImageIndex]
	commandBuffer.Reset()
	if err := commandBuffer.Begin(false, false, false); err != nil {
		return false, err
	}

	extent := vr.context.Swapchain.Extent
	viewport := vk.Viewport{
		X:        0.0,
		Y:        0.0,
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MinDepth: 0.0,
		MaxDepth: 1.0,
	}
	scissor := vk.Rect2D{
		Offset: vk.Offset2D{X: 0, Y: 0},
		Extent: extent,
	}

	vr.context.MainRenderpass.W = float32(extent.Width)
	vr.context.MainRenderpass.H = float32(extent.Height)
	vr.context.MainRenderpass.RenderpassBegin(commandBuffer, vr.context.Swapchain.Framebuffers[vr.context.ImageIndex].Handle)

	vr.pipeline.Bind(commandBuffer, vk.PipelineBindPointGraphics)
	vk.CmdSetViewport(commandBuffer.Handle, 0, 1, []vk.Viewport{viewport})
	vk.CmdSetScissor(commandBuffer.Handle, 0, 1, []vk.Rect2D{scissor})
	vk.CmdPushConstants(commandBuffer.Handle, vr.pipeline.PipelineLayout, vk.ShaderStageFlags(vk.ShaderStageVertexBit), 0, PushConstantSize, unsafe.Pointer(&mvp.Data[0]))

	mesh.Draw(commandBuffer)

	vr.context.MainRenderpass.RenderpassEnd(commandBuffer)
	if err := commandBuffer.End(); err != nil {
		return false, err
	}

	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{commandBuffer.Handle},
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{vr.context.ImageAvailableSemaphores[vr.context.CurrentFrame]},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{vr.context.QueueCompleteSemaphores[vr.context.CurrentFrame]},
		// Color writes wait for the acquired image; earlier stages run freely.
		PWaitDstStageMask: []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
	}

	if result := vk.QueueSubmit(device.GraphicsQueue, 1, []vk.SubmitInfo{submitInfo}, currentFence.Handle); result != vk.Success {
		err := core.NewVkError("vkQueueSubmit", int32(result), VulkanResultString(result))
		core.LogError(err.Error())
		return false, err
	}
	commandBuffer.UpdateSubmitted()

	presentResult := vr.context.Swapchain.SwapchainPresent(
		vr.context,
		device.PresentQueue,
		vr.context.QueueCompleteSemaphores[vr.context.CurrentFrame],
		vr.context.ImageIndex)

	// Work was submitted, so the ring advances regardless of how the
	// present went.
	vr.context.CurrentFrame = nextFrameIndex(vr.context.CurrentFrame, vr.context.Swapchain.MaxFramesInFlight)
	vr.FrameNumber++

	needsRecreate := presentResult == vk.ErrorOutOfDate || presentResult == vk.Suboptimal || acquireResult == vk.Suboptimal
	if needsRecreate {
		if err := vr.recreateSwapchain(); err != nil {
			return false, err
		}
		return false, nil
	}
	if presentResult != vk.Success {
		return false, core.NewVkError("vkQueuePresentKHR", int32(presentResult), VulkanResultString(presentResult))
	}

	return true, nil
}

// ReloadPipeline rebuilds the graphics pipeline from the shader files on
// disk. The old pipeline stays active until the replacement exists, so a
// broken shader leaves rendering untouched.
func (vr *VulkanRenderer) ReloadPipeline() error {
	newPipeline, err := vr.createPipeline()
	if err != nil {
		return err
	}

	vk.DeviceWaitIdle(vr.context.Device.LogicalDevice)
	vr.pipeline.Destroy(vr.context)
	vr.pipeline = newPipeline

	core.LogInfo("graphics pipeline reloaded")
	return nil
}

// nextFrameIndex advances the frame ring.
func nextFrameIndex(current, maxFramesInFlight uint32) uint32 {
	return (current + 1) % maxFramesInFlight
}

func (vr *VulkanRenderer) createPipeline() (*VulkanPipeline, error) {
	vertStage, err := LoadShaderModule(vr.context, vr.config.VertexShaderPath, vk.ShaderStageVertexBit)
	if err != nil {
		return nil, err
	}
	defer vertStage.Destroy(vr.context)

	fragStage, err := LoadShaderModule(vr.context, vr.config.FragmentShaderPath, vk.ShaderStageFragmentBit)
	if err != nil {
		return nil, err
	}
	defer fragStage.Destroy(vr.context)

	extent := vr.context.Swapchain.Extent
	config := &VulkanPipelineConfig{
		Renderpass: vr.context.MainRenderpass,
		Stride:     VertexStride,
		Attributes: VertexAttributes(),
		Stages: []vk.PipelineShaderStageCreateInfo{
			vertStage.ShaderStageCreateInfo,
			fragStage.ShaderStageCreateInfo,
		},
		Viewport: vk.Viewport{
			X: 0, Y: 0,
			Width:    float32(extent.Width),
			Height:   float32(extent.Height),
			MinDepth: 0.0,
			MaxDepth: 1.0,
		},
		Scissor: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: extent,
		},
	}

	return NewGraphicsPipeline(vr.context, config)
}

func (vr *VulkanRenderer) createCommandBuffers() error {
	// The image count can change across swapchain recreation, so the old
	// buffers are always released and the slice rebuilt.
	for i := range vr.context.GraphicsCommandBuffers {
		if vr.context.GraphicsCommandBuffers[i] != nil && vr.context.GraphicsCommandBuffers[i].Handle != nil {
			vr.context.GraphicsCommandBuffers[i].Free(vr.context, vr.context.Device.GraphicsCommandPool)
		}
	}
	vr.context.GraphicsCommandBuffers = make([]*VulkanCommandBuffer, vr.context.Swapchain.ImageCount)
	for i := 0; i < int(vr.context.Swapchain.ImageCount); i++ {
		cb, err := NewVulkanCommandBuffer(vr.context, vr.context.Device.GraphicsCommandPool, true)
		if err != nil {
			return err
		}
		vr.context.GraphicsCommandBuffers[i] = cb
	}

	core.LogDebug("Vulkan command buffers created.")
	return nil
}

func (vr *VulkanRenderer) regenerateFramebuffers(swapchain *VulkanSwapchain, renderpass *VulkanRenderpass) error {
	for i := 0; i < int(swapchain.ImageCount); i++ {
		attachments := []vk.ImageView{
			swapchain.Views[i],
			swapchain.DepthAttachment.View,
		}
		fb, err := FramebufferCreate(vr.context, renderpass, swapchain.Extent.Width, swapchain.Extent.Height, attachments)
		if err != nil {
			core.LogError("failed to regenerate framebuffer %d", i)
			return err
		}
		swapchain.Framebuffers[i] = fb
	}
	return nil
}

func (vr *VulkanRenderer) recreateSwapchain() error {
	if vr.context.RecreatingSwapchain {
		core.LogDebug("recreateSwapchain called while already recreating, booting")
		return nil
	}
	vr.context.RecreatingSwapchain = true
	defer func() { vr.context.RecreatingSwapchain = false }()

	// A minimized window has a zero-sized framebuffer and nothing to
	// present to. Block on window events until it comes back.
	width, height := vr.platform.FramebufferSize()
	for width == 0 || height == 0 {
		vr.platform.WaitMessages()
		width, height = vr.platform.FramebufferSize()
	}

	vk.DeviceWaitIdle(vr.context.Device.LogicalDevice)

	if err := DeviceQuerySwapchainSupport(vr.context.Device.PhysicalDevice, vr.context.Surface, &vr.context.Device.SwapchainSupport); err != nil {
		return err
	}

	// Old framebuffers reference the old image views; drop them first.
	for i := range vr.context.Swapchain.Framebuffers {
		if vr.context.Swapchain.Framebuffers[i] != nil {
			vr.context.Swapchain.Framebuffers[i].Destroy(vr.context)
		}
	}

	sc, err := vr.context.Swapchain.SwapchainRecreate(vr.context, width, height)
	if err != nil {
		return err
	}
	vr.context.Swapchain = sc

	vr.context.FramebufferWidth = width
	vr.context.FramebufferHeight = height
	vr.context.MainRenderpass.X = 0
	vr.context.MainRenderpass.Y = 0
	vr.context.MainRenderpass.W = float32(sc.Extent.Width)
	vr.context.MainRenderpass.H = float32(sc.Extent.Height)
	vr.context.FramebufferSizeLastGeneration = vr.context.FramebufferSizeGeneration

	vr.context.Swapchain.Framebuffers = make([]*VulkanFramebuffer, vr.context.Swapchain.ImageCount)
	if err := vr.regenerateFramebuffers(vr.context.Swapchain, vr.context.MainRenderpass); err != nil {
		return err
	}

	if err := vr.createCommandBuffers(); err != nil {
		return err
	}

	return nil
}

func dbgCallbackFunc(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint64, messageCode int32, pLayerPrefix string, pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		core.LogError("[%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		core.LogWarn("[%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		core.LogWarn("performance: [%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	default:
		core.LogInfo("[%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	}
	return vk.Bool32(vk.False)
}
