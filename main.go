/*
Prism opens a window, uploads a mesh and draws it from a fixed camera
until the window closes. All policy (window size, shader and model
paths, validation) comes from prism.toml next to the binary.
*/
package main

import (
	"flag"
	"os"

	"github.com/spaghettifunk/prism/engine/assets"
	"github.com/spaghettifunk/prism/engine/config"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/platform"
	"github.com/spaghettifunk/prism/engine/renderer/components"
	"github.com/spaghettifunk/prism/engine/renderer/vulkan"
)

func main() {
	configPath := flag.String("config", "prism.toml", "path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	core.SetLogLevel(cfg.LogLevel)
	core.MetricsInitialize()

	p, err := platform.New()
	if err != nil {
		return err
	}
	if err := p.Startup(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	defer p.Shutdown()

	renderer := vulkan.New(p, vulkan.RendererConfig{
		ApplicationName:    cfg.Window.Title,
		VertexShaderPath:   cfg.Renderer.VertexShaderPath,
		FragmentShaderPath: cfg.Renderer.FragmentShaderPath,
		EnableValidation:   cfg.Validation.Enabled,
		EnableDebugReport:  cfg.Validation.Enabled && cfg.Validation.DebugUtils,
	})

	fbWidth, fbHeight := p.FramebufferSize()
	if err := renderer.Initialize(fbWidth, fbHeight); err != nil {
		renderer.Shutdown()
		return err
	}
	defer renderer.Shutdown()

	p.SetResizeCallback(renderer.Resized)

	vertices, indices := loadMeshData(cfg.Assets.ModelPath)
	mesh, err := vulkan.NewMesh(renderer.Context(), vertices, indices)
	if err != nil {
		return err
	}
	defer mesh.Destroy(renderer.Context())

	var watcher *assets.ShaderWatcher
	if cfg.Renderer.WatchShaders {
		watcher, err = assets.NewShaderWatcher(cfg.Renderer.VertexShaderPath, cfg.Renderer.FragmentShaderPath)
		if err != nil {
			core.LogWarn("shader watching disabled: %s", err)
		} else {
			defer watcher.Close()
		}
	}

	camera := components.NewCamera()
	model := math.NewMat4Identity()

	frameClock := core.NewClock()

	core.LogInfo("entering render loop")
	for !p.ShouldClose() {
		frameClock.Start()
		p.PumpMessages()

		if watcher != nil && watcher.ConsumeDirty() {
			if err := renderer.ReloadPipeline(); err != nil {
				core.LogWarn("pipeline reload failed, keeping previous pipeline: %s", err)
			}
		}

		width, height := p.FramebufferSize()
		aspect := float32(1.0)
		if width > 0 && height > 0 {
			aspect = float32(width) / float32(height)
		}
		mvp := camera.MVP(aspect, model)

		presented, err := renderer.DrawFrame(mvp, mesh)
		if err != nil {
			return err
		}

		if presented {
			frameClock.Update()
			core.MetricsUpdate(frameClock.Elapsed())
			if renderer.FrameNumber%240 == 0 {
				fps, frameMS := core.MetricsFrame()
				core.LogDebug("fps: %.1f, frame time: %.2fms", fps, frameMS)
			}
		}
	}

	core.LogInfo("window closed, shutting down")
	return nil
}

// loadMeshData loads the configured OBJ model and falls back to the
// procedural quad when no model is configured or loading fails.
func loadMeshData(modelPath string) ([]vulkan.Vertex, []uint32) {
	if modelPath == "" {
		core.LogInfo("no model configured, using procedural quad")
		return vulkan.QuadVertices()
	}

	obj, err := assets.LoadObj(modelPath)
	if err != nil {
		core.LogWarn("failed to load model %s, using procedural quad: %s", modelPath, err)
		return vulkan.QuadVertices()
	}

	core.LogInfo("loaded model %s (%d vertices, %d indices)", modelPath, len(obj.PositionsXYZ)/3, len(obj.Indices))
	return vulkan.BuildVertices(obj.PositionsXYZ), obj.Indices
}
