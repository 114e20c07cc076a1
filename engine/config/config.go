package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/prism/engine/core"
)

// Config drives everything that is policy rather than protocol: window
// geometry, validation toggles, where the compiled shaders live and which
// model to load. Paths are configuration, never computed.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Renderer   RendererConfig   `toml:"renderer"`
	Assets     AssetsConfig     `toml:"assets"`
	LogLevel   core.LogLevel    `toml:"log_level"`
	Validation ValidationConfig `toml:"validation"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type RendererConfig struct {
	VertexShaderPath   string `toml:"vertex_shader"`
	FragmentShaderPath string `toml:"fragment_shader"`
	WatchShaders       bool   `toml:"watch_shaders"`
}

type AssetsConfig struct {
	// ModelPath is optional; when empty a procedural quad is rendered.
	ModelPath string `toml:"model"`
}

type ValidationConfig struct {
	Enabled    bool `toml:"enabled"`
	DebugUtils bool `toml:"debug_utils"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Prism",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			VertexShaderPath:   "shaders/mesh.vert.spv",
			FragmentShaderPath: "shaders/mesh.frag.spv",
			WatchShaders:       false,
		},
		LogLevel: core.LogLevelDebug,
		Validation: ValidationConfig{
			Enabled:    true,
			DebugUtils: true,
		},
	}
}

// Load reads the toml file at path on top of the defaults. A missing file is
// not an error; a malformed one or invalid values are.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("config: window dimensions must be non-zero (got %dx%d)", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("config: window title must not be empty")
	}
	if c.Renderer.VertexShaderPath == "" || c.Renderer.FragmentShaderPath == "" {
		return fmt.Errorf("config: both shader paths must be set")
	}
	return nil
}
