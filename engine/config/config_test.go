package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prism.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "warn"

[window]
title = "Demo"
width = 640
height = 480

[renderer]
watch_shaders = true

[assets]
model = "assets/bunny.obj"

[validation]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, uint32(640), cfg.Window.Width)
	assert.Equal(t, uint32(480), cfg.Window.Height)
	assert.Equal(t, core.LogLevelWarn, cfg.LogLevel)
	assert.True(t, cfg.Renderer.WatchShaders)
	assert.Equal(t, "assets/bunny.obj", cfg.Assets.ModelPath)
	assert.False(t, cfg.Validation.Enabled)

	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Renderer.VertexShaderPath, cfg.Renderer.VertexShaderPath)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, `[window`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsZeroDimensions(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 0
height = 720
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsEmptyShaderPaths(t *testing.T) {
	cfg := Default()
	cfg.Renderer.VertexShaderPath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyTitle(t *testing.T) {
	cfg := Default()
	cfg.Window.Title = ""
	assert.Error(t, cfg.Validate())
}
