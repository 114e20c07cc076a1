package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderWatcherDetectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.vert.spv")
	require.NoError(t, os.WriteFile(path, []byte{0x03, 0x02, 0x23, 0x07}, 0o644))

	sw, err := NewShaderWatcher(path)
	require.NoError(t, err)
	defer sw.Close()

	assert.False(t, sw.ConsumeDirty())

	require.NoError(t, os.WriteFile(path, []byte{0x03, 0x02, 0x23, 0x07, 0, 0, 0, 0}, 0o644))

	assert.Eventually(t, sw.ConsumeDirty, 2*time.Second, 10*time.Millisecond)
	// The flag clears once consumed.
	assert.False(t, sw.ConsumeDirty())
}

func TestShaderWatcherMissingPath(t *testing.T) {
	_, err := NewShaderWatcher(filepath.Join(t.TempDir(), "does-not-exist.spv"))
	assert.Error(t, err)
}

func TestShaderWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.frag.spv")
	require.NoError(t, os.WriteFile(path, []byte{0, 0, 0, 0}, 0o644))

	sw, err := NewShaderWatcher(path)
	require.NoError(t, err)

	require.NoError(t, sw.Close())
	assert.Error(t, sw.Close())
}
