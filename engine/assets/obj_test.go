package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeObj(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadObjTriangle(t *testing.T) {
	path := writeObj(t, `
# a single triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`)

	mesh, err := LoadObj(path)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, mesh.PositionsXYZ)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
}

func TestLoadObjFanTriangulatesQuads(t *testing.T) {
	path := writeObj(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	mesh, err := LoadObj(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
}

func TestLoadObjIgnoresTextureAndNormalRefs(t *testing.T) {
	path := writeObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3//1
`)

	mesh, err := LoadObj(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
}

func TestLoadObjNegativeIndices(t *testing.T) {
	path := writeObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)

	mesh, err := LoadObj(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
}

func TestLoadObjRejectsZeroIndex(t *testing.T) {
	path := writeObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 0 1 2
`)

	_, err := LoadObj(path)
	assert.Error(t, err)
}

func TestLoadObjRejectsOutOfRangeIndex(t *testing.T) {
	path := writeObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`)

	_, err := LoadObj(path)
	assert.Error(t, err)
}

func TestLoadObjRejectsShortFace(t *testing.T) {
	path := writeObj(t, `
v 0 0 0
v 1 0 0
f 1 2
`)

	_, err := LoadObj(path)
	assert.Error(t, err)
}

func TestLoadObjRejectsMalformedVertex(t *testing.T) {
	path := writeObj(t, `
v 0.0 zero 0.0
`)

	_, err := LoadObj(path)
	assert.Error(t, err)
}

func TestLoadObjRejectsEmptyFile(t *testing.T) {
	path := writeObj(t, "# nothing here\n")

	_, err := LoadObj(path)
	assert.Error(t, err)
}

func TestLoadObjMissingFile(t *testing.T) {
	_, err := LoadObj(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
