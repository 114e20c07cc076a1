package vulkan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexStride(t *testing.T) {
	// Two tightly packed vec3s.
	assert.Equal(t, uint32(24), VertexStride)
}

func TestVertexAttributes(t *testing.T) {
	attrs := VertexAttributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, uint32(0), attrs[0].Location)
	assert.Equal(t, uint32(0), attrs[0].Offset)
	assert.Equal(t, uint32(1), attrs[1].Location)
	assert.Equal(t, uint32(12), attrs[1].Offset)
}

func TestBuildVerticesDerivesColors(t *testing.T) {
	vertices := BuildVertices([]float32{
		-1.0, 0.0, 1.0,
		3.0, -3.0, 0.5,
	})
	require.Len(t, vertices, 2)

	assert.Equal(t, [3]float32{-1.0, 0.0, 1.0}, vertices[0].Position)
	assert.Equal(t, [3]float32{0.0, 0.5, 1.0}, vertices[0].Color)

	// Out-of-range positions clamp to valid colors.
	assert.Equal(t, [3]float32{1.0, 0.0, 0.75}, vertices[1].Color)
}

func TestQuadVertices(t *testing.T) {
	vertices, indices := QuadVertices()
	require.Len(t, vertices, 4)
	require.Len(t, indices, 6)

	for _, idx := range indices {
		assert.Less(t, int(idx), len(vertices))
	}
}

func TestVerticesAsBytes(t *testing.T) {
	vertices := []Vertex{{Position: [3]float32{1, 2, 3}, Color: [3]float32{0, 0, 0}}}
	raw := verticesAsBytes(vertices)
	assert.Len(t, raw, int(VertexStride))
}

func TestIndicesAsBytes(t *testing.T) {
	raw := indicesAsBytes([]uint32{0, 1, 2})
	assert.Len(t, raw, 12)
	// Little-endian layout of the first index.
	assert.Equal(t, byte(0), raw[0])
	assert.Equal(t, byte(1), raw[4])
	assert.Equal(t, byte(2), raw[8])
}
