package vulkan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpirvWordsRejectsEmpty(t *testing.T) {
	_, err := spirvWords(nil)
	assert.Error(t, err)
}

func TestSpirvWordsRejectsUnalignedSize(t *testing.T) {
	_, err := spirvWords([]byte{0x03, 0x02, 0x23})
	assert.Error(t, err)
}

func TestSpirvWordsLittleEndianPacking(t *testing.T) {
	// The SPIR-V magic number 0x07230203 in little-endian byte order.
	words, err := spirvWords([]byte{0x03, 0x02, 0x23, 0x07})
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, uint32(0x07230203), words[0])
}
