package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigErrorMatchesKind(t *testing.T) {
	err := ConfigError("no suitable device found (checked %d)", 2)

	assert.True(t, errors.Is(err, ErrConfig))
	assert.False(t, errors.Is(err, ErrResource))
	assert.Contains(t, err.Error(), "no suitable device found (checked 2)")
}

func TestResourceErrorMatchesKind(t *testing.T) {
	err := ResourceError("no memory type for filter 0x%x", 0xff)

	assert.True(t, errors.Is(err, ErrResource))
	assert.False(t, errors.Is(err, ErrConfig))
}

func TestVkErrorMessage(t *testing.T) {
	err := NewVkError("vkCreateInstance", -9, "VK_ERROR_INCOMPATIBLE_DRIVER")
	assert.Equal(t, "vkCreateInstance failed with VK_ERROR_INCOMPATIBLE_DRIVER (-9)", err.Error())

	bare := NewVkError("vkQueueSubmit", -4, "")
	assert.Equal(t, "vkQueueSubmit failed (-4)", bare.Error())

	var vkErr *VkError
	require.True(t, errors.As(err, &vkErr))
	assert.Equal(t, "vkCreateInstance", vkErr.Call)
	assert.Equal(t, int32(-9), vkErr.Result)
}
