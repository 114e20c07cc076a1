package core

import (
	"errors"
	"fmt"
)

// Error kinds follow the renderer's failure taxonomy: configuration or
// capability gaps have no fallback path, resource errors mean the device
// cannot satisfy an allocation request, and everything else coming back from
// the driver is wrapped with the call that produced it. Presentation
// staleness is deliberately NOT an error; it is signalled out of band.
var (
	ErrConfig   = errors.New("configuration/capability error")
	ErrResource = errors.New("resource error")
)

// ConfigError reports a missing capability (no suitable device, no surface
// formats, no depth format). Matches errors.Is(err, ErrConfig).
func ConfigError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// ResourceError reports an unsatisfiable allocation request. Matches
// errors.Is(err, ErrResource).
func ResourceError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrResource, fmt.Sprintf(format, args...))
}

// VkError wraps a failing native call with its name and numeric result code.
type VkError struct {
	Call   string
	Result int32
	Detail string
}

func (e *VkError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s failed with %s (%d)", e.Call, e.Detail, e.Result)
	}
	return fmt.Sprintf("%s failed (%d)", e.Call, e.Result)
}

func NewVkError(call string, result int32, detail string) error {
	return &VkError{Call: call, Result: result, Detail: detail}
}
