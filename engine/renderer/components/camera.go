package components

import (
	gomath "math"

	"github.com/spaghettifunk/prism/engine/math"
)

// Camera is a pure collaborator: it only produces transform matrices, the
// renderer decides when to ask for them.
type Camera struct {
	fovYRadians float32
	nearClip    float32
	farClip     float32

	eye    math.Vec3
	center math.Vec3
	up     math.Vec3
}

func NewCamera() *Camera {
	return &Camera{
		fovYRadians: float32(60.0 * gomath.Pi / 180.0),
		nearClip:    0.1,
		farClip:     100.0,
		eye:         math.Vec3{X: 0, Y: 0, Z: 2},
		center:      math.Vec3{X: 0, Y: 0, Z: 0},
		up:          math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

func (c *Camera) SetPerspective(fovYRadians, nearClip, farClip float32) {
	c.fovYRadians = fovYRadians
	c.nearClip = nearClip
	c.farClip = farClip
}

func (c *Camera) SetLookAt(eye, center, up math.Vec3) {
	c.eye = eye
	c.center = center
	c.up = up
}

// MVP computes the model-view-projection transform for the given aspect
// ratio. The projection's Y axis is inverted for Vulkan clip space, which
// points down where the usual GL convention points up.
func (c *Camera) MVP(aspect float32, model math.Mat4) math.Mat4 {
	view := math.NewMat4LookAt(c.eye, c.center, c.up)
	proj := math.NewMat4Perspective(c.fovYRadians, aspect, c.nearClip, c.farClip)
	proj.Data[5] *= -1.0

	return model.Mul(view).Mul(proj)
}
