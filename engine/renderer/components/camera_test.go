package components

import (
	gomath "math"
	"testing"

	"github.com/spaghettifunk/prism/engine/math"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaultFieldOfView(t *testing.T) {
	c := NewCamera()
	assert.InDelta(t, 60.0*gomath.Pi/180.0, float64(c.fovYRadians), 1e-6)
}

func TestCameraMVPMatchesManualComposition(t *testing.T) {
	c := NewCamera()
	c.SetPerspective(1.2, 0.1, 50.0)
	eye := math.Vec3{X: 1, Y: 2, Z: 3}
	center := math.Vec3{}
	up := math.Vec3{Y: 1}
	c.SetLookAt(eye, center, up)

	view := math.NewMat4LookAt(eye, center, up)
	proj := math.NewMat4Perspective(1.2, 1.5, 0.1, 50.0)
	proj.Data[5] *= -1.0
	want := math.NewMat4Identity().Mul(view).Mul(proj)

	got := c.MVP(1.5, math.NewMat4Identity())
	for i := range want.Data {
		assert.InDelta(t, want.Data[i], got.Data[i], 1e-6)
	}
}

func TestCameraMVPFlipsProjectionY(t *testing.T) {
	c := NewCamera()
	c.SetLookAt(math.Vec3{Z: 2}, math.Vec3{}, math.Vec3{Y: 1})

	flipped := c.MVP(1.0, math.NewMat4Identity())

	proj := math.NewMat4Perspective(c.fovYRadians, 1.0, c.nearClip, c.farClip)
	view := math.NewMat4LookAt(math.Vec3{Z: 2}, math.Vec3{}, math.Vec3{Y: 1})
	unflipped := math.NewMat4Identity().Mul(view).Mul(proj)

	assert.InDelta(t, -unflipped.Data[5], flipped.Data[5], 1e-6)
}
