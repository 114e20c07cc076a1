package math

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	assert.Equal(t, Vec3{Z: 1}, x.Cross(y))
	assert.Equal(t, Vec3{Z: -1}, y.Cross(x))
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{X: 3, Y: 4}.Normalized()
	assert.InDelta(t, 0.6, v.X, 1e-6)
	assert.InDelta(t, 0.8, v.Y, 1e-6)
	assert.InDelta(t, 1.0, v.Length(), 1e-6)
}

func TestVec3NormalizedZeroLength(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
}

func TestMat4MulIdentity(t *testing.T) {
	m := NewMat4Perspective(1.0, 16.0/9.0, 0.1, 100.0)
	id := NewMat4Identity()

	assert.Equal(t, m, m.Mul(id))
	assert.Equal(t, m, id.Mul(m))
}

func TestMat4MulComposes(t *testing.T) {
	// Doubling twice along the diagonal is quadrupling.
	scale := NewMat4Identity()
	scale.Data[0] = 2
	scale.Data[5] = 2
	scale.Data[10] = 2

	composed := scale.Mul(scale)
	assert.InDelta(t, 4.0, composed.Data[0], 1e-6)
	assert.InDelta(t, 4.0, composed.Data[5], 1e-6)
	assert.InDelta(t, 4.0, composed.Data[10], 1e-6)
	assert.InDelta(t, 1.0, composed.Data[15], 1e-6)
}

func TestNewMat4Perspective(t *testing.T) {
	// fov pi/2 at aspect 1 has unit focal scale on both axes.
	m := NewMat4Perspective(float32(gomath.Pi/2), 1.0, 1.0, 10.0)

	assert.InDelta(t, 1.0, m.Data[0], 1e-5)
	assert.InDelta(t, 1.0, m.Data[5], 1e-5)
	assert.InDelta(t, -11.0/9.0, m.Data[10], 1e-5)
	assert.InDelta(t, -1.0, m.Data[11], 1e-6)
	assert.InDelta(t, -20.0/9.0, m.Data[14], 1e-5)
}

func TestNewMat4LookAtDownNegativeZ(t *testing.T) {
	m := NewMat4LookAt(
		Vec3{X: 0, Y: 0, Z: 2},
		Vec3{},
		Vec3{X: 0, Y: 1, Z: 0},
	)

	// Looking from +Z toward the origin keeps Y up and moves the eye to
	// two units in front of the camera.
	assert.InDelta(t, 1.0, m.Data[10], 1e-6)
	assert.InDelta(t, 0.0, m.Data[12], 1e-6)
	assert.InDelta(t, 0.0, m.Data[13], 1e-6)
	assert.InDelta(t, -2.0, m.Data[14], 1e-6)
	assert.InDelta(t, 1.0, m.Data[15], 1e-6)
}
