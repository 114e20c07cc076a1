package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingAveragePartial(t *testing.T) {
	r := NewRing[float64](3)
	assert.Equal(t, 0.0, r.Average())
	assert.Equal(t, 0, r.Len())

	r.Push(1.0)
	r.Push(2.0)

	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Full())
	assert.InDelta(t, 1.5, r.Average(), 1e-9)
}

func TestRingFillsAndWraps(t *testing.T) {
	r := NewRing[float64](3)
	r.Push(1.0)
	r.Push(2.0)
	r.Push(3.0)

	assert.True(t, r.Full())
	assert.InDelta(t, 2.0, r.Average(), 1e-9)

	// Wrapping evicts the oldest sample.
	r.Push(4.0)
	assert.Equal(t, 3, r.Len())
	assert.InDelta(t, 3.0, r.Average(), 1e-9)
}

func TestRingZeroSizeClampsToOne(t *testing.T) {
	r := NewRing[float32](0)
	r.Push(5.0)
	r.Push(7.0)

	assert.Equal(t, 1, r.Len())
	assert.InDelta(t, 7.0, float64(r.Average()), 1e-6)
}
