package containers

import "golang.org/x/exp/constraints"

// Ring is a fixed-capacity ring of samples. Pushing past capacity
// overwrites the oldest entry.
type Ring[T constraints.Float] struct {
	data       []T
	writeIndex int
	count      int
}

func NewRing[T constraints.Float](size int) *Ring[T] {
	if size <= 0 {
		size = 1
	}
	return &Ring[T]{
		data: make([]T, size),
	}
}

// Push adds a sample, evicting the oldest when full.
func (r *Ring[T]) Push(value T) {
	r.data[r.writeIndex] = value
	r.writeIndex = (r.writeIndex + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len reports how many samples are currently held.
func (r *Ring[T]) Len() int {
	return r.count
}

// Full reports whether the ring has wrapped at least once.
func (r *Ring[T]) Full() bool {
	return r.count == len(r.data)
}

// Average over the held samples. Zero when empty.
func (r *Ring[T]) Average() T {
	if r.count == 0 {
		return 0
	}
	var sum T
	for i := 0; i < r.count; i++ {
		sum += r.data[i]
	}
	return sum / T(r.count)
}
