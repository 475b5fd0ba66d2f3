package engine

import (
	"math/rand"
	"slices"
)

// Bag draws values without replacement from a fixed set.
// Once every value has been drawn the bag is refilled with the full set on
// the next Draw, so no value repeats within one pass over the set.
type Bag[T any] struct {
	full      []T
	remaining []T
	rng       *rand.Rand
}

// NewBag creates a full bag over values. It panics if values is empty.
func NewBag[T any](values []T, rng *rand.Rand) *Bag[T] {
	if len(values) == 0 {
		panic("engine: bag needs at least one value")
	}
	return &Bag[T]{
		full:      slices.Clone(values),
		remaining: slices.Clone(values),
		rng:       rng,
	}
}

// Draw removes and returns a uniformly random value from the bag.
func (b *Bag[T]) Draw() T {
	if len(b.remaining) == 0 {
		b.remaining = append(b.remaining, b.full...)
	}
	i := b.rng.Intn(len(b.remaining))
	v := b.remaining[i]
	b.remaining = slices.Delete(b.remaining, i, i+1)
	return v
}

// Remaining returns how many values are left before the next refill.
func (b *Bag[T]) Remaining() int {
	return len(b.remaining)
}

// Size returns the number of values in a full bag.
func (b *Bag[T]) Size() int {
	return len(b.full)
}
