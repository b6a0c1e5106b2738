// SPDX-License-Identifier: MIT

// Package alloc: Bounded — a budgeted allocator decorator.
package alloc

import "fmt"

// Bounded decorates a backing allocator with a hard element budget.
// Requests beyond the remaining budget fail with ErrOutOfMemory;
// Deallocate credits the returned block back to the budget.
//
// Bounded is how hosts cap the engine's memory and how tests exercise
// the OutOfMemory propagation paths deterministically.
type Bounded[T any] struct {
	backing Allocator[T]
	budget  int // total elements this allocator may have outstanding
	used    int // elements currently outstanding
}

// NewBounded wraps backing with an element budget.
// Panics if budget is negative or backing is nil (programmer error, per
// the construction-time validation rule).
func NewBounded[T any](backing Allocator[T], budget int) *Bounded[T] {
	if budget < 0 {
		panic("alloc: NewBounded: negative budget")
	}
	if backing == nil {
		panic("alloc: NewBounded: nil backing allocator")
	}

	return &Bounded[T]{backing: backing, budget: budget}
}

// Allocate obtains a block of n elements if the budget allows.
// Returns ErrOutOfMemory once fewer than n elements remain.
func (b *Bounded[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc: Allocate(%d): %w", n, ErrInvalidArgument)
	}
	if b.used+n > b.budget {
		return nil, fmt.Errorf("alloc: Allocate(%d): %d of %d elements in use: %w", n, b.used, b.budget, ErrOutOfMemory)
	}

	block, err := b.backing.Allocate(n)
	if err != nil {
		return nil, err
	}
	b.used += n

	return block, nil
}

// Deallocate returns a block to the backing allocator and credits its
// length back to the budget.
func (b *Bounded[T]) Deallocate(block []T) {
	b.used -= len(block)
	if b.used < 0 {
		// A foreign block was returned; clamp rather than corrupt the budget.
		b.used = 0
	}
	b.backing.Deallocate(block)
}

// Remaining reports how many elements may still be allocated.
func (b *Bounded[T]) Remaining() int { return b.budget - b.used }
