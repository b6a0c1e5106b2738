// SPDX-License-Identifier: MIT

// Package seq: Array — a contiguous fixed-capacity sequence.
package seq

import (
	"fmt"

	"github.com/katalvlaran/skelred/alloc"
)

// Array is a single contiguous buffer with a fixed allocated capacity.
// Insert fails with ErrCapacity when the buffer is full; Resize swaps
// the buffer for a new allocation. It is the basis for the DFS stack,
// the ordered worklist, and dense row buffers.
type Array[T any] struct {
	buf []T // allocated region; len(buf) == Cap()
	n   int // stored elements; n <= len(buf)
	mem alloc.Allocator[T]
}

// compile-time interface check
var _ Sequence[int] = (*Array[int])(nil)

// NewArray creates an empty array with the given capacity.
// A nil allocator defaults to the heap.
func NewArray[T any](capacity int, mem alloc.Allocator[T]) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("seq: NewArray(%d): %w", capacity, ErrInvalidArgument)
	}
	if mem == nil {
		mem = alloc.NewHeap[T]()
	}

	buf, err := mem.Allocate(capacity)
	if err != nil {
		return nil, err
	}

	return &Array[T]{buf: buf, mem: mem}, nil
}

// NewArrayFilled creates an array of length n whose every element is
// fill. Capacity equals n.
func NewArrayFilled[T any](n int, fill T, mem alloc.Allocator[T]) (*Array[T], error) {
	a, err := NewArray[T](n, mem)
	if err != nil {
		return nil, err
	}
	for i := range a.buf {
		a.buf[i] = fill
	}
	a.n = n

	return a, nil
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int { return a.n }

// Cap returns the allocated capacity.
func (a *Array[T]) Cap() int { return len(a.buf) }

// At retrieves the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.n {
		return zero, fmt.Errorf("seq: Array.At(%d) with len %d: %w", i, a.n, ErrInvalidIndex)
	}

	return a.buf[i], nil
}

// Set assigns v at index i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("seq: Array.Set(%d) with len %d: %w", i, a.n, ErrInvalidIndex)
	}
	a.buf[i] = v

	return nil
}

// Replace assigns v at index i and returns the displaced element.
func (a *Array[T]) Replace(i int, v T) (T, error) {
	var zero T
	if i < 0 || i >= a.n {
		return zero, fmt.Errorf("seq: Array.Replace(%d) with len %d: %w", i, a.n, ErrInvalidIndex)
	}
	old := a.buf[i]
	a.buf[i] = v

	return old, nil
}

// Insert places v at index i, shifting [i, Len) right by one.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.n {
		return fmt.Errorf("seq: Array.Insert(%d) with len %d: %w", i, a.n, ErrInvalidIndex)
	}
	if a.n == len(a.buf) {
		return fmt.Errorf("seq: Array.Insert(%d) at capacity %d: %w", i, len(a.buf), ErrCapacity)
	}

	copy(a.buf[i+1:a.n+1], a.buf[i:a.n])
	a.buf[i] = v
	a.n++

	return nil
}

// Remove deletes and returns the element at index i, shifting
// [i+1, Len) left by one.
func (a *Array[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.n {
		return zero, fmt.Errorf("seq: Array.Remove(%d) with len %d: %w", i, a.n, ErrInvalidIndex)
	}

	old := a.buf[i]
	copy(a.buf[i:a.n-1], a.buf[i+1:a.n])
	a.n--
	a.buf[a.n] = zero // release any reference held by the vacated slot

	return old, nil
}

// Append places v at index Len.
func (a *Array[T]) Append(v T) error { return a.Insert(a.n, v) }

// Resize swaps the buffer for an allocation of n elements, copying the
// stored prefix. Shrinking below Len fails with ErrInvalidArgument.
func (a *Array[T]) Resize(n int) error {
	if n < a.n {
		return fmt.Errorf("seq: Array.Resize(%d) below len %d: %w", n, a.n, ErrInvalidArgument)
	}
	if n == len(a.buf) {
		return nil
	}

	buf, err := a.mem.Allocate(n)
	if err != nil {
		return err
	}
	copy(buf, a.buf[:a.n])
	a.mem.Deallocate(a.buf)
	a.buf = buf

	return nil
}

// Clear sets the length to zero without releasing the buffer.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.n; i++ {
		a.buf[i] = zero
	}
	a.n = 0
}

// Raw exposes the stored prefix as a borrowed slice. The slice aliases
// the backing buffer and is invalidated by Insert, Remove, and Resize.
// Callers use it for search and block moves in hot loops.
func (a *Array[T]) Raw() []T { return a.buf[:a.n] }
