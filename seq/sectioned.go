// SPDX-License-Identifier: MIT

// Package seq: Sectioned — a sequence of fixed-size sections.
package seq

import (
	"fmt"

	"github.com/katalvlaran/skelred/alloc"
)

// Sectioned stores its elements in fixed-size sections of S elements.
// Invariant: every section but the last holds exactly S elements, so
// position i always lives at section i/S, offset i%S.
//
// Insert into a full interior section shifts within that section and
// cascades one element across each following boundary; remove mirrors
// the cascade, pulling each next section's head back. The copy cost per
// operation is therefore O(S) per touched section instead of O(n), and
// growth never triggers a single giant reallocation.
type Sectioned[T any] struct {
	sections []*Array[T] // each with capacity sectionSize
	size     int
	ssize    int // elements per section
	mem      alloc.Allocator[T]
}

var _ Sequence[int] = (*Sectioned[int])(nil)

// NewSectioned creates an empty sectioned sequence.
// A nil allocator defaults to the heap.
func NewSectioned[T any](mem alloc.Allocator[T], opts ...Option) (*Sectioned[T], error) {
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	if mem == nil {
		mem = alloc.NewHeap[T]()
	}

	return &Sectioned[T]{ssize: cfg.SectionSize, mem: mem}, nil
}

// NewSectionedFilled creates a sectioned sequence of length n whose
// every element is fill.
func NewSectionedFilled[T any](n int, fill T, mem alloc.Allocator[T], opts ...Option) (*Sectioned[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("seq: NewSectionedFilled(%d): %w", n, ErrInvalidArgument)
	}

	s, err := NewSectioned[T](mem, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = s.Append(fill); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SectionSize returns the fixed per-section element count.
func (s *Sectioned[T]) SectionSize() int { return s.ssize }

// Len returns the number of stored elements.
func (s *Sectioned[T]) Len() int { return s.size }

// Cap returns the total capacity of the allocated sections.
func (s *Sectioned[T]) Cap() int { return s.ssize * len(s.sections) }

// At retrieves the element at index i.
func (s *Sectioned[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, fmt.Errorf("seq: Sectioned.At(%d) with len %d: %w", i, s.size, ErrInvalidIndex)
	}

	return s.sections[i/s.ssize].buf[i%s.ssize], nil
}

// Set assigns v at index i.
func (s *Sectioned[T]) Set(i int, v T) error {
	if i < 0 || i >= s.size {
		return fmt.Errorf("seq: Sectioned.Set(%d) with len %d: %w", i, s.size, ErrInvalidIndex)
	}
	s.sections[i/s.ssize].buf[i%s.ssize] = v

	return nil
}

// Replace assigns v at index i and returns the displaced element.
func (s *Sectioned[T]) Replace(i int, v T) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, fmt.Errorf("seq: Sectioned.Replace(%d) with len %d: %w", i, s.size, ErrInvalidIndex)
	}
	sec := s.sections[i/s.ssize]
	off := i % s.ssize
	old := sec.buf[off]
	sec.buf[off] = v

	return old, nil
}

// Insert places v at index i, shifting [i, Len) right by one.
// The shift stays inside the target section; when that section is full,
// its tail element cascades into the next section, and so on, ending in
// a fresh section if the sequence itself was full.
func (s *Sectioned[T]) Insert(i int, v T) error {
	if i < 0 || i > s.size {
		return fmt.Errorf("seq: Sectioned.Insert(%d) with len %d: %w", i, s.size, ErrInvalidIndex)
	}
	if s.size == s.Cap() {
		if err := s.addSection(); err != nil {
			return err
		}
	}

	sIdx := i / s.ssize
	off := i % s.ssize

	section := s.sections[sIdx]
	if section.Len() < s.ssize {
		// Only the last used section can be non-full; plain insert.
		if err := section.Insert(off, v); err != nil {
			return err
		}
		s.size++

		return nil
	}

	// Cascade one element across each boundary, back to front, so every
	// interior section keeps exactly ssize elements.
	lastUsed := s.size / s.ssize
	var spill T
	var err error
	for k := lastUsed; k > sIdx; k-- {
		if spill, err = s.sections[k-1].Remove(s.ssize - 1); err != nil {
			return err
		}
		if err = s.sections[k].Insert(0, spill); err != nil {
			return err
		}
	}
	if err = section.Insert(off, v); err != nil {
		return err
	}
	s.size++

	return nil
}

// Remove deletes and returns the element at index i. The following
// sections' head elements cascade back across the boundaries, and
// trailing sections left fully unused are released.
func (s *Sectioned[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, fmt.Errorf("seq: Sectioned.Remove(%d) with len %d: %w", i, s.size, ErrInvalidIndex)
	}

	sIdx := i / s.ssize
	old, err := s.sections[sIdx].Remove(i % s.ssize)
	if err != nil {
		return zero, err
	}

	lastUsed := (s.size - 1) / s.ssize
	var head T
	for k := sIdx; k < lastUsed; k++ {
		if head, err = s.sections[k+1].Remove(0); err != nil {
			return zero, err
		}
		if err = s.sections[k].Append(head); err != nil {
			return zero, err
		}
	}
	s.size--

	s.releaseTail((s.size + s.ssize - 1) / s.ssize)

	return old, nil
}

// Append places v at index Len.
func (s *Sectioned[T]) Append(v T) error { return s.Insert(s.size, v) }

// Resize grows or shrinks the allocated sections to hold n elements.
// Shrinking below Len fails with ErrInvalidArgument.
func (s *Sectioned[T]) Resize(n int) error {
	if n < s.size {
		return fmt.Errorf("seq: Sectioned.Resize(%d) below len %d: %w", n, s.size, ErrInvalidArgument)
	}

	want := (n + s.ssize - 1) / s.ssize
	for len(s.sections) < want {
		if err := s.addSection(); err != nil {
			return err
		}
	}
	s.releaseTail(want)

	return nil
}

// Clear sets the length to zero without releasing the sections.
func (s *Sectioned[T]) Clear() {
	for _, section := range s.sections {
		section.Clear()
	}
	s.size = 0
}

// at and set are the unchecked fast paths used by in-package callers
// that have already validated i against Len.
func (s *Sectioned[T]) at(i int) T { return s.sections[i/s.ssize].buf[i%s.ssize] }

func (s *Sectioned[T]) set(i int, v T) { s.sections[i/s.ssize].buf[i%s.ssize] = v }

func (s *Sectioned[T]) addSection() error {
	section, err := NewArray[T](s.ssize, s.mem)
	if err != nil {
		return err
	}
	s.sections = append(s.sections, section)

	return nil
}

// releaseTail drops sections beyond want, returning their buffers to
// the allocator.
func (s *Sectioned[T]) releaseTail(want int) {
	for len(s.sections) > want {
		last := s.sections[len(s.sections)-1]
		s.mem.Deallocate(last.buf)
		s.sections = s.sections[:len(s.sections)-1]
	}
}
