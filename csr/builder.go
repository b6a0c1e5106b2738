// SPDX-License-Identifier: MIT

// Package csr: Builder — the row-at-a-time construction protocol.
package csr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skelred/alloc"
	"github.com/katalvlaran/skelred/seq"
)

// Builder assembles a CSR matrix row by row.
//
// Lifecycle: NewBuilder(n) → AddRow / AddRowNonZeros in strictly
// ascending row order, each row at most once → Finalize → Matrix.
// During building, the row array holds per-row non-zero counts;
// Finalize prefix-sums it in place into the canonical rowEnd form.
// Rows never added are all-zero.
type Builder struct {
	n         int
	next      int // smallest row index still accepted
	finalized bool

	rowEnd *seq.Array[int]
	cols   *seq.Sectioned[int]
	coefs  *seq.Sectioned[float64]

	matrix *Matrix
}

// NewBuilder creates an empty builder for an n-vertex matrix. The row
// array is pre-filled with zeros; the column and coefficient sequences
// are empty sectioned sequences (section size configurable via opts).
func NewBuilder(n int, opts ...seq.Option) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("csr: NewBuilder(%d): %w", n, ErrInvalidArgument)
	}

	rowEnd, err := seq.NewArrayFilled(n, 0, alloc.NewHeap[int]())
	if err != nil {
		return nil, err
	}
	cols, err := seq.NewSectioned(alloc.NewHeap[int](), opts...)
	if err != nil {
		return nil, err
	}
	coefs, err := seq.NewSectioned(alloc.NewHeap[float64](), opts...)
	if err != nil {
		return nil, err
	}

	return &Builder{n: n, rowEnd: rowEnd, cols: cols, coefs: coefs}, nil
}

// Size returns the vertex count N.
func (b *Builder) Size() int { return b.n }

// AddRow ingests one dense row of n coefficients, appending its
// non-zero entries. Rows must arrive in strictly ascending order and
// each row at most once; every coefficient must be finite and
// non-negative.
func (b *Builder) AddRow(rowIdx int, dense []float64) error {
	if err := b.checkRow(rowIdx); err != nil {
		return err
	}
	if len(dense) != b.n {
		return fmt.Errorf("csr: AddRow(%d): row length %d, want %d: %w", rowIdx, len(dense), b.n, ErrInvalidArgument)
	}

	count := 0
	var col int
	var v float64
	for col, v = range dense {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("csr: AddRow(%d): coefficient %v at column %d: %w", rowIdx, v, col, ErrInvalidArgument)
		}
		if v == 0 {
			continue
		}
		if err := b.cols.Append(col); err != nil {
			return err
		}
		if err := b.coefs.Append(v); err != nil {
			return err
		}
		count++
	}

	if err := b.rowEnd.Set(rowIdx, count); err != nil {
		return err
	}
	b.next = rowIdx + 1

	return nil
}

// AddRowNonZeros ingests one row already in sparse form: parallel
// column/coefficient slices with strictly increasing columns. Zero
// coefficients are skipped, matching the dense ingestion path.
func (b *Builder) AddRowNonZeros(rowIdx int, cols []int, coefs []float64) error {
	if err := b.checkRow(rowIdx); err != nil {
		return err
	}
	if len(cols) != len(coefs) {
		return fmt.Errorf("csr: AddRowNonZeros(%d): %d columns, %d coefficients: %w", rowIdx, len(cols), len(coefs), ErrInvalidArgument)
	}

	count := 0
	prev := -1
	var k, col int
	var v float64
	for k, col = range cols {
		if col < 0 || col >= b.n {
			return fmt.Errorf("csr: AddRowNonZeros(%d): column %d with size %d: %w", rowIdx, col, b.n, ErrInvalidIndex)
		}
		if col <= prev {
			return fmt.Errorf("csr: AddRowNonZeros(%d): columns must be strictly increasing: %w", rowIdx, ErrInvalidArgument)
		}
		prev = col

		v = coefs[k]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("csr: AddRowNonZeros(%d): coefficient %v at column %d: %w", rowIdx, v, col, ErrInvalidArgument)
		}
		if v == 0 {
			continue
		}
		if err := b.cols.Append(col); err != nil {
			return err
		}
		if err := b.coefs.Append(v); err != nil {
			return err
		}
		count++
	}

	if err := b.rowEnd.Set(rowIdx, count); err != nil {
		return err
	}
	b.next = rowIdx + 1

	return nil
}

// Finalize converts the per-row counts into a prefix sum in place,
// making the row array canonical CSR rowEnd. Further row additions are
// rejected.
func (b *Builder) Finalize() error {
	if b.finalized {
		return fmt.Errorf("csr: Finalize: already finalized: %w", ErrInvalidState)
	}

	accumulate := 0
	var i, count int
	for i = 0; i < b.n; i++ {
		count, _ = b.rowEnd.At(i)
		accumulate += count
		if err := b.rowEnd.Set(i, accumulate); err != nil {
			return err
		}
	}
	b.finalized = true

	return nil
}

// Matrix returns the finalized matrix over the builder's sequences.
// Fails with ErrInvalidState before Finalize.
func (b *Builder) Matrix() (*Matrix, error) {
	if !b.finalized {
		return nil, fmt.Errorf("csr: Matrix before Finalize: %w", ErrInvalidState)
	}
	if b.matrix == nil {
		b.matrix = &Matrix{rowEnd: b.rowEnd, cols: b.cols, coefs: b.coefs, n: b.n}
	}

	return b.matrix, nil
}

// checkRow applies the shared lifecycle and ordering guards.
func (b *Builder) checkRow(rowIdx int) error {
	if b.finalized {
		return fmt.Errorf("csr: AddRow(%d) after Finalize: %w", rowIdx, ErrInvalidState)
	}
	if rowIdx < 0 || rowIdx >= b.n {
		return fmt.Errorf("csr: AddRow(%d) with size %d: %w", rowIdx, b.n, ErrInvalidIndex)
	}
	if rowIdx < b.next {
		return fmt.Errorf("csr: AddRow(%d): rows must be added in strictly ascending order: %w", rowIdx, ErrInvalidArgument)
	}

	return nil
}
