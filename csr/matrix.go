// SPDX-License-Identifier: MIT

// Package csr: Matrix — compressed sparse-row storage with in-place
// mutation.
package csr

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/skelred/seq"
)

// Matrix is a directed weighted graph on n vertices in CSR form.
//
// rowEnd[i] holds the one-past-last index of row i's entries in
// cols/coefs; row i starts where row i-1 ends (row 0 starts at 0).
// Columns are strictly increasing within every row. A coefficient may
// be zero transiently: such entries are logically absent and skipped by
// neighbour iteration.
//
// The matrix holds its three backing sequences for its whole lifetime;
// in borrowed mode (NewBorrowed) the caller retains ownership and must
// outlive the matrix. Outstanding NeighbourIterators borrow the matrix
// and must be dropped before any edge insertion on their row.
type Matrix struct {
	rowEnd seq.Sequence[int]
	cols   seq.Sequence[int]
	coefs  seq.Sequence[float64]
	n      int
}

// NewBorrowed wraps three caller-owned sequences as a CSR matrix.
// rowEnd.Len() determines the vertex count. The sequences must already
// satisfy the CSR invariants; the builder is the usual way to arrive at
// such a triple.
func NewBorrowed(rowEnd seq.Sequence[int], cols seq.Sequence[int], coefs seq.Sequence[float64]) (*Matrix, error) {
	if rowEnd == nil || cols == nil || coefs == nil {
		return nil, ErrNilSequence
	}

	return &Matrix{rowEnd: rowEnd, cols: cols, coefs: coefs, n: rowEnd.Len()}, nil
}

// Size returns the vertex count N.
func (m *Matrix) Size() int { return m.n }

// Stored returns the number of stored entries, including transient
// zeros.
func (m *Matrix) Stored() int { return m.cols.Len() }

// rowEndAt, colAt, coefAt: unchecked reads of positions already
// validated against the CSR invariants.
func (m *Matrix) rowEndAt(i int) int {
	v, _ := m.rowEnd.At(i)

	return v
}

func (m *Matrix) colAt(i int) int {
	v, _ := m.cols.At(i)

	return v
}

func (m *Matrix) coefAt(i int) float64 {
	v, _ := m.coefs.At(i)

	return v
}

// rowBounds returns the [start, end) slice of cols/coefs holding row
// from's entries.
func (m *Matrix) rowBounds(from int) (int, int) {
	start := 0
	if from != 0 {
		start = m.rowEndAt(from - 1)
	}

	return start, m.rowEndAt(from)
}

// lowerBound returns the first position in [start, end) whose column is
// >= to, or end if none.
func (m *Matrix) lowerBound(to, start, end int) int {
	return start + sort.Search(end-start, func(k int) bool {
		return m.colAt(start+k) >= to
	})
}

// At returns the coefficient of edge (from, to), or 0 when the edge is
// absent. Complexity: O(log row-length).
func (m *Matrix) At(from, to int) (float64, error) {
	if from < 0 || from >= m.n || to < 0 || to >= m.n {
		return 0, fmt.Errorf("csr: At(%d, %d) with size %d: %w", from, to, m.n, ErrInvalidIndex)
	}

	start, end := m.rowBounds(from)
	idx := m.lowerBound(to, start, end)
	if idx < end && m.colAt(idx) == to {
		return m.coefAt(idx), nil
	}

	return 0, nil
}

// SetCoef assigns the coefficient of edge (from, to) and returns the
// displaced value.
//
// A stored entry is overwritten in place — writing zero keeps the entry
// physically present but logically absent. An absent entry is inserted
// only for v != 0, at its column-ordered position, bumping rowEnd for
// every row at or after from. Inserting invalidates live iterators on
// row from.
func (m *Matrix) SetCoef(from, to int, v float64) (float64, error) {
	if from < 0 || from >= m.n || to < 0 || to >= m.n {
		return 0, fmt.Errorf("csr: SetCoef(%d, %d) with size %d: %w", from, to, m.n, ErrInvalidIndex)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("csr: SetCoef(%d, %d): coefficient %v: %w", from, to, v, ErrInvalidArgument)
	}

	start, end := m.rowBounds(from)
	idx := m.lowerBound(to, start, end)
	if idx < end && m.colAt(idx) == to {
		return m.coefs.Replace(idx, v)
	}

	// Absent edge: zero writes are a no-op, anything else is inserted.
	if v == 0 {
		return 0, nil
	}
	if err := m.cols.Insert(idx, to); err != nil {
		return 0, err
	}
	if err := m.coefs.Insert(idx, v); err != nil {
		return 0, err
	}
	var k int
	for k = from; k < m.n; k++ {
		if err := m.rowEnd.Set(k, m.rowEndAt(k)+1); err != nil {
			return 0, err
		}
	}

	return 0, nil
}

// NeighbourIterator returns a cursor positioned at the first non-zero
// entry of row from whose column is >= startTo, or a stopped cursor if
// no such entry exists.
func (m *Matrix) NeighbourIterator(from, startTo int) (*NeighbourIterator, error) {
	it := &NeighbourIterator{}
	if err := m.ReplaceNeighbourIterator(from, startTo, it); err != nil {
		return nil, err
	}

	return it, nil
}

// ReplaceNeighbourIterator re-seats an existing iterator in place,
// avoiding an allocation per visited row inside hot loops.
func (m *Matrix) ReplaceNeighbourIterator(from, startTo int, it *NeighbourIterator) error {
	if from < 0 || from >= m.n || startTo < 0 || startTo >= m.n {
		return fmt.Errorf("csr: NeighbourIterator(%d, %d) with size %d: %w", from, startTo, m.n, ErrInvalidIndex)
	}

	start, end := m.rowBounds(from)
	idx := m.lowerBound(startTo, start, end)
	for idx < end && m.coefAt(idx) == 0 {
		idx++
	}

	it.m = m
	it.from = from
	it.idx = idx
	it.stopped = idx == end

	return nil
}
