// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// Callers branch with errors.Is; context is attached with %w wrapping at
// the operation boundary, never baked into the sentinel itself.

package csr

import "errors"

var (
	// ErrInvalidIndex indicates a vertex or row index outside [0, N).
	ErrInvalidIndex = errors.New("csr: index out of range")

	// ErrInvalidArgument indicates a structural contract violation at the
	// boundary: rows out of order or duplicated, a dense row of the wrong
	// length, or a non-finite or negative coefficient.
	ErrInvalidArgument = errors.New("csr: invalid argument")

	// ErrInvalidState indicates an operation called out of lifecycle:
	// AddRow after Finalize, or taking the Matrix before Finalize.
	ErrInvalidState = errors.New("csr: invalid state")

	// ErrNilSequence indicates that a nil backing sequence was passed to
	// NewBorrowed.
	ErrNilSequence = errors.New("csr: nil backing sequence")
)
