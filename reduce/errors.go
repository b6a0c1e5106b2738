// SPDX-License-Identifier: MIT
// Package reduce: sentinel error set.
// Inner-component errors (seq, csr, alloc) propagate unchanged; the
// sentinels below cover this package's own boundary checks.

package reduce

import "errors"

var (
	// ErrNilMatrix indicates that a nil *csr.Matrix was passed to a
	// reducer.
	ErrNilMatrix = errors.New("reduce: matrix is nil")

	// ErrUnknownMethod indicates a method name other than DRG, DRGEP, or
	// PFA.
	ErrUnknownMethod = errors.New("reduce: unknown method")

	// ErrInvalidArgument indicates a non-finite or negative threshold.
	ErrInvalidArgument = errors.New("reduce: invalid argument")

	// ErrInvalidIndex indicates a source vertex outside [0, N).
	ErrInvalidIndex = errors.New("reduce: source index out of range")

	// ErrWorklistDesync indicates that a vertex scheduled for
	// re-prioritisation was not found in the ordered worklist. It cannot
	// occur under the product accumulation while coefficients stay within
	// [0, 1]; an accumulation that can raise the path weight can trigger
	// it.
	ErrWorklistDesync = errors.New("reduce: worklist out of sync")
)
