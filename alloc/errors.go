// SPDX-License-Identifier: MIT
// Package alloc: sentinel error set.
// Only package-level sentinels are exposed; callers branch with
// errors.Is. Implementations wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is essential.

package alloc

import "errors"

var (
	// ErrOutOfMemory is returned by Allocate when the request cannot be
	// satisfied within the allocator's budget.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrInvalidArgument is returned when a negative block size is
	// requested.
	ErrInvalidArgument = errors.New("alloc: invalid argument")
)
