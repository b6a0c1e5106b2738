// SPDX-License-Identifier: MIT
// Package seq: sentinel error set (unified, consistent).
// All sequence operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in constructors.

package seq

import "errors"

var (
	// ErrInvalidIndex indicates an index outside its valid range:
	// [0, Len) for access and removal, [0, Len] for insertion.
	ErrInvalidIndex = errors.New("seq: index out of range")

	// ErrInvalidArgument indicates a structural contract violation, such
	// as resizing below the current length or a negative length or
	// capacity at construction. A non-positive section size panics in
	// WithSectionSize instead.
	ErrInvalidArgument = errors.New("seq: invalid argument")

	// ErrCapacity indicates that a fixed-capacity sequence has no room
	// for another element.
	ErrCapacity = errors.New("seq: capacity exhausted")
)
