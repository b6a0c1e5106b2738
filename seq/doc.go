// Package seq provides the indexable sequences backing the skelred CSR
// matrix: a fixed-capacity contiguous Array, a Sectioned sequence of
// fixed-size blocks, and a word-packed Bitmap.
//
// What
//
//   - Sequence[T]: the common random-access mutable contract — length,
//     element access, insert/remove with shifting, resize, clear.
//   - Array[T]: one contiguous buffer with a fixed capacity; the basis
//     for stacks and dense row buffers. Insert fails with ErrCapacity
//     when full.
//   - Sectioned[T]: a sequence of fixed-size sections. Insert and
//     remove shift within one section and cascade a single element
//     across section boundaries, bounding the copy cost at O(S) per
//     touched section and avoiding any single giant reallocation.
//   - Bitmap: a bool-valued sequence packed 64 bits per word section,
//     with constant-time access, shiftful insert/remove, and a masked
//     hardware population count.
//
// Why
//
//	The CSR column and coefficient arrays grow row by row into the
//	millions of entries; Sectioned keeps every mutation bounded.
//	The reduction algorithms track retained vertices and arena slots in
//	Bitmaps, where PopCount answers "how many survived" in O(n/64).
//
// Determinism
//
//	All operations are sequential and deterministic; no operation
//	blocks, locks, or allocates outside the injected alloc.Allocator.
//
// Errors:
//
//   - ErrInvalidIndex     index outside [0, Len) (or [0, Len] for Insert).
//   - ErrInvalidArgument  resize below the current length, bad sizes.
//   - ErrCapacity         fixed-capacity sequence has no room.
package seq
