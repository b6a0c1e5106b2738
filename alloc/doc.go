// Package alloc defines the allocator contract shared by every skelred
// container, plus the two general-purpose implementations: Heap (the
// process-wide default over make) and Bounded (a budgeted wrapper that
// refuses requests beyond a fixed element budget).
//
// What
//
//   - Allocator[T]: Allocate(n) obtains a block of n elements or fails
//     with ErrOutOfMemory; Deallocate returns a block and never fails.
//   - Heap[T]: unbounded allocation via make; Deallocate is a no-op and
//     leaves reclamation to the garbage collector.
//   - Bounded[T]: decorates a backing allocator with a hard element
//     budget, giving hosts a way to cap engine memory and giving the
//     OutOfMemory path deterministic, testable behavior.
//
// Why
//
//	The reduction algorithms keep allocator traffic out of their hot
//	loops by pre-sizing arenas and stacks. Every container constructor
//	takes an Allocator and uses Heap when given nil. The reducers take
//	no allocator: their arenas, stacks, worklists and bitmaps are built
//	with nil and therefore come from Heap.
//
// Errors:
//
//   - ErrOutOfMemory  if a request cannot be satisfied within the budget.
//   - ErrInvalidArgument  if a negative block size is requested.
package alloc
