// Package csr implements the compressed sparse-row adjacency matrix at
// the heart of skelred: a directed weighted graph over dense integer
// vertex indices, stored as three parallel sequences and mutable in
// place.
//
// What
//
//   - Matrix: (rowEnd, cols, coefs) storage. rowEnd[i] is the one-past
//     -last position of row i's entries in cols/coefs; columns are
//     strictly increasing within each row. At performs a lower-bound
//     binary search over the row slice; SetCoef overwrites in place or
//     inserts a new edge, bumping every following row boundary. Writing
//     zero does NOT physically remove the entry — zero entries are
//     logically absent and skipped by iteration.
//   - NeighbourIterator: a stateful cursor over one vertex's stored
//     out-neighbours. It skips zero coefficients, survives coefficient
//     writes through itself (writing zero marks it stopped; the next
//     advance moves past the zeroed entry), and can be re-seated in
//     place to keep allocator traffic
//     out of hot loops. It does NOT survive edge insertion or removal
//     on its row; callers must drop iterators before mutating row
//     structure.
//   - Builder: the row-at-a-time construction protocol. Rows arrive as
//     dense (or pre-sparsified) vectors in strictly ascending order;
//     Finalize converts the per-row counts into a prefix sum, making
//     rowEnd canonical CSR. Rows never added are all-zero.
//
// Why
//
//	The reduction algorithms zero edges below threshold without
//	compacting storage, then walk the remaining edges millions of
//	times. CSR gives O(non-zero) storage and cache-friendly row walks;
//	the sectioned backing keeps each structural insert bounded.
//
// Invariants (checked by the property tests):
//
//   - rowEnd is non-decreasing; rowEnd[N-1] == cols.Len() == coefs.Len().
//   - Columns are strictly increasing within every row.
//   - Stored coefficients are finite and non-negative; zeros may be
//     present transiently and are logically absent.
//
// Errors:
//
//   - ErrInvalidIndex     vertex or row index outside [0, N).
//   - ErrInvalidArgument  boundary contract violation (row order, row
//     length, non-finite or negative coefficient).
//   - ErrInvalidState     lifecycle violation (AddRow after Finalize,
//     Matrix before Finalize).
package csr
