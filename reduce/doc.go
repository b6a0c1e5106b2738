// Package reduce implements the skeletal-reduction policies DRG, DRGEP,
// and PFA over a csr.Matrix, pruning the graph to the vertices
// reachable from a set of source vertices.
//
// What
//
//   - DRG(m, sources, threshold): zeroes every edge below threshold in
//     place, then marks everything reachable from the sources with an
//     iterative DFS over an explicit stack of neighbour iterators.
//   - DRGEP(m, sources, threshold): computes, per source, the
//     maximum-product path weight to every vertex with a best-first
//     worklist (largest weight popped first), keeps vertices whose
//     weight reaches the threshold, and unions the per-source results.
//   - PFA(m, sources, threshold, opts...): the same propagation
//     skeleton with a pluggable accumulation function; the default is
//     DRGEP's product (WithAccumulate installs a variant).
//   - Run / RunReducing: the host-facing dispatch — validate, select
//     the method by name, and materialise the retained bitmap as a
//     sorted vertex-index slice.
//
// Why best-first
//
//	Edge coefficients multiply in [0, 1] and the threshold discards any
//	path whose weight falls below it, so expanding the heaviest frontier
//	first bounds the work sharply compared with breadth-first order: a
//	vertex is finalized the first time it is popped.
//
// Allocation discipline
//
//	The DFS holds at most N live iterators, one per stack frame. They
//	come from a slab arena sized N plus slack with a free-slot bitmap,
//	so the hot loop performs no per-frame allocation; the arena is
//	scoped to a single reducer invocation.
//
// All reducers run synchronously on the caller's goroutine and mutate
// the matrix in place (threshold pruning writes zero coefficients
// without removing entries).
//
// Errors:
//
//   - ErrNilMatrix       nil matrix.
//   - ErrUnknownMethod   method name not one of DRG, DRGEP, PFA.
//   - ErrInvalidArgument non-finite or negative threshold.
//   - ErrInvalidIndex    source vertex outside [0, N).
package reduce
