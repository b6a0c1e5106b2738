// Package skelred is a directed-graph reduction engine: it prunes a
// large weighted directed graph down to the vertices reachable from a
// set of source vertices under one of three skeletal-reduction
// policies — DRG, DRGEP, and PFA.
//
// 🚀 What is skelred?
//
//	A single-threaded, allocation-disciplined kernel meant to sit
//	behind a host that performs chemical-kinetics mechanism reduction:
//		• CSR matrix: sparse weighted adjacency built row by row, mutable in place
//		• Neighbour iterators: zero-skipping cursors that survive coefficient writes
//		• Sectioned sequences & bitmaps: bounded-copy containers behind the matrix
//		• Reducers: DRG (threshold + reachability), DRGEP (max-product path
//		  weights, best-first), PFA (pluggable accumulation)
//
// ✨ Why choose skelred?
//
//   - Deterministic – sequential, program-order semantics, no hidden globals
//   - Bounded – sectioned storage caps every shift at one section;
//     iterator slots come from a per-invocation slab arena
//   - Explicit – sentinel errors on every fallible operation, matched
//     with errors.Is; container constructors take an allocator (the
//     reducers take none and use the heap default)
//
// Everything is organized under four subpackages:
//
//	alloc/  — allocator contract, heap default, bounded budgets
//	seq/    — Array, Sectioned, and Bitmap sequences
//	csr/    — the CSR matrix, neighbour iterator, and row builder
//	reduce/ — DRG, DRGEP, PFA, and the host-facing dispatch
//
// Quick sketch of a reduction:
//
//	b, _ := csr.NewBuilder(n)
//	for i, row := range denseRows {
//		_ = b.AddRow(i, row)
//	}
//	_ = b.Finalize()
//	retained, err := reduce.RunReducing(b, reduce.MethodDRGEP, 0.01, sources)
//
// retained is the sorted index set of vertices the mechanism keeps.
package skelred
