// SPDX-License-Identifier: MIT

// Package reduce: DRGEP — directed relation graph with error
// propagation.
package reduce

import (
	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/seq"
)

// DRGEP computes, from each source, the maximum-product path weight to
// every reachable vertex and returns the union, across sources, of the
// vertices whose weight reaches the threshold.
//
// Per source, paths[source] starts at 1 and every edge multiplies the
// path weight by its coefficient; a candidate that fails to improve the
// vertex's best weight, or falls below the threshold, is discarded, so
// the worklist only ever carries vertices that can still matter.
//
// Raising the threshold can only shrink the result: every retained
// vertex owes its membership to a path weight that a higher threshold
// would have to clear as well.
func DRGEP(m *csr.Matrix, sources []int, threshold float64) (*seq.Bitmap, error) {
	if err := validate(m, sources, threshold); err != nil {
		return nil, err
	}

	return propagate(m, sources, threshold, product)
}
