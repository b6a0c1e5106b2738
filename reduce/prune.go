// SPDX-License-Identifier: MIT

// Package reduce: shared threshold edge pruning.
package reduce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skelred/csr"
)

// pruneEdges zeroes, in place, every stored coefficient below
// threshold. Entries stay physically present; iterators opened
// afterwards skip them as logically absent.
func pruneEdges(m *csr.Matrix, threshold float64) error {
	var it csr.NeighbourIterator
	var from int
	for from = 0; from < m.Size(); from++ {
		if err := m.ReplaceNeighbourIterator(from, 0, &it); err != nil {
			return err
		}
		for ; !it.Stopped(); it.Advance() {
			if it.Coef() < threshold {
				it.SetCoef(0)
			}
		}
	}

	return nil
}

// validate applies the boundary checks shared by every reducer.
func validate(m *csr.Matrix, sources []int, threshold float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return fmt.Errorf("reduce: threshold %v: %w", threshold, ErrInvalidArgument)
	}
	var s int
	for _, s = range sources {
		if s < 0 || s >= m.Size() {
			return fmt.Errorf("reduce: source %d with size %d: %w", s, m.Size(), ErrInvalidIndex)
		}
	}

	return nil
}
