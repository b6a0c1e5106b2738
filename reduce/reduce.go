// SPDX-License-Identifier: MIT

// Package reduce: host-facing dispatch.
package reduce

import (
	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/seq"
)

// Run validates the inputs, executes the selected reduction policy, and
// returns the retained vertices as a sorted index slice.
//
// Errors: ErrNilMatrix, ErrUnknownMethod, ErrInvalidArgument for a
// non-finite or negative threshold, ErrInvalidIndex for an out-of-range
// source. Inner errors propagate unchanged.
func Run(method Method, m *csr.Matrix, sources []int, threshold float64) ([]int, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}

	var bm *seq.Bitmap
	var err error
	switch method {
	case MethodDRG:
		bm, err = DRG(m, sources, threshold)
	case MethodDRGEP:
		bm, err = DRGEP(m, sources, threshold)
	case MethodPFA:
		bm, err = PFA(m, sources, threshold)
	}
	if err != nil {
		return nil, err
	}

	return Retained(bm), nil
}

// RunReducing is the builder-protocol entry point: it takes the
// finalized matrix from the builder (ErrInvalidState before Finalize)
// and dispatches to Run.
func RunReducing(b *csr.Builder, method Method, threshold float64, sources []int) ([]int, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}

	m, err := b.Matrix()
	if err != nil {
		return nil, err
	}

	return Run(method, m, sources, threshold)
}

// Retained materialises a result bitmap as the sorted slice of set bit
// positions.
func Retained(bm *seq.Bitmap) []int {
	out := make([]int, 0, bm.PopCount())
	for i := bm.NextSet(0); i >= 0; i = bm.NextSet(i + 1) {
		out = append(out, i)
	}

	return out
}
