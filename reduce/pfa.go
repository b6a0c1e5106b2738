// SPDX-License-Identifier: MIT

// Package reduce: PFA — path flux analysis.
package reduce

import (
	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/seq"
)

// PFA shares the DRGEP propagation skeleton — best-first expansion from
// each source, per-vertex weights aggregated under the threshold — with
// a method-specific accumulation installed via WithAccumulate. The
// default accumulation is DRGEP's product, so a bare PFA call behaves
// as first-generation path flux with pure product decay.
func PFA(m *csr.Matrix, sources []int, threshold float64, opts ...Option) (*seq.Bitmap, error) {
	if err := validate(m, sources, threshold); err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	return propagate(m, sources, threshold, cfg.Accumulate)
}
