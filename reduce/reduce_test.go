package reduce_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/reduce"
	"github.com/katalvlaran/skelred/seq"
)

// edge is one weighted directed edge used by the scenario builders.
type edge struct {
	from, to int
	coef     float64
}

// buildMatrix assembles a finalized n-vertex matrix from an edge list.
func buildMatrix(t *testing.T, n int, edges []edge) *csr.Matrix {
	t.Helper()
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
	}
	for _, e := range edges {
		dense[e.from][e.to] = e.coef
	}

	b, err := csr.NewBuilder(n, seq.WithSectionSize(4))
	require.NoError(t, err)
	for i, row := range dense {
		require.NoError(t, b.AddRow(i, row))
	}
	require.NoError(t, b.Finalize())
	m, err := b.Matrix()
	require.NoError(t, err)

	return m
}

//----------------------------------------------------------------------------//
// End-to-end scenarios
//----------------------------------------------------------------------------//

// TestRun_Scenarios covers the canonical reduction cases across methods.
func TestRun_Scenarios(t *testing.T) {
	triangle := []edge{{0, 1, 0.9}, {1, 2, 0.8}, {2, 0, 0.7}}

	cases := []struct {
		name      string
		method    reduce.Method
		n         int
		edges     []edge
		sources   []int
		threshold float64
		want      []int
	}{
		{"TriangleDRG", reduce.MethodDRG, 3, triangle, []int{0}, 0.5, []int{0, 1, 2}},
		{"TriangleDRGThresholded", reduce.MethodDRG, 3, triangle, []int{0}, 0.85, []int{0, 1}},
		{"DisjointComponentsDRG", reduce.MethodDRG, 4, []edge{{0, 1, 1.0}, {2, 3, 1.0}}, []int{0}, 0.0, []int{0, 1}},
		{"ProductDecayDRGEP", reduce.MethodDRGEP, 4, []edge{{0, 1, 0.5}, {1, 2, 0.5}, {2, 3, 0.5}}, []int{0}, 0.2, []int{0, 1, 2}},
		{"ReprioritisationDRGEP", reduce.MethodDRGEP, 4, []edge{{0, 1, 0.9}, {0, 2, 0.1}, {2, 1, 0.9}, {1, 3, 0.5}}, []int{0}, 0.05, []int{0, 1, 2, 3}},
		{"EmptyGraphDRG", reduce.MethodDRG, 5, nil, []int{0, 2}, 0.7, []int{0, 2}},
		{"EmptyGraphDRGEP", reduce.MethodDRGEP, 5, nil, []int{0, 2}, 0.7, []int{0, 2}},
		{"ProductDecayPFA", reduce.MethodPFA, 4, []edge{{0, 1, 0.5}, {1, 2, 0.5}, {2, 3, 0.5}}, []int{0}, 0.2, []int{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := buildMatrix(t, tc.n, tc.edges)
			got, err := reduce.Run(tc.method, m, tc.sources, tc.threshold)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestDRGEP_Reprioritisation forces an in-worklist weight improvement:
// vertex 1 is first seen at 0.4 via the direct edge, then improved to
// 0.72 through vertex 2 while still enqueued. Without the improvement
// vertex 3 would get 0.4*0.5 = 0.2, below the 0.3 threshold.
func TestDRGEP_Reprioritisation(t *testing.T) {
	m := buildMatrix(t, 4, []edge{
		{0, 1, 0.4},
		{0, 2, 0.9},
		{2, 1, 0.8},
		{1, 3, 0.5},
	})

	got, err := reduce.Run(reduce.MethodDRGEP, m, []int{0}, 0.3)
	require.NoError(t, err)
	// paths: 1, 0.72, 0.9, 0.36; vertex 3 clears the threshold only
	// through the improved weight of vertex 1.
	require.Equal(t, []int{0, 1, 2, 3}, got)
}

// TestDRG_MultipleSources skips sources already reached and unions
// components.
func TestDRG_MultipleSources(t *testing.T) {
	m := buildMatrix(t, 6, []edge{
		{0, 1, 1.0},
		{1, 2, 1.0},
		{3, 4, 1.0},
	})

	got, err := reduce.Run(reduce.MethodDRG, m, []int{0, 1, 3}, 0.5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

// TestDRG_PrunesInPlace: the DRG pass zeroes sub-threshold edges in the
// caller's matrix without removing entries.
func TestDRG_PrunesInPlace(t *testing.T) {
	m := buildMatrix(t, 3, []edge{{0, 1, 0.9}, {1, 2, 0.3}})
	stored := m.Stored()

	_, err := reduce.DRG(m, []int{0}, 0.5)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)
	require.Equal(t, stored, m.Stored())
	require.NoError(t, m.WellFormed())
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestReduce_IdempotenceAllSources: threshold 0 with every vertex as a
// source retains everything, for all three methods.
func TestReduce_IdempotenceAllSources(t *testing.T) {
	edges := []edge{{0, 1, 0.9}, {1, 2, 0.1}, {4, 0, 0.2}}
	all := []int{0, 1, 2, 3, 4}

	for _, method := range []reduce.Method{reduce.MethodDRG, reduce.MethodDRGEP, reduce.MethodPFA} {
		t.Run(string(method), func(t *testing.T) {
			m := buildMatrix(t, 5, edges)
			got, err := reduce.Run(method, m, all, 0)
			require.NoError(t, err)
			require.Equal(t, all, got)
		})
	}
}

// TestDRGEP_Monotonicity: raising the threshold never adds vertices.
func TestDRGEP_Monotonicity(t *testing.T) {
	edges := []edge{
		{0, 1, 0.9}, {1, 2, 0.6}, {2, 3, 0.4}, {0, 4, 0.2}, {4, 5, 0.9},
	}

	prev := map[int]bool{}
	first := true
	for _, threshold := range []float64{0.05, 0.1, 0.3, 0.5, 0.95} {
		m := buildMatrix(t, 6, edges)
		got, err := reduce.Run(reduce.MethodDRGEP, m, []int{0}, threshold)
		require.NoError(t, err)

		cur := map[int]bool{}
		for _, v := range got {
			cur[v] = true
		}
		if !first {
			for v := range cur {
				require.Truef(t, prev[v], "threshold %v added vertex %d", threshold, v)
			}
		}
		prev, first = cur, false
	}
}

// TestPFA_CustomAccumulation swaps the product for a minimum-link rule
// (bottleneck weight) and checks the different retained set.
func TestPFA_CustomAccumulation(t *testing.T) {
	m := buildMatrix(t, 4, []edge{{0, 1, 0.6}, {1, 2, 0.6}, {2, 3, 0.6}})

	// Product decays: 0.6, 0.36, 0.216 — only the first hop survives 0.5.
	got, err := reduce.PFA(m, []int{0}, 0.5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, reduce.Retained(got))

	// Bottleneck keeps 0.6 along the whole chain.
	bottleneck := func(pathWeight, coef float64) float64 { return math.Min(pathWeight, coef) }
	m = buildMatrix(t, 4, []edge{{0, 1, 0.6}, {1, 2, 0.6}, {2, 3, 0.6}})
	got, err = reduce.PFA(m, []int{0}, 0.5, reduce.WithAccumulate(bottleneck))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, reduce.Retained(got))
}

//----------------------------------------------------------------------------//
// Dispatch and validation
//----------------------------------------------------------------------------//

// TestRun_Errors sweeps the boundary sentinels.
func TestRun_Errors(t *testing.T) {
	m := buildMatrix(t, 2, []edge{{0, 1, 0.5}})

	if _, err := reduce.Run("GRD", m, []int{0}, 0.5); !errors.Is(err, reduce.ErrUnknownMethod) {
		t.Errorf("unknown method error = %v; want ErrUnknownMethod", err)
	}
	if _, err := reduce.Run(reduce.MethodDRG, nil, []int{0}, 0.5); !errors.Is(err, reduce.ErrNilMatrix) {
		t.Errorf("nil matrix error = %v; want ErrNilMatrix", err)
	}
	if _, err := reduce.Run(reduce.MethodDRG, m, []int{2}, 0.5); !errors.Is(err, reduce.ErrInvalidIndex) {
		t.Errorf("source out of range error = %v; want ErrInvalidIndex", err)
	}
	if _, err := reduce.Run(reduce.MethodDRG, m, []int{-1}, 0.5); !errors.Is(err, reduce.ErrInvalidIndex) {
		t.Errorf("negative source error = %v; want ErrInvalidIndex", err)
	}
	if _, err := reduce.Run(reduce.MethodDRGEP, m, []int{0}, -0.5); !errors.Is(err, reduce.ErrInvalidArgument) {
		t.Errorf("negative threshold error = %v; want ErrInvalidArgument", err)
	}
	if _, err := reduce.Run(reduce.MethodDRGEP, m, []int{0}, math.NaN()); !errors.Is(err, reduce.ErrInvalidArgument) {
		t.Errorf("NaN threshold error = %v; want ErrInvalidArgument", err)
	}
}

// TestParseMethod accepts the three policies and nothing else.
func TestParseMethod(t *testing.T) {
	for _, s := range []string{"DRG", "DRGEP", "PFA"} {
		got, err := reduce.ParseMethod(s)
		require.NoError(t, err)
		require.Equal(t, reduce.Method(s), got)
	}
	if _, err := reduce.ParseMethod("drg"); !errors.Is(err, reduce.ErrUnknownMethod) {
		t.Errorf("lowercase method error = %v; want ErrUnknownMethod", err)
	}
}

// TestRunReducing drives the full builder protocol.
func TestRunReducing(t *testing.T) {
	b, err := csr.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddRow(0, []float64{0, 0.9, 0}))
	require.NoError(t, b.AddRow(1, []float64{0, 0, 0.8}))

	// Reducing before Finalize is a lifecycle violation.
	if _, err = reduce.RunReducing(b, reduce.MethodDRG, 0.5, []int{0}); !errors.Is(err, csr.ErrInvalidState) {
		t.Fatalf("RunReducing before Finalize error = %v; want csr.ErrInvalidState", err)
	}

	require.NoError(t, b.Finalize())
	got, err := reduce.RunReducing(b, reduce.MethodDRG, 0.5, []int{0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, got)
}

// TestWithAccumulate_NilPanics documents option validation.
func TestWithAccumulate_NilPanics(t *testing.T) {
	require.Panics(t, func() { reduce.WithAccumulate(nil) })
}
