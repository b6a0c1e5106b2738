// SPDX-License-Identifier: MIT

// Package reduce: best-first path-weight propagation shared by DRGEP
// and PFA.
package reduce

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/seq"
)

// propagate runs the per-source best-first propagation and unions the
// thresholded results across sources.
//
// The worklist is an ordered sequence of vertices, sorted ascending by
// current path weight (ties broken by vertex index) so the heaviest
// frontier pops from the tail. paths[v] == 0 means v has never been
// enqueued for the current source.
func propagate(m *csr.Matrix, sources []int, threshold float64, acc AccumulateFunc) (*seq.Bitmap, error) {
	result, err := seq.NewBitmap(m.Size(), false, nil)
	if err != nil {
		return nil, err
	}

	queue, err := seq.NewArray[int](m.Size(), nil)
	if err != nil {
		return nil, err
	}
	paths := make([]float64, m.Size())

	var it csr.NeighbourIterator
	var si, source, i int
	for si, source = range sources {
		if err = calcPathWeights(m, source, threshold, queue, paths, &it, acc); err != nil {
			return nil, err
		}
		for i = 0; i < m.Size(); i++ {
			if paths[i] >= threshold {
				if err = result.Set(i, true); err != nil {
					return nil, err
				}
			}
		}

		// Reset per-source state; the worklist drained to empty already.
		if si+1 < len(sources) {
			for i = range paths {
				paths[i] = 0
			}
		}
	}

	return result, nil
}

// calcPathWeights fills paths with the maximum accumulated weight from
// source to every vertex it can reach above threshold.
func calcPathWeights(m *csr.Matrix, source int, threshold float64, queue *seq.Array[int], paths []float64, it *csr.NeighbourIterator, acc AccumulateFunc) error {
	if err := queue.Append(source); err != nil {
		return err
	}
	paths[source] = 1

	var current, neighbour int
	var weight, candidate float64
	var err error
	for queue.Len() > 0 {
		// Pop the tail: the heaviest pending vertex. Its weight is final —
		// any later path would have to improve on a maximum of products.
		if current, err = queue.Remove(queue.Len() - 1); err != nil {
			return err
		}
		weight = paths[current]

		if err = m.ReplaceNeighbourIterator(current, 0, it); err != nil {
			return err
		}
		for ; !it.Stopped(); it.Advance() {
			neighbour = it.To()
			candidate = acc(weight, it.Coef())
			if candidate <= paths[neighbour] || candidate < threshold {
				continue
			}

			if paths[neighbour] == 0 {
				// First sighting: record the weight, then ordered-insert.
				paths[neighbour] = candidate
				if err = insertOrdered(queue, paths, neighbour); err != nil {
					return err
				}
			} else if err = reprioritize(queue, paths, neighbour, candidate); err != nil {
				return err
			}
		}
	}

	return nil
}

// insertOrdered places node into the worklist at its sorted position.
// paths[node] must already hold the node's weight.
func insertOrdered(queue *seq.Array[int], paths []float64, node int) error {
	raw := queue.Raw()
	pos := sort.Search(len(raw), func(k int) bool {
		return sortsAfter(paths, raw[k], paths[node], node)
	})

	return queue.Insert(pos, node)
}

// reprioritize moves node to the position its improved weight demands.
// Both searches run before the new weight is written: the locate step
// uses the old key still stored in paths, and the destination step
// compares every other entry against the incoming weight, so neither
// search sees a half-updated ordering.
func reprioritize(queue *seq.Array[int], paths []float64, node int, newWeight float64) error {
	raw := queue.Raw()
	oldWeight := paths[node]

	current := sort.Search(len(raw), func(k int) bool {
		return !sortsBefore(paths, raw[k], oldWeight, node)
	})
	if current >= len(raw) || raw[current] != node {
		return fmt.Errorf("reduce: reprioritize(%d): %w", node, ErrWorklistDesync)
	}

	target := sort.Search(len(raw), func(k int) bool {
		return sortsAfter(paths, raw[k], newWeight, node)
	})

	// Slide the block between the old and new slots one step left and
	// drop node just below the target boundary.
	if target != current+1 {
		copy(raw[current:], raw[current+1:target])
		raw[target-1] = node
	}
	paths[node] = newWeight

	return nil
}

// sortsBefore reports whether entry a (with its stored weight) orders
// strictly before a key of (weight, node).
func sortsBefore(paths []float64, a int, weight float64, node int) bool {
	if paths[a] != weight {
		return paths[a] < weight
	}

	return a < node
}

// sortsAfter reports whether entry a orders strictly after a key of
// (weight, node).
func sortsAfter(paths []float64, a int, weight float64, node int) bool {
	if paths[a] != weight {
		return paths[a] > weight
	}

	return a > node
}
