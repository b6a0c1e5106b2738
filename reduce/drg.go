// SPDX-License-Identifier: MIT

// Package reduce: DRG — directed relation graph reduction.
package reduce

import (
	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/seq"
)

// drgFrame is one DFS stack entry: a vertex and the iterator walking
// its remaining out-neighbours. slot is the arena slot backing the
// iterator, -1 for fall-back allocations.
type drgFrame struct {
	vertex int
	it     *csr.NeighbourIterator
	slot   int
}

// DRG prunes every edge below threshold in place, then returns the
// bitmap of vertices reachable from the sources.
//
// The traversal is an iterative DFS over an explicit fixed-capacity
// stack of neighbour iterators: the stack top's iterator scans forward
// to the first unvisited neighbour, which is marked and pushed;
// exhausted frames pop. Each vertex is pushed at most once, bounding
// the stack (and the iterator arena) at N frames.
//
// Complexity: O(V + E) after pruning; memory O(V) for the stack, arena,
// and result bitmap.
func DRG(m *csr.Matrix, sources []int, threshold float64) (*seq.Bitmap, error) {
	if err := validate(m, sources, threshold); err != nil {
		return nil, err
	}
	if err := pruneEdges(m, threshold); err != nil {
		return nil, err
	}

	achievables, err := seq.NewBitmap(m.Size(), false, nil)
	if err != nil {
		return nil, err
	}

	arena, err := newIterArena(m.Size(), nil)
	if err != nil {
		return nil, err
	}
	defer arena.release()

	stack, err := seq.NewArray[drgFrame](m.Size(), nil)
	if err != nil {
		return nil, err
	}

	var source int
	var marked bool
	for _, source = range sources {
		if marked, err = achievables.At(source); err != nil {
			return nil, err
		}
		if marked {
			continue
		}
		if err = checkAchievables(m, source, achievables, stack, arena); err != nil {
			return nil, err
		}
	}

	return achievables, nil
}

// checkAchievables marks every vertex reachable from source.
func checkAchievables(m *csr.Matrix, source int, achievables *seq.Bitmap, stack *seq.Array[drgFrame], arena *iterArena) error {
	it, slot, err := arena.get(m, source, 0)
	if err != nil {
		return err
	}
	if err = stack.Append(drgFrame{vertex: source, it: it, slot: slot}); err != nil {
		return err
	}
	if err = achievables.Set(source, true); err != nil {
		return err
	}

	var top *drgFrame
	var frame drgFrame
	var neighbour int
	var marked bool
	for stack.Len() > 0 {
		top = &stack.Raw()[stack.Len()-1]

		// Scan the top frame's iterator to the first unvisited neighbour.
		// On success the frame keeps its position: when the pushed subtree
		// pops back, the scan resumes here and skips the now-marked entry.
		added := false
		for it = top.it; !it.Stopped(); it.Advance() {
			neighbour = it.To()
			if marked, err = achievables.At(neighbour); err != nil {
				return err
			}
			if marked {
				continue
			}
			if err = achievables.Set(neighbour, true); err != nil {
				return err
			}

			var nit *csr.NeighbourIterator
			var nslot int
			if nit, nslot, err = arena.get(m, neighbour, 0); err != nil {
				return err
			}
			if err = stack.Append(drgFrame{vertex: neighbour, it: nit, slot: nslot}); err != nil {
				return err
			}
			added = true

			break
		}

		if !added {
			if frame, err = stack.Remove(stack.Len() - 1); err != nil {
				return err
			}
			arena.put(frame.slot)
		}
	}

	return nil
}
