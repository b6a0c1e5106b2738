// SPDX-License-Identifier: MIT

// Package reduce: iterArena — a slab of iterator slots with a free-slot
// bitmap.
package reduce

import (
	"github.com/katalvlaran/skelred/alloc"
	"github.com/katalvlaran/skelred/csr"
	"github.com/katalvlaran/skelred/seq"
)

// arenaSlack is the headroom beyond the DFS stack bound, covering
// transient overlap while a frame's replacement iterator is seated
// before its predecessor is returned.
const arenaSlack = 10

// iterArena hands out neighbour-iterator slots from a single slab
// allocation. The DFS stack holds at most N live iterators, so a slab
// of N plus slack slots keeps allocator traffic out of the hot loop;
// on exhaustion the matrix allocates the iterator itself. The arena
// lives for one reducer invocation.
type iterArena struct {
	slots []csr.NeighbourIterator
	free  *seq.Bitmap // true = slot available
	mem   alloc.Allocator[csr.NeighbourIterator]
}

// newIterArena builds an arena of n+arenaSlack slots.
// A nil allocator defaults to the heap.
func newIterArena(n int, mem alloc.Allocator[csr.NeighbourIterator]) (*iterArena, error) {
	if mem == nil {
		mem = alloc.NewHeap[csr.NeighbourIterator]()
	}

	slots, err := mem.Allocate(n + arenaSlack)
	if err != nil {
		return nil, err
	}
	free, err := seq.NewBitmap(n+arenaSlack, true, nil)
	if err != nil {
		mem.Deallocate(slots)

		return nil, err
	}

	return &iterArena{slots: slots, free: free, mem: mem}, nil
}

// get seats an iterator over row from (starting at column startTo) in a
// free slot and returns it with its slot index. When every slot is
// taken, the iterator comes from the matrix's own allocation path and
// the slot index is -1.
func (a *iterArena) get(m *csr.Matrix, from, startTo int) (*csr.NeighbourIterator, int, error) {
	slot := a.free.NextSet(0)
	if slot < 0 {
		it, err := m.NeighbourIterator(from, startTo)

		return it, -1, err
	}

	it := &a.slots[slot]
	if err := m.ReplaceNeighbourIterator(from, startTo, it); err != nil {
		return nil, -1, err
	}
	if err := a.free.Set(slot, false); err != nil {
		return nil, -1, err
	}

	return it, slot, nil
}

// put returns a slot to the arena. Fall-back iterators (slot -1) are
// left to the garbage collector.
func (a *iterArena) put(slot int) {
	if slot >= 0 {
		_ = a.free.Set(slot, true)
	}
}

// release returns the slab to its allocator.
func (a *iterArena) release() {
	a.mem.Deallocate(a.slots)
}
