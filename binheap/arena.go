// SPDX-License-Identifier: MIT

package binheap

// allocNode returns a fresh degree-0 root holding v.
func (h *Heap[T]) allocNode(v T) int32 {
	nd := node[T]{
		value:   v,
		parent:  nilIndex,
		child:   nilIndex,
		sibling: nilIndex,
		handle:  nilIndex,
	}

	if k := len(h.freeNodes); k > 0 {
		n := h.freeNodes[k-1]
		h.freeNodes = h.freeNodes[:k-1]
		h.nodes[n] = nd
		return n
	}
	h.nodes = append(h.nodes, nd)

	return int32(len(h.nodes) - 1)
}

// allocHandle binds a handle slot to node n.
func (h *Heap[T]) allocHandle(n int32) int32 {
	var hs int32
	if k := len(h.freeHandles); k > 0 {
		hs = h.freeHandles[k-1]
		h.freeHandles = h.freeHandles[:k-1]
	} else {
		h.handles = append(h.handles, handleSlot{gen: 1})
		hs = int32(len(h.handles) - 1)
	}
	h.handles[hs].node = n
	h.nodes[n].handle = hs

	return hs
}

// release frees node n and retires its handle generation.
func (h *Heap[T]) release(n int32) {
	hs := h.nodes[n].handle
	h.handles[hs].node = nilIndex
	h.handles[hs].gen++
	if h.handles[hs].gen == 0 {
		h.handles[hs].gen = 1
	}
	h.freeHandles = append(h.freeHandles, hs)

	var zero T
	h.nodes[n] = node[T]{
		value:   zero,
		parent:  nilIndex,
		child:   nilIndex,
		sibling: nilIndex,
		handle:  nilIndex,
	}
	h.freeNodes = append(h.freeNodes, n)
}

// resolve maps a handle to its node, rejecting stale and foreign handles.
func (h *Heap[T]) resolve(hd Handle) (int32, error) {
	if hd.owner != h.id || hd.slot < 0 || int(hd.slot) >= len(h.handles) {
		return nilIndex, ErrInvalidHandle
	}
	slot := h.handles[hd.slot]
	if slot.gen != hd.gen || slot.node == nilIndex {
		return nilIndex, ErrInvalidHandle
	}

	return slot.node, nil
}
