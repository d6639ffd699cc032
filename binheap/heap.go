// SPDX-License-Identifier: MIT

package binheap

import "cmp"

// New returns an empty heap ordered by less. Panics on nil less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("binheap: New(nil)")
	}

	return &Heap[T]{
		less:   less,
		id:     heapIDs.Add(1),
		minPos: -1,
	}
}

// NewOrdered returns an empty heap over a naturally ordered type.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Less[T])
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return h.count }

// Trees returns the number of binomial trees in the forest.
func (h *Heap[T]) Trees() int { return len(h.roots) }

// Insert adds v as a degree-0 tree, merges it into the forest and returns a
// handle for later DecrementKey/Remove calls.
func (h *Heap[T]) Insert(v T) Handle {
	n := h.allocNode(v)
	hs := h.allocHandle(n)

	h.roots = h.merge(h.roots, []int32{n})
	h.count++
	h.refreshMin()

	return Handle{owner: h.id, slot: hs, gen: h.handles[hs].gen}
}

// PeekMin returns the minimum value without removing it.
func (h *Heap[T]) PeekMin() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.nodes[h.roots[h.minPos]].value, nil
}

// ExtractMin removes and returns the minimum value. The handle of the
// extracted element becomes invalid.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.cutRoot(h.minPos), nil
}

// DecrementKey lowers the value designated by hd to v and restores heap
// order by sifting it towards its tree root.
//
// Errors:
//   - ErrInvalidHandle for stale or foreign handles.
//   - ErrKeyIncreased if v orders after the current value; the heap is untouched.
func (h *Heap[T]) DecrementKey(hd Handle, v T) error {
	n, err := h.resolve(hd)
	if err != nil {
		return err
	}
	if h.less(h.nodes[n].value, v) {
		return ErrKeyIncreased
	}

	h.nodes[n].value = v
	h.siftUp(n, false)
	h.refreshMin()

	return nil
}

// Remove deletes the element designated by hd and returns its value.
func (h *Heap[T]) Remove(hd Handle) (T, error) {
	n, err := h.resolve(hd)
	if err != nil {
		var zero T
		return zero, err
	}

	root := h.siftUp(n, true)
	for pos, r := range h.roots {
		if r == root {
			return h.cutRoot(pos), nil
		}
	}

	// unreachable while the forest is consistent
	panic("binheap: sifted node is not a root")
}

// Value returns the current value designated by hd.
func (h *Heap[T]) Value(hd Handle) (T, error) {
	n, err := h.resolve(hd)
	if err != nil {
		var zero T
		return zero, err
	}

	return h.nodes[n].value, nil
}

// Contains reports whether hd still designates an element of this heap.
func (h *Heap[T]) Contains(hd Handle) bool {
	_, err := h.resolve(hd)
	return err == nil
}

// Meld moves every element of other into h. other is left empty and all
// handles it issued become invalid; handles issued by h stay valid.
func (h *Heap[T]) Meld(other *Heap[T]) {
	if other == nil || other == h || other.count == 0 {
		return
	}

	offset := int32(len(h.nodes))
	shift := func(i int32) int32 {
		if i == nilIndex {
			return nilIndex
		}
		return i + offset
	}

	for i := range other.nodes {
		src := other.nodes[i]
		idx := offset + int32(i)
		h.nodes = append(h.nodes, node[T]{
			value:   src.value,
			parent:  shift(src.parent),
			child:   shift(src.child),
			sibling: shift(src.sibling),
			degree:  src.degree,
			handle:  nilIndex,
		})
		if src.handle == nilIndex {
			h.freeNodes = append(h.freeNodes, idx)
			continue
		}
		h.allocHandle(idx)
	}

	incoming := make([]int32, len(other.roots))
	for i, r := range other.roots {
		incoming[i] = r + offset
	}
	h.roots = h.merge(h.roots, incoming)
	h.count += other.count
	h.refreshMin()

	other.Clear()
}

// Clear removes every element. All outstanding handles become invalid.
func (h *Heap[T]) Clear() {
	h.id = heapIDs.Add(1)
	h.nodes = h.nodes[:0]
	h.freeNodes = h.freeNodes[:0]
	h.handles = h.handles[:0]
	h.freeHandles = h.freeHandles[:0]
	h.roots = nil
	h.minPos = -1
	h.count = 0
}
