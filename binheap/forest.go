// SPDX-License-Identifier: MIT

package binheap

// merge unions two root lists, each ordered by strictly increasing degree,
// in the manner of binary addition: at every degree the trees present from
// a, b and the running carry are combined so that at most one tree of that
// degree is emitted and at most one carry of the next degree survives.
func (h *Heap[T]) merge(a, b []int32) []int32 {
	out := make([]int32, 0, len(a)+len(b))
	carry := nilIndex

	var (
		i, j  int
		trees [3]int32
	)
	for i < len(a) || j < len(b) || carry != nilIndex {
		d := int32(-1)
		if carry != nilIndex {
			d = h.nodes[carry].degree
		}
		if i < len(a) && (d < 0 || h.nodes[a[i]].degree < d) {
			d = h.nodes[a[i]].degree
		}
		if j < len(b) && (d < 0 || h.nodes[b[j]].degree < d) {
			d = h.nodes[b[j]].degree
		}

		k := 0
		if carry != nilIndex && h.nodes[carry].degree == d {
			trees[k] = carry
			k++
			carry = nilIndex
		}
		if i < len(a) && h.nodes[a[i]].degree == d {
			trees[k] = a[i]
			k++
			i++
		}
		if j < len(b) && h.nodes[b[j]].degree == d {
			trees[k] = b[j]
			k++
			j++
		}

		switch k {
		case 1:
			out = append(out, trees[0])
		case 2:
			carry = h.link(trees[0], trees[1])
		case 3:
			out = append(out, trees[0])
			carry = h.link(trees[1], trees[2])
		}
	}

	return out
}

// link joins two trees of equal degree; the root ordering after the other
// becomes the first child. Returns the surviving root.
func (h *Heap[T]) link(x, y int32) int32 {
	if h.less(h.nodes[y].value, h.nodes[x].value) {
		x, y = y, x
	}

	h.nodes[y].parent = x
	h.nodes[y].sibling = h.nodes[x].child
	h.nodes[x].child = y
	h.nodes[x].degree++

	return x
}

// cutRoot detaches roots[pos], merges its children back into the forest,
// releases the node and its handle, and returns its value.
func (h *Heap[T]) cutRoot(pos int) T {
	r := h.roots[pos]

	rest := make([]int32, 0, len(h.roots)-1)
	rest = append(rest, h.roots[:pos]...)
	rest = append(rest, h.roots[pos+1:]...)

	// The child chain runs from highest to lowest degree; reverse it.
	children := make([]int32, h.nodes[r].degree)
	c := h.nodes[r].child
	for k := len(children) - 1; k >= 0; k-- {
		next := h.nodes[c].sibling
		h.nodes[c].parent = nilIndex
		h.nodes[c].sibling = nilIndex
		children[k] = c
		c = next
	}

	h.roots = h.merge(rest, children)
	h.count--

	v := h.nodes[r].value
	h.release(r)
	h.refreshMin()

	return v
}

// siftUp moves the payload of n towards its root while it orders before its
// parent, or unconditionally when force is set. Returns the node now holding
// the payload.
func (h *Heap[T]) siftUp(n int32, force bool) int32 {
	for p := h.nodes[n].parent; p != nilIndex; p = h.nodes[n].parent {
		if !force && !h.less(h.nodes[n].value, h.nodes[p].value) {
			break
		}
		h.swapPayload(n, p)
		n = p
	}

	return n
}

// swapPayload exchanges values between two nodes and re-points the handles
// so each one keeps following its own element.
func (h *Heap[T]) swapPayload(a, b int32) {
	na, nb := &h.nodes[a], &h.nodes[b]
	na.value, nb.value = nb.value, na.value
	na.handle, nb.handle = nb.handle, na.handle
	h.handles[na.handle].node = a
	h.handles[nb.handle].node = b
}

// refreshMin rescans the roots for the minimum.
func (h *Heap[T]) refreshMin() {
	h.minPos = -1
	for pos, r := range h.roots {
		if h.minPos < 0 || h.less(h.nodes[r].value, h.nodes[h.roots[h.minPos]].value) {
			h.minPos = pos
		}
	}
}
