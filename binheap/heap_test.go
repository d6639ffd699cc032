// SPDX-License-Identifier: MIT

package binheap_test

import (
	"math/bits"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/binheap"
)

const stressN = 10000

func TestInsert_TreeCountMatchesPopcount(t *testing.T) {
	h := binheap.NewOrdered[int]()

	for i := 0; i <= stressN; i++ {
		h.Insert(i)
		require.Equal(t, bits.OnesCount(uint(i+1)), h.Trees(), "after %d inserts", i+1)
		if i%997 == 0 {
			require.NoError(t, h.Validate())
		}
	}
	require.NoError(t, h.Validate())
	assert.Equal(t, stressN+1, h.Len())
}

func TestDecrementKey_EveryHandleByOne(t *testing.T) {
	h := binheap.NewOrdered[int]()
	handles := make([]binheap.Handle, 0, stressN+1)
	for i := 0; i <= stressN; i++ {
		handles = append(handles, h.Insert(i))
	}

	for i, hd := range handles {
		require.NoError(t, h.DecrementKey(hd, i-1))
	}
	require.NoError(t, h.Validate())

	for i := 0; i <= stressN; i++ {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, i-1, v)
	}
	assert.Zero(t, h.Len())
}

func TestDecrementKey_RandomStress(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	h := binheap.NewOrdered[int]()

	series := rnd.Perm(stressN - 1)
	handles := make([]binheap.Handle, 0, len(series))
	for _, v := range series {
		handles = append(handles, h.Insert(v))
	}

	first, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, 0, first)

	expected := make([]int, 0, len(handles))
	for _, hd := range handles {
		cur, err := h.Value(hd)
		if err != nil {
			// the extracted minimum
			require.ErrorIs(t, err, binheap.ErrInvalidHandle)
			continue
		}
		next := cur - rnd.Intn(1000)
		require.NoError(t, h.DecrementKey(hd, next))
		expected = append(expected, next)
	}
	require.NoError(t, h.Validate())
	slices.Sort(expected)

	for _, want := range expected {
		got, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err = h.ExtractMin()
	assert.ErrorIs(t, err, binheap.ErrEmptyHeap)
}

func TestExtractMin_MonotonicOverMultiset(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	h := binheap.NewOrdered[int]()

	values := make([]int, 777)
	for i := range values {
		values[i] = rnd.Intn(50) - 25
		h.Insert(values[i])
	}
	slices.Sort(values)

	for i, want := range values {
		got, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, want, got)
		if i%50 == 0 {
			require.NoError(t, h.Validate())
		}
	}
}

func TestEmptyHeap(t *testing.T) {
	h := binheap.NewOrdered[float64]()

	_, err := h.PeekMin()
	assert.ErrorIs(t, err, binheap.ErrEmptyHeap)
	_, err = h.ExtractMin()
	assert.ErrorIs(t, err, binheap.ErrEmptyHeap)

	// failures never corrupt state
	h.Insert(1.5)
	v, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, 1, h.Len())
	require.NoError(t, h.Validate())
}

func TestPeekMin_TracksDecrementOnRoot(t *testing.T) {
	h := binheap.NewOrdered[int]()
	a := h.Insert(10)
	h.Insert(20)
	h.Insert(30)

	// a is already a root, so no sift happens; the cached minimum must
	// still be refreshed
	require.NoError(t, h.DecrementKey(a, 1))
	v, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestHandles_StaleAndForeign(t *testing.T) {
	h := binheap.NewOrdered[int]()
	other := binheap.NewOrdered[int]()

	a := h.Insert(5)
	_, err := h.ExtractMin()
	require.NoError(t, err)

	assert.False(t, h.Contains(a))
	assert.ErrorIs(t, h.DecrementKey(a, 1), binheap.ErrInvalidHandle)

	// the freed slot is reused, the stale handle must not alias it
	b := h.Insert(9)
	assert.ErrorIs(t, h.DecrementKey(a, 1), binheap.ErrInvalidHandle)
	v, err := h.Value(b)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	assert.ErrorIs(t, other.DecrementKey(b, 1), binheap.ErrInvalidHandle)
	assert.False(t, h.Contains(binheap.Handle{}))

	_, err = h.Remove(a)
	assert.ErrorIs(t, err, binheap.ErrInvalidHandle)
}

func TestDecrementKey_RejectsIncrease(t *testing.T) {
	h := binheap.NewOrdered[int]()
	a := h.Insert(3)
	h.Insert(4)

	assert.ErrorIs(t, h.DecrementKey(a, 8), binheap.ErrKeyIncreased)
	v, _ := h.Value(a)
	assert.Equal(t, 3, v)

	// equal key is allowed
	require.NoError(t, h.DecrementKey(a, 3))
	require.NoError(t, h.Validate())
}

func TestHandles_FollowTheirElement(t *testing.T) {
	h := binheap.NewOrdered[int]()
	handles := make([]binheap.Handle, 8)
	for i := range handles {
		handles[i] = h.Insert(10 * (i + 1))
	}
	require.Equal(t, 1, h.Trees())

	// lower siblings and descendants repeatedly so payloads migrate across slots
	require.NoError(t, h.DecrementKey(handles[7], 5))
	require.NoError(t, h.DecrementKey(handles[6], 4))
	require.NoError(t, h.DecrementKey(handles[5], 3))
	require.NoError(t, h.DecrementKey(handles[7], 1))
	require.NoError(t, h.Validate())

	want := []int{10, 20, 30, 40, 50, 3, 4, 1}
	for i, hd := range handles {
		v, err := h.Value(hd)
		require.NoError(t, err)
		assert.Equal(t, want[i], v, "handle %d", i)
	}

	got, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.False(t, h.Contains(handles[7]))
	assert.True(t, h.Contains(handles[6]))
}

func TestRemove(t *testing.T) {
	h := binheap.NewOrdered[int]()
	handles := make([]binheap.Handle, 100)
	for i := range handles {
		handles[i] = h.Insert(i)
	}

	for i := 0; i < 100; i += 2 {
		v, err := h.Remove(handles[i])
		require.NoError(t, err)
		require.Equal(t, i, v)
		require.NoError(t, h.Validate())
	}
	assert.Equal(t, 50, h.Len())

	for i := 1; i < 100; i += 2 {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestMeld(t *testing.T) {
	a := binheap.NewOrdered[int]()
	b := binheap.NewOrdered[int]()

	var ha []binheap.Handle
	for _, v := range []int{9, 3, 7, 1, 5} {
		ha = append(ha, a.Insert(v))
	}
	var hb []binheap.Handle
	for _, v := range []int{8, 2, 6, 0, 4, 10} {
		hb = append(hb, b.Insert(v))
	}
	// leave a freed slot behind in b
	_, err := b.Remove(hb[5])
	require.NoError(t, err)

	a.Meld(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, bits.OnesCount(10), a.Trees())
	assert.Zero(t, b.Len())
	assert.False(t, b.Contains(hb[0]))
	assert.False(t, a.Contains(hb[0]))

	// receiver handles survive the meld
	require.NoError(t, a.DecrementKey(ha[0], -1))

	var out []int
	for a.Len() > 0 {
		v, err := a.ExtractMin()
		require.NoError(t, err)
		out = append(out, v)
	}
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8}, out)

	// self- and empty-meld are no-ops
	a.Insert(1)
	a.Meld(a)
	a.Meld(binheap.NewOrdered[int]())
	assert.Equal(t, 1, a.Len())
}

func TestClear(t *testing.T) {
	h := binheap.NewOrdered[string]()
	hd := h.Insert("x")
	h.Clear()

	assert.Zero(t, h.Len())
	assert.False(t, h.Contains(hd))
	h.Insert("y")
	assert.False(t, h.Contains(hd), "handles issued before Clear stay invalid")
}

func TestNew_CustomOrder(t *testing.T) {
	type item struct {
		name string
		prio int
	}
	h := binheap.New(func(a, b item) bool { return a.prio > b.prio })
	h.Insert(item{"low", 1})
	h.Insert(item{"high", 9})
	h.Insert(item{"mid", 5})

	top, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "high", top.name)

	assert.Panics(t, func() { binheap.New[int](nil) })
}
