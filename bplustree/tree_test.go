package bplus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func newIntTree(t *testing.T, order int) *BPlusTree[int, string] {
	t.Helper()
	tree := New[int, string](order, cmpInt)
	tree.SetLogger(zaptest.NewLogger(t))
	return tree
}

func TestNew(t *testing.T) {
	tree := New[int, string](4, cmpInt)
	require.NotNil(t, tree, "Expected a valid tree instance")
	assert.Equal(t, 4, tree.Order())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.Height(), "Empty tree is a single leaf level")
	require.NoError(t, tree.CheckInvariants())
}

func TestNew_OrderClamping(t *testing.T) {
	assert.Equal(t, DefaultOrder, New[int, int](0, cmpInt).Order(), "Order 0 selects the default")
	assert.Equal(t, MinOrder, New[int, int](1, cmpInt).Order(), "Tiny orders clamp up")
	assert.Equal(t, MinOrder, New[int, int](2, cmpInt).Order())
	assert.Equal(t, 3, New[int, int](3, cmpInt).Order())
}

func TestInsertAndSearch(t *testing.T) {
	tree := newIntTree(t, 4)

	require.NoError(t, tree.Insert(10, "ten"))
	require.NoError(t, tree.Insert(5, "five"))
	require.NoError(t, tree.Insert(20, "twenty"))

	v, ok := tree.Search(10)
	require.True(t, ok, "Expected to find key 10")
	assert.Equal(t, "ten", v)

	v, ok = tree.Search(5)
	require.True(t, ok)
	assert.Equal(t, "five", v)

	_, ok = tree.Search(15)
	assert.False(t, ok, "Expected miss for absent key")
	assert.True(t, tree.Has(20))
	assert.False(t, tree.Has(0))
	assert.Equal(t, 3, tree.Len())
}

func TestInsert_DuplicateKey(t *testing.T) {
	tree := newIntTree(t, 4)

	require.NoError(t, tree.Insert(1, "first"))
	err := tree.Insert(1, "second")
	require.ErrorIs(t, err, ErrDuplicateKey)

	v, ok := tree.Search(1)
	require.True(t, ok)
	assert.Equal(t, "first", v, "Failed insert must not overwrite")
	assert.Equal(t, 1, tree.Len(), "Failed insert must not change count")
}

func TestInsert_SequentialGrowth(t *testing.T) {
	tree := newIntTree(t, 4)

	for k := 1; k <= 10; k++ {
		require.NoError(t, tree.Insert(k, "v"))
		require.NoError(t, tree.CheckInvariants(), "after inserting %d", k)
	}

	assert.Equal(t, 10, tree.Len())
	assert.Equal(t, 2, tree.Height())

	// Sequential fill with order 4 splits at keys 5, 7 and 9, leaving a
	// three-separator root over four leaves.
	require.False(t, tree.root.isLeaf())
	assert.Equal(t, []int{3, 5, 7}, tree.root.keys)
	assert.Equal(t, []int{1, 2}, tree.root.children[0].keys)
	assert.Equal(t, []int{7, 8, 9, 10}, tree.root.children[3].keys)

	st := tree.Stats()
	assert.Equal(t, 10, st.Count)
	assert.Equal(t, 2, st.Height)
	assert.Equal(t, 5, st.NodeCount)
}

func TestInsert_ReverseAndMixedOrder(t *testing.T) {
	tree := newIntTree(t, 3)

	keys := []int{50, 10, 90, 30, 70, 20, 80, 40, 60, 100, 5, 95}
	for _, k := range keys {
		require.NoError(t, tree.Insert(k, "v"))
		require.NoError(t, tree.CheckInvariants(), "after inserting %d", k)
	}

	for _, k := range keys {
		assert.True(t, tree.Has(k), "key %d missing after build", k)
	}
	assert.Equal(t, len(keys), tree.Len())
}

func TestUpsert(t *testing.T) {
	tree := newIntTree(t, 4)

	tree.Upsert(7, "old")
	assert.Equal(t, 1, tree.Len(), "Upsert of a new key inserts")

	tree.Upsert(7, "new")
	assert.Equal(t, 1, tree.Len(), "Upsert of an existing key must not change count")

	v, ok := tree.Search(7)
	require.True(t, ok)
	assert.Equal(t, "new", v)

	// Overwrite deep in a multi-level tree.
	for k := 1; k <= 100; k++ {
		tree.Upsert(k, "v")
	}
	tree.Upsert(42, "answer")
	v, _ = tree.Search(42)
	assert.Equal(t, "answer", v)
	assert.Equal(t, 100, tree.Len())
	require.NoError(t, tree.CheckInvariants())
}

func TestClear(t *testing.T) {
	tree := newIntTree(t, 4)
	for k := 1; k <= 50; k++ {
		require.NoError(t, tree.Insert(k, "v"))
	}

	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.Height())
	assert.False(t, tree.Has(25))
	require.NoError(t, tree.CheckInvariants())

	// The tree remains usable after Clear.
	require.NoError(t, tree.Insert(1, "one"))
	assert.True(t, tree.Has(1))
}

func TestSharedFreeList(t *testing.T) {
	f := NewFreeList[int, int](16)
	t1 := NewWithFreeList(4, cmpInt, f)
	t2 := NewWithFreeList(4, cmpInt, f)

	for k := 0; k < 64; k++ {
		require.NoError(t, t1.Insert(k, k))
		require.NoError(t, t2.Insert(k, -k))
	}
	t1.Clear()

	// t2 is unaffected by t1's nodes cycling through the shared list.
	require.NoError(t, t2.CheckInvariants())
	v, ok := t2.Search(10)
	require.True(t, ok)
	assert.Equal(t, -10, v)
}

func TestDumpTo(t *testing.T) {
	tree := newIntTree(t, 4)

	var empty bytes.Buffer
	tree.DumpTo(&empty)
	assert.Contains(t, empty.String(), "(empty tree)")

	for k := 1; k <= 10; k++ {
		require.NoError(t, tree.Insert(k, "v"))
	}
	var buf bytes.Buffer
	tree.DumpTo(&buf)
	out := buf.String()
	assert.Contains(t, out, "order=4 count=10 height=2")
	assert.Contains(t, out, "INTERNAL")
	assert.Contains(t, out, "LEAF")
}
