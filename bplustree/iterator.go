package bplus

// Iterator provides a forward-only walk over the leaf chain in ascending
// key order. Any mutating tree operation invalidates outstanding
// iterators; results after that are undefined (documented contract).
type Iterator[K, V any] struct {
	leaf  *node[K, V]
	index int
	first bool
	key   K
	val   V
}

// NewIterator positions a cursor before the first entry of the tree.
// Use the Next-then-Key/Value pattern:
//
//	for it := tree.NewIterator(); it.Next(); {
//		_ = it.Key()
//	}
func (t *BPlusTree[K, V]) NewIterator() *Iterator[K, V] {
	return &Iterator[K, V]{leaf: leftmostLeaf(t.root), index: 0, first: true}
}

// SeekGE positions a cursor before the first entry with key >= target.
func (t *BPlusTree[K, V]) SeekGE(target K) *Iterator[K, V] {
	leaf := t.findLeaf(target)
	i := lowerBound(leaf.keys, target, t.cmp)
	return &Iterator[K, V]{leaf: leaf, index: i, first: true}
}

// Next advances the cursor and reports whether an entry is available.
// When a leaf is exhausted the cursor steps to leaf.next.
func (it *Iterator[K, V]) Next() bool {
	if it.leaf == nil {
		return false
	}
	if it.first {
		it.first = false
	} else {
		it.index++
	}
	for it.index >= len(it.leaf.keys) {
		it.leaf = it.leaf.next
		it.index = 0
		if it.leaf == nil {
			return false
		}
	}
	it.key = it.leaf.keys[it.index]
	it.val = it.leaf.vals[it.index]
	return true
}

// Key returns the entry the last successful Next stopped on.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value paired with Key.
func (it *Iterator[K, V]) Value() V { return it.val }

// Close invalidates the iterator. It is not required for resource
// cleanup; the cursor holds no allocations beyond itself.
func (it *Iterator[K, V]) Close() {
	it.leaf = nil
}
