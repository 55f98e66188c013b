package bplus

// findLeaf descends from the root to the leaf whose key interval covers
// key, using the strict upper bound at each internal node.
func (t *BPlusTree[K, V]) findLeaf(key K) *node[K, V] {
	n := t.root
	for !n.isLeaf() {
		i := upperBound(n.keys, key, t.cmp)
		n = n.children[i]
	}
	return n
}

// pathEntry records one internal node and the child index taken through
// it during descent. The deletion engine replays this path bottom-up.
type pathEntry[K, V any] struct {
	node *node[K, V]
	idx  int
}

// findLeafPath is findLeaf recording the descent on stack. The stack is
// reused across calls by the caller; it grows as the tree grows.
func (t *BPlusTree[K, V]) findLeafPath(key K, stack []pathEntry[K, V]) (*node[K, V], []pathEntry[K, V]) {
	n := t.root
	for !n.isLeaf() {
		i := upperBound(n.keys, key, t.cmp)
		stack = append(stack, pathEntry[K, V]{node: n, idx: i})
		n = n.children[i]
	}
	return n, stack
}

// leftmostLeaf follows children[0] down to the first leaf of the subtree.
func leftmostLeaf[K, V any](n *node[K, V]) *node[K, V] {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n
}

// rightmostLeaf follows the last child down to the final leaf of the subtree.
func rightmostLeaf[K, V any](n *node[K, V]) *node[K, V] {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n
}
