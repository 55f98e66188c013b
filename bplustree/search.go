package bplus

// Search looks for a key and returns its value. The second return is
// false when the key is absent. No mutation, no allocation.
func (t *BPlusTree[K, V]) Search(key K) (V, bool) {
	leaf := t.findLeaf(key)
	i := lowerBound(leaf.keys, key, t.cmp)
	if i < len(leaf.keys) && t.cmp(key, leaf.keys[i]) == 0 {
		return leaf.vals[i], true
	}
	var zero V
	return zero, false
}

// Has reports whether key exists in the tree.
func (t *BPlusTree[K, V]) Has(key K) bool {
	_, ok := t.Search(key)
	return ok
}
