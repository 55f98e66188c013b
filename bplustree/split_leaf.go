package bplus

// splitLeaf inserts (key, value) at pos into the full leaf, then splits
// the resulting order+1 entries at s = (order+1)/2. The original leaf
// keeps the first s entries; the new right sibling takes the rest and is
// spliced into the leaf chain. The promoted separator is the right
// sibling's first key.
func (t *BPlusTree[K, V]) splitLeaf(leaf *node[K, V], pos int, key K, value V) (K, *node[K, V]) {
	leaf.keys = insert(leaf.keys, pos, key)
	leaf.vals = insert(leaf.vals, pos, value)

	s := (t.order + 1) / 2

	right := t.newNode(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[s:]...)
	right.vals = append(right.vals, leaf.vals[s:]...)
	right.next = leaf.next // right inherits leaf's old next pointer
	leaf.next = right

	// Truncate and clear the moved tail so the free list never pins values.
	var zeroK K
	var zeroV V
	for i := s; i < len(leaf.keys); i++ {
		leaf.keys[i] = zeroK
		leaf.vals[i] = zeroV
	}
	leaf.keys = leaf.keys[:s]
	leaf.vals = leaf.vals[:s]

	t.debugSplit("leaf", len(leaf.keys), len(right.keys))
	return right.keys[0], right
}
