package bplus

// splitInternal absorbs a child promotion (sep at pos, child at pos+1)
// into the full internal node, then splits the order+1 keys at
// s = (order+1)/2. The key at s is extracted and promoted — not copied —
// so it appears exactly once in the tree above the leaves. Left keeps
// keys[:s] and children[:s+1]; right takes the remainder.
func (t *BPlusTree[K, V]) splitInternal(n *node[K, V], pos int, sep K, child *node[K, V]) (K, *node[K, V]) {
	n.keys = insert(n.keys, pos, sep)
	n.children = insert(n.children, pos+1, child)

	s := (t.order + 1) / 2
	promoted := n.keys[s]

	right := t.newNode(NodeInternal)
	right.keys = append(right.keys, n.keys[s+1:]...)
	right.children = append(right.children, n.children[s+1:]...)

	var zeroK K
	for i := s; i < len(n.keys); i++ {
		n.keys[i] = zeroK
	}
	for i := s + 1; i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.keys = n.keys[:s]
	n.children = n.children[:s+1]

	t.debugSplit("internal", len(n.keys), len(right.keys))
	return promoted, right
}
