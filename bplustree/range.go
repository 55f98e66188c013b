package bplus

// Range returns, in ascending key order, every value whose key k satisfies
// lo <= k <= hi. The scan descends on lo, then walks the leaf chain and
// stops at the first key beyond hi. An inverted interval yields nil.
func (t *BPlusTree[K, V]) Range(lo, hi K) []V {
	if t.cmp(hi, lo) < 0 {
		return nil
	}

	var out []V
	leaf := t.findLeaf(lo)
	i := lowerBound(leaf.keys, lo, t.cmp)
	for leaf != nil {
		for ; i < len(leaf.keys); i++ {
			if t.cmp(leaf.keys[i], hi) > 0 {
				return out
			}
			out = append(out, leaf.vals[i])
		}
		leaf = leaf.next
		i = 0
	}
	return out
}
