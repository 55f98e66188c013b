package bplus

import "go.uber.org/zap"

// BulkLoad builds a tree from a pre-sorted, duplicate-free slice of pairs
// in a single bottom-up pass: pack leaves left to right, link the chain,
// then batch each level into parents until one node remains. The result
// answers every lookup identically to a tree built by sequential Insert.
//
// Returns ErrInvalidInput for an empty slice, a nil comparator, or input
// that is not strictly ascending.
func BulkLoad[K, V any](order int, cmp CompareFunc[K], pairs []Pair[K, V]) (*BPlusTree[K, V], error) {
	if cmp == nil || len(pairs) == 0 {
		return nil, ErrInvalidInput
	}
	for i := 1; i < len(pairs); i++ {
		if cmp(pairs[i-1].Key, pairs[i].Key) >= 0 {
			return nil, ErrInvalidInput
		}
	}

	t := New[K, V](order, cmp)
	t.freeNode(t.root) // discard the empty root leaf from New

	// Level 0: pack leaves at capacity, shrinking the second-to-last run
	// when the greedy tail would fall below the occupancy floor.
	var level []*node[K, V]
	for i := 0; i < len(pairs); {
		size := t.order
		rem := len(pairs) - i
		if rem <= t.order {
			size = rem
		} else if rem-t.order < t.minKeys {
			size = rem - t.minKeys
		}
		leaf := t.newNode(NodeLeaf)
		for _, p := range pairs[i : i+size] {
			leaf.keys = append(leaf.keys, p.Key)
			leaf.vals = append(leaf.vals, p.Value)
		}
		if len(level) > 0 {
			level[len(level)-1].next = leaf
		}
		level = append(level, leaf)
		i += size
	}

	// Upper levels: group runs of children under internal parents. Each
	// separator is the minimum key of the child to its right, recovered
	// by descending that child's leftmost spine.
	height := 1
	for len(level) > 1 {
		var parents []*node[K, V]
		for i := 0; i < len(level); {
			size := t.order
			rem := len(level) - i
			if rem <= t.order+1 {
				size = rem
			} else if rem-t.order < t.minKeys+1 {
				size = rem - (t.minKeys + 1)
			}
			p := t.newNode(NodeInternal)
			p.children = append(p.children, level[i:i+size]...)
			for j := 1; j < size; j++ {
				p.keys = append(p.keys, leftmostLeaf(level[i+j]).keys[0])
			}
			parents = append(parents, p)
			i += size
		}
		level = parents
		height++
	}

	t.root = level[0]
	t.height = height
	t.count = len(pairs)

	if t.logger != nil {
		t.logger.Debug("bulk load complete",
			zap.Int("entries", t.count),
			zap.Int("height", t.height))
	}
	return t, nil
}
