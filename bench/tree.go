package bench

import (
	bplus "bptree/bplustree"
)

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Tree adapts the B+ tree to the harness interface.
type Tree struct {
	t *bplus.BPlusTree[int64, []byte]
}

// NewTree creates a tree index of the given order.
func NewTree(order int) *Tree {
	return &Tree{t: bplus.New[int64, []byte](order, cmpInt64)}
}

func (x *Tree) Insert(key int64, value []byte) error {
	x.t.Upsert(key, value)
	return nil
}

// Get returns nil when the key is absent, matching the baseline adapter.
func (x *Tree) Get(key int64) ([]byte, error) {
	v, ok := x.t.Search(key)
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (x *Tree) Delete(key int64) error {
	err := x.t.Delete(key)
	if err == bplus.ErrKeyNotFound {
		return nil
	}
	return err
}

func (x *Tree) Range(start, end int64) (Iterator, error) {
	return &treeIterator{it: x.t.SeekGE(start), end: end}, nil
}

func (x *Tree) Close() error {
	x.t.Clear()
	return nil
}

type treeIterator struct {
	it  *bplus.Iterator[int64, []byte]
	end int64
}

func (ti *treeIterator) Next() bool {
	if !ti.it.Next() {
		return false
	}
	if ti.it.Key() > ti.end {
		ti.it.Close()
		return false
	}
	return true
}

func (ti *treeIterator) Key() int64    { return ti.it.Key() }
func (ti *treeIterator) Value() []byte { return ti.it.Value() }
func (ti *treeIterator) Error() error  { return nil }
func (ti *treeIterator) Close() error {
	ti.it.Close()
	return nil
}
