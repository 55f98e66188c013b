// Package cache layers a read-through hot cache over the tree for
// point-lookup heavy workloads. The tree stays the source of truth;
// the cache only ever holds copies and every mutation invalidates the
// touched key before returning.
package cache

import (
	"fmt"
	"sync"

	bplus "bptree/bplustree"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	defaultMaxEntries = 1 << 16
	// Admission counters per the ristretto guideline of 10x max items.
	counterFactor = 10
)

// Index is a B+ tree with a ristretto front. Key types are limited to
// what ristretto can hash.
type Index[K ristretto.Key, V any] struct {
	mu   sync.RWMutex
	tree *bplus.BPlusTree[K, V]
	hot  *ristretto.Cache[K, V]
}

// New creates a cached index of the given order. maxEntries bounds the
// hot set; pass 0 for the default.
func New[K ristretto.Key, V any](order int, cmp bplus.CompareFunc[K], maxEntries int64) (*Index[K, V], error) {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	hot, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: maxEntries * counterFactor,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Index[K, V]{
		tree: bplus.New[K, V](order, cmp),
		hot:  hot,
	}, nil
}

// Get serves from the hot cache when it can, otherwise from the tree,
// populating the cache on the way out.
func (ix *Index[K, V]) Get(key K) (V, bool) {
	if v, ok := ix.hot.Get(key); ok {
		return v, true
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	v, ok := ix.tree.Search(key)
	if ok {
		// Populate while still holding the lock: a mutation's Del can
		// then never land between the tree read and this Set, which
		// would leave a deleted key served hot forever.
		ix.hot.Set(key, v, 1)
	}
	return v, ok
}

// Insert adds a new key. ErrDuplicateKey passes through from the tree.
func (ix *Index[K, V]) Insert(key K, value V) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ix.tree.Insert(key, value); err != nil {
		return err
	}
	ix.hot.Del(key)
	return nil
}

// Upsert writes key unconditionally and drops any cached copy.
func (ix *Index[K, V]) Upsert(key K, value V) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.tree.Upsert(key, value)
	ix.hot.Del(key)
}

// Delete removes key from the tree and the hot set.
func (ix *Index[K, V]) Delete(key K) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ix.tree.Delete(key); err != nil {
		return err
	}
	ix.hot.Del(key)
	return nil
}

// Range scans the tree directly; range reads do not populate the cache.
func (ix *Index[K, V]) Range(lo, hi K) []V {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Range(lo, hi)
}

// Len returns the number of entries in the tree.
func (ix *Index[K, V]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Len()
}

// Wait blocks until pending cache writes are applied. Tests use it to
// make admission deterministic.
func (ix *Index[K, V]) Wait() {
	ix.hot.Wait()
}

// Close releases the cache's internal goroutines. The index must not be
// used afterwards.
func (ix *Index[K, V]) Close() {
	ix.hot.Close()
}
