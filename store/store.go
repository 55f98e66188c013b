// Package store wraps the generic tree as a byte-oriented key/value
// store: []byte keys under bytes.Compare, optional value compression,
// and a lock making it safe for concurrent callers. The tree itself
// stays single-threaded; all synchronization lives here.
package store

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	bplus "bptree/bplustree"
	"bptree/compression"
)

const DefaultOrder = 64

// Store is a concurrent byte-keyed view over a B+ tree.
// A nil Compressor stores values verbatim.
type Store struct {
	mu   sync.RWMutex
	tree *bplus.BPlusTree[[]byte, []byte]
	comp compression.Compressor

	written Memory // payload bytes accepted by Set
	read    Memory // payload bytes returned by Get
	deleted Memory // key bytes removed by Delete
}

// New creates a store. Compressor usually isn't needed for in-memory
// stores but pays off when values are large and repetitive. The variadic
// order overrides DefaultOrder.
func New(comp compression.Compressor, order ...int) *Store {
	o := DefaultOrder
	if len(order) > 0 {
		o = order[0]
	}
	return &Store{
		tree: bplus.New[[]byte, []byte](o, bytes.Compare),
		comp: comp,
	}
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := value
	if s.comp != nil {
		var err error
		if stored, err = s.comp.Compress(value); err != nil {
			return fmt.Errorf("store: compress value: %w", err)
		}
	}

	// The tree aliases the slices it is handed; copy so later caller
	// mutations cannot corrupt the index.
	s.tree.Upsert(bytes.Clone(key), bytes.Clone(stored))
	s.written += Memory(len(key) + len(value))
	return nil
}

// SetString is Set with a string key.
func (s *Store) SetString(key string, value []byte) error {
	return s.Set([]byte(key), value)
}

// Get returns the value stored under key, or (nil, false).
func (s *Store) Get(key []byte) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.tree.Search(key)
	if !ok {
		return nil, false
	}
	if s.comp != nil {
		dec, err := s.comp.Decompress(v)
		if err != nil {
			// A codec mismatch means the store was rebuilt with a
			// different compressor; surface it as a miss.
			return nil, false
		}
		v = dec
	}
	// Reads hold the shared lock, so the counter bumps atomically.
	atomic.AddUint64((*uint64)(&s.read), uint64(len(key)+len(v)))
	return v, true
}

// GetString is Get with a string key.
func (s *Store) GetString(key string) ([]byte, bool) {
	return s.Get([]byte(key))
}

// Delete removes key. It reports whether the key was present.
func (s *Store) Delete(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.Delete(key); err != nil {
		return false
	}
	s.deleted += Memory(len(key))
	return true
}

// Range returns the values of every key k with lo <= k <= hi, ascending.
func (s *Store) Range(lo, hi []byte) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw := s.tree.Range(lo, hi)
	if s.comp == nil {
		return raw, nil
	}
	out := make([][]byte, 0, len(raw))
	for _, v := range raw {
		dec, err := s.comp.Decompress(v)
		if err != nil {
			return nil, fmt.Errorf("store: decompress range value: %w", err)
		}
		out = append(out, dec)
	}
	return out, nil
}

// Len returns the number of live keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Stats returns the underlying tree's structural snapshot.
func (s *Store) Stats() bplus.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Stats()
}

// Check validates the underlying tree's structure.
func (s *Store) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.CheckInvariants()
}

// Written, Read and Deleted report accumulated payload traffic.
func (s *Store) Written() Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.written
}

func (s *Store) Deleted() Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deleted
}

func (s *Store) Read() Memory {
	return Memory(atomic.LoadUint64((*uint64)(&s.read)))
}

// Clear drops every entry and resets traffic counters.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
	s.written, s.read, s.deleted = 0, 0, 0
}
