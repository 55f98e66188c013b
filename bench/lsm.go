package bench

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cockroachdb/pebble"
)

// LSM wraps Pebble behind the harness interface as the on-disk baseline
// the in-memory tree is compared against.
type LSM struct {
	db *pebble.DB
}

// OpenLSM opens (or creates) a Pebble database at dir.
func OpenLSM(dir string) (*LSM, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("lsm: open: %w", err)
	}
	return &LSM{db: db}, nil
}

func (l *LSM) Close() error {
	return l.db.Close()
}

func (l *LSM) Insert(key int64, value []byte) error {
	return l.db.Set(encodeKey(key), value, pebble.NoSync)
}

// Get returns nil when the key is absent.
func (l *LSM) Get(key int64) ([]byte, error) {
	val, closer, err := l.db.Get(encodeKey(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lsm: get: %w", err)
	}
	// val is only valid until closer.Close(), so copy it out.
	result := make([]byte, len(val))
	copy(result, val)
	closer.Close()
	return result, nil
}

func (l *LSM) Delete(key int64) error {
	if err := l.db.Delete(encodeKey(key), pebble.NoSync); err != nil {
		return fmt.Errorf("lsm: delete: %w", err)
	}
	return nil
}

// Range returns an iterator over [start, end] inclusive.
func (l *LSM) Range(start, end int64) (Iterator, error) {
	opts := &pebble.IterOptions{LowerBound: encodeKey(start)}
	if end < math.MaxInt64 {
		opts.UpperBound = encodeKey(end + 1) // pebble's bound is exclusive
	}
	iter, err := l.db.NewIter(opts)
	if err != nil {
		return nil, fmt.Errorf("lsm: range: %w", err)
	}
	iter.First()
	return &lsmIterator{iter: iter, first: true}, nil
}

// signBias flips the sign bit so big-endian byte order matches signed
// key order; without it negative keys sort after positive ones.
const signBias = uint64(1) << 63

func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^signBias)
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ signBias)
}

type lsmIterator struct {
	iter  *pebble.Iterator
	first bool
	key   int64
	val   []byte
	err   error
}

func (it *lsmIterator) Next() bool {
	var valid bool
	if it.first {
		it.first = false
		valid = it.iter.Valid()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		return false
	}
	k := it.iter.Key()
	if len(k) != 8 {
		it.err = fmt.Errorf("lsm: unexpected key length %d", len(k))
		return false
	}
	it.key = decodeKey(k)
	// Pebble reuses the value buffer on Next.
	v := it.iter.Value()
	it.val = make([]byte, len(v))
	copy(it.val, v)
	return true
}

func (it *lsmIterator) Key() int64    { return it.key }
func (it *lsmIterator) Value() []byte { return it.val }
func (it *lsmIterator) Error() error  { return it.err }
func (it *lsmIterator) Close() error  { return it.iter.Close() }
