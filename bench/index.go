// Package bench compares the B+ tree against a baseline storage engine
// under mixed read/write/scan workloads and renders the results.
package bench

// Index is the common surface the harness drives. Insert has upsert
// semantics so workloads can hammer the same key space freely.
type Index interface {
	Insert(key int64, value []byte) error
	Get(key int64) ([]byte, error)
	Delete(key int64) error
	Range(start, end int64) (Iterator, error)
	Close() error
}

// Iterator scans a key range in ascending order.
type Iterator interface {
	Next() bool
	Key() int64
	Value() []byte
	Error() error
	Close() error
}
