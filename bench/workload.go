package bench

import (
	"math/rand"
)

type WorkloadType string

const (
	OLTP      WorkloadType = "OLTP (90/10)"
	OLAP      WorkloadType = "OLAP (10/90)"
	Reporting WorkloadType = "Reporting (Range)"
)

// ExecuteWorkload drives idx with the given operation mix. The rng is
// caller-owned so runs are reproducible.
func ExecuteWorkload(idx Index, wType WorkloadType, ops int, rng *rand.Rand) error {
	for i := 0; i < ops; i++ {
		choice := rng.Intn(100)
		key := int64(rng.Intn(ops))

		switch wType {
		case OLTP:
			if choice < 90 {
				if _, err := idx.Get(key); err != nil {
					return err
				}
			} else if err := idx.Insert(key, []byte("x")); err != nil {
				return err
			}
		case OLAP:
			if choice < 10 {
				if _, err := idx.Get(key); err != nil {
					return err
				}
			} else if err := idx.Insert(key, []byte("x")); err != nil {
				return err
			}
		case Reporting:
			it, err := idx.Range(key, key+100)
			if err != nil {
				return err
			}
			for it.Next() {
			}
			if err := it.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
