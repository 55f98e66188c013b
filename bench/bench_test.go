package bench

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexContract exercises the harness interface on any implementation.
func indexContract(t *testing.T, idx Index) {
	t.Helper()

	require.NoError(t, idx.Insert(1, []byte("one")))
	require.NoError(t, idx.Insert(2, []byte("two")))
	require.NoError(t, idx.Insert(1, []byte("uno")), "Insert is an upsert")

	v, err := idx.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), v)

	v, err = idx.Get(99)
	require.NoError(t, err)
	assert.Nil(t, v, "Absent key reads as nil")

	for k := int64(3); k <= 20; k++ {
		require.NoError(t, idx.Insert(k, []byte("v")))
	}
	it, err := idx.Range(5, 10)
	require.NoError(t, err)
	var keys []int64
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.NoError(t, it.Error())
	require.NoError(t, it.Close())
	assert.Equal(t, []int64{5, 6, 7, 8, 9, 10}, keys)

	require.NoError(t, idx.Delete(2))
	v, err = idx.Get(2)
	require.NoError(t, err)
	assert.Nil(t, v)
	require.NoError(t, idx.Delete(2), "Deleting an absent key is a no-op")
}

func TestTreeIndexContract(t *testing.T) {
	idx := NewTree(16)
	defer idx.Close()
	indexContract(t, idx)
}

func TestLSMIndexContract(t *testing.T) {
	idx, err := OpenLSM(filepath.Join(t.TempDir(), "pebble"))
	require.NoError(t, err)
	defer idx.Close()
	indexContract(t, idx)
}

func TestLSMNegativeKeyOrdering(t *testing.T) {
	idx, err := OpenLSM(filepath.Join(t.TempDir(), "pebble"))
	require.NoError(t, err)
	defer idx.Close()

	for k := int64(-5); k <= 5; k++ {
		require.NoError(t, idx.Insert(k, []byte("v")))
	}

	it, err := idx.Range(-3, 2)
	require.NoError(t, err)
	var keys []int64
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.NoError(t, it.Error())
	require.NoError(t, it.Close())
	assert.Equal(t, []int64{-3, -2, -1, 0, 1, 2}, keys,
		"negative keys must sort before positive ones")

	v, err := idx.Get(-4)
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestLSMRangeToMaxInt64(t *testing.T) {
	idx, err := OpenLSM(filepath.Join(t.TempDir(), "pebble"))
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.Insert(1, []byte("a")))
	require.NoError(t, idx.Insert(math.MaxInt64, []byte("b")))

	it, err := idx.Range(0, math.MaxInt64)
	require.NoError(t, err)
	var keys []int64
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.NoError(t, it.Error())
	require.NoError(t, it.Close())
	assert.Equal(t, []int64{1, math.MaxInt64}, keys,
		"an upper bound at the key-space maximum must not wrap")
}

func TestExecuteWorkloads(t *testing.T) {
	idx := NewTree(32)
	defer idx.Close()

	rng := rand.New(rand.NewSource(3))
	for k := int64(0); k < 500; k++ {
		require.NoError(t, idx.Insert(k, []byte("v")))
	}
	for _, w := range []WorkloadType{OLTP, OLAP, Reporting} {
		require.NoError(t, ExecuteWorkload(idx, w, 200, rng))
	}
}

func TestRunSuiteAndReport(t *testing.T) {
	idx := NewTree(32)
	defer idx.Close()

	results, err := RunSuite("BPlusTree", "32", idx, 2000, 1)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "Footprint_SteadyState", results[0].Operation)

	png := filepath.Join(t.TempDir(), "latency.png")
	require.NoError(t, WritePlot(results, png))
	assert.FileExists(t, png)
}
