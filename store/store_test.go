package store

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"bptree/compression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	s := New(nil)

	require.NoError(t, s.Set([]byte("key"), []byte("value")))
	v, ok := s.Get([]byte("key"))
	require.True(t, ok, "Expected to find key")
	assert.Equal(t, []byte("value"), v)

	_, ok = s.Get([]byte("nonexistent"))
	assert.False(t, ok, "Expected miss for absent key")

	assert.True(t, s.Delete([]byte("key")))
	assert.False(t, s.Delete([]byte("key")), "Second delete must report absence")
	_, ok = s.Get([]byte("key"))
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	s := New(nil)

	require.NoError(t, s.SetString("k", []byte("old")))
	require.NoError(t, s.SetString("k", []byte("new")))

	v, ok := s.GetString("k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), v)
	assert.Equal(t, 1, s.Len(), "Overwrite must not grow the store")
}

func TestCallerCannotCorruptIndex(t *testing.T) {
	s := New(nil)

	key := []byte("stable")
	val := []byte("payload")
	require.NoError(t, s.Set(key, val))

	key[0] = 'X'
	val[0] = 'X'

	v, ok := s.Get([]byte("stable"))
	require.True(t, ok, "Stored key must be independent of the caller's slice")
	assert.Equal(t, []byte("payload"), v)
}

func TestCompressedRoundTrip(t *testing.T) {
	for name, comp := range compression.Compressors {
		t.Run(name, func(t *testing.T) {
			s := New(comp)
			payload := bytes.Repeat([]byte("lorem ipsum "), 512)

			require.NoError(t, s.SetString("doc", payload))
			v, ok := s.GetString("doc")
			require.True(t, ok)
			assert.Equal(t, payload, v)
		})
	}
}

func TestRange(t *testing.T) {
	s := New(compression.NewSnappyCompressor())
	for i := 0; i < 10; i++ {
		k := fmt.Sprintf("k%02d", i)
		require.NoError(t, s.SetString(k, []byte(k)))
	}

	got, err := s.Range([]byte("k03"), []byte("k06"))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []byte("k03"), got[0])
	assert.Equal(t, []byte("k06"), got[3])
}

func TestStatsAndCheck(t *testing.T) {
	s := New(nil, 4)
	for i := 0; i < 100; i++ {
		require.NoError(t, s.SetString(fmt.Sprintf("key-%03d", i), []byte("v")))
	}

	st := s.Stats()
	assert.Equal(t, 100, st.Count)
	assert.Greater(t, st.Height, 1)
	require.NoError(t, s.Check())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, Memory(0), s.Written())
	require.NoError(t, s.Check())
}

func TestMemoryAccounting(t *testing.T) {
	s := New(nil)

	require.NoError(t, s.Set([]byte("abc"), []byte("defgh"))) // 8 bytes in
	assert.Equal(t, uint64(8), s.Written().Bytes())

	_, ok := s.Get([]byte("abc")) // 8 bytes out
	require.True(t, ok)
	assert.Equal(t, uint64(8), s.Read().Bytes())

	require.True(t, s.Delete([]byte("abc")))
	assert.Equal(t, uint64(3), s.Deleted().Bytes())

	assert.Contains(t, s.Written().String(), "Bytes")
}

func TestMemoryUnits(t *testing.T) {
	assert.Equal(t, 1024.0, Memory(1<<20).KiB())
	assert.Equal(t, 1.0, Memory(1<<20).MiB())
	assert.Equal(t, 0.5, Memory(1<<29).GiB())
	assert.Equal(t, 2.0, Memory(1<<41).TiB())
	assert.Equal(t, uint64(1<<20), Memory(1<<20).Bytes())
}

func TestConcurrentAccess(t *testing.T) {
	s := New(nil, 8)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := fmt.Sprintf("w%d-%04d", w, i)
				assert.NoError(t, s.SetString(k, []byte(k)))
				_, _ = s.GetString(k)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 8*200, s.Len())
	require.NoError(t, s.Check())
}

func TestConcurrentCounterReads(t *testing.T) {
	s := New(nil, 8)

	done := make(chan struct{})
	var poller sync.WaitGroup
	poller.Add(1)
	go func() { // poll the traffic counters while writers run
		defer poller.Done()
		for {
			select {
			case <-done:
				return
			default:
				_ = s.Written()
				_ = s.Read()
				_ = s.Deleted()
			}
		}
	}()

	var writers sync.WaitGroup
	for w := 0; w < 4; w++ {
		writers.Add(1)
		go func(w int) {
			defer writers.Done()
			for i := 0; i < 500; i++ {
				k := fmt.Sprintf("c%d-%04d", w, i)
				assert.NoError(t, s.SetString(k, []byte("v")))
				_, _ = s.GetString(k)
				s.Delete([]byte(k))
			}
		}(w)
	}
	writers.Wait()
	close(done)
	poller.Wait()

	assert.Equal(t, 0, s.Len())
	// 2000 sets of a 7-byte key and 1-byte value.
	assert.Equal(t, uint64(2000*8), s.Written().Bytes())
	assert.Equal(t, uint64(2000*7), s.Deleted().Bytes())
}
