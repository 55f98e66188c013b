package bench

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"time"
)

// Result is one measured row of a suite run.
type Result struct {
	Name      string
	Config    string
	Operation string
	LatencyNs int64
	MemMB     uint64
	Objects   uint64
}

type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// SampleMem forces a GC first so the numbers reflect live data rather
// than garbage awaiting collection.
func SampleMem() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

// WriteHeader emits the CSV column row matching Record.
func WriteHeader(w *csv.Writer) error {
	return w.Write([]string{"Structure", "Config", "TestType", "LatencyNs", "MemMB", "HeapObjects"})
}

// Record appends one result row to the CSV.
func Record(w *csv.Writer, res Result) error {
	return w.Write([]string{
		res.Name,
		res.Config,
		res.Operation,
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.MemMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
}

// RunSuite loads n sequential keys into idx, samples the footprint, then
// runs the three workloads and returns the measured rows.
func RunSuite(name, config string, idx Index, n int, seed int64) ([]Result, error) {
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	for k := 0; k < n; k++ {
		if err := idx.Insert(int64(k), []byte("v")); err != nil {
			return nil, fmt.Errorf("bench: load %s: %w", name, err)
		}
	}
	insertLatency := time.Since(start).Nanoseconds() / int64(n)

	stats := SampleMem()
	results := []Result{{
		Name:      name,
		Config:    config,
		Operation: "Footprint_SteadyState",
		LatencyNs: insertLatency,
		MemMB:     stats.AllocMB,
		Objects:   stats.HeapObjects,
	}}

	for _, w := range []struct {
		wType WorkloadType
		op    string
		ops   int
	}{
		{OLTP, "Workload_OLTP", n / 2},
		{OLAP, "Workload_OLAP", n / 2},
		{Reporting, "Workload_Range", 100},
	} {
		start = time.Now()
		if err := ExecuteWorkload(idx, w.wType, w.ops, rng); err != nil {
			return nil, fmt.Errorf("bench: %s on %s: %w", w.op, name, err)
		}
		results = append(results, Result{
			Name:      name,
			Config:    config,
			Operation: w.op,
			LatencyNs: time.Since(start).Nanoseconds() / int64(w.ops),
			MemMB:     SampleMem().AllocMB,
		})
	}
	return results, nil
}
