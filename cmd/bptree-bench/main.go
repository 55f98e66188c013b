// Benchmark runner: sweeps tree orders against a Pebble baseline, writes
// a CSV of latency/memory rows and a PNG latency chart.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"bptree/bench"
)

func main() {
	scale := flag.Int("n", 1_000_000, "keys loaded per index before workloads")
	seed := flag.Int64("seed", 1, "workload RNG seed")
	outDir := flag.String("out", "results", "output directory for CSV and PNG")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	csvPath := filepath.Join(*outDir, "bench.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := bench.WriteHeader(w); err != nil {
		log.Fatal(err)
	}

	var all []bench.Result

	for _, order := range []int{8, 32, 128} {
		name := "BPlusTree"
		fmt.Printf("Testing %s (order %d)\n", name, order)
		idx := bench.NewTree(order)
		results, err := bench.RunSuite(name, fmt.Sprint(order), idx, *scale, *seed)
		idx.Close()
		if err != nil {
			log.Fatal(err)
		}
		all = record(w, all, results)
	}

	lsmDir, err := os.MkdirTemp("", "bptree-bench-lsm")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(lsmDir)

	fmt.Println("Testing Pebble baseline")
	lsm, err := bench.OpenLSM(lsmDir)
	if err != nil {
		log.Fatal(err)
	}
	results, err := bench.RunSuite("Pebble", "default", lsm, *scale, *seed)
	if cerr := lsm.Close(); cerr != nil {
		log.Fatal(cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
	all = record(w, all, results)

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}

	pngPath := filepath.Join(*outDir, "latency.png")
	if err := bench.WritePlot(all, pngPath); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Benchmark complete: %s, %s\n", csvPath, pngPath)
}

func record(w *csv.Writer, all []bench.Result, results []bench.Result) []bench.Result {
	for _, r := range results {
		if err := bench.Record(w, r); err != nil {
			log.Fatal(err)
		}
	}
	return append(all, results...)
}
