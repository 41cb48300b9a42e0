// Package main — cmd/ggsnode-bench/main.go
//
// Sparse update production throughput benchmark.
//
// Method:
//  1. Builds an inference engine of the requested dimension and blends a
//     uniform random dense snapshot into its parameters.
//  2. Repeatedly calls MakeSparseUpdate(k), timing each call with
//     time.Now() before and after.
//  3. Results are written to a CSV file.
//
// Output CSV columns: iteration, latency_us, encoded_bytes
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
	"github.com/ggs-net/ggsnode/internal/inference"
)

func main() {
	iterations := flag.Int("iterations", 1000, "Number of MakeSparseUpdate calls to measure")
	dim := flag.Int("dim", 4096, "Model dimension")
	k := flag.Int("k", 64, "Top-k sparsity budget per update")
	outputFile := flag.String("output", "sparse_latency.csv", "Output CSV file path")
	flag.Parse()

	engine := inference.NewRandom(*dim, nil)
	seedResidual(engine, *dim)

	f, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	_ = w.Write([]string{"iteration", "latency_us", "encoded_bytes"})

	var totalUs int64
	for i := 0; i < *iterations; i++ {
		start := time.Now()
		update := engine.MakeSparseUpdate(*k)
		latency := time.Since(start)

		encoded := encodedSize(update)
		totalUs += latency.Microseconds()

		_ = w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatInt(latency.Microseconds(), 10),
			strconv.Itoa(encoded),
		})

		// Re-perturb the parameters so successive calls have real work to do.
		seedResidual(engine, *dim)
	}

	avgUs := float64(totalUs) / float64(*iterations)
	fmt.Printf("Sparse Update Production Benchmark (%d iterations, dim=%d, k=%d)\n", *iterations, *dim, *k)
	fmt.Printf("  avg latency: %.1fus\n", avgUs)
	fmt.Printf("  output: %s\n", *outputFile)
}

// seedResidual blends a uniform random dense snapshot into the parameters,
// so params+residual (what MakeSparseUpdate selects from) carries fresh
// large entries; the residual itself is untouched, since the Engine
// exposes no residual setter outside the sparse/dense update path.
func seedResidual(e *inference.Engine, dim int) {
	values := make([]float32, dim)
	for i := range values {
		values[i] = float32(rand.Float64()*2 - 1)
	}
	e.ApplyDenseSnapshot(ggstypes.TensorSnapshot{Dim: uint64(dim), Values: values, Version: e.Version() + 1})
}

func encodedSize(u ggstypes.SparseUpdate) int {
	// 4 bytes per value plus a variable-length delta-encoded index byte
	// per entry, approximated at 2 bytes/index for reporting purposes.
	return len(u.Values)*4 + len(u.Indices)*2
}
