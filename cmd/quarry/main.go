// Package main provides the quarry demo CLI: it seeds a sample table,
// pulls a column through the store, and times every engine operation.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/quarrydb/quarry/engine"
	"github.com/quarrydb/quarry/store"
)

const version = "v0.1.0-dev"

const (
	sampleTable  = "measurements"
	sampleColumn = "value"
	sampleRows   = 100000
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("quarry %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "bench" {
		dbPath := ":memory:"
		if len(os.Args) > 2 {
			dbPath = os.Args[2]
		}
		if err := runBench(dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "bench failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("quarry - GPU-offloaded columnar analytics")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  bench [db-path]   Seed a sample table and time every operation")
}

func runBench(dbPath string) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := seed(db); err != nil {
		return err
	}

	start := time.Now()
	values, err := db.QueryValues(sampleTable, sampleColumn)
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d values from %s.%s in %.2fms\n",
		len(values), sampleTable, sampleColumn,
		float64(time.Since(start).Microseconds())/1000)

	eng := engine.NewCPU()
	if engine.GPUAvailable() {
		if gpu, gpuErr := engine.NewGPU(); gpuErr == nil {
			eng = gpu
		} else {
			fmt.Printf("GPU unavailable, using CPU: %v\n", gpuErr)
		}
	}
	defer eng.Release()
	fmt.Printf("Engine: %s\n\n", eng.Name())

	fmt.Printf("%-24s %12s %16s\n", "Operation", "Time (ms)", "Result")

	// Keep going past individual failures and report them together.
	var benchErr error

	benchErr = multierr.Append(benchErr, timed("sum", func() (string, error) {
		v, err := eng.Sum(values)
		return fmt.Sprintf("%.2f", v), err
	}))
	benchErr = multierr.Append(benchErr, timed("avg", func() (string, error) {
		v, err := eng.Avg(values)
		return fmt.Sprintf("%.4f", v), err
	}))
	benchErr = multierr.Append(benchErr, timed("min/max", func() (string, error) {
		lo, hi, err := eng.MinMax(values)
		return fmt.Sprintf("%.4f .. %.4f", lo, hi), err
	}))
	benchErr = multierr.Append(benchErr, timed("count", func() (string, error) {
		return fmt.Sprintf("%d", eng.Count(values)), nil
	}))
	benchErr = multierr.Append(benchErr, timed("count where > 0.5", func() (string, error) {
		n, err := eng.CountWhere(values, engine.Predicate{Op: engine.GT, Threshold: 0.5})
		return fmt.Sprintf("%d", n), err
	}))
	benchErr = multierr.Append(benchErr, timed("sort ascending", func() (string, error) {
		sorted, err := eng.Sort(values, true)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("first=%.4f last=%.4f", sorted[0], sorted[len(sorted)-1]), nil
	}))
	benchErr = multierr.Append(benchErr, timed("filter > 0.9", func() (string, error) {
		matched, err := eng.Filter(values, engine.Predicate{Op: engine.GT, Threshold: 0.9})
		return fmt.Sprintf("%d matches", len(matched)), err
	}))

	return benchErr
}

// timed runs one operation, prints its wall time and result line, and
// returns its error, if any.
func timed(name string, op func() (string, error)) error {
	start := time.Now()
	result, err := op()
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		fmt.Printf("%-24s %12.2f %16s\n", name, elapsed, "FAILED")
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Printf("%-24s %12.2f %16s\n", name, elapsed, result)
	return nil
}

// seed creates the sample table and fills it when empty.
func seed(db *store.Store) error {
	err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + sampleTable + ` (
		id INTEGER PRIMARY KEY,
		value REAL
	)`)
	if err != nil {
		return err
	}

	existing, err := db.QueryValues(sampleTable, sampleColumn)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < sampleRows; i++ {
		if err := db.Exec("INSERT INTO "+sampleTable+" (value) VALUES (?)", rng.Float64()); err != nil {
			return err
		}
	}
	return nil
}
