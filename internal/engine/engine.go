// Package engine defines the columnar compute surface shared by the GPU and
// CPU engines: scalar reductions, sorting, and predicate filtering over flat
// float32 columns.
package engine

// Engine executes columnar analytic operations. Implementations are not
// required to be safe for concurrent use; callers needing parallelism create
// one engine per goroutine. All calls block until the result is available.
type Engine interface {
	// Sum returns the sum of values. Empty input sums to 0.
	Sum(values []float32) (float32, error)

	// Avg returns the arithmetic mean of values. Empty input averages to 0.
	Avg(values []float32) (float32, error)

	// MinMax returns the smallest and largest value. Empty input fails with
	// ErrEmptyResult: comparison reductions have no identity element.
	MinMax(values []float32) (min, max float32, err error)

	// Count reports the number of values.
	Count(values []float32) int

	// CountWhere reports how many values satisfy pred.
	CountWhere(values []float32, pred Predicate) (int, error)

	// Sort returns every value in sorted order. Equal values may be
	// reordered relative to each other.
	Sort(values []float32, ascending bool) ([]float32, error)

	// Filter returns the subsequence of values satisfying pred, in the
	// original relative order.
	Filter(values []float32, pred Predicate) ([]float32, error)

	// Name identifies the engine and its device.
	Name() string

	// Release frees device resources. The engine is unusable afterwards.
	Release()
}
