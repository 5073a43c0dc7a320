// Package cpu implements the columnar compute engine on the host. It is the
// fallback when no GPU device is available and the correctness oracle for
// the GPU engine's tests.
package cpu

import (
	"sort"

	"github.com/quarrydb/quarry/internal/engine"
)

// Engine computes every operation with sequential host scans. Stateless,
// safe to share, nothing to release.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New returns a host engine.
func New() *Engine {
	return &Engine{}
}

func (e *Engine) Sum(values []float32) (float32, error) {
	var acc float32
	for _, v := range values {
		acc += v
	}
	return acc, nil
}

func (e *Engine) Avg(values []float32) (float32, error) {
	if len(values) == 0 {
		return 0, nil
	}
	sum, _ := e.Sum(values)
	return sum / float32(len(values)), nil
}

func (e *Engine) MinMax(values []float32) (min, max float32, err error) {
	if len(values) == 0 {
		return 0, 0, engine.E("MinMax", engine.ErrEmptyResult, nil)
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, nil
}

func (e *Engine) Count(values []float32) int {
	return len(values)
}

func (e *Engine) CountWhere(values []float32, pred engine.Predicate) (int, error) {
	matched, err := e.Filter(values, pred)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// Sort uses a host comparison sort. Same total order as the bitonic network.
func (e *Engine) Sort(values []float32, ascending bool) ([]float32, error) {
	out := make([]float32, len(values))
	copy(out, values)
	if ascending {
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	}
	return out, nil
}

func (e *Engine) Filter(values []float32, pred engine.Predicate) ([]float32, error) {
	out := make([]float32, 0, len(values))
	for _, v := range values {
		if pred.Matches(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (e *Engine) Name() string { return "CPU" }

func (e *Engine) Release() {}
