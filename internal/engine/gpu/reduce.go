//go:build windows

package gpu

import (
	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/quarrydb/quarry/internal/engine"
)

// Scalar reductions. Each kernel folds the whole input inside a single
// execution lane, so the accumulation order matches a sequential host scan.

// Sum returns the sum of values. Empty input sums to 0 without a dispatch.
func (e *Engine) Sum(values []float32) (float32, error) {
	if len(values) == 0 {
		return 0, nil
	}
	return e.runScalarReduce(kernelSumReduce, values)
}

// Avg returns Sum(values) / len(values), with the division on the host.
// Empty input averages to 0.
func (e *Engine) Avg(values []float32) (float32, error) {
	if len(values) == 0 {
		return 0, nil
	}
	sum, err := e.Sum(values)
	if err != nil {
		return 0, err
	}
	return sum / float32(len(values)), nil
}

// Count reports the number of values.
func (e *Engine) Count(values []float32) int {
	return len(values)
}

// CountWhere reports how many values satisfy pred. Delegates to Filter.
func (e *Engine) CountWhere(values []float32, pred engine.Predicate) (int, error) {
	matched, err := e.Filter(values, pred)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// MinMax returns the smallest and largest value. The two reductions are
// submitted as independent commands against the same read-only input buffer
// and awaited jointly; they may overlap on the device. Empty input fails
// with ErrEmptyResult.
func (e *Engine) MinMax(values []float32) (min, max float32, err error) {
	if len(values) == 0 {
		return 0, 0, engine.E("MinMax", engine.ErrEmptyResult, nil)
	}

	minPipeline, err := e.getPipeline(kernelMinReduce)
	if err != nil {
		return 0, 0, err
	}
	maxPipeline, err := e.getPipeline(kernelMaxReduce)
	if err != nil {
		return 0, 0, err
	}

	input, err := e.newStorageBuffer(values)
	if err != nil {
		return 0, 0, err
	}
	defer input.Release()

	params, err := e.newUniformBuffer(countParams(len(values)))
	if err != nil {
		return 0, 0, err
	}
	defer params.Release()

	minOut, err := e.newEmptyStorageBuffer(4)
	if err != nil {
		return 0, 0, err
	}
	defer minOut.Release()

	maxOut, err := e.newEmptyStorageBuffer(4)
	if err != nil {
		return 0, 0, err
	}
	defer maxOut.Release()

	inputSize := uint64(len(values) * 4)

	// Submit both before reading either, so the device is free to overlap
	// them. Neither writes shared state.
	err = e.submitPass(minPipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, input, 0, inputSize),
		wgpu.BufferBindingEntry(1, minOut, 0, 4),
		wgpu.BufferBindingEntry(2, params, 0, 16),
	}, 1)
	if err != nil {
		return 0, 0, err
	}
	err = e.submitPass(maxPipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, input, 0, inputSize),
		wgpu.BufferBindingEntry(1, maxOut, 0, 4),
		wgpu.BufferBindingEntry(2, params, 0, 16),
	}, 1)
	if err != nil {
		return 0, 0, err
	}

	minBytes, err := e.readBuffer(minOut, 4)
	if err != nil {
		return 0, 0, err
	}
	maxBytes, err := e.readBuffer(maxOut, 4)
	if err != nil {
		return 0, 0, err
	}

	return bytesToFloats(minBytes)[0], bytesToFloats(maxBytes)[0], nil
}

// runScalarReduce dispatches a single-lane reduction kernel and reads back
// the one-float result.
func (e *Engine) runScalarReduce(kernel string, values []float32) (float32, error) {
	pipeline, err := e.getPipeline(kernel)
	if err != nil {
		return 0, err
	}

	input, err := e.newStorageBuffer(values)
	if err != nil {
		return 0, err
	}
	defer input.Release()

	result, err := e.newEmptyStorageBuffer(4)
	if err != nil {
		return 0, err
	}
	defer result.Release()

	params, err := e.newUniformBuffer(countParams(len(values)))
	if err != nil {
		return 0, err
	}
	defer params.Release()

	err = e.submitPass(pipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, input, 0, uint64(len(values)*4)),
		wgpu.BufferBindingEntry(1, result, 0, 4),
		wgpu.BufferBindingEntry(2, params, 0, 16),
	}, 1)
	if err != nil {
		return 0, err
	}

	resultBytes, err := e.readBuffer(result, 4)
	if err != nil {
		return 0, err
	}
	return bytesToFloats(resultBytes)[0], nil
}
