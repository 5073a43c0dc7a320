//go:build windows

package gpu

import (
	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/quarrydb/quarry/internal/engine"
)

// Filter returns the subsequence of values satisfying pred, in the original
// relative order. One parallel pass evaluates the predicate per element into
// a 0/1 mask; a sequential host pass then compacts matches in index order.
// The compaction is intentionally not prefix-sum parallelized: index order
// is the order-preservation guarantee.
func (e *Engine) Filter(values []float32, pred engine.Predicate) ([]float32, error) {
	n := len(values)
	if n == 0 {
		return []float32{}, nil
	}

	pipeline, err := e.getPipeline(kernelFilterPredicate)
	if err != nil {
		return nil, err
	}

	input, err := e.newStorageBuffer(values)
	if err != nil {
		return nil, err
	}
	defer input.Release()

	size := uint64(n * 4)
	mask, err := e.newEmptyStorageBuffer(size)
	if err != nil {
		return nil, err
	}
	defer mask.Release()

	params, err := e.newUniformBuffer(filterParams(n, uint32(pred.Op), pred.Threshold))
	if err != nil {
		return nil, err
	}
	defer params.Release()

	err = e.submitPass(pipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, input, 0, size),
		wgpu.BufferBindingEntry(1, mask, 0, size),
		wgpu.BufferBindingEntry(2, params, 0, 16),
	}, workgroupCount(n))
	if err != nil {
		return nil, err
	}

	maskBytes, err := e.readBuffer(mask, size)
	if err != nil {
		return nil, err
	}
	return compactByMask(values, bytesToFloats(maskBytes)), nil
}
