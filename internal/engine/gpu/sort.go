//go:build windows

package gpu

import (
	"github.com/go-webgpu/webgpu/wgpu"
)

// Sort returns every value in sorted order using a bitonic compare-exchange
// network on the device.
//
// The input is padded to the next power of two with sentinels that sort to
// the tail, then for k doubling from 2 to the padded size and j halving from
// k/2 to 1, one compare-exchange pass runs over the whole padded buffer.
// The buffer is mutated in place; stages are strictly sequential because the
// queue is serial and each stage's output is the next stage's input. The
// final readback truncates the padding.
//
// O(log²(paddedSize)) dispatches, each a full parallel pass.
func (e *Engine) Sort(values []float32, ascending bool) ([]float32, error) {
	n := len(values)
	if n == 0 {
		return []float32{}, nil
	}
	if n == 1 {
		return []float32{values[0]}, nil
	}

	pipeline, err := e.getPipeline(kernelBitonicSortStep)
	if err != nil {
		return nil, err
	}

	paddedSize := nextPowerOfTwo(n)
	padded := make([]float32, paddedSize)
	copy(padded, values)
	sentinel := sortSentinel(ascending)
	for i := n; i < paddedSize; i++ {
		padded[i] = sentinel
	}

	data, err := e.newStorageBuffer(padded)
	if err != nil {
		return nil, err
	}
	defer data.Release()

	dataSize := uint64(paddedSize * 4)
	workgroups := workgroupCount(paddedSize)

	for k := 2; k <= paddedSize; k <<= 1 {
		for j := k >> 1; j > 0; j >>= 1 {
			params, err := e.newUniformBuffer(
				bitonicParams(uint32(j), uint32(k), ascending, uint32(paddedSize)))
			if err != nil {
				return nil, err
			}

			err = e.submitPass(pipeline, []wgpu.BindGroupEntry{
				wgpu.BufferBindingEntry(0, data, 0, dataSize),
				wgpu.BufferBindingEntry(1, params, 0, 16),
			}, workgroups)
			params.Release()
			if err != nil {
				return nil, err
			}
		}
	}

	sortedBytes, err := e.readBuffer(data, dataSize)
	if err != nil {
		return nil, err
	}
	return bytesToFloats(sortedBytes)[:n], nil
}
