//go:build windows

package gpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/quarrydb/quarry/internal/engine"
)

// Buffer lifecycle. Every buffer is created by exactly one operation,
// released via defer when that operation returns, and never shared across
// operations.

// newStorageBuffer allocates a storage buffer initialized with a float32
// column. The buffer is mapped at creation for the upload, no staging copy.
func (e *Engine) newStorageBuffer(values []float32) (*wgpu.Buffer, error) {
	return e.newByteBuffer(floatsToBytes(values),
		wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
}

// newEmptyStorageBuffer allocates a zeroed storage buffer of size bytes,
// usable as a kernel output and as a readback source.
func (e *Engine) newEmptyStorageBuffer(size uint64) (*wgpu.Buffer, error) {
	buffer := e.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	if buffer == nil {
		return nil, engine.E("newEmptyStorageBuffer", engine.ErrBufferAlloc,
			fmt.Errorf("%d bytes", size))
	}
	return buffer, nil
}

func (e *Engine) newByteBuffer(data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	size := uint64(len(data))
	buffer := e.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	if buffer == nil {
		return nil, engine.E("newByteBuffer", engine.ErrBufferAlloc,
			fmt.Errorf("%d bytes", size))
	}

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer, nil
}

// newUniformBuffer allocates a uniform buffer. Uniform structs require
// 16-byte alignment; the params encoders already pad to that.
func (e *Engine) newUniformBuffer(data []byte) (*wgpu.Buffer, error) {
	alignedSize := (uint64(len(data)) + 15) &^ 15

	buffer := e.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})
	if buffer == nil {
		return nil, engine.E("newUniformBuffer", engine.ErrBufferAlloc,
			fmt.Errorf("%d bytes", alignedSize))
	}

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer, nil
}

// readBuffer copies a device buffer back to host memory through a staging
// buffer and blocks until the copy completes. This is the synchronization
// point that makes every dispatch call blocking.
func (e *Engine) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	staging := e.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	if staging == nil {
		return nil, engine.E("readBuffer", engine.ErrBufferAlloc,
			fmt.Errorf("staging %d bytes", size))
	}
	defer staging.Release()

	encoder := e.device.CreateCommandEncoder(nil)
	if encoder == nil {
		return nil, engine.E("readBuffer", engine.ErrDispatch,
			fmt.Errorf("failed to create command encoder"))
	}
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	cmdBuffer := encoder.Finish(nil)
	e.queue.Submit(cmdBuffer)

	if err := staging.MapAsync(e.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, engine.E("readBuffer", engine.ErrDispatch, err)
	}

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	staging.Unmap()

	return result, nil
}
