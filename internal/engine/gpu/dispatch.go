//go:build windows

package gpu

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/quarrydb/quarry/internal/engine"
)

// submitPass encodes one compute pass and submits it to the serial queue.
// It returns once the commands are queued; device completion is observed by
// the readback that follows, or by ordering on the same queue for
// multi-stage algorithms.
func (e *Engine) submitPass(pipeline *wgpu.ComputePipeline, entries []wgpu.BindGroupEntry, workgroups uint32) error {
	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := e.device.CreateBindGroupSimple(bindGroupLayout, entries)
	if bindGroup == nil {
		return engine.E("submitPass", engine.ErrDispatch,
			fmt.Errorf("failed to create bind group"))
	}
	defer bindGroup.Release()

	encoder := e.device.CreateCommandEncoder(nil)
	if encoder == nil {
		return engine.E("submitPass", engine.ErrDispatch,
			fmt.Errorf("failed to create command encoder"))
	}

	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.DispatchWorkgroups(workgroups, 1, 1)
	pass.End()

	cmdBuffer := encoder.Finish(nil)
	e.queue.Submit(cmdBuffer)
	return nil
}
