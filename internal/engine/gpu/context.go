//go:build windows

package gpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/quarrydb/quarry/internal/engine"
)

// Engine owns one WebGPU device, its serial command queue, and the kernel
// pipeline cache. One Engine serves one caller at a time; create one per
// goroutine for parallel use. Release must be called when done.
type Engine struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache, keyed by kernel name.
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	adapterInfo *wgpu.AdapterInfo
}

var _ engine.Engine = (*Engine)(nil)

// New acquires a compute device and returns a ready engine.
// Returns an ErrDeviceNotFound-kinded error if WebGPU is not available or
// initialization fails; a failed engine must not be reused.
func New() (eng *Engine, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			eng = nil
			err = engine.E("gpu.New", engine.ErrDeviceNotFound,
				fmt.Errorf("native library not available: %v", r))
		}
	}()

	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, engine.E("gpu.New", engine.ErrDeviceNotFound,
			fmt.Errorf("failed to create WebGPU instance"))
	}

	// Prefer a discrete GPU, fall back to whatever the platform offers.
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil || adapter == nil {
		adapter, adapterErr = instance.RequestAdapter(nil)
	}
	if adapterErr != nil || adapter == nil {
		instance.Release()
		return nil, engine.E("gpu.New", engine.ErrDeviceNotFound,
			fmt.Errorf("failed to request adapter: %v", adapterErr))
	}

	adapterInfo := adapter.GetInfo()

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, engine.E("gpu.New", engine.ErrDeviceNotFound,
			fmt.Errorf("failed to request device: %w", deviceErr))
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, engine.E("gpu.New", engine.ErrDeviceNotFound,
			fmt.Errorf("failed to get queue"))
	}

	return &Engine{
		instance:    instance,
		adapter:     adapter,
		device:      device,
		queue:       queue,
		shaders:     make(map[string]*wgpu.ShaderModule),
		pipelines:   make(map[string]*wgpu.ComputePipeline),
		adapterInfo: &adapterInfo,
	}, nil
}

// IsAvailable reports whether a WebGPU device can be acquired on this system.
func IsAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return false
	}
	defer instance.Release()
	adapter, err := instance.RequestAdapter(nil)
	if err != nil || adapter == nil {
		return false
	}
	adapter.Release()
	return true
}

// getPipeline returns the cached compute pipeline for a kernel name,
// compiling and building it on first use. Fails with ErrKernelNotFound for
// names absent from the program library and ErrPipelineCreation when the
// build fails.
func (e *Engine) getPipeline(name string) (*wgpu.ComputePipeline, error) {
	e.mu.RLock()
	if pipeline, exists := e.pipelines[name]; exists {
		e.mu.RUnlock()
		return pipeline, nil
	}
	e.mu.RUnlock()

	source, ok := kernelSources[name]
	if !ok {
		return nil, engine.E("getPipeline", engine.ErrKernelNotFound,
			fmt.Errorf("no kernel named %q", name))
	}

	shader := e.compileShader(name, source)
	if shader == nil {
		return nil, engine.E("getPipeline", engine.ErrPipelineCreation,
			fmt.Errorf("shader %q failed to compile", name))
	}

	pipeline := e.device.CreateComputePipelineSimple(nil, shader, "main")
	if pipeline == nil {
		return nil, engine.E("getPipeline", engine.ErrPipelineCreation,
			fmt.Errorf("pipeline %q failed to build", name))
	}

	e.mu.Lock()
	e.pipelines[name] = pipeline
	e.mu.Unlock()

	return pipeline, nil
}

// compileShader compiles WGSL source into a ShaderModule, cached by name.
func (e *Engine) compileShader(name, source string) *wgpu.ShaderModule {
	e.mu.RLock()
	if shader, exists := e.shaders[name]; exists {
		e.mu.RUnlock()
		return shader
	}
	e.mu.RUnlock()

	shader := e.device.CreateShaderModuleWGSL(source)

	e.mu.Lock()
	e.shaders[name] = shader
	e.mu.Unlock()

	return shader
}

// Name returns the engine name with adapter details when known.
func (e *Engine) Name() string {
	if e.adapterInfo != nil {
		return fmt.Sprintf("WebGPU (%s %s)", e.adapterInfo.Name, e.adapterInfo.VendorName)
	}
	return "WebGPU"
}

// Release frees all WebGPU resources owned by the engine.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.pipelines {
		p.Release()
	}
	e.pipelines = nil

	for _, s := range e.shaders {
		s.Release()
	}
	e.shaders = nil

	if e.queue != nil {
		e.queue.Release()
		e.queue = nil
	}
	if e.device != nil {
		e.device.Release()
		e.device = nil
	}
	if e.adapter != nil {
		e.adapter.Release()
		e.adapter = nil
	}
	if e.instance != nil {
		e.instance.Release()
		e.instance = nil
	}
}
