//go:build !windows

package gpu

import (
	"github.com/quarrydb/quarry/internal/engine"
)

// Stub implementation for platforms where the go-webgpu native bindings are
// unavailable. Every entry point reports ErrDeviceNotFound; callers fall
// back to the CPU engine.

// Engine is the WebGPU engine (stub).
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New reports that no compute device is available on this platform.
func New() (*Engine, error) {
	return nil, engine.E("gpu.New", engine.ErrDeviceNotFound, nil)
}

// IsAvailable returns false on platforms without WebGPU bindings.
func IsAvailable() bool { return false }

func (e *Engine) Sum(values []float32) (float32, error) {
	return 0, engine.E("Sum", engine.ErrDeviceNotFound, nil)
}

func (e *Engine) Avg(values []float32) (float32, error) {
	return 0, engine.E("Avg", engine.ErrDeviceNotFound, nil)
}

func (e *Engine) MinMax(values []float32) (min, max float32, err error) {
	return 0, 0, engine.E("MinMax", engine.ErrDeviceNotFound, nil)
}

func (e *Engine) Count(values []float32) int { return len(values) }

func (e *Engine) CountWhere(values []float32, pred engine.Predicate) (int, error) {
	return 0, engine.E("CountWhere", engine.ErrDeviceNotFound, nil)
}

func (e *Engine) Sort(values []float32, ascending bool) ([]float32, error) {
	return nil, engine.E("Sort", engine.ErrDeviceNotFound, nil)
}

func (e *Engine) Filter(values []float32, pred engine.Predicate) ([]float32, error) {
	return nil, engine.E("Filter", engine.ErrDeviceNotFound, nil)
}

func (e *Engine) Name() string { return "WebGPU (unavailable)" }

func (e *Engine) Release() {}
