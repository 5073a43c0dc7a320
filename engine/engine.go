// Package engine is the public surface of the quarry compute engines.
//
// Two implementations exist behind one interface: a WebGPU engine that
// offloads reductions, sorting, and filtering to the device, and a host
// engine used as a fallback and reference.
//
// Example:
//
//	eng := engine.NewCPU()
//	if engine.GPUAvailable() {
//	    if gpu, err := engine.NewGPU(); err == nil {
//	        eng = gpu
//	    }
//	}
//	defer eng.Release()
//
//	sorted, err := eng.Sort(values, true)
package engine

import (
	internalengine "github.com/quarrydb/quarry/internal/engine"
	enginecpu "github.com/quarrydb/quarry/internal/engine/cpu"
	enginegpu "github.com/quarrydb/quarry/internal/engine/gpu"
)

// Engine executes columnar analytic operations over float32 columns.
type Engine = internalengine.Engine

// Predicate pairs a comparison operator with a threshold.
type Predicate = internalengine.Predicate

// CompareOp identifies one comparison operator.
type CompareOp = internalengine.CompareOp

// Comparison operators.
const (
	EQ = internalengine.EQ
	NE = internalengine.NE
	LT = internalengine.LT
	LE = internalengine.LE
	GT = internalengine.GT
	GE = internalengine.GE
)

// Error kinds. Match with errors.Is.
var (
	ErrDeviceNotFound   = internalengine.ErrDeviceNotFound
	ErrKernelNotFound   = internalengine.ErrKernelNotFound
	ErrPipelineCreation = internalengine.ErrPipelineCreation
	ErrBufferAlloc      = internalengine.ErrBufferAlloc
	ErrDispatch         = internalengine.ErrDispatch
	ErrEmptyResult      = internalengine.ErrEmptyResult
	ErrInvalidData      = internalengine.ErrInvalidData
	ErrDatabase         = internalengine.ErrDatabase
)

// Compile-time checks that both implementations satisfy Engine.
var (
	_ Engine = (*enginecpu.Engine)(nil)
	_ Engine = (*enginegpu.Engine)(nil)
)

// ParsePredicate builds a Predicate from an operator spelling such as ">=".
func ParsePredicate(op string, threshold float32) (Predicate, error) {
	return internalengine.ParsePredicate(op, threshold)
}

// NewGPU acquires a WebGPU device and returns a GPU engine. Call Release
// when done. Fails with an ErrDeviceNotFound-kinded error when no device
// can be acquired.
func NewGPU() (Engine, error) {
	eng, err := enginegpu.New()
	if err != nil {
		return nil, err
	}
	return eng, nil
}

// NewCPU returns the host engine.
func NewCPU() Engine {
	return enginecpu.New()
}

// GPUAvailable reports whether a WebGPU device can be acquired.
func GPUAvailable() bool {
	return enginegpu.IsAvailable()
}
