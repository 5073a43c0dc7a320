package engine

import (
	"errors"
	"fmt"
)

// Error kinds reported by engines and the store. Match with errors.Is.
var (
	// ErrDeviceNotFound means no usable compute device could be acquired.
	ErrDeviceNotFound = errors.New("compute device not found")
	// ErrKernelNotFound means a named kernel is missing from the program library.
	ErrKernelNotFound = errors.New("kernel not found")
	// ErrPipelineCreation means compiling or building a kernel pipeline failed.
	ErrPipelineCreation = errors.New("pipeline creation failed")
	// ErrBufferAlloc means a shared buffer could not be allocated.
	ErrBufferAlloc = errors.New("buffer allocation failed")
	// ErrDispatch means command submission or execution failed.
	ErrDispatch = errors.New("dispatch failed")
	// ErrEmptyResult means a comparison reduction was asked for an empty input.
	ErrEmptyResult = errors.New("empty result")
	// ErrInvalidData means a malformed numeric value was encountered upstream.
	ErrInvalidData = errors.New("invalid data")
	// ErrDatabase means the relational store failed.
	ErrDatabase = errors.New("database error")
)

// OpError wraps a failure with the operation that produced it and its kind.
// errors.Is(err, kind) matches the kind; Unwrap exposes the underlying cause.
type OpError struct {
	Op   string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *OpError) Unwrap() error { return e.Err }

func (e *OpError) Is(target error) bool { return target == e.Kind }

// E builds an OpError. err may be nil when the kind says it all.
func E(op string, kind error, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}
