package lua

import "errors"

var (
	// ErrNilRuntime is returned when a nil runtime is passed to a function that requires one.
	ErrNilRuntime = errors.New("runtime cannot be nil")

	// ErrFunctionNotFound is returned by CallFunction for an undefined global.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrResourceLimit is returned when a chunk exceeds its CPU or memory limit.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrBadArgument is returned when a gradient module function receives an
	// argument of the wrong type.
	ErrBadArgument = errors.New("bad argument")
)
