// Package errors provides comprehensive error handling utilities for betaVAE.
//
// This file contains panic recovery utilities. gonum/mat panics on dimension
// mismatches and out-of-range access, so the model entry points convert those
// panics into structured errors instead of crashing the caller.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError represents an error that was created from a recovered panic.
// It includes the original panic value and stack trace information.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil as PanicError doesn't wrap another error by default.
func (e *PanicError) Unwrap() error {
	return nil
}

// String provides detailed information including stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a new PanicError with the given operation context and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error when used with defer. Model methods
// that feed caller-supplied matrices into gonum operations install it as
// their first statement:
//
//	func (v *VAE) Encode(X mat.Matrix) (mean, std mat.Matrix, err error) {
//	    defer Recover(&err, "VAE.Encode")
//	    // ... matrix arithmetic that may panic ...
//	}
//
// If a panic occurs it is converted to a PanicError and assigned to err. If
// err already holds an error when the panic fires, the panic information is
// wrapped around it so neither failure is lost.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)

		if *err != nil {
			// Wrap existing error with panic information
			*err = fmt.Errorf("panic in %s: %v (original error: %w)",
				operation, r, *err)
		} else {
			// No existing error, return the panic as error
			*err = panicErr
		}
	}
}

// SafeExecute runs fn and recovers from any panic, converting it to an error.
// It covers one-shot computations that are not worth a named method, such as
// scoring a single batch with matrices of unknown provenance.
//
// Example:
//
//	err := SafeExecute("latent sampling", func() error {
//	    // ... potentially panicking matrix code ...
//	    return someOperation()
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
