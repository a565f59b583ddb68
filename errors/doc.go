// Package errors provides structured error types for the bitpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, the index and name of the offending
// field declaration, the Go type involved and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindOutOfOrder).
//		Path("ModeSense6", "page_code").
//		Field(3, "page_code").
//		Detail("start byte 1 is before current byte 2").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TooWide(errors.PhaseResolve, 2, "length", 17, 16)
//	err := errors.InsufficientBytes(errors.PhasePack, path, 4, 8)
//
// Caller contract violations (wrong buffer lengths, impossible bit spans)
// are not returned. They panic with a *Fault; see Faultf.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
