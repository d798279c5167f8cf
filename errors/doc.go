// Package errors provides structured error types for the runewire library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: input offset, the
// offending byte sequence, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseStream, errors.KindOverlong).
//		Offset(128).
//		Sequence([]byte{0xC0, 0x80}).
//		Detail("overlong encoding of U+0000").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidSequence(errors.PhaseDecode, off, seq)
//	err := errors.Truncated(errors.PhaseStream, off, seq)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
