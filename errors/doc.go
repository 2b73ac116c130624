// Package errors provides structured error types for the tape runtime.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a config path, the offending value, a detail message and
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidConfig).
//		Path("dump", "end").
//		Value(-1).
//		Detail("must not be negative").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnbalancedLoop(pc)
//	err := errors.OutOfRange("300")
//
// Sentinels such as ErrUnbalancedLoop match any error of the same Phase and
// Kind, so callers test with the standard errors.Is:
//
//	if errors.Is(err, errors.ErrOutOfRange) { ... }
package errors
