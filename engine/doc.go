// Package engine executes instruction streams against a tape.
//
// # Architecture
//
// An Engine owns three pieces of state:
//
//	tape       - the byte memory, created from WithTapeSize
//	loop stack - indices of the '[' instructions currently executing
//	pc         - the instruction cursor into the program text
//
// Each Step looks the instruction byte up in a 256-entry dispatch table.
// Bytes with no entry are no-ops, so comments that survive stripping and
// whitespace cost nothing but a cursor advance.
//
// # Loop Control
//
// A '[' whose cell is zero scans forward, counting nesting depth, to its
// matching ']' and resumes after it. A '[' whose cell is non-zero pushes its
// own index, unless that index is already on top of the stack because a ']'
// just jumped back to it. A ']' jumps to the index on top of the stack
// without popping; the '[' there re-evaluates the condition and pops itself
// when the loop ends. The stack depth is therefore bounded by the nesting
// depth of the program.
//
// # Errors
//
// The engine stops on the first fault and leaves pc on the failing
// instruction:
//
//	errors.ErrUnbalancedLoop   ']' with an empty loop stack
//	errors.ErrUnterminatedLoop '[' skipped with no matching ']'
//	errors.ErrNotANumber       ',' read a line that is not a number
//	errors.ErrOutOfRange       ',' read a number above 255
//	errors.ErrEndOfInput       ',' found the input exhausted
//
// Input faults are recoverable: calling Run again retries the ','.
//
// Check validates brackets up front for callers that prefer to reject a
// program before running any of it.
//
// # Thread Safety
//
// An Engine is NOT thread-safe and should be used by a single goroutine.
package engine
