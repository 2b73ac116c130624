package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig  Phase = "config"  // tape and CLI configuration
	PhaseLoad    Phase = "load"    // reading program source
	PhaseInput   Phase = "input"   // the ',' instruction
	PhaseOutput  Phase = "output"  // the '.' instruction
	PhaseRuntime Phase = "runtime" // instruction dispatch and loop control
)

// Kind categorizes the error
type Kind string

const (
	KindTapeTooSmall     Kind = "tape_too_small"
	KindInvalidConfig    Kind = "invalid_config"
	KindInvalidData      Kind = "invalid_data"
	KindNotFound         Kind = "not_found"
	KindNotANumber       Kind = "not_a_number"
	KindOutOfRange       Kind = "out_of_range"
	KindEndOfInput       Kind = "end_of_input"
	KindReadFailed       Kind = "read_failed"
	KindWriteFailed      Kind = "write_failed"
	KindUnbalancedLoop   Kind = "unbalanced_loop"
	KindUnterminatedLoop Kind = "unterminated_loop"
)

// Sentinels for use with errors.Is. Matching compares Phase and Kind only.
var (
	ErrTapeTooSmall     = &Error{Phase: PhaseConfig, Kind: KindTapeTooSmall}
	ErrInvalidConfig    = &Error{Phase: PhaseConfig, Kind: KindInvalidConfig}
	ErrNotANumber       = &Error{Phase: PhaseInput, Kind: KindNotANumber}
	ErrOutOfRange       = &Error{Phase: PhaseInput, Kind: KindOutOfRange}
	ErrEndOfInput       = &Error{Phase: PhaseInput, Kind: KindEndOfInput}
	ErrUnbalancedLoop   = &Error{Phase: PhaseRuntime, Kind: KindUnbalancedLoop}
	ErrUnterminatedLoop = &Error{Phase: PhaseRuntime, Kind: KindUnterminatedLoop}
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsInputError reports whether err is a fault in the ',' instruction.
// These leave the engine on the failing instruction. Only ErrNotANumber and
// ErrOutOfRange are worth retrying with the same input source.
func IsInputError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Phase == PhaseInput
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TapeTooSmall creates a configuration error for an undersized tape
func TapeTooSmall(size, minSize int) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindTapeTooSmall,
		Path:   []string{"tape", "size"},
		Detail: fmt.Sprintf("tape size %d is below the minimum of %d", size, minSize),
		Value:  size,
	}
}

// InvalidConfig creates a configuration error for a bad setting
func InvalidConfig(path []string, value any, detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
		Path:   path,
		Detail: detail,
		Value:  value,
	}
}

// NotANumber creates an input error for text that is not a decimal number
func NotANumber(text string, cause error) *Error {
	return &Error{
		Phase:  PhaseInput,
		Kind:   KindNotANumber,
		Detail: fmt.Sprintf("%q is not a number", text),
		Value:  text,
		Cause:  cause,
	}
}

// OutOfRange creates an input error for a number that does not fit a cell
func OutOfRange(text string) *Error {
	return &Error{
		Phase:  PhaseInput,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("%s does not fit in a cell (0-255)", text),
		Value:  text,
	}
}

// EndOfInput creates an input error for an exhausted input source
func EndOfInput(pc int) *Error {
	return &Error{
		Phase:  PhaseInput,
		Kind:   KindEndOfInput,
		Detail: fmt.Sprintf("no input left for ',' at instruction %d", pc),
		Value:  pc,
	}
}

// UnbalancedLoop creates a runtime error for a ']' with no open loop
func UnbalancedLoop(pc int) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindUnbalancedLoop,
		Detail: fmt.Sprintf("no open '[' for ']' at instruction %d", pc),
		Value:  pc,
	}
}

// UnterminatedLoop creates a runtime error for a '[' that is never closed
func UnterminatedLoop(pc int) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindUnterminatedLoop,
		Detail: fmt.Sprintf("no matching ']' for '[' at instruction %d", pc),
		Value:  pc,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Load creates a source loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
