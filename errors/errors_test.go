package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidConfig,
				Path:   []string{"dump", "end"},
				Detail: "must not be negative",
			},
			contains: []string{"[config]", "invalid_config", "dump.end", "must not be negative"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRuntime,
				Kind:  KindUnbalancedLoop,
			},
			contains: []string{"[runtime]", "unbalanced_loop"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseOutput,
				Kind:   KindWriteFailed,
				Detail: "write cell",
				Cause:  errors.New("broken pipe"),
			},
			contains: []string{"[output]", "write_failed", "write cell", "caused by", "broken pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := UnbalancedLoop(7)

	if !err.Is(&Error{Phase: PhaseRuntime, Kind: KindUnbalancedLoop}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseInput, Kind: KindUnbalancedLoop}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(ErrUnterminatedLoop) {
		t.Error("Is should not match different kind")
	}

	wrapped := fmt.Errorf("run: %w", err)
	if !errors.Is(wrapped, ErrUnbalancedLoop) {
		t.Error("errors.Is should match through wrapping")
	}
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not a number", NotANumber("abc", nil), true},
		{"out of range", OutOfRange("300"), true},
		{"end of input", EndOfInput(3), true},
		{"wrapped", fmt.Errorf("step: %w", OutOfRange("256")), true},
		{"runtime", UnterminatedLoop(0), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInputError(tt.err); got != tt.want {
				t.Errorf("IsInputError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseConfig, KindInvalidConfig).
		Path("input", "prompt").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseConfig {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseConfig)
	}
	if err.Kind != KindInvalidConfig {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidConfig)
	}
	if len(err.Path) != 2 || err.Path[0] != "input" || err.Path[1] != "prompt" {
		t.Errorf("Path = %v, want [input prompt]", err.Path)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TapeTooSmall", func(t *testing.T) {
		err := TapeTooSmall(4, 8)
		if !errors.Is(err, ErrTapeTooSmall) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTapeTooSmall)
		}
		if err.Value != 4 {
			t.Errorf("Value = %v, want 4", err.Value)
		}
		if !strings.Contains(err.Detail, "8") {
			t.Errorf("Detail = %v, should contain minimum", err.Detail)
		}
	})

	t.Run("NotANumber", func(t *testing.T) {
		err := NotANumber("abc", nil)
		if !errors.Is(err, ErrNotANumber) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotANumber)
		}
		if !strings.Contains(err.Error(), `"abc"`) {
			t.Errorf("Error() = %v, should quote input", err.Error())
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange("300")
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfRange)
		}
	})

	t.Run("UnterminatedLoop", func(t *testing.T) {
		err := UnterminatedLoop(12)
		if !errors.Is(err, ErrUnterminatedLoop) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnterminatedLoop)
		}
		if err.Value != 12 {
			t.Errorf("Value = %v, want 12", err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLoad, "source file", "hello.bf")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "hello.bf") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("Load", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := Load("read source", cause)
		if err.Phase != PhaseLoad || !errors.Is(err, cause) {
			t.Errorf("Load() = %v, want load phase wrapping cause", err)
		}
	})
}
