package engine

import (
	"context"
	"io"

	"go.uber.org/zap"

	taperuntime "github.com/wippyai/tape-runtime"
	"github.com/wippyai/tape-runtime/tape"
)

// DefaultTapeSize is the tape length used when WithTapeSize is not given.
const DefaultTapeSize = 128

// Option configures an Engine.
type Option func(*options)

type options struct {
	in       taperuntime.Input
	out      taperuntime.Output
	tapeSize int
}

// WithTapeSize sets the number of tape cells. Sizes below tape.MinSize are
// rejected by New.
func WithTapeSize(n int) Option {
	return func(o *options) { o.tapeSize = n }
}

// WithInput sets the source read by ','.
func WithInput(in taperuntime.Input) Option {
	return func(o *options) { o.in = in }
}

// WithOutput sets the sink written by '.'.
func WithOutput(out taperuntime.Output) Option {
	return func(o *options) { o.out = out }
}

// Engine executes one program against its own tape.
type Engine struct {
	in      taperuntime.Input
	out     taperuntime.Output
	tape    *tape.Tape
	program string
	loops   []int
	pc      int
	next    int
	steps   uint64
}

// New creates an engine for program. The program is the comment-stripped
// instruction stream; it is not validated here, see Check.
func New(program string, opts ...Option) (*Engine, error) {
	o := options{
		tapeSize: DefaultTapeSize,
		in:       closedInput{},
		out:      discardOutput{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := tape.New(o.tapeSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		in:      o.in,
		out:     o.out,
		tape:    t,
		program: program,
		loops:   make([]int, 0, 16),
	}, nil
}

// Run steps until the end of the program, the first error, or ctx is done.
// After an error Run may be called again to resume at the failing
// instruction.
func (e *Engine) Run(ctx context.Context) error {
	Logger().Debug("run",
		zap.Int("pc", e.pc),
		zap.Int("program_len", len(e.program)),
		zap.Int("tape_size", e.tape.Size()))

	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Step(); err != nil {
			Logger().Debug("run stopped",
				zap.Int("pc", e.pc),
				zap.Uint64("steps", e.steps),
				zap.Error(err))
			return err
		}
	}

	if depth := len(e.loops); depth > 0 {
		Logger().Warn("program ended inside a loop",
			zap.Int("depth", depth),
			zap.Int("open", e.loops[depth-1]))
	}
	Logger().Debug("run finished", zap.Uint64("steps", e.steps))
	return nil
}

// Step executes the instruction at PC. It is a no-op once Done.
// On error PC is left on the failing instruction.
func (e *Engine) Step() error {
	if e.Done() {
		return nil
	}

	e.next = e.pc + 1
	if h := dispatch[e.program[e.pc]]; h != nil {
		if err := h(e); err != nil {
			return err
		}
	}
	e.pc = e.next
	e.steps++
	return nil
}

// Reset rewinds the program and clears the tape and loop stack.
func (e *Engine) Reset() {
	e.tape.Reset()
	e.loops = e.loops[:0]
	e.pc = 0
	e.steps = 0
}

// Done reports whether the instruction cursor has reached the end.
func (e *Engine) Done() bool { return e.pc >= len(e.program) }

// PC returns the index of the next instruction.
func (e *Engine) PC() int { return e.pc }

// Next returns the instruction at PC, or false once Done.
func (e *Engine) Next() (byte, bool) {
	if e.Done() {
		return 0, false
	}
	return e.program[e.pc], true
}

// Program returns the instruction stream.
func (e *Engine) Program() string { return e.program }

// Depth returns the number of loops currently open.
func (e *Engine) Depth() int { return len(e.loops) }

// Steps returns the number of instructions executed since New or Reset.
func (e *Engine) Steps() uint64 { return e.steps }

// Cursor returns the tape cursor.
func (e *Engine) Cursor() int { return e.tape.Cursor() }

// Cell returns the value under the tape cursor.
func (e *Engine) Cell() byte { return e.tape.Get() }

// TapeSize returns the number of tape cells.
func (e *Engine) TapeSize() int { return e.tape.Size() }

// Cells returns a copy of tape cells [start, end), clamped to the tape.
func (e *Engine) Cells(start, end int) []byte { return e.tape.Window(start, end) }

type closedInput struct{}

func (closedInput) ReadLine() (string, error) { return "", io.EOF }

type discardOutput struct{}

func (discardOutput) WriteLine(string) error { return nil }
