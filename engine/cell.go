package engine

import (
	stderrors "errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/tape-runtime/errors"
)

func (e *Engine) read() error {
	line, err := e.in.ReadLine()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.EndOfInput(e.pc)
		}
		return errors.Wrap(errors.PhaseInput, errors.KindReadFailed, err, "read input line")
	}

	v, err := ParseCell(line)
	if err != nil {
		Logger().Debug("bad input", zap.Int("pc", e.pc), zap.String("line", line), zap.Error(err))
		return err
	}
	e.tape.Set(v)
	return nil
}

func (e *Engine) write() error {
	if err := e.out.WriteLine(FormatCell(e.tape.Get())); err != nil {
		return errors.Wrap(errors.PhaseOutput, errors.KindWriteFailed, err, "write cell")
	}
	return nil
}

// ParseCell parses one line of input as a decimal cell value in [0, 255].
// Surrounding whitespace is ignored.
func ParseCell(line string) (byte, error) {
	text := strings.TrimSpace(line)
	v, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && stderrors.Is(numErr.Err, strconv.ErrRange) {
			return 0, errors.OutOfRange(text)
		}
		return 0, errors.NotANumber(text, err)
	}
	return byte(v), nil
}

// FormatCell renders a cell the way '.' prints it: ASCII letters as the
// letter, every other value as its decimal number.
func FormatCell(v byte) string {
	if ('A' <= v && v <= 'Z') || ('a' <= v && v <= 'z') {
		return string(rune(v))
	}
	return strconv.Itoa(int(v))
}
