package engine

import (
	"go.uber.org/zap"

	"github.com/wippyai/tape-runtime/errors"
)

func (e *Engine) loopEnter() error {
	open := len(e.loops) > 0 && e.loops[len(e.loops)-1] == e.pc

	if e.tape.Get() != 0 {
		if !open {
			e.loops = append(e.loops, e.pc)
		}
		return nil
	}

	end, ok := matchForward(e.program, e.pc)
	if !ok {
		return errors.UnterminatedLoop(e.pc)
	}
	if open {
		e.loops = e.loops[:len(e.loops)-1]
	}
	Logger().Debug("loop exit", zap.Int("pc", e.pc), zap.Int("resume", end+1))
	e.next = end + 1
	return nil
}

func (e *Engine) loopBack() error {
	if len(e.loops) == 0 {
		return errors.UnbalancedLoop(e.pc)
	}
	e.next = e.loops[len(e.loops)-1]
	return nil
}

// matchForward returns the index of the ']' matching the '[' at start.
func matchForward(program string, start int) (int, bool) {
	depth := 0
	for i := start; i < len(program); i++ {
		switch program[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// Check reports the first bracket fault in program without running it:
// an unmatched ']' as ErrUnbalancedLoop, or an unclosed '[' as
// ErrUnterminatedLoop, each carrying the instruction index.
func Check(program string) error {
	var open []int
	for i := 0; i < len(program); i++ {
		switch program[i] {
		case '[':
			open = append(open, i)
		case ']':
			if len(open) == 0 {
				return errors.UnbalancedLoop(i)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return errors.UnterminatedLoop(open[0])
	}
	return nil
}
