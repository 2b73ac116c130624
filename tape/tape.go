package tape

import (
	"strconv"
	"strings"

	"github.com/wippyai/tape-runtime/errors"
)

// MinSize is the smallest tape New accepts.
const MinSize = 8

// Tape is a fixed-length, zero-initialized byte buffer with a single cursor.
// Cursor moves wrap at both ends and cell arithmetic wraps modulo 256, so
// no operation after New can fail.
type Tape struct {
	cells  []byte
	cursor int
}

// New allocates a tape of size cells with the cursor on cell 0.
func New(size int) (*Tape, error) {
	if size < MinSize {
		return nil, errors.TapeTooSmall(size, MinSize)
	}
	return &Tape{cells: make([]byte, size)}, nil
}

// Size returns the number of cells.
func (t *Tape) Size() int { return len(t.cells) }

// Cursor returns the index of the current cell.
func (t *Tape) Cursor() int { return t.cursor }

// Get returns the value of the current cell.
func (t *Tape) Get() byte { return t.cells[t.cursor] }

// Set overwrites the current cell.
func (t *Tape) Set(v byte) { t.cells[t.cursor] = v }

// MoveLeft moves the cursor one cell left, wrapping from 0 to Size()-1.
func (t *Tape) MoveLeft() {
	if t.cursor == 0 {
		t.cursor = len(t.cells) - 1
		return
	}
	t.cursor--
}

// MoveRight moves the cursor one cell right, wrapping from Size()-1 to 0.
func (t *Tape) MoveRight() {
	if t.cursor == len(t.cells)-1 {
		t.cursor = 0
		return
	}
	t.cursor++
}

// Increment adds one to the current cell; 255 becomes 0.
func (t *Tape) Increment() { t.cells[t.cursor]++ }

// Decrement subtracts one from the current cell; 0 becomes 255.
func (t *Tape) Decrement() { t.cells[t.cursor]-- }

// Reset zeroes every cell and returns the cursor to 0.
func (t *Tape) Reset() {
	clear(t.cells)
	t.cursor = 0
}

// Window returns a copy of cells [start, end), clamped to the tape.
func (t *Tape) Window(start, end int) []byte {
	start = max(start, 0)
	end = min(end, len(t.cells))
	if start >= end {
		return nil
	}
	out := make([]byte, end-start)
	copy(out, t.cells[start:end])
	return out
}

// FormatBlock renders cells as "[v0][v1]..." in decimal.
func FormatBlock(cells []byte) string {
	var b strings.Builder
	b.Grow(len(cells) * 4)
	for _, c := range cells {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(int(c)))
		b.WriteByte(']')
	}
	return b.String()
}
