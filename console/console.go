// Package console provides line-based Input and Output implementations over
// io.Reader and io.Writer.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// DefaultPrompt is written before each line is read.
const DefaultPrompt = "> "

// Reader reads one line per ReadLine, optionally writing a prompt first.
type Reader struct {
	sc     *bufio.Scanner
	prompt io.Writer
	text   string
}

// NewReader reads lines from r. If prompt is non-nil, text is written to it
// before every read.
func NewReader(r io.Reader, prompt io.Writer, text string) *Reader {
	return &Reader{
		sc:     bufio.NewScanner(r),
		prompt: prompt,
		text:   text,
	}
}

// Stdin reads lines from os.Stdin. The prompt goes to os.Stdout, and only
// when stdin is a terminal.
func Stdin(text string) *Reader {
	var prompt io.Writer
	if isTerminal(int(os.Stdin.Fd()), &stdinIsTerminal) {
		prompt = os.Stdout
	}
	return NewReader(os.Stdin, prompt, text)
}

// ReadLine returns the next line without its line ending, or io.EOF.
func (r *Reader) ReadLine() (string, error) {
	if r.prompt != nil {
		if _, err := io.WriteString(r.prompt, r.text); err != nil {
			return "", err
		}
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.sc.Text(), "\r"), nil
}

// Writer writes one line per WriteLine.
type Writer struct {
	w io.Writer
}

// NewWriter writes lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine writes line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	_, err := fmt.Fprintln(w.w, line)
	return err
}

var stdinIsTerminal int32 = -1 // -1 = unchecked, 0 = no, 1 = yes

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}
