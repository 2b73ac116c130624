package taperuntime

// Input is a line-based input channel consumed by the ',' instruction.
// ReadLine returns io.EOF when no more lines are available.
type Input interface {
	ReadLine() (string, error)
}

// Output is a line-oriented sink written by the '.' instruction,
// one line per call.
type Output interface {
	WriteLine(line string) error
}
