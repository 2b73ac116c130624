// Package source loads program text and strips its comments.
package source

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/wippyai/tape-runtime/errors"
)

// CommentPrefix starts a comment that runs to the end of the line.
const CommentPrefix = '#'

// Load reads the program text at path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.NotFound(errors.PhaseLoad, "source file", path)
		}
		return "", errors.Load("read "+path, err)
	}
	return string(data), nil
}

// Read loads the program at path and strips its comments.
func Read(path string) (string, error) {
	text, err := Load(path)
	if err != nil {
		return "", err
	}
	return StripComments(text), nil
}

// StripComments removes everything from the first unescaped '#' to the end
// of each line. A '#' preceded by a backslash does not start a comment.
// Line breaks are kept.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLine(line)
	}
	return strings.Join(lines, "\n")
}

func stripLine(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == CommentPrefix && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}
