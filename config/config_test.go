package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/tape-runtime/console"
	"github.com/wippyai/tape-runtime/engine"
	"github.com/wippyai/tape-runtime/errors"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Tape.Size != engine.DefaultTapeSize {
		t.Errorf("Tape.Size = %d, want %d", c.Tape.Size, engine.DefaultTapeSize)
	}
	if !c.Input.Retry || c.Input.Prompt != console.DefaultPrompt {
		t.Errorf("Input = %+v", c.Input)
	}
	if !c.Dump.Enabled || c.Dump.Start != 0 || c.Dump.End != 10 {
		t.Errorf("Dump = %+v", c.Dump)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tape.toml")
	text := `
[tape]
size = 30000

[input]
retry = false

[dump]
end = 4

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Tape.Size != 30000 {
		t.Errorf("Tape.Size = %d, want 30000", c.Tape.Size)
	}
	if c.Input.Retry {
		t.Error("Input.Retry = true, want false")
	}
	if c.Input.Prompt != console.DefaultPrompt {
		t.Errorf("Input.Prompt = %q, want default", c.Input.Prompt)
	}
	if !c.Dump.Enabled || c.Dump.End != 4 {
		t.Errorf("Dump = %+v", c.Dump)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", c.Log.Level)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
		path string
	}{
		{"tape too small", "[tape]\nsize = 4\n", errors.ErrTapeTooSmall, "tape.size"},
		{"negative dump start", "[dump]\nstart = -1\n", errors.ErrInvalidConfig, "dump.start"},
		{"inverted dump", "[dump]\nstart = 5\nend = 2\n", errors.ErrInvalidConfig, "dump.end"},
		{"bad level", "[log]\nlevel = \"loud\"\n", errors.ErrInvalidConfig, "log.level"},
		{"unknown key", "[tape]\nwidth = 9\n", errors.ErrInvalidConfig, "tape.width"},
		{"syntax", "[tape\n", errors.ErrInvalidConfig, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !stderrors.Is(err, tt.want) {
				t.Fatalf("Parse error = %v, want %v", err, tt.want)
			}
			var rtErr *errors.Error
			stderrors.As(err, &rtErr)
			if got := strings.Join(rtErr.Path, "."); got != tt.path {
				t.Errorf("Path = %q, want %q", got, tt.path)
			}
		})
	}
}
