package source

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/tape-runtime/errors"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no comments", "+++.", "+++."},
		{"trailing comment", "++#this is ignored\n+", "++\n+"},
		{"whole line", "# header\n+.", "\n+."},
		{"every line", "+ # a\n- # b\n", "+ \n- \n"},
		{"first hash wins", "+#[#]\n", "+\n"},
		{"escaped hash", `+\#+#-`, `+\#+`},
		{"crlf", "+#x\r\n-", "+\n-"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.in); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "double.bf")
	src := "# doubles eight\n++++++++[>++++++++<-] # loop\n>.\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := "\n++++++++[>++++++++<-] \n>.\n"
	if got != want {
		t.Errorf("Read = %q, want %q", got, want)
	}

	raw, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if raw != src {
		t.Errorf("Load = %q, want %q", raw, src)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.bf"))
	var rtErr *errors.Error
	if !stderrors.As(err, &rtErr) {
		t.Fatalf("Load error = %v, want *errors.Error", err)
	}
	if rtErr.Phase != errors.PhaseLoad || rtErr.Kind != errors.KindNotFound {
		t.Errorf("Load error = %v, want [load] not_found", err)
	}
}
