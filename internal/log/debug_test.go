package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	out.mu.Lock()
	out.file = nil
	out.pending = nil
	out.dropped = 0
	out.muted = false
	out.mu.Unlock()
	t.Cleanup(func() {
		_ = Close()
		out.mu.Lock()
		out.pending = nil
		out.dropped = 0
		out.muted = false
		out.mu.Unlock()
	})
}

func TestSetFile_FlushesPending(t *testing.T) {
	reset(t)

	Printf("before %d", 1)

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile failed: %v", err)
	}
	Printf("after %d", 2)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "before 1") {
		t.Errorf("log missing buffered line: %q", got)
	}
	if !strings.Contains(got, "after 2") {
		t.Errorf("log missing direct line: %q", got)
	}
}

func TestSetFile_EmptyDiscards(t *testing.T) {
	reset(t)

	Printf("dropped")
	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile(\"\") failed: %v", err)
	}
	Printf("also dropped")

	out.mu.Lock()
	defer out.mu.Unlock()
	if len(out.pending) != 0 {
		t.Errorf("pending = %q, want empty", out.pending)
	}
}

func TestSetFile_BadPath(t *testing.T) {
	reset(t)

	err := SetFile(filepath.Join(t.TempDir(), "missing", "dir", "debug.log"))
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}

	Printf("ignored")
	out.mu.Lock()
	defer out.mu.Unlock()
	if !out.muted || len(out.pending) != 0 {
		t.Error("expected sink to be muted after failure")
	}
}

func TestLogger_Prefix(t *testing.T) {
	reset(t)

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatal(err)
	}
	Logger("[git] ").Printf("status")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "[git] ") {
		t.Errorf("expected prefix, got %q", data)
	}
}

func TestPending_BoundedToWholeLines(t *testing.T) {
	reset(t)

	line := strings.Repeat("x", 100)
	for i := 0; i < 2*maxPending/len(line); i++ {
		Printf("%05d %s", i, line)
	}
	Printf("last line")

	out.mu.Lock()
	pending := string(out.pending)
	dropped := out.dropped
	out.mu.Unlock()

	if len(pending) > maxPending {
		t.Errorf("pending holds %d bytes, want at most %d", len(pending), maxPending)
	}
	if dropped == 0 {
		t.Error("expected older lines to be dropped")
	}
	if !strings.HasSuffix(pending, "last line\n") {
		t.Errorf("newest line missing from pending tail: %q", pending[len(pending)-40:])
	}
	// log.Logger lines start with the date, so a whole line begins with a digit
	if pending[0] < '0' || pending[0] > '9' {
		t.Errorf("pending should start at a line boundary, got %q", pending[:20])
	}

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "[log] ") || !strings.Contains(string(data), "bytes dropped") {
		t.Errorf("flushed log should start with a drop marker, got %q", string(data)[:60])
	}
	if !strings.Contains(string(data), "last line") {
		t.Error("flushed log missing newest line")
	}
}
