package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomwassing/brane"
	"github.com/tomwassing/brane/internal/record"
)

// unsetEnv removes name for the duration of the test. t.Setenv first
// so the cleanup restores the original value.
func unsetEnv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	os.Unsetenv(name)
}

func TestRun_NoCommand(t *testing.T) {
	var b strings.Builder
	if code := run([]string{"help"}, &b); code == 0 {
		t.Error("run = 0, want non-zero")
	}
	if b.String() != "" {
		t.Errorf("stdout = %q, want no record", b.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	var b strings.Builder
	if code := run([]string{"help", "frobnicate"}, &b); code != 2 {
		t.Errorf("run = %d, want 2", code)
	}
	if b.String() != "" {
		t.Errorf("stdout = %q, want no record", b.String())
	}
}

func TestRun_Version(t *testing.T) {
	var b strings.Builder
	if code := run([]string{"help", "version"}, &b); code != 0 {
		t.Fatalf("run = %d, want 0", code)
	}
	if want := brane.Version + "\n"; b.String() != want {
		t.Errorf("stdout = %q, want %q", b.String(), want)
	}
}

func TestRun_Ls(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DIRECTORY", dir)

	var b strings.Builder
	if code := run([]string{"help", "ls"}, &b); code != 0 {
		t.Fatalf("run = %d, want 0", code)
	}

	rec, err := record.Parse(b.String())
	if err != nil {
		t.Fatalf("parsing record from %q: %v", b.String(), err)
	}
	if !strings.Contains(rec.Output, "data.txt") {
		t.Errorf("Output = %q, want to contain 'data.txt'", rec.Output)
	}
}

func TestRun_Cat_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FILE", path)

	var b strings.Builder
	if code := run([]string{"help", "cat"}, &b); code != 0 {
		t.Fatalf("run = %d, want 0", code)
	}

	rec, err := record.Parse(b.String())
	if err != nil {
		t.Fatalf("parsing record from %q: %v", b.String(), err)
	}
	if rec.Output != record.NoOutput {
		t.Errorf("Output = %q, want %q", rec.Output, record.NoOutput)
	}
}

func TestRun_Cat_MissingFileVar(t *testing.T) {
	unsetEnv(t, "FILE")

	var b strings.Builder
	if code := run([]string{"help", "cat"}, &b); code != 1 {
		t.Errorf("run = %d, want 1", code)
	}
	if b.String() != "" {
		t.Errorf("stdout = %q, want no record", b.String())
	}
}

func TestRun_Stall_ParseError(t *testing.T) {
	t.Setenv("NSECONDS", "soon")

	var b strings.Builder
	if code := run([]string{"help", "stall"}, &b); code != 1 {
		t.Errorf("run = %d, want 1", code)
	}
	if b.String() != "" {
		t.Errorf("stdout = %q, want no record", b.String())
	}
}

func TestRun_Stall_Zero(t *testing.T) {
	t.Setenv("NSECONDS", "0")

	var b strings.Builder
	if code := run([]string{"help", "stall"}, &b); code != 0 {
		t.Fatalf("run = %d, want 0", code)
	}

	rec, err := record.Parse(b.String())
	if err != nil {
		t.Fatalf("parsing record from %q: %v", b.String(), err)
	}
	if rec.Output != record.Success {
		t.Errorf("Output = %q, want %q", rec.Output, record.Success)
	}
}

func TestRun_CaptureFlag(t *testing.T) {
	t.Setenv("NSECONDS", "0")

	var b strings.Builder
	if code := run([]string{"help", "stall", "-capture", "prefixed"}, &b); code != 0 {
		t.Fatalf("run = %d, want 0", code)
	}

	rec, err := record.Parse(record.Extract(b.String(), record.CapturePrefixed))
	if err != nil {
		t.Fatalf("parsing extracted record from %q: %v", b.String(), err)
	}
	if rec.Output != record.Success {
		t.Errorf("Output = %q, want %q", rec.Output, record.Success)
	}
}
