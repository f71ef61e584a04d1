package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Int(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	code := run([]string{"-n", "4", "-kind", "int", "-seed", "7", "-dir", dir}, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d, want 0; stderr:\n%s", code, stderr.String())
	}
	for _, name := range []string{"matrix.csv", "vector.csv", "gold.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(stderr.String(), "seed=7") {
		t.Errorf("stderr does not report the seed:\n%s", stderr.String())
	}
}

func TestRun_Failures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	tests := []struct {
		name string
		args []string
		want int
		msg  string
	}{
		{"bad kind", []string{"-kind", "complex", "-dir", t.TempDir()}, 1, "unknown fixture kind"},
		{"bad gold", []string{"-gold", "maybe", "-dir", t.TempDir()}, 1, "unknown gold mode"},
		{"missing dir", []string{"-n", "2", "-dir", missing}, 1, "error:"},
		{"zero dim", []string{"-n", "0", "-dir", t.TempDir()}, 1, "dimension must be positive"},
		{"unknown flag", []string{"-bogus"}, 2, "flag provided but not defined"},
	}
	for _, tt := range tests {
		var stderr bytes.Buffer
		got := run(tt.args, &stderr)
		if got != tt.want {
			t.Errorf("%s: exit = %d, want %d", tt.name, got, tt.want)
		}
		if !strings.Contains(stderr.String(), tt.msg) {
			t.Errorf("%s: stderr %q does not contain %q", tt.name, stderr.String(), tt.msg)
		}
	}
}
