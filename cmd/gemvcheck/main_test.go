package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixture stores the 2x2 integer fixture [[1,2],[3,4]] * [5,6].
func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"matrix.csv": "1,2\n3,4\n",
		"vector.csv": "5\n6\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func writeResult(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "result.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		result string
		want   int
		msg    string
	}{
		{"exact", "17\n39\n", 0, "OK n=2"},
		{"wrong value", "17\n40\n", 1, "FAIL n=2"},
		{"nan", "17\nNaN\n", 1, "FAIL n=2"},
		{"inf", "+Inf\n39\n", 1, "FAIL n=2"},
		{"short", "17\n", 1, "error:"},
	}
	for _, tt := range tests {
		dir := writeFixture(t)
		path := writeResult(t, dir, tt.result)
		var stderr bytes.Buffer
		got := run([]string{"-dir", dir, "-kind", "int", "-tol", "0", path}, &stderr)
		if got != tt.want {
			t.Errorf("%s: exit = %d, want %d; stderr:\n%s", tt.name, got, tt.want, stderr.String())
		}
		if !strings.Contains(stderr.String(), tt.msg) {
			t.Errorf("%s: stderr %q does not contain %q", tt.name, stderr.String(), tt.msg)
		}
	}
}

func TestRun_Usage(t *testing.T) {
	var stderr bytes.Buffer
	if got := run(nil, &stderr); got != 2 {
		t.Errorf("exit = %d, want 2", got)
	}
	if !strings.Contains(stderr.String(), "Usage: gemvcheck") {
		t.Errorf("usage not printed:\n%s", stderr.String())
	}

	stderr.Reset()
	if got := run([]string{"-kind", "complex", "result.csv"}, &stderr); got != 1 {
		t.Errorf("bad kind: exit = %d, want 1", got)
	}

	stderr.Reset()
	missing := filepath.Join(t.TempDir(), "missing")
	if got := run([]string{"-dir", missing, "result.csv"}, &stderr); got != 1 {
		t.Errorf("missing dir: exit = %d, want 1", got)
	}
}
