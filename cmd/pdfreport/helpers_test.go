package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Isolated environment
// ---------------------------------------------------------------------------

// fixedNow is the generation date used by CLI tests.
var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// testEnv is an Environment with captured output and a fake process environment.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment that sees only vars ("KEY=value").
func newTestEnv(vars ...string) *testEnv {
	var stdout, stderr bytes.Buffer
	lookup := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, _ := strings.Cut(kv, "=")
		lookup[k] = v
	}
	return &testEnv{
		Environment: &Environment{
			Now:     func() time.Time { return fixedNow },
			Stdout:  &stdout,
			Stderr:  &stderr,
			Getenv:  func(k string) string { return lookup[k] },
			Environ: func() []string { return vars },
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// readHead returns the first n bytes of the file at path.
func readHead(t *testing.T, path string, n int) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if len(data) < n {
		return string(data)
	}
	return string(data[:n])
}
