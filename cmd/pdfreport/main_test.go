package main

// Notes:
// - runMain: we test dispatch and exit codes for each command. Report
//   rendering itself is covered in generate_test.go.
// - hasVerboseFlag: only affects start-up logging, tested on arguments.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"pdfreport"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: pdfreport"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"pdfreport", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"pdfreport dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"pdfreport", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: pdfreport", "Commands:"},
		},
		{
			name:         "help generate shows generate help",
			args:         []string{"pdfreport", "help", "generate"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: pdfreport generate", "annual, installation"},
		},
		{
			name:         "help unknown command",
			args:         []string{"pdfreport", "help", "bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: bogus"},
		},
		{
			name:         "list shows reports",
			args:         []string{"pdfreport", "list"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"annual", "rapport_exemple.pdf", "installation", "rapport_installation_morpheus.pdf"},
		},
		{
			name:         "list rejects arguments",
			args:         []string{"pdfreport", "list", "extra"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"list takes no arguments"},
		},
		{
			name:         "generate without report",
			args:         []string{"pdfreport", "generate"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"no report specified"},
		},
		{
			name:         "verify without file",
			args:         []string{"pdfreport", "verify"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: pdfreport verify"},
		},
		{
			name:         "verify missing file",
			args:         []string{"pdfreport", "verify", "does-not-exist.pdf"},
			wantCode:     ExitIO,
			wantInStderr: []string{"does-not-exist.pdf"},
		},
		{
			name:         "config prints defaults",
			args:         []string{"pdfreport", "config"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"output:", "render:"},
		},
		{
			name:         "help doctor",
			args:         []string{"pdfreport", "help", "doctor"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: pdfreport doctor"},
		},
		{
			name:         "help lists completion",
			args:         []string{"pdfreport", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"  completion Generate shell completion script"},
		},
		{
			name:         "completion bash",
			args:         []string{"pdfreport", "completion", "bash"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"complete -o filenames -F _pdfreport_completions pdfreport"},
		},
		{
			name:         "completion unknown shell",
			args:         []string{"pdfreport", "completion", "tcsh"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell", "tcsh"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"pdfreport", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			code := runMain(tt.args, env.Environment)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, env.stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(env.stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, env.stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(env.stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, env.stderr.String())
				}
			}
		})
	}
}

func TestRunMain_RecoversPanic(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.Environ = func() []string { panic("environ exploded") }

	code := runMain([]string{"pdfreport", "generate", "annual", "-o", t.TempDir()}, env.Environment)
	if code != ExitGeneral {
		t.Errorf("runMain() = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(env.stderr.String(), "internal error: environ exploded") {
		t.Errorf("stderr = %q, want internal error", env.stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Pre-parse scan
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"short", []string{"pdfreport", "generate", "annual", "-v"}, true},
		{"long", []string{"pdfreport", "--verbose", "generate"}, true},
		{"absent", []string{"pdfreport", "generate", "annual"}, false},
		{"value lookalike", []string{"pdfreport", "generate", "-o", "-vdir"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
