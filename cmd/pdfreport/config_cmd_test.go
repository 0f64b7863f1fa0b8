package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-pdfreport/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunConfigCmd - Effective configuration as YAML
// ---------------------------------------------------------------------------

func TestRunConfigCmd(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "work.yaml")
	if err := os.WriteFile(cfgPath, []byte("render:\n  timeout: 45s\nlocale: de\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		args       []string
		vars       []string
		wantCode   int
		wantStdout []string
		wantStderr string
	}{
		{
			name:       "defaults",
			wantCode:   ExitSuccess,
			wantStdout: []string{"backend: native", "locale: fr", "marginCm: 2"},
		},
		{
			name:       "file then environment",
			args:       []string{"-c", cfgPath},
			vars:       []string{config.EnvLocale + "=es"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"timeout: 45s", "locale: es"},
		},
		{
			name:       "bare timeout seconds",
			vars:       []string{config.EnvTimeout + "=90"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"timeout: 90s"},
		},
		{
			name:       "missing config",
			args:       []string{"-c", "nowhere"},
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name:       "invalid environment",
			vars:       []string{config.EnvBackend + "=latex"},
			wantCode:   ExitUsage,
			wantStderr: "render.backend",
		},
		{
			name:       "unknown environment warns",
			vars:       []string{"PDFREPORT_THEME=dark"},
			wantCode:   ExitSuccess,
			wantStderr: "PDFREPORT_THEME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.vars...)
			code := runConfigCmd(tt.args, env.Environment)

			if code != tt.wantCode {
				t.Fatalf("runConfigCmd(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, env.stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(env.stdout.String(), want) {
					t.Errorf("stdout should contain %q, got:\n%s", want, env.stdout.String())
				}
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", env.stderr.String(), tt.wantStderr)
			}
		})
	}
}
