package assets

// Notes:
// - Fixtures mirror a user assets directory: {base}/styles/report.css
// - Symlink cases are skipped where the OS refuses to create them

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeStyle creates {base}/styles/{name}.css.
func writeStyle(t *testing.T, base, name, css string) string {
	t.Helper()
	dir := filepath.Join(base, stylesSubdir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(dir, name+".css")
	if err := os.WriteFile(path, []byte(css), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestOpenDir - Base Path Checks
// ---------------------------------------------------------------------------

func TestOpenDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	file := filepath.Join(base, "config.yaml")
	if err := os.WriteFile(file, []byte("locale: fr\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing directory", base, false},
		{"empty path", "", true},
		{"missing directory", filepath.Join(base, "missing"), true},
		{"file instead of directory", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := OpenDir(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrBadBasePath) {
					t.Errorf("OpenDir(%q) error = %v, want ErrBadBasePath", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenDir(%q) unexpected error: %v", tt.path, err)
			}
			if !filepath.IsAbs(d.Base()) {
				t.Errorf("Base() = %q, want absolute path", d.Base())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDir_LoadStyle - Override Files
// ---------------------------------------------------------------------------

func TestDir_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "report", "body { font-size: 11pt; }")
	d, err := OpenDir(base)
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}

	t.Run("reads styles/report.css", func(t *testing.T) {
		t.Parallel()

		css, err := d.LoadStyle("report")
		if err != nil {
			t.Fatalf("LoadStyle() unexpected error: %v", err)
		}
		if css != "body { font-size: 11pt; }" {
			t.Errorf("LoadStyle() = %q", css)
		}
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		if _, err := d.LoadStyle("compact"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(compact) error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("bad name never touches disk", func(t *testing.T) {
		t.Parallel()

		if _, err := d.LoadStyle("../report"); !errors.Is(err, ErrBadStyleName) {
			t.Errorf("LoadStyle(../report) error = %v, want ErrBadStyleName", err)
		}
	})
}

func TestDir_LoadStyle_SymlinkOutsideBase(t *testing.T) {
	t.Parallel()

	outside := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(outside, []byte("body{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, stylesSubdir), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, filepath.Join(base, stylesSubdir, "report.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	d, err := OpenDir(base)
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	if _, err := d.LoadStyle("report"); !errors.Is(err, ErrOutsideBasePath) {
		t.Errorf("LoadStyle() error = %v, want ErrOutsideBasePath", err)
	}
}
