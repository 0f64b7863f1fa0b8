package pdfreport

// Notes:
// - Tests Converter with an injected stub backend to isolate error handling
//   and data flow from real rendering
// - withRenderer (internal option) bypasses backend selection
// - Native rendering end-to-end is exercised by TestConverter_WriteFile
// - Style resolution covers embedded names, CSS content, files and asset paths

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestNewConverter - Construction and Options
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []Option
		wantBackend Backend
		wantErr     error
	}{
		{name: "defaults to native", wantBackend: BackendNative},
		{name: "chrome", opts: []Option{WithBackend(BackendChrome)}, wantBackend: BackendChrome},
		{name: "backend name is case insensitive", opts: []Option{WithBackend("Chrome")}, wantBackend: BackendChrome},
		{name: "unknown backend", opts: []Option{WithBackend("latex")}, wantErr: ErrUnknownBackend},
		{name: "unknown style", opts: []Option{WithStyle("nonexistent")}, wantErr: ErrStyleNotFound},
		{name: "invalid asset path", opts: []Option{WithAssetPath("/nonexistent/assets")}, wantErr: ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() unexpected error: %v", err)
			}
			defer conv.Close()

			if conv.Backend() != tt.wantBackend {
				t.Errorf("Backend() = %q, want %q", conv.Backend(), tt.wantBackend)
			}
			if conv.cfg.timeout != defaultTimeout {
				t.Errorf("timeout = %v, want %v", conv.cfg.timeout, defaultTimeout)
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithTimeout(2 * time.Minute))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	defer conv.Close()

	if conv.cfg.timeout != 2*time.Minute {
		t.Errorf("timeout = %v, want 2m", conv.cfg.timeout)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendNative, false},
		{"native", BackendNative, false},
		{" CHROME ", BackendChrome, false},
		{"wkhtmltopdf", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackend(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownBackend) {
			t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if len(Backends()) != 2 {
		t.Errorf("Backends() = %v", Backends())
	}
}

// ---------------------------------------------------------------------------
// TestWithStyle - Style Resolution
// ---------------------------------------------------------------------------

func TestWithStyle(t *testing.T) {
	t.Parallel()

	t.Run("default is report style", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter()
		if err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if !strings.Contains(conv.cfg.resolvedStyle, "table.report-table") {
			t.Error("default style not loaded")
		}
	})

	t.Run("CSS content", func(t *testing.T) {
		t.Parallel()
		customCSS := "body { font-family: monospace; }"

		conv, err := NewConverter(WithStyle(customCSS))
		if err != nil {
			t.Fatalf("NewConverter(WithStyle) error = %v", err)
		}
		if conv.cfg.resolvedStyle != customCSS {
			t.Errorf("cfg.resolvedStyle = %q, want %q", conv.cfg.resolvedStyle, customCSS)
		}
	})

	t.Run("style name", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(WithStyle("compact"))
		if err != nil {
			t.Fatalf("NewConverter(WithStyle) error = %v", err)
		}
		if !strings.Contains(conv.cfg.resolvedStyle, "Compact") {
			t.Error("cfg.resolvedStyle doesn't contain compact.css content")
		}
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		cssPath := filepath.Join(t.TempDir(), "custom.css")
		cssContent := "h1 { color: red; }"
		if err := os.WriteFile(cssPath, []byte(cssContent), 0o644); err != nil {
			t.Fatalf("WriteFile error = %v", err)
		}

		conv, err := NewConverter(WithStyle(cssPath))
		if err != nil {
			t.Fatalf("NewConverter(WithStyle) error = %v", err)
		}
		if conv.cfg.resolvedStyle != cssContent {
			t.Errorf("cfg.resolvedStyle = %q, want %q", conv.cfg.resolvedStyle, cssContent)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := NewConverter(WithStyle("./nonexistent.css")); err == nil {
			t.Error("expected error for missing file, got nil")
		}
	})

	t.Run("asset path overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "styles", "brand.css"), []byte("h1 { color: teal; }"), 0o644); err != nil {
			t.Fatal(err)
		}

		conv, err := NewConverter(WithAssetPath(dir), WithStyle("brand"))
		if err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if conv.cfg.resolvedStyle != "h1 { color: teal; }" {
			t.Errorf("cfg.resolvedStyle = %q", conv.cfg.resolvedStyle)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConverter_Render - Validation and Error Handling
// ---------------------------------------------------------------------------

func TestConverter_Render(t *testing.T) {
	t.Parallel()

	badStyle := NewDocument(DefaultPageSettings())
	badStyle.Table(NewTable([][]string{{"a"}}).SetStyle(Background(At(0, 0), At(3, 0), White)))

	tests := []struct {
		name    string
		doc     *Document
		stub    *stubBackend
		wantErr error
	}{
		{
			name: "success",
			doc:  sampleDocument(),
			stub: &stubBackend{result: &RenderResult{PDF: []byte("%PDF-1.4"), Pages: 2}},
		},
		{
			name:    "nil document",
			doc:     nil,
			stub:    &stubBackend{},
			wantErr: ErrNilDocument,
		},
		{
			name:    "empty document",
			doc:     NewDocument(DefaultPageSettings()),
			stub:    &stubBackend{},
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "style range outside table",
			doc:     badStyle,
			stub:    &stubBackend{},
			wantErr: ErrInvalidStyleRange,
		},
		{
			name:    "backend error propagates",
			doc:     sampleDocument(),
			stub:    &stubBackend{err: ErrBrowserConnect},
			wantErr: ErrBrowserConnect,
		},
		{
			name:    "empty output",
			doc:     sampleDocument(),
			stub:    &stubBackend{result: &RenderResult{}},
			wantErr: ErrPDFGeneration,
		},
		{
			name:    "backend panic is recovered",
			doc:     sampleDocument(),
			stub:    &stubBackend{panics: true},
			wantErr: ErrPDFGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(withRenderer(tt.stub))
			if err != nil {
				t.Fatalf("NewConverter() unexpected error: %v", err)
			}

			res, err := conv.Render(context.Background(), tt.doc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
				}
				if res != nil {
					t.Error("Render() returned a result with an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if res.Pages != 2 {
				t.Errorf("Pages = %d, want 2", res.Pages)
			}
		})
	}
}

func TestConverter_Render_InvalidDocumentSkipsBackend(t *testing.T) {
	t.Parallel()

	stub := &stubBackend{}
	conv, err := NewConverter(withRenderer(stub))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}

	_, _ = conv.Render(context.Background(), NewDocument(DefaultPageSettings()))
	if stub.calls != 0 {
		t.Errorf("backend called %d times for an invalid document", stub.calls)
	}
}

func TestConverter_Render_Cancelled(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(withRenderer(&stubBackend{}))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := conv.Render(ctx, sampleDocument()); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestConverter_Close(t *testing.T) {
	t.Parallel()

	stub := &stubBackend{}
	conv, err := NewConverter(withRenderer(stub))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	if err := conv.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if !stub.closed {
		t.Error("backend not closed")
	}
}

// ---------------------------------------------------------------------------
// TestConverter_WriteFile - Output Files
// ---------------------------------------------------------------------------

func TestConverter_WriteFile(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	defer conv.Close()

	path := filepath.Join(t.TempDir(), "nested", "dir", "rapport.pdf")
	ctx := context.Background()

	size, err := conv.WriteFile(ctx, sampleDocument(), path)
	if err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	assertPDF(t, data)
	if size != int64(len(data)) {
		t.Errorf("size = %d, want %d", size, len(data))
	}

	// A second run replaces the file.
	size2, err := conv.WriteFile(ctx, longDocument(50), path)
	if err != nil {
		t.Fatalf("second WriteFile() unexpected error: %v", err)
	}
	if size2 == size {
		t.Errorf("second write kept the old size %d", size)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want 1 (no temp leftovers)", len(entries))
	}
}

func TestConverter_WriteFile_Errors(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		_, err := conv.WriteFile(context.Background(), sampleDocument(), filepath.Join(blocker, "out.pdf"))
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("WriteFile() error = %v, want ErrWriteOutput", err)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()

		_, err := conv.WriteFile(context.Background(), nil, filepath.Join(dir, "out.pdf"))
		if !errors.Is(err, ErrNilDocument) {
			t.Errorf("WriteFile() error = %v, want ErrNilDocument", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConverter_RenderHTML - HTML Output Without a Browser
// ---------------------------------------------------------------------------

func TestConverter_RenderHTML(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithStyle("body { margin: 0; }"))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}

	out, err := conv.RenderHTML(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("RenderHTML() unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("RenderHTML() does not start with doctype: %.40q", out)
	}
	if !strings.Contains(out, "body { margin: 0; }") {
		t.Error("style not injected")
	}

	path := filepath.Join(t.TempDir(), "rapport.html")
	size, err := conv.WriteHTML(context.Background(), sampleDocument(), path)
	if err != nil {
		t.Fatalf("WriteHTML() unexpected error: %v", err)
	}
	if size != int64(len(out)) {
		t.Errorf("WriteHTML() size = %d, want %d", size, len(out))
	}

	if _, err := conv.RenderHTML(context.Background(), nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("RenderHTML(nil) error = %v, want ErrNilDocument", err)
	}
}
