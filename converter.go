package pdfreport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-pdfreport/internal/assets"
	"github.com/alnah/go-pdfreport/internal/fileutil"
	"github.com/alnah/go-pdfreport/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pdfBackend             = (*chromeBackend)(nil)
)

// pdfBackend turns a validated document into PDF bytes.
type pdfBackend interface {
	Render(ctx context.Context, doc *Document) (*RenderResult, error)
	Close() error
}

// RenderResult is the output of one render.
type RenderResult struct {
	PDF   []byte
	HTML  []byte // set by the Chrome backend
	Pages int    // set by the native backend; 0 when unknown
}

// Converter renders documents with the configured backend.
// Create with NewConverter, call Render or WriteFile, and Close when done.
// A Converter is not safe for concurrent use.
type Converter struct {
	cfg         converterConfig
	assetLoader assets.StyleLoader
	html        *htmlBuilder
	backend     pdfBackend
}

// NewConverter creates a Converter. The native backend is the default.
// Returns an error if the backend is unknown or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			backend: BackendNative,
			timeout: defaultTimeout,
		},
		assetLoader: assets.Embedded{},
	}

	for _, opt := range opts {
		opt(c)
	}

	backend, err := ParseBackend(string(c.cfg.backend))
	if err != nil {
		return nil, err
	}
	c.cfg.backend = backend

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewStyles(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	c.html = newHTMLBuilder(c.cfg.resolvedStyle)

	if c.backend == nil {
		switch c.cfg.backend {
		case BackendChrome:
			c.backend = newChromeBackend(c.cfg.timeout, c.html)
		default:
			c.backend = newNativeBackend()
		}
	}

	return c, nil
}

// Backend returns the selected backend.
func (c *Converter) Backend() Backend {
	return c.cfg.backend
}

// Render validates doc and renders it to PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Render(ctx context.Context, doc *Document) (result *RenderResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrPDFGeneration, r)
		}
	}()

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.backend.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", c.cfg.backend, err)
	}
	if len(res.PDF) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrPDFGeneration)
	}
	return res, nil
}

// RenderHTML validates doc and returns the HTML the Chrome backend prints.
// Works with either backend; no browser is started.
func (c *Converter) RenderHTML(ctx context.Context, doc *Document) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, r)
		}
	}()

	if err := doc.Validate(); err != nil {
		return "", err
	}
	return c.html.Build(ctx, doc)
}

// WriteFile renders doc to path and returns the written size in bytes.
// The parent directory is created if missing; an existing file is replaced.
func (c *Converter) WriteFile(ctx context.Context, doc *Document, path string) (int64, error) {
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	res, err := c.Render(ctx, doc)
	if err != nil {
		return 0, err
	}

	return writeOutput(path, res.PDF)
}

// WriteHTML writes the HTML rendition of doc to path.
func (c *Converter) WriteHTML(ctx context.Context, doc *Document, path string) (int64, error) {
	out, err := c.RenderHTML(ctx, doc)
	if err != nil {
		return 0, err
	}
	return writeOutput(path, []byte(out))
}

func writeOutput(path string, data []byte) (int64, error) {
	if err := fileutil.WriteFile(path, data); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	size, err := fileutil.FileSize(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return size, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.backend != nil {
		return c.backend.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. An empty input selects the default embedded style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}
