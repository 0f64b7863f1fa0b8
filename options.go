package pdfreport

import (
	"fmt"
	"strings"
	"time"
)

// defaultTimeout bounds browser start-up and page rendering.
const defaultTimeout = 30 * time.Second

// Backend selects the engine that turns a Document into PDF bytes.
type Backend string

// Supported backends.
const (
	BackendNative Backend = "native" // pure Go, go-pdf/fpdf
	BackendChrome Backend = "chrome" // headless Chrome via go-rod
)

// Backends lists the accepted backend names.
func Backends() []Backend {
	return []Backend{BackendNative, BackendChrome}
}

// ParseBackend parses a backend name case-insensitively. Empty means native.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendNative:
		return BackendNative, nil
	case BackendChrome:
		return BackendChrome, nil
	}
	return "", fmt.Errorf("%w: %q (must be native or chrome)", ErrUnknownBackend, s)
}

// converterConfig holds settings applied by options.
type converterConfig struct {
	backend       Backend
	timeout       time.Duration
	styleInput    string // name, path or CSS content
	assetPath     string
	resolvedStyle string
}

// Option configures a Converter.
type Option func(*Converter)

// WithBackend selects the rendering backend.
func WithBackend(b Backend) Option {
	return func(c *Converter) {
		c.cfg.backend = b
	}
}

// WithTimeout sets the Chrome backend timeout.
// Panics if d is not positive.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pdfreport: timeout must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the base CSS of the Chrome backend: an embedded style name
// ("report", "compact"), a file path, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath adds a directory searched for styles/{name}.css before the
// embedded styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// withRenderer injects a backend, bypassing WithBackend (tests).
func withRenderer(b pdfBackend) Option {
	return func(c *Converter) {
		c.backend = b
	}
}
