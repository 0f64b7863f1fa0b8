// Package config loads the YAML configuration of the pdfreport CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-pdfreport/internal/dateutil"
	"github.com/alnah/go-pdfreport/internal/fileutil"
	"github.com/alnah/go-pdfreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxStyleLength      = 4096 // name, path or inline CSS
	MaxTextLength       = 500  // footer free-form text
	MaxDocumentIDLength = 100
	MaxLocaleLength     = 35 // longest practical BCP 47 tag
)

// Defaults applied by DefaultConfig.
const (
	DefaultOutputDir   = "~/.openclaw/workspace/output"
	DefaultBackend     = "native"
	DefaultTimeout     = "30s"
	DefaultPageSize    = "a4"
	DefaultOrientation = "portrait"
	DefaultMarginCm    = 2.0
	MaxMarginCm        = 8.0
)

// AppName names the per-user config directory.
const AppName = "go-pdfreport"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PDFREPORT_"

// Environment variables read by ApplyEnv. PDFREPORT_CONFIG and
// PDFREPORT_CONTAINER are read by the CLI.
const (
	EnvConfig    = EnvPrefix + "CONFIG"
	EnvOutputDir = EnvPrefix + "OUTPUT_DIR"
	EnvBackend   = EnvPrefix + "BACKEND"
	EnvTimeout   = EnvPrefix + "TIMEOUT"
	EnvLocale    = EnvPrefix + "LOCALE"
	EnvContainer = EnvPrefix + "CONTAINER"
)

var knownEnv = map[string]bool{
	EnvConfig:    true,
	EnvOutputDir: true,
	EnvBackend:   true,
	EnvTimeout:   true,
	EnvLocale:    true,
	EnvContainer: true,
}

// Config holds all configuration for report generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Page   PageConfig   `yaml:"page"`
	Locale string       `yaml:"locale"` // BCP 47 tag for month names (default: "fr")
	Footer FooterConfig `yaml:"footer"`
	Assets AssetsConfig `yaml:"assets"`
}

// OutputConfig defines where reports are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // "~" is expanded
}

// RenderConfig selects and tunes the PDF backend.
type RenderConfig struct {
	Backend string `yaml:"backend"` // "native" or "chrome"
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s"
	Style   string `yaml:"style"`   // chrome only: CSS name, path or content
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	MarginCm    float64 `yaml:"marginCm"`
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Text           string `yaml:"text"`
	DocumentID     string `yaml:"documentID"` // "auto" = generated UUID
}

// AssetsConfig defines custom style loading.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: DefaultOutputDir},
		Render: RenderConfig{Backend: DefaultBackend, Timeout: DefaultTimeout},
		Page: PageConfig{
			Size:        DefaultPageSize,
			Orientation: DefaultOrientation,
			MarginCm:    DefaultMarginCm,
		},
		Locale: dateutil.DefaultLocale,
	}
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig and again by the CLI after flags and env are merged.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"render.style", c.Render.Style, MaxStyleLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"footer.documentID", c.Footer.DocumentID, MaxDocumentIDLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"locale", c.Locale, MaxLocaleLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := oneOf("render.backend", c.Render.Backend, "native", "chrome"); err != nil {
		return err
	}
	if c.Render.Timeout != "" {
		if _, err := c.TimeoutDuration(); err != nil {
			return err
		}
	}
	if err := oneOf("page.size", c.Page.Size, "a4", "letter", "legal"); err != nil {
		return err
	}
	if err := oneOf("page.orientation", c.Page.Orientation, "portrait", "landscape"); err != nil {
		return err
	}
	if c.Page.MarginCm < 0 || c.Page.MarginCm > MaxMarginCm {
		return fmt.Errorf("%w: page.marginCm must be between 0 and %.0f, got %.2f", ErrInvalidValue, MaxMarginCm, c.Page.MarginCm)
	}
	if err := oneOf("footer.position", c.Footer.Position, "left", "center", "right"); err != nil {
		return err
	}
	if _, err := dateutil.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("%w: locale: %v", ErrInvalidValue, err)
	}

	return nil
}

// TimeoutDuration parses Render.Timeout. Empty means DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	s := c.Render.Timeout
	if s == "" {
		s = DefaultTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidValue, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidValue, s)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// oneOf accepts an empty value or one of allowed, case-insensitively.
func oneOf(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, field, value, strings.Join(allowed, ", "))
}

// LoadConfig loads configuration from a file path or config name, on top of
// DefaultConfig: keys absent from the file keep their default.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched in SearchPaths order.
// Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// the current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// ApplyEnv overrides fields from PDFREPORT_* variables in environ (os.Environ
// format). It returns one warning per unknown PDFREPORT_* variable.
func (c *Config) ApplyEnv(environ []string) (warnings []string, err error) {
	env := make(map[string]string)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		if !knownEnv[k] {
			warnings = append(warnings, fmt.Sprintf("unknown environment variable %s ignored", k))
			continue
		}
		env[k] = v
	}
	sort.Strings(warnings)

	if v := env[EnvOutputDir]; v != "" {
		c.Output.Dir = v
	}
	if v := env[EnvBackend]; v != "" {
		c.Render.Backend = v
	}
	if v := env[EnvTimeout]; v != "" {
		// Bare numbers are seconds.
		if secs, convErr := strconv.Atoi(v); convErr == nil {
			v = strconv.Itoa(secs) + "s"
		}
		c.Render.Timeout = v
	}
	if v := env[EnvLocale]; v != "" {
		c.Locale = v
	}

	return warnings, c.Validate()
}

// OutputDir returns Output.Dir with a leading "~" expanded.
func (c *Config) OutputDir() (string, error) {
	return ExpandHome(c.Output.Dir)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
