package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdfreport"
	"github.com/alnah/go-pdfreport/internal/assets"
	"github.com/alnah/go-pdfreport/internal/config"
	"github.com/alnah/go-pdfreport/internal/hints"
	"github.com/alnah/go-pdfreport/internal/reports"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage    = errors.New("invalid usage")
	ErrNoReport = errors.New("no report specified")
)

// autoDocumentID asks for a generated document ID.
const autoDocumentID = "auto"

// generateResult describes a written report.
type generateResult struct {
	Report  reports.Report
	Path    string
	Size    int64
	Backend pdfreport.Backend
	Elapsed time.Duration
}

// runGenerateCmd parses flags, writes one report and prints the result lines.
func runGenerateCmd(args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'pdfreport help generate' for usage.")
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	res, err := runGenerate(ctx, positional, flags, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags.common.config, env))
		return exitCodeFor(err)
	}

	logger.Debug("report written",
		"report", res.Report.Name,
		"backend", string(res.Backend),
		"path", res.Path,
		"bytes", res.Size,
		"elapsed", res.Elapsed)

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, res.Report.DoneMessage(res.Path))
		fmt.Fprintln(env.Stdout, reports.SizeMessage(res.Size))
	}
	return ExitSuccess
}

// runGenerate builds the named report and writes it into the output directory.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, env *Environment, logger *slog.Logger) (*generateResult, error) {
	if len(positional) == 0 {
		return nil, ErrNoReport
	}
	if len(positional) > 1 {
		return nil, fmt.Errorf("%w: generate takes one report, got %d", ErrUsage, len(positional))
	}

	report, err := reports.Lookup(positional[0])
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(flags.common.config, env, logger)
	if err != nil {
		return nil, err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	now := env.now()
	doc, err := report.Build(reports.Params{Now: now, Locale: cfg.Locale})
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", report.Name, err)
	}
	doc.Page = pageSettings(cfg)
	if doc.Footer, err = buildFooter(cfg, now); err != nil {
		return nil, err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conv.Close() }()

	dir, err := cfg.OutputDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, report.FileName)
	logger.Debug("rendering", "report", report.Name, "backend", string(conv.Backend()), "path", path)

	start := time.Now()
	var size int64
	if flags.htmlOnly {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
		size, err = conv.WriteHTML(ctx, doc, path)
	} else {
		size, err = conv.WriteFile(ctx, doc, path)
	}
	if err != nil {
		return nil, err
	}

	return &generateResult{
		Report:  report,
		Path:    path,
		Size:    size,
		Backend: conv.Backend(),
		Elapsed: time.Since(start),
	}, nil
}

// loadConfig applies file, then environment, on top of the defaults.
// The config name comes from --config, else PDFREPORT_CONFIG.
func loadConfig(name string, env *Environment, logger *slog.Logger) (*config.Config, error) {
	if name == "" {
		name = env.getenv(config.EnvConfig)
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("config loaded", "name", name)
	}

	warnings, err := cfg.ApplyEnv(env.environ())
	for _, w := range warnings {
		logger.Warn(w)
	}
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags into cfg (CLI wins).
func mergeFlags(f *generateFlags, cfg *config.Config) {
	if f.outputDir != "" {
		cfg.Output.Dir = f.outputDir
	}
	if f.backend != "" {
		cfg.Render.Backend = f.backend
	}
	if f.timeout != "" {
		cfg.Render.Timeout = f.timeout
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	if f.footer.pageNumbers {
		cfg.Footer.Enabled = true
		cfg.Footer.ShowPageNumber = true
	}
	if f.footer.text != "" {
		cfg.Footer.Enabled = true
		cfg.Footer.Text = f.footer.text
	}
	if f.footer.documentID != "" {
		cfg.Footer.Enabled = true
		cfg.Footer.DocumentID = f.footer.documentID
	}
}

// pageSettings maps the page section of cfg, defaulting empty fields.
func pageSettings(cfg *config.Config) pdfreport.PageSettings {
	page := pdfreport.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = strings.ToLower(cfg.Page.Orientation)
	}
	page.Margins = pdfreport.UniformMargins(cfg.Page.MarginCm * pdfreport.Cm)
	return page
}

// buildFooter returns nil when the footer is disabled. Footer text may use
// the "auto:FORMAT" date syntax; an "auto" document ID becomes a UUID.
func buildFooter(cfg *config.Config, now time.Time) (*pdfreport.Footer, error) {
	if !cfg.Footer.Enabled {
		return nil, nil
	}

	text, err := pdfreport.ResolveDate(cfg.Footer.Text, now, cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("footer text: %w", err)
	}

	docID := cfg.Footer.DocumentID
	if strings.EqualFold(docID, autoDocumentID) {
		docID = uuid.NewString()
	}

	return &pdfreport.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Text:           text,
		DocumentID:     docID,
	}, nil
}

// newConverter maps the render and assets sections of cfg to converter options.
func newConverter(cfg *config.Config) (*pdfreport.Converter, error) {
	backend, err := pdfreport.ParseBackend(cfg.Render.Backend)
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	opts := []pdfreport.Option{
		pdfreport.WithBackend(backend),
		pdfreport.WithTimeout(timeout),
	}
	if cfg.Render.Style != "" {
		opts = append(opts, pdfreport.WithStyle(cfg.Render.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, pdfreport.WithAssetPath(cfg.Assets.BasePath))
	}
	return pdfreport.NewConverter(opts...)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName string, env *Environment) string {
	switch {
	case errors.Is(err, reports.ErrUnknownReport):
		return hints.ForUnknownReport(reports.Names())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, pdfreport.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, pdfreport.ErrBrowserConnect):
		return hints.ForBrowserConnect(hints.Detect(env.getenv))
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, pdfreport.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
