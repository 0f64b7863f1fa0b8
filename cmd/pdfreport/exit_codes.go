package main

import (
	"errors"
	"os"

	"github.com/alnah/go-pdfreport"
	"github.com/alnah/go-pdfreport/internal/config"
	"github.com/alnah/go-pdfreport/internal/dateutil"
	"github.com/alnah/go-pdfreport/internal/fileutil"
	"github.com/alnah/go-pdfreport/internal/inspect"
	"github.com/alnah/go-pdfreport/internal/reports"
)

// Exit codes for the pdfreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Report written, command succeeded
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, not a PDF
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, pdfreport.ErrBrowserConnect) ||
		errors.Is(err, pdfreport.ErrPageCreate) ||
		errors.Is(err, pdfreport.ErrPageLoad) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoReport) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, reports.ErrUnknownReport) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, dateutil.ErrUnknownLocale) ||
		errors.Is(err, pdfreport.ErrUnknownBackend) ||
		errors.Is(err, pdfreport.ErrInvalidPageSize) ||
		errors.Is(err, pdfreport.ErrInvalidOrientation) ||
		errors.Is(err, pdfreport.ErrInvalidMargin) ||
		errors.Is(err, pdfreport.ErrInvalidFooterPosition) ||
		errors.Is(err, pdfreport.ErrStyleNotFound) ||
		errors.Is(err, pdfreport.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdfreport.ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, inspect.ErrNotPDF) ||
		errors.Is(err, inspect.ErrUnreadable) {
		return ExitIO
	}

	return ExitGeneral
}
