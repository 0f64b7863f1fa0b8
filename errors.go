package pdfreport

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument  = errors.New("document has no content blocks")
	ErrNilDocument    = errors.New("document cannot be nil")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrWriteOutput    = errors.New("failed to write output file")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// Content validation errors.
	ErrInvalidColor      = errors.New("invalid color")
	ErrUnknownFont       = errors.New("unknown font")
	ErrInvalidFontSize   = errors.New("invalid font size")
	ErrInvalidSpacer     = errors.New("invalid spacer height")
	ErrInvalidHeading    = errors.New("invalid heading level")
	ErrRaggedTable       = errors.New("table rows have different lengths")
	ErrEmptyTable        = errors.New("table has no cells")
	ErrColumnWidths      = errors.New("column widths do not match table")
	ErrRowHeights        = errors.New("row heights do not match table")
	ErrInvalidStyleRange = errors.New("style range outside table")

	// Backend selection errors.
	ErrUnknownBackend = errors.New("unknown backend")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
