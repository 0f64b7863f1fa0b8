package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress runs of blank lines to one
	multipleBlankLines = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
)

// NormalizeText prepares paragraph markup for parsing.
// Line endings become \n, text is NFC-composed so precomposed accents measure
// and render as one glyph, and runs of blank lines collapse to a single one.
func NormalizeText(content string) string {
	content = normalizeLineEndings(content)
	content = norm.NFC.String(content)
	content = compressBlankLines(content)
	return strings.TrimSpace(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
