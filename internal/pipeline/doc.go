// Package pipeline turns paragraph markup into something a backend can draw.
//
// Paragraph text in a report uses a small Markdown subset (**bold**, *italic*,
// `code`, blank line = forced break). This package parses it with goldmark
// into two shapes:
//   - styled runs for the native PDF backend (ParseRuns)
//   - HTML fragments for the Chrome backend (GoldmarkConverter.Fragment)
//
// It also provides text normalization shared by both paths and CSS injection
// into complete HTML documents. Page layout and PDF rendering live in the root
// pdfreport package.
package pipeline
