package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HighlightStyle is the chroma style used for fenced code in paragraphs.
const HighlightStyle = "github"

// htmlTemplate wraps rendered blocks in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts paragraph markup to HTML conversion.
type HTMLConverter interface {
	Fragment(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter parses paragraph markup using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

var _ HTMLConverter = (*GoldmarkConverter)(nil)

// NewGoldmarkConverter creates a converter for paragraph markup.
//
// Only paragraphs and fenced code blocks are recognized as blocks, so report
// text such as "1. Introduction" or "- 5%" stays literal instead of turning
// into lists. Inline syntax is CommonMark plus GFM strikethrough and
// autolinks; fenced code is highlighted with chroma CSS classes.
func NewGoldmarkConverter() *GoldmarkConverter {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// No WithUnsafe: raw HTML in report text is dropped.
		),
	)
	return &GoldmarkConverter{md: md}
}

// Fragment converts paragraph markup to an HTML fragment (one <p> per
// blank-line separated chunk).
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) Fragment(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(NormalizeText(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// WrapDocument wraps a body in a standalone HTML5 document.
func WrapDocument(title, lang, body string) string {
	if title == "" {
		title = "Document"
	}
	if lang == "" {
		lang = "en"
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(lang), html.EscapeString(title), body)
}

// HighlightCSS returns the stylesheet for chroma's CSS classes.
func HighlightCSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
		return "", fmt.Errorf("%w: highlight css: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
