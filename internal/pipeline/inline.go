package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Run is a span of paragraph text drawn with one font variant.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Strike bool
	Break  bool // forced line break, Text is empty
}

// sameStyle reports whether two text runs can be merged.
func (r Run) sameStyle(o Run) bool {
	return r.Bold == o.Bold && r.Italic == o.Italic && r.Code == o.Code && r.Strike == o.Strike
}

var defaultConverter = NewGoldmarkConverter()

// ParseRuns splits paragraph markup into styled runs.
//
// Single newlines are spaces. A blank line, a hard break (two trailing
// spaces or a backslash) and each line of a fenced code block produce a
// Break run. Adjacent runs with the same style are merged.
func ParseRuns(content string) []Run {
	return defaultConverter.Runs(content)
}

// Runs is ParseRuns bound to this converter's parser.
func (c *GoldmarkConverter) Runs(content string) []Run {
	src := []byte(NormalizeText(content))
	if len(src) == 0 {
		return nil
	}
	doc := c.md.Parser().Parse(text.NewReader(src))

	b := &runBuilder{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		delta := 1
		if !entering {
			delta = -1
		}
		switch node := n.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if entering {
				b.pendingBreak = true
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				b.codeLines(node, src)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Emphasis:
			if node.Level >= 2 {
				b.bold += delta
			} else {
				b.italic += delta
			}
		case *east.Strikethrough:
			b.strike += delta
		case *ast.CodeSpan:
			b.code += delta
		case *ast.Text:
			if !entering {
				break
			}
			v := node.Segment.Value(src)
			if b.code == 0 {
				v = util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(v)))
			}
			b.text(string(v))
			switch {
			case node.HardLineBreak():
				b.lineBreak()
			case node.SoftLineBreak():
				b.text(" ")
			}
		case *ast.String:
			if entering {
				b.text(string(node.Value))
			}
		case *ast.AutoLink:
			if entering {
				b.text(string(node.Label(src)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.runs
}

// PlainText flattens runs, forced breaks become newlines.
func PlainText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Break {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(r.Text)
	}
	return sb.String()
}

type runBuilder struct {
	runs         []Run
	bold         int
	italic       int
	code         int
	strike       int
	pendingBreak bool
}

func (b *runBuilder) text(s string) {
	if s == "" {
		return
	}
	if b.pendingBreak {
		if len(b.runs) > 0 {
			b.lineBreak()
		}
		b.pendingBreak = false
	}
	r := Run{
		Text:   s,
		Bold:   b.bold > 0,
		Italic: b.italic > 0,
		Code:   b.code > 0,
		Strike: b.strike > 0,
	}
	if n := len(b.runs); n > 0 && !b.runs[n-1].Break && b.runs[n-1].sameStyle(r) {
		b.runs[n-1].Text += s
		return
	}
	b.runs = append(b.runs, r)
}

func (b *runBuilder) lineBreak() {
	b.runs = append(b.runs, Run{Break: true})
}

// codeLines emits each line of a code block as monospace text on its own line.
func (b *runBuilder) codeLines(n ast.Node, src []byte) {
	lines := n.Lines()
	b.code++
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		if line == "" {
			line = " "
		}
		b.pendingBreak = true
		b.text(line)
	}
	b.code--
}
