package pdfreport

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-pdfreport/internal/pipeline"
)

// defaultLang is the lang attribute of reports that do not set one.
const defaultLang = "fr"

// htmlBuilder renders a Document as a standalone HTML page for Chrome.
// Block geometry is carried by inline styles so the page prints with the
// same spacing as the native backend; the stylesheet only resets defaults.
type htmlBuilder struct {
	style string
	md    pipeline.HTMLConverter
}

func newHTMLBuilder(style string) *htmlBuilder {
	return &htmlBuilder{
		style: style,
		md:    pipeline.NewGoldmarkConverter(),
	}
}

// Build returns the full HTML document with its stylesheet injected.
func (b *htmlBuilder) Build(ctx context.Context, doc *Document) (string, error) {
	var body strings.Builder
	for i, blk := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := b.writeBlock(ctx, &body, blk); err != nil {
			return "", fmt.Errorf("block %d: %w", i, err)
		}
	}

	lang := doc.Lang
	if lang == "" {
		lang = defaultLang
	}
	page := pipeline.WrapDocument(doc.Title, lang, body.String())

	highlight, err := pipeline.HighlightCSS()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	sheet := (&pipeline.StyleSheet{}).
		Add("style", b.style).
		Add("page", buildPageCSS(doc.Page)).
		Add("page breaks", buildPageBreaksCSS()).
		Add("highlight", highlight)
	out, err := sheet.Inject(ctx, page)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return out, nil
}

func (b *htmlBuilder) writeBlock(ctx context.Context, w *strings.Builder, blk Block) error {
	switch v := blk.(type) {
	case *Heading:
		fmt.Fprintf(w, "<h%d class=\"block\" style=\"%s\">%s</h%d>\n",
			v.Level, paragraphCSS(v.Style), headingHTML(v.Text), v.Level)
	case *Paragraph:
		frag, err := b.md.Fragment(ctx, v.Text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		fmt.Fprintf(w, "<div class=\"block para\" style=\"%s\">%s</div>\n", paragraphCSS(v.Style), frag)
	case *Spacer:
		fmt.Fprintf(w, "<div class=\"spacer\" style=\"height: %s\"></div>\n", cssPt(v.Height))
	case *PageBreak:
		w.WriteString("<div class=\"page-break\"></div>\n")
	case *Table:
		return b.writeTable(ctx, w, v)
	default:
		return fmt.Errorf("unsupported block type %T", blk)
	}
	return nil
}

// writeTable emits a fixed-layout table with one inline style per cell.
func (b *htmlBuilder) writeTable(ctx context.Context, w *strings.Builder, t *Table) error {
	rt, err := resolveTableStyle(t)
	if err != nil {
		return err
	}

	w.WriteString("<table class=\"report-table\">\n<colgroup>")
	if t.ColWidths != nil {
		for _, cw := range t.ColWidths {
			fmt.Fprintf(w, "<col style=\"width: %s\">", cssPt(cw))
		}
	}
	w.WriteString("</colgroup>\n")

	for r, row := range t.Rows {
		if h := t.fixedRowHeight(r); h > 0 {
			fmt.Fprintf(w, "<tr style=\"height: %s\">", cssPt(h))
		} else {
			w.WriteString("<tr>")
		}
		for c, cell := range row {
			style := cellCSS(rt.cells[r][c]) + edgesCSS(rt, r, c)
			if cell.Paragraph != nil {
				frag, err := b.md.Fragment(ctx, cell.Paragraph.Text)
				if err != nil {
					return fmt.Errorf("%w: cell (%d,%d): %v", ErrHTMLConversion, c, r, err)
				}
				fmt.Fprintf(w, "<td class=\"para\" style=\"%s\"><div style=\"%s\">%s</div></td>",
					style, paragraphCSS(cell.Paragraph.Style), frag)
				continue
			}
			fmt.Fprintf(w, "<td style=\"%s\">%s</td>", style, html.EscapeString(pipeline.NormalizeText(cell.Text)))
		}
		w.WriteString("</tr>\n")
	}
	w.WriteString("</table>\n")
	return nil
}

// headingHTML escapes heading text and keeps explicit line breaks.
func headingHTML(text string) string {
	lines := strings.Split(pipeline.NormalizeText(text), "\n")
	for i, ln := range lines {
		lines[i] = html.EscapeString(ln)
	}
	return strings.Join(lines, "<br>")
}

// paragraphCSS returns the inline declarations for a paragraph style.
func paragraphCSS(s ParagraphStyle) string {
	return fmt.Sprintf("%s font-size: %s; line-height: %s; color: %s; text-align: %s; margin: %s 0 %s 0;",
		fontCSS(s.face()), cssPt(s.fontSize()), cssPt(s.leading()), s.TextColor,
		s.Alignment, cssPt(s.SpaceBefore), cssPt(s.SpaceAfter))
}

// cellCSS returns the inline declarations for a resolved cell style.
func cellCSS(s cellStyle) string {
	face, err := parseFontName(s.FontName)
	if err != nil {
		face = fontFace{}
	}
	var buf strings.Builder
	buf.WriteString(fontCSS(face))
	fmt.Fprintf(&buf, " font-size: %s; line-height: %s; color: %s;", cssPt(s.FontSize), cssPt(s.leading()), s.TextColor)
	fmt.Fprintf(&buf, " text-align: %s; vertical-align: %s;", s.Align, s.VAlign)
	fmt.Fprintf(&buf, " padding: %s %s %s %s;", cssPt(s.PadTop), cssPt(s.PadRight), cssPt(s.PadBottom), cssPt(s.PadLeft))
	if s.HasBackground {
		fmt.Fprintf(&buf, " background-color: %s;", s.Background)
	}
	return buf.String()
}

// edgesCSS returns the four borders of cell (c, r).
func edgesCSS(rt *resolvedTable, r, c int) string {
	return fmt.Sprintf(" border-top: %s; border-right: %s; border-bottom: %s; border-left: %s;",
		cssBorder(rt.hEdges[r][c]), cssBorder(rt.vEdges[r][c+1]),
		cssBorder(rt.hEdges[r+1][c]), cssBorder(rt.vEdges[r][c]))
}
