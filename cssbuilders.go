package pdfreport

import (
	"fmt"
	"strings"
)

// Font stacks used in the HTML rendition. Chrome has no base-14 fonts, so
// each family maps to the closest metric-compatible system fonts.
const (
	sansFontStack = `Helvetica, Arial, "Liberation Sans", sans-serif`
	monoFontStack = `Courier, "Courier New", "Liberation Mono", monospace`
)

// buildPageCSS generates the @page rule for the document's paper and margins.
// Sizes are in points so Chrome lays out the same frame as the native backend.
func buildPageCSS(p PageSettings) string {
	w, h := p.Dimensions()
	m := p.Margins
	return fmt.Sprintf(`
/* Page */
@page {
  size: %s %s;
  margin: %s %s %s %s;
}
`, cssPt(w), cssPt(h), cssPt(m.Top), cssPt(m.Right), cssPt(m.Bottom), cssPt(m.Left))
}

// buildPageBreaksCSS generates CSS for page break control: headings stay with
// the next block, table rows never split, and .page-break forces a new page.
func buildPageBreaksCSS() string {
	return `
/* Page breaks: prevent heading alone at page bottom */
h1, h2, h3, h4, h5, h6 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}

/* Page breaks: rows are kept whole */
table.report-table tr {
  break-inside: avoid;
  page-break-inside: avoid;
}

/* Page breaks: explicit */
.page-break {
  break-after: page;
  page-break-after: always;
  height: 0;
}
`
}

// fontCSS returns the font-family, weight and style declarations for a face.
func fontCSS(f fontFace) string {
	var buf strings.Builder
	buf.WriteString("font-family: ")
	if f.mono {
		buf.WriteString(monoFontStack)
	} else {
		buf.WriteString(sansFontStack)
	}
	buf.WriteString("; font-weight: ")
	if f.bold {
		buf.WriteString("bold")
	} else {
		buf.WriteString("normal")
	}
	buf.WriteString("; font-style: ")
	if f.italic {
		buf.WriteString("italic")
	} else {
		buf.WriteString("normal")
	}
	buf.WriteString(";")
	return buf.String()
}

// cssPt formats a length in points, trimming a useless fraction.
func cssPt(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	if s == "" || s == "-0" {
		s = "0"
	}
	return s + "pt"
}

// cssBorder formats an edge as a border value.
func cssBorder(e edge) string {
	if e.Width <= 0 {
		return "none"
	}
	return cssPt(e.Width) + " solid " + e.Color.String()
}
