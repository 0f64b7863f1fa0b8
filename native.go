package pdfreport

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Footer text settings for the native backend.
const (
	footerFontSize = 8.0
	creatorName    = "go-pdfreport"
	pageCountAlias = "{nb}"
)

var footerColor = Color{170, 170, 170}

// nativeBackend renders documents in-process with go-pdf/fpdf.
type nativeBackend struct {
	now func() time.Time
}

var _ pdfBackend = (*nativeBackend)(nil)

func newNativeBackend() *nativeBackend {
	return &nativeBackend{now: time.Now}
}

// Render lays out a validated document and returns the PDF bytes.
func (b *nativeBackend) Render(ctx context.Context, doc *Document) (*RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	glyphs, err := newGlyphMapper()
	if err != nil {
		return nil, err
	}

	w, h := doc.Page.Dimensions()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	m := doc.Page.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, 0)
	if err := registerFonts(pdf); err != nil {
		return nil, err
	}

	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetCreator(creatorName, true)
	created := doc.creationTime(b.now)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)

	if !doc.Footer.isEmpty() {
		pdf.AliasNbPages(pageCountAlias)
		pdf.SetFooterFunc(footerFunc(pdf, glyphs, doc.Footer, doc.Page))
	}

	l := newLayout(pdf, glyphs, doc.Page)
	if err := l.flow(ctx, doc.Blocks); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	return &RenderResult{PDF: buf.Bytes(), Pages: l.pages}, nil
}

// Close is a no-op: the native backend holds no external resources.
func (b *nativeBackend) Close() error {
	return nil
}

// footerFunc draws the footer line centred in the bottom margin.
func footerFunc(pdf *fpdf.Fpdf, glyphs *glyphMapper, f *Footer, page PageSettings) func() {
	w, h := page.Dimensions()
	m := page.Margins
	return func() {
		content := glyphs.mapString(fontFace{}, footerText(f, pdf.PageNo()))
		if content == "" {
			return
		}
		pdf.SetFont(familySans, "", footerFontSize)
		r, g, b := footerColor.ints()
		pdf.SetTextColor(r, g, b)

		textW := pdf.GetStringWidth(content)
		x := w - m.Right - textW
		switch strings.ToLower(f.Position) {
		case "left":
			x = m.Left
		case "center":
			x = (w - textW) / 2
		}
		baseline := h - m.Bottom/2 + footerFontSize/2 - footerFontSize*descentRatio
		pdf.Text(x, baseline, content)
	}
}

// footerText joins the enabled footer parts with " - ".
func footerText(f *Footer, pageNo int) string {
	var parts []string
	if f.ShowPageNumber {
		parts = append(parts, fmt.Sprintf("%d/%s", pageNo, pageCountAlias))
	}
	if f.Text != "" {
		parts = append(parts, f.Text)
	}
	if f.DocumentID != "" {
		parts = append(parts, f.DocumentID)
	}
	return strings.Join(parts, " - ")
}
