package pdfreport

import (
	"bytes"
	"context"
	"testing"
)

// ---------------------------------------------------------------------------
// Shared Fixtures
// ---------------------------------------------------------------------------

// sampleDocument returns a small document exercising every block kind.
func sampleDocument() *Document {
	heading := ParagraphStyle{Name: "Heading1", FontName: FontHelveticaBold, FontSize: 18, Leading: 22, SpaceAfter: 6}
	doc := NewDocument(DefaultPageSettings())
	doc.Title = "Rapport"
	doc.Heading("Rapport d'exemple", heading).
		Paragraph("Texte avec **gras** et *italique*.", BodyStyle()).
		Spacer(20).
		Table(NewTable([][]string{{"Métrique", "Valeur"}, {"CA", "2,5 M€"}}, 4*Cm, 3*Cm).
			SetStyle(
				Background(At(0, 0), At(-1, 0), Hex("#2C3E50")),
				TextColor(At(0, 0), At(-1, 0), White),
				Grid(At(0, 0), At(-1, -1), 1, Black),
			)).
		PageBreak().
		Paragraph("Deuxième page.", BodyStyle())
	return doc
}

// longDocument returns a document with n paragraphs of filler text.
func longDocument(n int) *Document {
	doc := NewDocument(DefaultPageSettings())
	for i := 0; i < n; i++ {
		doc.Paragraph("Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.", BodyStyle())
	}
	return doc
}

// stubBackend implements pdfBackend for testing.
type stubBackend struct {
	result *RenderResult
	err    error
	panics bool
	calls  int
	closed bool
}

func (s *stubBackend) Render(ctx context.Context, doc *Document) (*RenderResult, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubBackend) Close() error {
	s.closed = true
	return nil
}

func assertPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
}
