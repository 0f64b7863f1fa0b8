// Package pdfreport renders styled A4 reports to PDF.
//
// # Quick Start
//
// Build a document from blocks, render it, and close the converter when done:
//
//	conv, err := pdfreport.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	doc := pdfreport.NewDocument(pdfreport.DefaultPageSettings())
//	doc.Heading("Rapport", pdfreport.ParagraphStyle{FontName: pdfreport.FontHelveticaBold, FontSize: 18})
//	doc.Paragraph("Texte avec **gras** et *italique*.", pdfreport.BodyStyle())
//	doc.Table(pdfreport.NewTable([][]string{{"A", "B"}, {"1", "2"}}, 4*pdfreport.Cm, 4*pdfreport.Cm).
//	    SetStyle(pdfreport.Grid(pdfreport.At(0, 0), pdfreport.At(-1, -1), 1, pdfreport.Black)))
//
//	size, err := conv.WriteFile(ctx, doc, "rapport.pdf")
//
// # Blocks
//
// A document is an ordered sequence of headings, paragraphs, spacers, page
// breaks and tables. Spacing between consecutive blocks is the larger of the
// previous block's SpaceAfter and the next block's SpaceBefore; SpaceBefore
// is dropped at the top of a page. Headings stay on the same page as the
// first line of the next block and become PDF bookmarks.
//
// Paragraph text accepts inline markup: **bold**, *italic*, `code` and
// ~~strike~~. Table cells hold literal text or a nested paragraph.
//
// # Table Styles
//
// Table formatting is a list of commands over inclusive cell ranges, applied
// in order (later commands win). Negative indices count from the end, so
// At(0, 0)..At(-1, -1) covers the whole table. Ranges outside the table are
// rejected by Document.Validate.
//
// # Backends
//
// The native backend (default) lays out pages in-process with go-pdf/fpdf
// and embedded Go fonts. The Chrome backend renders an HTML rendition of the
// document with headless Chrome via go-rod:
//
//	conv, err := pdfreport.NewConverter(
//	    pdfreport.WithBackend(pdfreport.BackendChrome),
//	    pdfreport.WithTimeout(2 * time.Minute),
//	    pdfreport.WithStyle("compact"),
//	)
//
// # Browser Requirements
//
// The Chrome backend requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package pdfreport
