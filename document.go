package pdfreport

import (
	"fmt"
	"time"
)

// Document is an ordered sequence of content blocks bound to a page layout.
// Build it once with the append helpers, then hand it to a Converter.
type Document struct {
	Title   string
	Author  string
	Subject string
	Lang    string    // HTML lang attribute, "" = "fr"
	Created time.Time // zero = time of rendering
	Page    PageSettings
	Footer  *Footer
	Blocks  []Block
}

// NewDocument creates an empty document with the given page settings.
func NewDocument(page PageSettings) *Document {
	return &Document{Page: page}
}

// Add appends blocks in order.
func (d *Document) Add(blocks ...Block) *Document {
	d.Blocks = append(d.Blocks, blocks...)
	return d
}

// Heading appends a level-1 heading.
func (d *Document) Heading(text string, style ParagraphStyle) *Document {
	return d.Add(&Heading{Text: text, Level: 1, Style: style})
}

// Subheading appends a level-2 heading.
func (d *Document) Subheading(text string, style ParagraphStyle) *Document {
	return d.Add(&Heading{Text: text, Level: 2, Style: style})
}

// Paragraph appends a paragraph.
func (d *Document) Paragraph(text string, style ParagraphStyle) *Document {
	return d.Add(&Paragraph{Text: text, Style: style})
}

// Spacer appends vertical space in points.
func (d *Document) Spacer(height float64) *Document {
	return d.Add(&Spacer{Height: height})
}

// PageBreak appends a page break.
func (d *Document) PageBreak() *Document {
	return d.Add(&PageBreak{})
}

// Table appends a table.
func (d *Document) Table(t *Table) *Document {
	return d.Add(t)
}

// Validate checks page settings, footer and every block.
//
// This is the trust boundary for documents built by hand: backends assume a
// validated document and never re-check style ranges or font names.
func (d *Document) Validate() error {
	if d == nil {
		return ErrNilDocument
	}
	if len(d.Blocks) == 0 {
		return ErrEmptyDocument
	}
	if err := d.Page.Validate(); err != nil {
		return err
	}
	if err := d.Footer.Validate(); err != nil {
		return err
	}
	for i, b := range d.Blocks {
		if err := validateBlock(b); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// creationTime returns Created or now.
func (d *Document) creationTime(now func() time.Time) time.Time {
	if !d.Created.IsZero() {
		return d.Created
	}
	return now()
}
