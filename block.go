package pdfreport

import "fmt"

// Block is one unit of the document's render sequence.
// The set of implementations is closed: Heading, Paragraph, Spacer, PageBreak, Table.
type Block interface {
	block()
}

// Heading is a section title. Level 1-6 maps to h1-h6 and bookmark depth.
type Heading struct {
	Text  string
	Level int
	Style ParagraphStyle
}

// Paragraph is a run of text with inline markup (**bold**, *italic*, `code`).
// A blank line inside Text forces a line break.
type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

// Spacer is fixed vertical space in points.
type Spacer struct {
	Height float64
}

// PageBreak starts a new page.
type PageBreak struct{}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*Spacer) block()    {}
func (*PageBreak) block() {}
func (*Table) block()     {}

// Validate checks level and style.
func (h *Heading) Validate() error {
	if h.Level < 1 || h.Level > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidHeading, h.Level)
	}
	return h.Style.Validate()
}

// Validate checks the style.
func (p *Paragraph) Validate() error {
	return p.Style.Validate()
}

// Validate rejects negative heights.
func (s *Spacer) Validate() error {
	if s.Height < 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidSpacer, s.Height)
	}
	return nil
}

// validateBlock dispatches validation for any block kind.
func validateBlock(b Block) error {
	switch v := b.(type) {
	case *Heading:
		return v.Validate()
	case *Paragraph:
		return v.Validate()
	case *Spacer:
		return v.Validate()
	case *PageBreak:
		return nil
	case *Table:
		return v.Validate()
	case nil:
		return fmt.Errorf("nil block")
	}
	return fmt.Errorf("unsupported block type %T", b)
}
