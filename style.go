package pdfreport

import (
	"fmt"
	"strings"
)

// Alignment is the horizontal placement of text.
type Alignment int

// Horizontal alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the CSS text-align keyword.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// VAlignment is the vertical placement of text within a table cell.
type VAlignment int

// Vertical alignments. Bottom is the zero value to match classic table layout.
const (
	VAlignBottom VAlignment = iota
	VAlignMiddle
	VAlignTop
)

// String returns the CSS vertical-align keyword.
func (v VAlignment) String() string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignTop:
		return "top"
	default:
		return "bottom"
	}
}

// Base-14 font names accepted in styles.
const (
	FontHelvetica            = "Helvetica"
	FontHelveticaBold        = "Helvetica-Bold"
	FontHelveticaOblique     = "Helvetica-Oblique"
	FontHelveticaBoldOblique = "Helvetica-BoldOblique"
	FontCourier              = "Courier"
	FontCourierBold          = "Courier-Bold"
	FontCourierOblique       = "Courier-Oblique"
	FontCourierBoldOblique   = "Courier-BoldOblique"
)

// Default text settings for paragraphs and table cells.
const (
	DefaultFontName = FontHelvetica
	DefaultFontSize = 10.0
	leadingRatio    = 1.2
)

// fontFace identifies a concrete font variant.
type fontFace struct {
	mono   bool
	bold   bool
	italic bool
}

// withBold returns f with bold forced on.
func (f fontFace) withBold() fontFace {
	f.bold = true
	return f
}

// withItalic returns f with italic forced on.
func (f fontFace) withItalic() fontFace {
	f.italic = true
	return f
}

// withMono returns f switched to the monospace family.
func (f fontFace) withMono() fontFace {
	f.mono = true
	return f
}

// parseFontName maps a base-14 font name to a face.
func parseFontName(name string) (fontFace, error) {
	switch strings.ToLower(name) {
	case "helvetica", "arial":
		return fontFace{}, nil
	case "helvetica-bold", "arial-bold":
		return fontFace{bold: true}, nil
	case "helvetica-oblique", "arial-italic":
		return fontFace{italic: true}, nil
	case "helvetica-boldoblique", "arial-bolditalic":
		return fontFace{bold: true, italic: true}, nil
	case "courier":
		return fontFace{mono: true}, nil
	case "courier-bold":
		return fontFace{mono: true, bold: true}, nil
	case "courier-oblique":
		return fontFace{mono: true, italic: true}, nil
	case "courier-boldoblique":
		return fontFace{mono: true, bold: true, italic: true}, nil
	}
	return fontFace{}, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}

// ParagraphStyle describes how a paragraph or heading is set.
type ParagraphStyle struct {
	Name        string
	FontName    string // base-14 name, "" = Helvetica
	FontSize    float64
	Leading     float64 // line height, 0 = 1.2 x FontSize
	TextColor   Color
	Alignment   Alignment
	SpaceBefore float64
	SpaceAfter  float64
}

// BodyStyle returns the default body text style: Helvetica 10/12, black, left.
func BodyStyle() ParagraphStyle {
	return ParagraphStyle{
		Name:     "Normal",
		FontName: FontHelvetica,
		FontSize: DefaultFontSize,
		Leading:  12,
	}
}

// Validate checks the font name and sizes.
func (s ParagraphStyle) Validate() error {
	if s.FontName != "" {
		if _, err := parseFontName(s.FontName); err != nil {
			return err
		}
	}
	if s.FontSize < 0 {
		return fmt.Errorf("%w: %.2f in style %q", ErrInvalidFontSize, s.FontSize, s.Name)
	}
	if s.Leading < 0 {
		return fmt.Errorf("%w: leading %.2f in style %q", ErrInvalidFontSize, s.Leading, s.Name)
	}
	return nil
}

// fontSize returns the effective font size.
func (s ParagraphStyle) fontSize() float64 {
	if s.FontSize <= 0 {
		return DefaultFontSize
	}
	return s.FontSize
}

// leading returns the effective line height.
func (s ParagraphStyle) leading() float64 {
	if s.Leading <= 0 {
		return s.fontSize() * leadingRatio
	}
	return s.Leading
}

// face returns the font face, defaulting to Helvetica.
// Callers validate first; an unknown name falls back to the default face.
func (s ParagraphStyle) face() fontFace {
	if s.FontName == "" {
		return fontFace{}
	}
	f, err := parseFontName(s.FontName)
	if err != nil {
		return fontFace{}
	}
	return f
}
